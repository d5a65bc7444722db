// Package propertybag collects the attributes of a single element after
// name resolution. The bag is built once from the raw tokenizer
// attributes and never mutated; consumers iterate it in document order
// and dispatch on the resolved identifier.
package propertybag

import (
	"encoding/xml"

	"github.com/walteh/svgattrs/pkg/attribute"
)

const (
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
)

// Pair is one recognized attribute and its raw, unparsed value.
type Pair struct {
	Attr  attribute.Attribute
	Value string
}

// Bag holds the recognized attributes of one element in document
// order. Unrecognized names are dropped at construction and only their
// spellings retained, so callers can report on foreign or vendor
// attributes without carrying their values around.
type Bag struct {
	pairs   []Pair
	dropped []string
}

// New resolves every raw attribute and builds a bag from the ones that
// are recognized. Namespace declarations are skipped entirely;
// attributes in the xlink and xml namespaces are resolved under their
// conventional prefixes.
func New(raw []xml.Attr) *Bag {
	b := &Bag{}
	for _, at := range raw {
		if at.Name.Space == "xmlns" || (at.Name.Space == "" && at.Name.Local == "xmlns") {
			continue
		}

		name := qualifiedName(at.Name)
		a, ok := attribute.Lookup(name)
		if !ok {
			b.dropped = append(b.dropped, name)
			continue
		}
		b.pairs = append(b.pairs, Pair{Attr: a, Value: at.Value})
	}
	return b
}

// qualifiedName rebuilds the textual spelling the vocabulary uses for
// a tokenizer name. encoding/xml resolves bound prefixes to namespace
// URIs and leaves unbound prefixes verbatim, so both forms of the
// xlink and xml namespaces are folded back to their prefixes.
func qualifiedName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case xlinkNamespace, "xlink":
		return "xlink:" + n.Local
	case xmlNamespace, "xml":
		return "xml:" + n.Local
	default:
		return n.Space + ":" + n.Local
	}
}

// Pairs returns the recognized attributes in document order. The
// returned slice is owned by the bag; callers must not mutate it.
func (b *Bag) Pairs() []Pair {
	return b.pairs
}

// Get returns the raw value of a, if the element carried it. Bags are
// element-sized, so this scans.
func (b *Bag) Get(a attribute.Attribute) (string, bool) {
	for _, p := range b.pairs {
		if p.Attr == a {
			return p.Value, true
		}
	}
	return "", false
}

// Len is the number of recognized attributes.
func (b *Bag) Len() int {
	return len(b.pairs)
}

// Dropped returns the spellings of the attributes that did not resolve,
// in document order.
func (b *Bag) Dropped() []string {
	return b.dropped
}
