// Package document builds an element tree from SVG markup. It is the
// consuming side of the attribute pipeline: every raw attribute name
// goes through attribute.Lookup exactly once, structural attributes
// are dispatched onto typed fields, and everything else stays in the
// element's property bag for later value parsing. Unrecognized
// attributes never abort a parse; they are counted and skipped.
package document

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/svgattrs/pkg/attribute"
	"github.com/walteh/svgattrs/pkg/href"
	"github.com/walteh/svgattrs/pkg/propertybag"
	"gitlab.com/tozd/go/errors"
)

// Node is one element of the document tree.
type Node struct {
	// Name is the element's local name, e.g. "rect".
	Name string

	// Structural attributes, dispatched at parse time. Values are kept
	// raw; semantic parsing of lengths, transforms and styles happens
	// downstream.
	ID        string
	Class     string
	Style     string
	Transform string

	// Href is the element's reference, with plain href taking
	// precedence over xlink:href. Empty when the element has neither.
	Href string

	// Bag holds every recognized attribute of the element, including
	// the ones dispatched above.
	Bag *propertybag.Bag

	Children []*Node
}

// Stats summarizes one parse.
type Stats struct {
	Elements     int
	Recognized   int
	Unrecognized int

	// UnknownNames counts occurrences of each unrecognized spelling.
	UnknownNames map[string]int
}

// Document is a parsed SVG document.
type Document struct {
	Root  *Node
	Stats Stats

	// defs indexes nodes by id for fragment reference lookup. On
	// duplicate ids the first definition wins, matching rendering
	// behavior.
	defs map[string]*Node
}

// Parse reads SVG markup and builds the document tree. The only shared
// state it touches is the read-only attribute table, so independent
// documents may be parsed concurrently.
func Parse(ctx context.Context, r io.Reader) (*Document, error) {
	logger := zerolog.Ctx(ctx)

	doc := &Document{
		Stats: Stats{UnknownNames: make(map[string]int)},
		defs:  make(map[string]*Node),
	}

	dec := xml.NewDecoder(r)

	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := doc.newNode(t)
			if len(node.Bag.Dropped()) > 0 {
				logger.Debug().Str("element", node.Name).Strs("attributes", node.Bag.Dropped()).Msg("skipping unrecognized attributes")
			}

			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, errors.New("multiple root elements")
				}
				doc.Root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.Errorf("unexpected end of element %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) != 0 {
		return nil, errors.Errorf("unclosed element %q", stack[len(stack)-1].Name)
	}
	if doc.Root == nil {
		return nil, errors.New("document has no elements")
	}

	return doc, nil
}

// newNode resolves an element's attributes and dispatches the
// structural subset onto the node.
func (doc *Document) newNode(start xml.StartElement) *Node {
	bag := propertybag.New(start.Attr)

	node := &Node{
		Name: start.Name.Local,
		Bag:  bag,
	}

	for _, p := range bag.Pairs() {
		switch p.Attr {
		case attribute.Id:
			node.ID = p.Value
		case attribute.Class:
			node.Class = p.Value
		case attribute.Style:
			node.Style = p.Value
		case attribute.Transform:
			node.Transform = p.Value
		case attribute.Href, attribute.XlinkHref:
			href.Set(p.Attr, &node.Href, p.Value)
		}
	}

	if node.ID != "" {
		if _, taken := doc.defs[node.ID]; !taken {
			doc.defs[node.ID] = node
		}
	}

	doc.Stats.Elements++
	doc.Stats.Recognized += bag.Len()
	for _, name := range bag.Dropped() {
		doc.Stats.Unrecognized++
		doc.Stats.UnknownNames[name]++
	}

	return node
}

// LookupID returns the node with the given id, if any.
func (doc *Document) LookupID(id string) (*Node, bool) {
	n, ok := doc.defs[id]
	return n, ok
}

// ResolveReference resolves an href within this document. Only bare
// fragment references can land here; hrefs that name an external
// resource resolve to nothing.
func (doc *Document) ResolveReference(h href.Href) (*Node, bool) {
	if h.Kind != href.FragmentID {
		return nil, false
	}
	return doc.LookupID(h.Fragment)
}
