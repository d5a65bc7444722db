// Package attribute defines the closed set of SVG attribute names the
// renderer understands, and resolves raw markup names into members of
// that set.
//
// The enum and its canonical spellings live in attribute.gen.go, which
// is generated from the vocabulary in cmd/attrgen. The same vocabulary
// also produces the JSON manifest under gen/attributes; the two
// surfaces are checked against each other in this package's tests.
package attribute

// Count is the number of recognized attributes.
const Count = len(attributeNames)

// attributeValues is the resolver table, the inverse of
// attributeNames. Populated during package initialization and
// read-only afterwards, so concurrent lookups need no locking.
var attributeValues = make(map[string]Attribute, Count)

func init() {
	for i, name := range attributeNames {
		attributeValues[name] = Attribute(i)
	}
}

// Lookup resolves a raw attribute name into its identifier. Matching
// is exact and case-sensitive against the canonical spelling; there is
// no normalization and no aliases. The second result is false for any
// name outside the vocabulary, which is an ordinary outcome for real
// documents (vendor extensions, foreign namespaces) and not an error.
func Lookup(name string) (Attribute, bool) {
	a, ok := attributeValues[name]
	return a, ok
}

// Name returns the canonical markup spelling of the attribute, or the
// empty string if a is not a member of the set.
func (a Attribute) Name() string {
	if !a.Valid() {
		return ""
	}
	return attributeNames[a]
}

// String implements fmt.Stringer.
func (a Attribute) String() string {
	return a.Name()
}

// Valid reports whether a is a member of the recognized set.
func (a Attribute) Valid() bool {
	return int(a) < Count
}

// All returns every recognized attribute in value order. The slice is
// freshly allocated; callers may mutate it.
func All() []Attribute {
	out := make([]Attribute, Count)
	for i := range out {
		out[i] = Attribute(i)
	}
	return out
}
