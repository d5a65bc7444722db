// Package href handles the `href` and `xlink:href` attributes.
//
// SVG1.1 links elements with `xlink:href`; SVG2 reduced this to plain
// `href` with no namespace. When an element carries both, `href`
// overrides the other. This package implements that precedence and the
// parsing of href values into their URI and fragment parts.
package href

import (
	"strings"

	"github.com/walteh/svgattrs/pkg/attribute"
	"gitlab.com/tozd/go/errors"
)

// Kind distinguishes the shapes an href value can take. References like
// the one in `<feImage>` may point at an external file, while
// `href="#foo"` points at an element in the same document; consumers
// need to tell these apart.
type Kind int

const (
	// PlainURI is an absolute or relative URI with no fragment, like
	// "foo.png".
	PlainURI Kind = iota
	// FragmentID is a bare fragment like "#foo".
	FragmentID
	// URIWithFragmentID is a URI with a fragment, like "foo.svg#bar".
	URIWithFragmentID
)

// Href is a parsed href value.
type Href struct {
	Kind     Kind
	URI      string
	Fragment string
}

var (
	// ErrParse means the href is an invalid URI or has empty
	// components.
	ErrParse = errors.New("invalid href")

	// ErrFragmentForbidden means a fragment identifier is not allowed
	// here. The `<image>` element, for example, only references
	// resources without fragments.
	ErrFragmentForbidden = errors.New("fragment identifier not allowed")

	// ErrFragmentRequired means a fragment identifier was required but
	// not found. The `<use>` element requires one, as in
	// `<use xlink:href="foo.svg#bar">`.
	ErrFragmentRequired = errors.New("fragment identifier required")
)

// Parse splits an href value into its URI and fragment parts. The
// fragment starts after the last '#'; an empty URI or an empty
// fragment component yields ErrParse.
func Parse(s string) (Href, error) {
	p := strings.LastIndexByte(s, '#')

	switch {
	case p < 0:
		if s == "" {
			return Href{}, errors.Errorf("%w: empty href", ErrParse)
		}
		return Href{Kind: PlainURI, URI: s}, nil
	case p == 0:
		fragment := s[1:]
		if fragment == "" {
			return Href{}, errors.Errorf("%w: empty fragment in %q", ErrParse, s)
		}
		return Href{Kind: FragmentID, Fragment: fragment}, nil
	default:
		uri, fragment := s[:p], s[p+1:]
		if fragment == "" {
			return Href{}, errors.Errorf("%w: empty fragment in %q", ErrParse, s)
		}
		return Href{Kind: URIWithFragmentID, URI: uri, Fragment: fragment}, nil
	}
}

// ParseWithoutFragment parses an href that must not carry a fragment
// identifier.
func ParseWithoutFragment(s string) (Href, error) {
	h, err := Parse(s)
	if err != nil {
		return Href{}, err
	}
	if h.Kind != PlainURI {
		return Href{}, errors.Errorf("%w: %q", ErrFragmentForbidden, s)
	}
	return h, nil
}

// ParseWithFragment parses an href that must carry a fragment
// identifier.
func ParseWithFragment(s string) (Href, error) {
	h, err := Parse(s)
	if err != nil {
		return Href{}, err
	}
	if h.Kind == PlainURI {
		return Href{}, errors.Errorf("%w: %q", ErrFragmentRequired, s)
	}
	return h, nil
}

// Is reports whether a is either of the two href attributes.
func Is(a attribute.Attribute) bool {
	return a == attribute.Href || a == attribute.XlinkHref
}

// Set stores value into dest with SVG2 precedence: a plain `href`
// always wins, while `xlink:href` only applies when nothing has been
// stored yet. Call it once per href attribute observed on an element,
// in document order.
func Set(a attribute.Attribute, dest *string, value string) {
	if *dest == "" || a != attribute.XlinkHref {
		*dest = value
	}
}
