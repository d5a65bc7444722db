// Package generator renders every derived surface of the SVG attribute
// vocabulary: the Go enum compiled into pkg/attribute and the JSON
// manifest under gen/attributes. Keeping both renderers next to the
// vocabulary is what makes the cross-surface invariant hold: there is
// exactly one ordered list, and every surface is a deterministic
// function of it.
package generator

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"gitlab.com/tozd/go/errors"
)

// Entry is one attribute of the vocabulary: its canonical markup
// spelling, the Go identifier derived from it, and its position, which
// becomes the numeric value of the identifier on every surface.
type Entry struct {
	Ident string `json:"ident"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Vocabulary returns the full vocabulary in canonical order.
func Vocabulary() []Entry {
	entries := make([]Entry, len(vocabulary))
	for i, name := range vocabulary {
		entries[i] = Entry{
			Ident: GoIdent(name),
			Name:  name,
			Value: i,
		}
	}
	return entries
}

// GoIdent derives the exported Go identifier for a canonical attribute
// name: each segment between '-' and ':' separators contributes with
// its first letter upper-cased, so "stroke-width" becomes StrokeWidth
// and "xlink:href" becomes XlinkHref. camelCase humps inside a segment
// are kept as-is ("baseFrequency" becomes BaseFrequency).
func GoIdent(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == ':'
	}) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// Validate checks the vocabulary for problems that would corrupt the
// generated surfaces. All problems are reported at once rather than
// stopping at the first.
func Validate() error {
	return validate(Vocabulary())
}

func validate(entries []Entry) error {
	var result *multierror.Error

	names := make(map[string]int, len(entries))
	idents := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			result = multierror.Append(result, errors.Errorf("entry %d: empty canonical name", e.Value))
			continue
		}
		if e.Ident == "" {
			result = multierror.Append(result, errors.Errorf("entry %q: empty Go identifier", e.Name))
		}
		if prev, dup := names[e.Name]; dup {
			result = multierror.Append(result, errors.Errorf("canonical name %q appears at both %d and %d", e.Name, prev, e.Value))
		}
		if prev, dup := idents[e.Ident]; dup {
			result = multierror.Append(result, errors.Errorf("go identifier %q derived for both %d and %d", e.Ident, prev, e.Value))
		}
		names[e.Name] = e.Value
		idents[e.Ident] = e.Value
	}

	return result.ErrorOrNil()
}

// RenderGo renders the enum surface, the exact content of
// pkg/attribute/attribute.gen.go.
func RenderGo() ([]byte, error) {
	tmpl, err := template.New("attribute").Parse(attributeTemplate)
	if err != nil {
		return nil, errors.Errorf("parsing attribute template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Entries []Entry }{Vocabulary()}); err != nil {
		return nil, errors.Errorf("executing attribute template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderManifest renders the JSON surface, the exact content of
// gen/attributes/attributes.json.
func RenderManifest() ([]byte, error) {
	data, err := json.MarshalIndent(Vocabulary(), "", "  ")
	if err != nil {
		return nil, errors.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}
