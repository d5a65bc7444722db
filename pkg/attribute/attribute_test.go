package attribute_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	genattributes "github.com/walteh/svgattrs/gen/attributes"
	"github.com/walteh/svgattrs/pkg/attribute"
)

func TestLookup_RoundTrip(t *testing.T) {
	for _, a := range attribute.All() {
		name := a.Name()
		require.NotEmpty(t, name, "attribute %d should have a canonical name", int(a))

		got, ok := attribute.Lookup(name)
		require.True(t, ok, "canonical name %q should resolve", name)
		assert.Equal(t, a, got, "resolving %q should return the attribute it came from", name)
	}
}

func TestLookup_CaseSensitive(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{"canonical lowercase", "width", true},
		{"uppercased first letter", "Width", false},
		{"all caps", "STROKE-WIDTH", false},
		{"canonical camelCase", "viewBox", true},
		{"camelCase folded to lowercase", "viewbox", false},
		{"camelCase with wrong hump", "ViewBox", false},
		{"canonical kebab-case", "stroke-width", true},
		{"canonical namespaced", "xlink:href", true},
		{"namespaced with wrong case", "XLink:href", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := attribute.Lookup(tt.input)
			assert.Equal(t, tt.wantOK, ok, "Lookup(%q)", tt.input)
		})
	}
}

func TestLookup_Unrecognized(t *testing.T) {
	inputs := []string{
		"",
		"totally-unknown-attr",
		"data-foo",
		"stroke-widthh",
		" width",
		"width ",
		"stroke_width",
		"inkscape:label",
	}

	for _, input := range inputs {
		_, ok := attribute.Lookup(input)
		assert.False(t, ok, "Lookup(%q) should be unrecognized", input)
	}
}

func TestVocabulary_Bijection(t *testing.T) {
	all := attribute.All()
	require.Len(t, all, attribute.Count)

	seen := make(map[string]attribute.Attribute, len(all))
	for _, a := range all {
		name := a.Name()
		prev, dup := seen[name]
		require.False(t, dup, "name %q claimed by both %d and %d", name, int(prev), int(a))
		seen[name] = a
	}
}

func TestAttribute_Invalid(t *testing.T) {
	bad := attribute.Attribute(200)
	assert.False(t, bad.Valid())
	assert.Empty(t, bad.Name())
}

func TestLookup_Concurrent(t *testing.T) {
	inputs := make([]string, 0, attribute.Count+4)
	for _, a := range attribute.All() {
		inputs = append(inputs, a.Name())
	}
	inputs = append(inputs, "", "totally-unknown-attr", "Width", "viewbox")

	type result struct {
		attr attribute.Attribute
		ok   bool
	}

	sequential := make([]result, len(inputs))
	for i, name := range inputs {
		a, ok := attribute.Lookup(name)
		sequential[i] = result{a, ok}
	}

	const workers = 16
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, name := range inputs {
				a, ok := attribute.Lookup(name)
				assert.Equal(t, sequential[i], result{a, ok}, "Lookup(%q) diverged under concurrency", name)
			}
		}()
	}
	wg.Wait()
}

// TestManifestParity checks the generated JSON manifest against the
// compiled enum. The two are independent surfaces derived from the
// attrgen vocabulary; if they ever disagree, a numeric identifier no
// longer means the same attribute on both sides of the native
// boundary.
func TestManifestParity(t *testing.T) {
	var manifest []struct {
		Ident string `json:"ident"`
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	require.NoError(t, json.Unmarshal(genattributes.Data, &manifest))
	require.Len(t, manifest, attribute.Count, "manifest and enum should have the same cardinality")

	for i, entry := range manifest {
		assert.Equal(t, i, entry.Value, "manifest entry %q should be in value order", entry.Name)

		a, ok := attribute.Lookup(entry.Name)
		require.True(t, ok, "manifest name %q should resolve", entry.Name)
		assert.Equal(t, entry.Value, int(a), "manifest value for %q", entry.Name)
		assert.Equal(t, entry.Name, a.Name(), "canonical spelling for %q", entry.Ident)
	}
}
