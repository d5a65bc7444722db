package generator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoIdent(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"width", "Width"},
		{"d", "D"},
		{"in2", "In2"},
		{"stroke-width", "StrokeWidth"},
		{"enable-background", "EnableBackground"},
		{"baseFrequency", "BaseFrequency"},
		{"xChannelSelector", "XChannelSelector"},
		{"xlink:href", "XlinkHref"},
		{"xml:space", "XmlSpace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoIdent(tt.name))
		})
	}
}

func TestVocabulary(t *testing.T) {
	entries := Vocabulary()
	require.NotEmpty(t, entries)

	assert.Equal(t, Entry{Ident: "Alternate", Name: "alternate", Value: 0}, entries[0])
	assert.Equal(t, Entry{Ident: "Z", Name: "z", Value: len(entries) - 1}, entries[len(entries)-1])

	for i, e := range entries {
		assert.Equal(t, i, e.Value, "entry %q should carry its position", e.Name)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	entries := []Entry{
		{Ident: "Width", Name: "width", Value: 0},
		{Ident: "Width", Name: "Width", Value: 1},
		{Ident: "Height", Name: "height", Value: 2},
		{Ident: "HeightX", Name: "height", Value: 3},
		{Ident: "", Name: "depth", Value: 4},
		{Ident: "Empty", Name: "", Value: 5},
	}

	err := validate(entries)
	require.Error(t, err)
	assert.ErrorContains(t, err, `go identifier "Width"`)
	assert.ErrorContains(t, err, `canonical name "height"`)
	assert.ErrorContains(t, err, `empty Go identifier`)
	assert.ErrorContains(t, err, `empty canonical name`)
}

// The committed surfaces must be exactly what the vocabulary renders.
// This is the build-time divergence check the enum's consumers rely
// on: if someone edits a generated file by hand, or edits the
// vocabulary without regenerating, these tests fail.

func TestRenderGo_MatchesCommitted(t *testing.T) {
	want, err := os.ReadFile("../../../pkg/attribute/attribute.gen.go")
	require.NoError(t, err)

	got, err := RenderGo()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "pkg/attribute/attribute.gen.go is stale, rerun attrgen")
}

func TestRenderManifest_MatchesCommitted(t *testing.T) {
	want, err := os.ReadFile("../../../gen/attributes/attributes.json")
	require.NoError(t, err)

	got, err := RenderManifest()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "gen/attributes/attributes.json is stale, rerun attrgen")
}
