package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryFromValue_Defaults(t *testing.T) {
	e, err := EntryFromValue("notes.txt", map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", e.Name)
	assert.Equal(t, ActionFile, e.Action.Kind)
	assert.Equal(t, "notes.txt", e.Action.Target, "name doubles as the file target")
	assert.Empty(t, e.Tags)
	assert.Equal(t, KeywordNone, e.KeywordMode)
	assert.False(t, e.URLBacked())
}

func TestEntryFromValue_Targets(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]any
		kind      ActionKind
		target    string
		urlBacked bool
	}{
		{"loc", map[string]any{"location": "/tmp/file"}, ActionFile, "/tmp/file", false},
		{"url", map[string]any{"url": "https://example.com"}, ActionFile, "https://example.com", true},
		{"sys", map[string]any{"system": "make all"}, ActionSystem, "make all", false},
	}
	for _, tt := range tests {
		e, err := EntryFromValue(tt.name, tt.raw)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.kind, e.Action.Kind, tt.name)
		assert.Equal(t, tt.target, e.Action.Target, tt.name)
		assert.Equal(t, tt.urlBacked, e.URLBacked(), tt.name)
	}
}

func TestEntryFromValue_BareValue(t *testing.T) {
	_, err := EntryFromValue("oops", "just a string")
	var bare *BareKeyError
	require.ErrorAs(t, err, &bare)
	assert.Equal(t, "oops", bare.Name)
}

func TestEntryFromValue_TargetConflict(t *testing.T) {
	_, err := EntryFromValue("both", map[string]any{
		"location": "/tmp/x",
		"url":      "https://example.com",
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "both", conflict.Name)
}

func TestEntryFromValue_FieldTypes(t *testing.T) {
	cases := map[string]map[string]any{
		"location-int":  {"location": 7},
		"escape-string": {"escape": "yes"},
		"tags-scalar":   {"tags": "notalist"},
		"tags-mixed":    {"tags": []any{"ok", 3}},
	}
	for name, raw := range cases {
		_, err := EntryFromValue(name, raw)
		var parse *ParseError
		assert.ErrorAs(t, err, &parse, name)
	}
}

func TestEntryFromValue_KeywordPolicy(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want KeywordPolicy
	}{
		{"no-keyword", map[string]any{"url": "https://example.com/%s"}, KeywordNone},
		{"raw", map[string]any{"location": "/docs/%s", "keyword": "d"}, KeywordRaw},
		{"url-escapes", map[string]any{"url": "https://example.com/?q=%s", "keyword": "q"}, KeywordEscaped},
		{"forced-escape", map[string]any{"system": "grep %s", "keyword": "g", "escape": true}, KeywordEscaped},
	}
	for _, tt := range tests {
		e, err := EntryFromValue(tt.name, tt.raw)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, e.KeywordMode, tt.name)
	}
}

func TestEntryFromValue_DescriptionAlias(t *testing.T) {
	e, err := EntryFromValue("a", map[string]any{"desc": "short form"})
	require.NoError(t, err)
	assert.Equal(t, "short form", e.Description)

	e, err = EntryFromValue("b", map[string]any{"description": "long form", "desc": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "long form", e.Description)
}

func TestEntryIconKey_Variants(t *testing.T) {
	urlEntry, err := EntryFromValue("web", map[string]any{"url": "https://a.example.com/page"})
	require.NoError(t, err)
	otherURL, err := EntryFromValue("web2", map[string]any{"url": "https://b.example.com"})
	require.NoError(t, err)

	// URL-backed entries share one key per scheme.
	assert.Equal(t, urlEntry.IconKey(), otherURL.IconKey())

	custom, err := EntryFromValue("web3", map[string]any{"url": "https://c.example.com", "icon": "/art/c.png"})
	require.NoError(t, err)
	assert.NotEqual(t, urlEntry.IconKey(), custom.IconKey(), "explicit icon overrides the scheme key")
}
