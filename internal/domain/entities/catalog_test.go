package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCatalogView(t *testing.T) {
	v := NewCatalogView("texteditor.messages", language.French, map[string]string{
		"b": "2",
		"a": "1",
	})

	assert.Equal(t, "texteditor.messages", v.BundleID())
	assert.Equal(t, language.French, v.Locale())
	assert.Equal(t, 2, v.Len())

	s, ok := v.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "1", s)
	_, ok = v.Lookup("c")
	assert.False(t, ok)

	keys := v.Keys()
	assert.Equal(t, []string{"a", "b"}, keys)
	keys[0] = "z"
	assert.Equal(t, []string{"a", "b"}, v.Keys(), "Keys must return a copy")

	var got []string
	for k, val := range v.All() {
		got = append(got, k+"="+val)
	}
	assert.Equal(t, []string{"a=1", "b=2"}, got)
}

func TestCatalogViewZero(t *testing.T) {
	var v CatalogView
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Keys())
	_, ok := v.Lookup("x")
	assert.False(t, ok)
	for range v.All() {
		t.Fatal("zero view must not yield")
	}
}
