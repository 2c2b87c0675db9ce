package entities

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// CatalogView is a read-only handle over a loaded message catalog.
// The zero value is an empty catalog.
type CatalogView struct {
	bundleID string
	locale   language.Tag
	entries  map[string]string
	keys     []string
}

// NewCatalogView wraps entries. The map must not be modified afterwards.
func NewCatalogView(bundleID string, locale language.Tag, entries map[string]string) CatalogView {
	return CatalogView{
		bundleID: bundleID,
		locale:   locale,
		entries:  entries,
		keys:     slices.Sorted(maps.Keys(entries)),
	}
}

func (v CatalogView) BundleID() string { return v.bundleID }
func (v CatalogView) Locale() language.Tag { return v.locale }
func (v CatalogView) Len() int { return len(v.entries) }

// Lookup returns the value stored for key.
func (v CatalogView) Lookup(key string) (string, bool) {
	s, ok := v.entries[key]
	return s, ok
}

// Keys returns a sorted copy of all keys.
func (v CatalogView) Keys() []string {
	return slices.Clone(v.keys)
}

// All iterates over entries in key order.
func (v CatalogView) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range v.keys {
			if !yield(k, v.entries[k]) {
				return
			}
		}
	}
}
