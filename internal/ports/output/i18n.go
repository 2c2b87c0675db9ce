package output

import (
	"context"

	"golang.org/x/text/language"
)

// BundleSource exposes the storage side of a message catalog.
// Implementations resolve the locale parent chain themselves and return the
// merged entries, most specific locale winning.
type BundleSource interface {
	// Load returns every entry of bundleID visible for tag.
	// It returns domain.ErrBundleNotFound when no candidate exists and
	// domain.ErrMalformedBundle when the stored data cannot be parsed.
	Load(ctx context.Context, bundleID string, tag language.Tag) (map[string]string, error)
}

// LocaleReader reads the entries of a single locale file, without merging
// parents. locale uses resource-bundle suffix form ("", "fr", "fr_CA").
type LocaleReader interface {
	ReadLocale(bundleID, locale string) (map[string]string, error)
}
