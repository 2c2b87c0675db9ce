package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/magiconair/properties"
	"golang.org/x/text/language"

	"textcatalog/internal/domain"
	"textcatalog/internal/ports/output"
)

var (
	_ output.BundleSource = (*PropertiesSource)(nil)
	_ output.LocaleReader = (*PropertiesSource)(nil)
)

// PropertiesSource reads flat key=value resource-bundle files named
// <bundle path>[_<locale>].properties from a file system.
type PropertiesSource struct {
	fsys fs.FS
}

func NewPropertiesSource(fsys fs.FS) *PropertiesSource {
	return &PropertiesSource{fsys: fsys}
}

// Load merges every candidate file for tag, root first.
func (s *PropertiesSource) Load(ctx context.Context, bundleID string, tag language.Tag) (map[string]string, error) {
	entries := map[string]string{}
	found := 0
	for _, locale := range Candidates(tag) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := s.ReadLocale(bundleID, locale)
		if errors.Is(err, domain.ErrBundleNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		found++
		maps.Copy(entries, m)
	}
	if found == 0 {
		return nil, fmt.Errorf("%s (%s): %w", bundleID, tag, domain.ErrBundleNotFound)
	}
	return entries, nil
}

// ReadLocale parses the single file of locale, without parents.
func (s *PropertiesSource) ReadLocale(bundleID, locale string) (map[string]string, error) {
	name := bundleFile(bundleID, locale, "_", ".properties")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrBundleNotFound)
	}
	buf, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrBundleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	loader := properties.Loader{Encoding: encodingOf(buf), DisableExpansion: true}
	p, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w: %w", name, domain.ErrMalformedBundle, err)
	}
	return p.Map(), nil
}

// encodingOf reads bundles as UTF-8 and falls back to ISO-8859-1 for legacy
// files that are not valid UTF-8.
func encodingOf(buf []byte) properties.Encoding {
	if utf8.Valid(buf) {
		return properties.UTF8
	}
	return properties.ISO_8859_1
}

// bundleFile maps a dotted bundle ID to a slash path and appends the locale.
func bundleFile(bundleID, locale, sep, ext string) string {
	name := path.Join(strings.Split(bundleID, ".")...)
	if locale != "" {
		name += sep + locale
	}
	return name + ext
}
