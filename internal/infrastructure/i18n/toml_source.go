package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"textcatalog/internal/domain"
	"textcatalog/internal/ports/output"
)

var _ output.BundleSource = (*TOMLSource)(nil)

// TOMLSource reads go-i18n message files named <bundle path>.<lang>.toml.
// The root of the parent chain is the file of the default language.
type TOMLSource struct {
	fsys            fs.FS
	defaultLanguage language.Tag
}

func NewTOMLSource(fsys fs.FS, defaultLanguage language.Tag) *TOMLSource {
	return &TOMLSource{fsys: fsys, defaultLanguage: defaultLanguage}
}

func (s *TOMLSource) Load(ctx context.Context, bundleID string, tag language.Tag) (map[string]string, error) {
	bundle := i18n.NewBundle(s.defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries := map[string]string{}
	found := 0
	for _, locale := range Candidates(tag) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lang := s.defaultLanguage.String()
		if locale != "" {
			lang = strings.ReplaceAll(locale, "_", "-")
		}
		name := bundleFile(bundleID, lang, ".", ".toml")
		if !fs.ValidPath(name) {
			continue
		}

		mf, err := bundle.LoadMessageFileFS(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w: %w", name, domain.ErrMalformedBundle, err)
		}
		found++
		for _, m := range mf.Messages {
			entries[m.ID] = messageText(m)
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("%s (%s): %w", bundleID, tag, domain.ErrBundleNotFound)
	}
	return entries, nil
}

// messageText picks the plain form of a message; plural-only messages fall
// back to their first defined form.
func messageText(m *i18n.Message) string {
	for _, s := range []string{m.Other, m.One, m.Zero, m.Two, m.Few, m.Many} {
		if s != "" {
			return s
		}
	}
	return ""
}
