package database

import (
	"golang.org/x/text/language"

	"textcatalog/internal/infrastructure/i18n"
)

// messageRow is one stored entry of a bundle.
type messageRow struct {
	Locale string
	Key    string
	Text   string
}

// mergeRows flattens rows along the parent chain of tag, the most specific
// locale winning. ok is false when no row matched any candidate.
func mergeRows(rows []messageRow, tag language.Tag) (entries map[string]string, ok bool) {
	byLocale := make(map[string][]messageRow)
	for _, r := range rows {
		byLocale[r.Locale] = append(byLocale[r.Locale], r)
	}

	entries = make(map[string]string)
	for _, locale := range i18n.Candidates(tag) {
		for _, r := range byLocale[locale] {
			entries[r.Key] = r.Text
			ok = true
		}
	}
	return entries, ok
}
