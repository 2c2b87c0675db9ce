package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// localeEnv lists the variables consulted by DetectLocale, highest priority first.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// DetectLocale returns the process locale read through getenv
// (usually os.Getenv). It falls back to English.
func DetectLocale(getenv func(string) string) language.Tag {
	for _, name := range localeEnv {
		if v := getenv(name); v != "" {
			return ParseLocale(v)
		}
	}
	return language.English
}

// ParseLocale accepts POSIX ("fr_CA.UTF-8@euro"), resource-bundle ("fr_CA")
// and BCP 47 ("fr-CA") forms. "C", "POSIX" and invalid values map to English.
func ParseLocale(s string) language.Tag {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "C" || s == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil || tag == language.Und {
		return language.English
	}
	return tag
}

// Candidates returns the resource-bundle suffixes visible for tag, root
// first and most specific last, e.g. fr-CA gives "", "fr", "fr_CA".
// Variants extend the most specific candidate: de-DE-1996 adds "de_DE_1996".
func Candidates(tag language.Tag) []string {
	out := []string{""}
	base, script, region := tag.Raw()
	if tag == language.Und || base.String() == "und" {
		return out
	}
	b := base.String()
	hasScript := script != language.Script{}
	hasRegion := region != language.Region{}

	specific := []string{}
	if variants := tag.Variants(); len(variants) > 0 {
		full := b
		if hasScript {
			full += "_" + script.String()
		}
		if hasRegion {
			full += "_" + region.String()
		}
		for _, v := range variants {
			full += "_" + v.String()
		}
		specific = append(specific, full)
	}
	if hasScript && hasRegion {
		specific = append(specific, b+"_"+script.String()+"_"+region.String())
	}
	if hasScript {
		specific = append(specific, b+"_"+script.String())
	}
	if hasRegion {
		specific = append(specific, b+"_"+region.String())
	}
	specific = append(specific, b)

	slices.Reverse(specific)
	return append(out, specific...)
}
