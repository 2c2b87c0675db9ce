package i18n

import "github.com/agnivade/levenshtein"

// Suggest returns the candidate closest to key, or "" when none is close
// enough to be a plausible typo.
func Suggest(key string, candidates []string) string {
	limit := max(2, len(key)/4)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(key, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
