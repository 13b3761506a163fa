package intent

import "strings"

// ScoreKeywords computes the keyword fallback score for each catalog intent:
// the number of its representative phrases occurring as a case-insensitive
// substring of the description. It returns the intent with the strictly
// highest count, ties resolving to the first intent in catalog order. The
// second return is false when no phrase matched at all.
//
// The scorer is pure and cannot fail; it is the safety net that keeps the
// pipeline usable when the remote classifier is down.
func ScoreKeywords(description string) (Intent, bool) {
	lower := strings.ToLower(description)

	var best Intent
	bestCount := 0

	for _, entry := range Catalog {
		count := 0
		for _, phrase := range entry.Phrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = entry.Intent
		}
	}

	if bestCount == 0 {
		return "", false
	}
	return best, true
}
