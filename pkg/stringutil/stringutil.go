// Package stringutil provides string helpers shared across packages.
package stringutil

import (
	"github.com/agnivade/levenshtein"
	"github.com/githubnext/gh-prtitle/pkg/logger"
)

var log = logger.New("stringutil:closest")

// ClosestMatch returns the entry of refs with the smallest Levenshtein
// distance to candidate. Ties go to the earliest entry. It returns "" when
// refs is empty.
func ClosestMatch(candidate string, refs []string) string {
	best := ""
	bestDistance := -1
	for _, ref := range refs {
		d := levenshtein.ComputeDistance(candidate, ref)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = ref, d
		}
	}
	log.Printf("Closest match: candidate=%q, match=%q, distance=%d, refs=%d", candidate, best, bestDistance, len(refs))
	return best
}
