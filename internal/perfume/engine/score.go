package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Score is the 0..100 name-similarity heuristic used against fingerprints:
// the best of direct ratio, token-sort ratio and a discounted partial
// (substring window) ratio. Robust to word reordering, partial token
// overlap and length differences. Not a probability.
func Score(a, b string) int {
	best := ratio(a, b)
	if ts := ratio(tokenSort(a), tokenSort(b)); ts > best {
		best = ts
	}
	if p := 0.9 * partialRatio(a, b); p > best {
		best = p
	}
	return int(math.Round(best * 100))
}

// normalized edit-distance similarity in [0..1]
func ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 1 - float64(d)/float64(m)
}

// partialRatio slides the shorter string across same-length windows of the
// longer one and keeps the best ratio.
func partialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return ratio(string(ra), string(rb))
	}
	if len(ra) == len(rb) {
		return ratio(string(ra), string(rb))
	}
	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		if r := ratio(string(ra), string(rb[i:i+len(ra)])); r > best {
			best = r
		}
	}
	return best
}

// tokenSort makes the comparison order-insensitive. Fingerprints arrive
// pre-sorted, but the scorer does not assume its inputs are fingerprints.
func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}
