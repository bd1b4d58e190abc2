package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// Compare orders summaries by normalized range descending, then by code
// ascending, then by start time ascending.
func Compare(a, b models.Summary) int {
	if c := cmp.Compare(b.NormalizedRange(), a.NormalizedRange()); c != 0 {
		return c
	}
	if c := strings.Compare(a.Code, b.Code); c != 0 {
		return c
	}
	return a.StartTime.Compare(b.StartTime)
}

// Rank returns a sorted copy of in. Every entry is kept, including entries
// with equal ranges.
func Rank(in []models.Summary) []models.Summary {
	out := slices.Clone(in)
	slices.SortStableFunc(out, Compare)
	return out
}

// Top returns the highest ranked summary, or false when in is empty.
func Top(in []models.Summary) (models.Summary, bool) {
	if len(in) == 0 {
		return models.Summary{}, false
	}
	return slices.MinFunc(in, Compare), true
}
