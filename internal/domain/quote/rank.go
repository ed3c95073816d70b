package quote

import (
	"cmp"
	"slices"
)

// Rank returns a copy of quotes ordered cheapest first. Equal prices keep
// their original relative order so repeated renders do not reshuffle carriers.
func Rank(quotes []Quote) []Quote {
	ranked := make([]Quote, len(quotes))
	copy(ranked, quotes)
	slices.SortStableFunc(ranked, func(a, b Quote) int {
		return cmp.Compare(a.MonthlyCost(), b.MonthlyCost())
	})
	return ranked
}
