package quote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func priced(id string, monthly float64) Quote {
	return Quote{ID: id, Product: ProductDental, MonthlyPremium: monthly}
}

func TestRankSortsAscendingAndIsStable(t *testing.T) {
	input := []Quote{priced("a", 30), priced("b", 10), priced("c", 30), priced("d", 5), priced("e", 10)}

	ranked := Rank(input)

	ids := make([]string, 0, len(ranked))
	for _, q := range ranked {
		ids = append(ids, q.ID)
	}
	require.Equal(t, []string{"d", "b", "e", "a", "c"}, ids)
	require.Equal(t, "a", input[0].ID, "input must not be reordered")
}

func TestRankIsIdempotentPermutation(t *testing.T) {
	input := []Quote{priced("x", 3), priced("y", 1), priced("z", 2), priced("w", 1)}

	once := Rank(input)
	twice := Rank(once)

	require.Equal(t, once, twice)
	require.ElementsMatch(t, input, once)
	for i := 1; i < len(once); i++ {
		require.LessOrEqual(t, once[i-1].MonthlyCost(), once[i].MonthlyCost())
	}
}

func TestRankUsesMonthlyRateForFinalExpense(t *testing.T) {
	input := []Quote{
		{ID: "pricey", Product: ProductFinalExpenseLife, MonthlyPremium: 1, FinalExpense: &FinalExpenseDetails{MonthlyRate: 90}},
		{ID: "cheap", Product: ProductFinalExpenseLife, MonthlyPremium: 99, FinalExpense: &FinalExpenseDetails{MonthlyRate: 20}},
	}
	ranked := Rank(input)
	require.Equal(t, "cheap", ranked[0].ID)
}

func TestRankEmpty(t *testing.T) {
	ranked := Rank(nil)
	require.NotNil(t, ranked)
	require.Empty(t, ranked)
}
