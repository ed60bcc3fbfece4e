package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleExpenses() []Expense {
	return []Expense{
		{ID: "1", Amount: amt("12.50"), Category: CategoryFood, Description: "Lunch at cafe", Date: "2024-01-05"},
		{ID: "2", Amount: amt("40.00"), Category: CategoryBills, Description: "Electricity", Date: "2024-01-06"},
		{ID: "3", Amount: amt("8.20"), Category: CategoryTransport, Description: "Bus ticket", Date: "2024-01-04"},
		{ID: "4", Amount: amt("12.50"), Category: CategoryFood, Description: "Dinner", Date: "2024-01-07"},
		{ID: "5", Amount: amt("99.99"), Category: CategoryShopping, Description: "Headphones", Date: "2023-12-30"},
	}
}

func TestSelect_SearchMatchesDescriptionOrCategory(t *testing.T) {
	expenses := sampleExpenses()

	byDescription := Select(expenses, Selection{Search: "lunch"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "1", byDescription[0].ID)

	byCategory := Select(expenses, Selection{Search: "foo"})
	ids := []string{byCategory[0].ID, byCategory[1].ID}
	assert.Equal(t, []string{"1", "4"}, ids)
}

func TestSelect_DateBoundsAreInclusive(t *testing.T) {
	got := Select(sampleExpenses(), Selection{DateFrom: "2024-01-04", DateTo: "2024-01-06"})

	require.Len(t, got, 3)
	for _, e := range got {
		assert.GreaterOrEqual(t, e.Date, "2024-01-04")
		assert.LessOrEqual(t, e.Date, "2024-01-06")
	}
}

func TestSelect_CategorySubset(t *testing.T) {
	got := Select(sampleExpenses(), Selection{Categories: []Category{CategoryFood, CategoryBills}})

	require.Len(t, got, 3)
	// narrowing never reorders
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "4", got[2].ID)
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	expenses := sampleExpenses()

	Select(expenses, Selection{Search: "lunch"})

	assert.Equal(t, sampleExpenses(), expenses)
}

func TestSort_AmountIsNumericNotLexicographic(t *testing.T) {
	expenses := []Expense{
		{ID: "a", Amount: amt("100.00")},
		{ID: "b", Amount: amt("9.00")},
	}

	got := Sort(expenses, SortByAmount, SortAsc)

	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestSort_TiesKeepInputOrderBothDirections(t *testing.T) {
	expenses := []Expense{
		{ID: "first", Amount: amt("12.50"), Date: "2024-01-05"},
		{ID: "second", Amount: amt("12.50"), Date: "2024-01-05"},
		{ID: "cheap", Amount: amt("1.00"), Date: "2024-01-01"},
	}

	asc := Sort(expenses, SortByAmount, SortAsc)
	assert.Equal(t, []string{"cheap", "first", "second"}, []string{asc[0].ID, asc[1].ID, asc[2].ID})

	desc := Sort(expenses, SortByAmount, SortDesc)
	assert.Equal(t, []string{"first", "second", "cheap"}, []string{desc[0].ID, desc[1].ID, desc[2].ID})
}

func TestFilter_AllCategoryEmptyBoundsPreservesEveryRecord(t *testing.T) {
	expenses := sampleExpenses()

	got := Filter(expenses, Criteria{Category: CategoryAll, SortBy: SortByDate, SortOrder: SortAsc})

	assert.Len(t, got, len(expenses))
	assert.Equal(t, "5", got[0].ID) // oldest date first
}

func TestFilter_IsIdempotent(t *testing.T) {
	criteria := Criteria{
		Search:    "e",
		Category:  CategoryAll,
		DateFrom:  "2024-01-01",
		SortBy:    SortByAmount,
		SortOrder: SortDesc,
	}

	once := Filter(sampleExpenses(), criteria)
	twice := Filter(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilter_StagesNarrowThenSort(t *testing.T) {
	got := Filter(sampleExpenses(), Criteria{
		Category:  CategoryFood,
		DateFrom:  "2024-01-01",
		SortBy:    SortByDate,
		SortOrder: SortDesc,
	})

	require.Len(t, got, 2)
	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}
