package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/pkg/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		kind     DateRange
		wantFrom string
		wantTo   string
	}{
		{name: "this month", kind: RangeThisMonth, wantFrom: "2024-03-01", wantTo: "2024-03-15"},
		{name: "last month ends on leap day", kind: RangeLastMonth, wantFrom: "2024-02-01", wantTo: "2024-02-29"},
		{name: "this year", kind: RangeThisYear, wantFrom: "2024-01-01", wantTo: "2024-03-15"},
		{name: "last 90 days", kind: RangeLast90Days, wantFrom: "2023-12-16", wantTo: "2024-03-15"},
		{name: "all is unbounded", kind: RangeAll, wantFrom: "", wantTo: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := ResolveDateRange(tt.kind, now)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestResolveDateRange_LastMonthAcrossYearBoundary(t *testing.T) {
	from, to := ResolveDateRange(RangeLastMonth, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2023-12-01", from)
	assert.Equal(t, "2023-12-31", to)
}

func sampleExpenses() []expense.Expense {
	return []expense.Expense{
		{ID: "1", Amount: amt("12.50"), Category: expense.CategoryFood, Description: "Lunch", Date: "2024-03-05"},
		{ID: "2", Amount: amt("40.00"), Category: expense.CategoryBills, Description: "Electricity", Date: "2024-02-06"},
		{ID: "3", Amount: amt("8.20"), Category: expense.CategoryTransport, Description: "Bus", Date: "2024-03-01"},
	}
}

func TestApplyTemplate_AllRangeAllCategoriesIsDateAscendingIdentity(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	tpl := Template{DateRange: RangeAll}

	got := ApplyTemplate(sampleExpenses(), tpl, now)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"2", "3", "1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestApplyTemplate_NarrowsByRangeAndCategorySubset(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	tpl := Template{
		Categories: []expense.Category{expense.CategoryFood, expense.CategoryTransport},
		DateRange:  RangeThisMonth,
	}

	got := ApplyTemplate(sampleExpenses(), tpl, now)

	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestBuiltinTemplates(t *testing.T) {
	templates := BuiltinTemplates()

	require.Len(t, templates, 4)

	byID := map[string]Template{}
	for _, tpl := range templates {
		byID[tpl.ID] = tpl
	}
	bills := byID["bills-only"]
	assert.Equal(t, []expense.Category{expense.CategoryBills}, bills.Categories)
	assert.NotContains(t, bills.Columns, ColumnCategory)
	assert.Equal(t, FormatPDF, byID["tax-report"].Format)
	assert.Equal(t, RangeLast90Days, byID["category-analysis"].DateRange)
}
