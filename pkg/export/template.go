package export

import (
	"time"

	"github.com/spendwise/spendwise/internal/utils"
	"github.com/spendwise/spendwise/pkg/expense"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

type DateRange string

const (
	RangeAll        DateRange = "all"
	RangeThisMonth  DateRange = "this-month"
	RangeLastMonth  DateRange = "last-month"
	RangeThisYear   DateRange = "this-year"
	RangeLast90Days DateRange = "last-90-days"
)

// Column names a template can project.
const (
	ColumnDate        = "Date"
	ColumnCategory    = "Category"
	ColumnDescription = "Description"
	ColumnAmount      = "Amount"
)

// Template is a named, predefined combination of category filter, date-range
// policy, output format and column set used for one-click export.
type Template struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
	Categories  []expense.Category `json:"categories"` // empty = all
	DateRange   DateRange          `json:"dateRange"`
	Format      Format             `json:"format"`
	Columns     []string           `json:"columns"`
}

// BuiltinTemplates returns the canned one-click templates.
func BuiltinTemplates() []Template {
	allColumns := []string{ColumnDate, ColumnCategory, ColumnDescription, ColumnAmount}
	return []Template{
		{
			ID:          "tax-report",
			Name:        "Tax Report",
			Description: "All deductible expenses formatted for tax filing",
			Icon:        "receipt",
			DateRange:   RangeThisYear,
			Format:      FormatPDF,
			Columns:     allColumns,
		},
		{
			ID:          "monthly-summary",
			Name:        "Monthly Summary",
			Description: "Current month breakdown by category with totals",
			Icon:        "calendar",
			DateRange:   RangeThisMonth,
			Format:      FormatCSV,
			Columns:     allColumns,
		},
		{
			ID:          "category-analysis",
			Name:        "Category Analysis",
			Description: "Deep dive into spending patterns per category",
			Icon:        "chart",
			DateRange:   RangeLast90Days,
			Format:      FormatJSON,
			Columns:     allColumns,
		},
		{
			ID:          "bills-only",
			Name:        "Bills & Utilities",
			Description: "Recurring bills and utility payments only",
			Icon:        "bolt",
			Categories:  []expense.Category{expense.CategoryBills},
			DateRange:   RangeThisYear,
			Format:      FormatCSV,
			Columns:     []string{ColumnDate, ColumnDescription, ColumnAmount},
		},
	}
}

// ResolveDateRange turns a range policy into inclusive ISO date bounds,
// deterministically for a given now. Empty strings mean no bound.
func ResolveDateRange(kind DateRange, now time.Time) (from, to string) {
	today := utils.FormatDate(now)

	switch kind {
	case RangeThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return utils.FormatDate(first), today
	case RangeLastMonth:
		first := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		// day 0 of the current month is the last day of the previous one
		last := time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, now.Location())
		return utils.FormatDate(first), utils.FormatDate(last)
	case RangeThisYear:
		return utils.FormatDate(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())), today
	case RangeLast90Days:
		return utils.FormatDate(now.AddDate(0, 0, -90)), today
	default:
		return "", ""
	}
}

// ApplyTemplate narrows expenses to the template's date range and category
// subset, then sorts ascending by date. Unlike the interactive filter there
// is no text-search stage and the sort is always date-ascending.
func ApplyTemplate(expenses []expense.Expense, tpl Template, now time.Time) []expense.Expense {
	from, to := ResolveDateRange(tpl.DateRange, now)
	selected := expense.Select(expenses, expense.Selection{
		Categories: tpl.Categories,
		DateFrom:   from,
		DateTo:     to,
	})
	return expense.Sort(selected, expense.SortByDate, expense.SortAsc)
}
