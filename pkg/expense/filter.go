package expense

import (
	"sort"
	"strings"
)

type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// CategoryAll is the interactive filter sentinel matching every category.
// It is never a valid Category on a stored expense.
const CategoryAll Category = "All"

// Criteria describes the interactive list view: free-text search, a single
// category (or All), inclusive date bounds, and a sort key.
type Criteria struct {
	Search    string
	Category  Category
	DateFrom  string
	DateTo    string
	SortBy    SortField
	SortOrder SortOrder
}

// Selection is the narrowing half of filtering, shared by the interactive
// list and the export pipeline. Zero values mean "no constraint".
type Selection struct {
	Search     string
	Categories []Category // empty = all categories
	DateFrom   string
	DateTo     string
}

// Select narrows expenses without reordering them. Stages apply in a fixed
// order: text search, category membership, date-from, date-to. Date bounds
// are inclusive and compared lexicographically, which is sound because dates
// are fixed-width zero-padded ISO strings.
func Select(expenses []Expense, sel Selection) []Expense {
	result := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, e)
	}

	if sel.Search != "" {
		q := strings.ToLower(sel.Search)
		result = keep(result, func(e Expense) bool {
			return strings.Contains(strings.ToLower(e.Description), q) ||
				strings.Contains(strings.ToLower(string(e.Category)), q)
		})
	}

	if len(sel.Categories) > 0 {
		allowed := make(map[Category]bool, len(sel.Categories))
		for _, c := range sel.Categories {
			allowed[c] = true
		}
		result = keep(result, func(e Expense) bool { return allowed[e.Category] })
	}

	if sel.DateFrom != "" {
		from := sel.DateFrom
		result = keep(result, func(e Expense) bool { return e.Date >= from })
	}

	if sel.DateTo != "" {
		to := sel.DateTo
		result = keep(result, func(e Expense) bool { return e.Date <= to })
	}

	return result
}

// Sort returns a copy of expenses ordered by the given field. Amounts compare
// numerically, categories and dates lexicographically. Sorting is stable in
// both directions: records that compare equal keep their input order, for
// asc as well as desc (the comparator is direction-aware rather than a
// negated-sign reversal).
func Sort(expenses []Expense, by SortField, order SortOrder) []Expense {
	result := make([]Expense, len(expenses))
	copy(result, expenses)

	cmp := func(a, b Expense) int {
		switch by {
		case SortByAmount:
			return a.Amount.Cmp(b.Amount)
		case SortByCategory:
			return strings.Compare(string(a.Category), string(b.Category))
		default:
			return strings.Compare(a.Date, b.Date)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		c := cmp(result[i], result[j])
		if order == SortDesc {
			return c > 0
		}
		return c < 0
	})

	return result
}

// Filter applies the interactive criteria: narrow, then sort. It is a pure
// projection of its inputs.
func Filter(expenses []Expense, criteria Criteria) []Expense {
	sel := Selection{
		Search:   criteria.Search,
		DateFrom: criteria.DateFrom,
		DateTo:   criteria.DateTo,
	}
	if criteria.Category != "" && criteria.Category != CategoryAll {
		sel.Categories = []Category{criteria.Category}
	}

	order := criteria.SortOrder
	if order == "" {
		order = SortAsc
	}

	return Sort(Select(expenses, sel), criteria.SortBy, order)
}

func keep(expenses []Expense, match func(Expense) bool) []Expense {
	filtered := expenses[:0]
	for _, e := range expenses {
		if match(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
