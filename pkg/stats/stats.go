package stats

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/pkg/expense"
)

// CategoryTotal is the aggregate for one category: summed amount and record
// count. Categories with no expenses do not appear.
type CategoryTotal struct {
	Category expense.Category `json:"category"`
	Total    decimal.Decimal  `json:"total"`
	Count    int              `json:"count"`
}

// DailyTotal is the summed amount for one calendar day. Days without
// expenses are present with a zero total.
type DailyTotal struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// MonthlyTotal is the summed amount for one year-month. The label is YYYY-MM
// so ascending lexicographic order is chronological.
type MonthlyTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}
