package expense

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/utils"
)

// Category tags an expense with one value from a fixed, closed set.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryOther         Category = "Other"
)

// Categories returns the full closed set, in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryBills,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealth,
		CategoryEducation,
		CategoryOther,
	}
}

func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// MaxAmount is the largest accepted expense amount.
var MaxAmount = decimal.RequireFromString("999999.99")

// MaxDescriptionLen is the longest accepted description, in characters.
const MaxDescriptionLen = 100

// Expense is a single recorded spending event. ID and CreatedAt are assigned
// once at creation and never change; everything else is user-editable.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time       `json:"createdAt"`
}

// FormInput carries the user-entered fields of an expense, with the amount
// still in its raw string form.
type FormInput struct {
	Amount      string
	Category    Category
	Description string
	Date        string
}

// ValidationErrors maps a field name to the message shown next to it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(v))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(parts, "; ")
}

// Validate checks a form input and returns the parsed amount on success.
// On failure the returned ValidationErrors holds one message per bad field.
func (in FormInput) Validate() (decimal.Decimal, ValidationErrors) {
	errs := ValidationErrors{}

	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	switch {
	case err != nil || amount.LessThanOrEqual(decimal.Zero):
		errs["amount"] = "Enter a valid amount greater than 0"
	case amount.GreaterThan(MaxAmount):
		errs["amount"] = "Amount cannot exceed 999,999.99"
	case !amount.Equal(amount.Round(2)):
		errs["amount"] = "Amount cannot have more than 2 decimal places"
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		errs["description"] = "Description is required"
	} else if len([]rune(description)) > MaxDescriptionLen {
		errs["description"] = "Description must be under 100 characters"
	}

	if in.Date == "" {
		errs["date"] = "Date is required"
	} else if !utils.IsValidDate(in.Date) {
		errs["date"] = "Enter a valid date"
	}

	if !in.Category.IsValid() {
		errs["category"] = "Choose a category"
	}

	if len(errs) > 0 {
		return decimal.Decimal{}, errs
	}
	return amount, nil
}
