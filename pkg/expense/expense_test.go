package expense

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() FormInput {
	return FormInput{
		Amount:      "12.50",
		Category:    CategoryFood,
		Description: "Lunch",
		Date:        "2024-01-05",
	}
}

func TestFormInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*FormInput)
		wantField string
	}{
		{
			name:   "valid input passes",
			mutate: func(in *FormInput) {},
		},
		{
			name:      "zero amount rejected",
			mutate:    func(in *FormInput) { in.Amount = "0" },
			wantField: "amount",
		},
		{
			name:      "negative amount rejected",
			mutate:    func(in *FormInput) { in.Amount = "-5" },
			wantField: "amount",
		},
		{
			name:      "non-numeric amount rejected",
			mutate:    func(in *FormInput) { in.Amount = "abc" },
			wantField: "amount",
		},
		{
			name:      "amount above cap rejected",
			mutate:    func(in *FormInput) { in.Amount = "1000000.00" },
			wantField: "amount",
		},
		{
			name:      "sub-cent precision rejected",
			mutate:    func(in *FormInput) { in.Amount = "12.345" },
			wantField: "amount",
		},
		{
			name:      "empty description rejected",
			mutate:    func(in *FormInput) { in.Description = "   " },
			wantField: "description",
		},
		{
			name:      "overlong description rejected",
			mutate:    func(in *FormInput) { in.Description = strings.Repeat("x", 101) },
			wantField: "description",
		},
		{
			name:      "missing date rejected",
			mutate:    func(in *FormInput) { in.Date = "" },
			wantField: "date",
		},
		{
			name:      "malformed date rejected",
			mutate:    func(in *FormInput) { in.Date = "05/01/2024" },
			wantField: "date",
		},
		{
			name:      "unknown category rejected",
			mutate:    func(in *FormInput) { in.Category = "Gadgets" },
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, errs := input.Validate()
			if tt.wantField == "" {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestFormInput_Validate_AmountParsedToTheCent(t *testing.T) {
	input := validInput()
	input.Amount = "999999.99"

	amount, errs := input.Validate()

	require.Nil(t, errs)
	assert.True(t, amount.Equal(decimal.RequireFromString("999999.99")))
}

func TestFormInput_Validate_BoundaryDescription(t *testing.T) {
	input := validInput()
	input.Description = strings.Repeat("a", 100)

	_, errs := input.Validate()

	assert.Nil(t, errs)
}
