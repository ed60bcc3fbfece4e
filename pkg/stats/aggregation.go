package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/utils"
	"github.com/spendwise/spendwise/pkg/expense"
)

// CategoryTotals groups expenses by category, summing amounts and counting
// records, ordered by total descending. Ties keep the order in which the
// category was first encountered in the input.
func CategoryTotals(expenses []expense.Expense) []CategoryTotal {
	byCategory := make(map[expense.Category]int)
	totals := make([]CategoryTotal, 0)

	for _, e := range expenses {
		idx, seen := byCategory[e.Category]
		if !seen {
			byCategory[e.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: e.Category, Total: decimal.Zero})
			idx = len(totals) - 1
		}
		totals[idx].Total = totals[idx].Total.Add(e.Amount)
		totals[idx].Count++
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals
}

// DailyTotals buckets expenses by calendar day over the window ending at now.
// It always returns exactly windowDays+1 entries, one per day from
// now-windowDays through now inclusive, chronologically ascending, with zero
// totals for days without expenses. Expenses dated outside the window are
// ignored.
func DailyTotals(expenses []expense.Expense, windowDays int, now time.Time) []DailyTotal {
	start := now.AddDate(0, 0, -windowDays)
	startDate := utils.FormatDate(start)
	endDate := utils.FormatDate(now)

	byDate := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.Date >= startDate && e.Date <= endDate {
			byDate[e.Date] = byDate[e.Date].Add(e.Amount)
		}
	}

	result := make([]DailyTotal, 0, windowDays+1)
	for cursor := start; len(result) < windowDays+1; cursor = cursor.AddDate(0, 0, 1) {
		date := utils.FormatDate(cursor)
		total, ok := byDate[date]
		if !ok {
			total = decimal.Zero
		}
		result = append(result, DailyTotal{Date: date, Total: total})
	}
	return result
}

// MonthlyTotals groups expenses by year-month, ascending.
func MonthlyTotals(expenses []expense.Expense) []MonthlyTotal {
	byMonth := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if len(e.Date) < 7 {
			continue
		}
		month := e.Date[:7]
		byMonth[month] = byMonth[month].Add(e.Amount)
	}

	result := make([]MonthlyTotal, 0, len(byMonth))
	for month, total := range byMonth {
		result = append(result, MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}

// GrandTotal sums all expense amounts.
func GrandTotal(expenses []expense.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
