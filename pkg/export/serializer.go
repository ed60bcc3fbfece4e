package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/pkg/expense"
)

// RenderCSV serializes expenses as delimited text: a header row of column
// names, then one row per record. Fields containing the delimiter or quote
// characters come out quoted with doubled internal quotes; amounts always
// carry exactly two fractional digits and no thousands separators.
func RenderCSV(expenses []expense.Expense, columns []string) (string, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(columns); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	for _, e := range expenses {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, columnValue(e, column))
		}
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func columnValue(e expense.Expense, column string) string {
	switch column {
	case ColumnDate:
		return e.Date
	case ColumnCategory:
		return string(e.Category)
	case ColumnDescription:
		return e.Description
	default:
		return e.Amount.StringFixed(2)
	}
}

type jsonRow struct {
	Date        string      `json:"date"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
}

// RenderJSON serializes expenses as a pretty-printed array of objects with
// fixed keys. Amounts are numeric values, not currency strings.
func RenderJSON(expenses []expense.Expense) (string, error) {
	rows := make([]jsonRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, jsonRow{
			Date:        e.Date,
			Category:    string(e.Category),
			Description: e.Description,
			Amount:      json.Number(e.Amount.String()),
		})
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode export rows: %w", err)
	}
	return string(out), nil
}
