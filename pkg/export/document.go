package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/pkg/expense"
)

// FormatCurrency renders an amount as a US dollar string with thousands
// separators, e.g. "$1,234.56".
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, grouped.String(), fracPart)
}

// documentTmpl is the printable report skeleton. It is fully self-contained:
// inline styles, no external assets, and an auto-print hook, so it renders
// the same in any host.
var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",sans-serif;padding:40px;color:#1f2937}
h1{font-size:22px;margin-bottom:4px}
.subtitle{color:#6b7280;font-size:13px;margin-bottom:24px}
table{width:100%;border-collapse:collapse;font-size:13px}
th{text-align:left;padding:10px 12px;background:#f3f4f6;border-bottom:2px solid #e5e7eb;font-weight:600}
td{padding:9px 12px;border-bottom:1px solid #f3f4f6}
tr:nth-child(even) td{background:#f9fafb}
.amount{text-align:right;font-variant-numeric:tabular-nums}
.total{margin-top:16px;text-align:right;font-size:15px;font-weight:700}
@media print{body{padding:20px}}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="subtitle">{{.RecordCount}} records &middot; {{.Total}} total &middot; {{.GeneratedAt}}</p>
<table>
<thead><tr>{{range .Columns}}{{if eq . "Amount"}}<th class="amount">{{.}}</th>{{else}}<th>{{.}}</th>{{end}}{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}{{if .Amount}}<td class="amount">{{.Value}}</td>{{else}}<td>{{.Value}}</td>{{end}}{{end}}</tr>
{{end}}</tbody>
</table>
<p class="total">Total: {{.Total}}</p>
<script>window.onload=function(){window.print()}</script>
</body>
</html>
`))

type documentCell struct {
	Value  string
	Amount bool
}

type documentData struct {
	Title       string
	RecordCount int
	Total       string
	GeneratedAt string
	Columns     []string
	Rows        [][]documentCell
}

// RenderDocument produces the printable report for the given expenses,
// projecting the template's column set. Amount cells are currency-formatted.
func RenderDocument(title string, expenses []expense.Expense, columns []string, total decimal.Decimal, now time.Time) (string, error) {
	rows := make([][]documentCell, 0, len(expenses))
	for _, e := range expenses {
		row := make([]documentCell, 0, len(columns))
		for _, column := range columns {
			switch column {
			case ColumnDate:
				row = append(row, documentCell{Value: e.Date})
			case ColumnCategory:
				row = append(row, documentCell{Value: string(e.Category)})
			case ColumnDescription:
				row = append(row, documentCell{Value: e.Description})
			default:
				row = append(row, documentCell{Value: FormatCurrency(e.Amount), Amount: true})
			}
		}
		rows = append(rows, row)
	}

	var b bytes.Buffer
	err := documentTmpl.Execute(&b, documentData{
		Title:       title,
		RecordCount: len(expenses),
		Total:       FormatCurrency(total),
		GeneratedAt: now.Format("January 2, 2006"),
		Columns:     columns,
		Rows:        rows,
	})
	if err != nil {
		return "", fmt.Errorf("could not render document: %w", err)
	}
	return b.String(), nil
}
