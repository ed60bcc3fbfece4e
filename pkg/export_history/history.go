package export_history

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	// StatusPending is part of the declared state set but nothing produces it
	// today; entries are only written once an export has finished or failed.
	StatusPending Status = "pending"
)

// MaxEntries caps the stored history at the most recent entries.
const MaxEntries = 50

// Entry records one executed export.
type Entry struct {
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Destination  string          `json:"destination"`
	TemplateName string          `json:"templateName"`
	RecordCount  int             `json:"recordCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       Status          `json:"status"`
}
