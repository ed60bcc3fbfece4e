package event_bus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ExpenseCreatedEvent  EventType = "expense.created"
	ExpenseUpdatedEvent  EventType = "expense.updated"
	ExpenseDeletedEvent  EventType = "expense.deleted"
	ExportCompletedEvent EventType = "export.completed"
)

type ExpenseChanged struct {
	ID       string
	Category string
	Amount   decimal.Decimal
	Date     string
}

type ExpenseDeleted struct {
	ID string
}

type ExportCompleted struct {
	TemplateName string
	Destination  string
	RecordCount  int
	TotalAmount  decimal.Decimal
	Timestamp    time.Time
}
