package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

type ConfirmationLine struct {
	ProductID string
	Name      string
	Size      string
	Quantity  int32
	UnitPrice Money
	LineTotal Money
}

// Confirmation is what the presentation layer renders after checkout:
// the placed order plus, when the export succeeded, the invoice file.
type Confirmation struct {
	OrderID     string
	PlacedAt    time.Time
	Lines       []ConfirmationLine
	Total       Money
	InvoicePath string
}
