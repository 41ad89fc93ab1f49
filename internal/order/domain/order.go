package domain

import "time"

type Money struct {
	Currency string
	Amount   int64
}

type CustomerDetails struct {
	Name    string
	Phone   string
	Address string
}

type OrderItem struct {
	ProductID       string
	Name            string
	Size            string
	UnitAmount      int64
	Quantity        int32
	LineTotalAmount int64
}

// Order is immutable once built. Its total is computed exactly once over
// the snapshot of items it was created with and is never rederived.
type Order struct {
	ID          string
	Customer    CustomerDetails
	Currency    string
	TotalAmount int64
	Items       []OrderItem
	CreatedAt   time.Time
}

type PlaceOrderRequest struct {
	Currency string
	Customer CustomerDetails
	Items    []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID  string
	Name       string
	Size       string
	UnitAmount int64
	Quantity   int32
}
