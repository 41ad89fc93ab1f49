package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dwikikusuma/tshirt-store/internal/order/domain"
	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// IncompleteCustomerInfoError names every customer field that was blank
// after trimming, so the caller can re-prompt for exactly those.
type IncompleteCustomerInfoError struct {
	Missing []string
}

func (e *IncompleteCustomerInfoError) Error() string {
	return fmt.Sprintf("incomplete customer info: missing %s", strings.Join(e.Missing, ", "))
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// PlaceOrder validates the request and materializes an immutable order:
// fresh id, creation timestamp, by-value snapshot of the items and a
// total computed over that snapshot. The caller's cart is not touched.
func (s *Service) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	customer := domain.CustomerDetails{
		Name:    strings.TrimSpace(req.Customer.Name),
		Phone:   strings.TrimSpace(req.Customer.Phone),
		Address: strings.TrimSpace(req.Customer.Address),
	}

	var missing []string
	if customer.Name == "" {
		missing = append(missing, "name")
	}
	if customer.Phone == "" {
		missing = append(missing, "phone")
	}
	if customer.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return domain.Order{}, &IncompleteCustomerInfoError{Missing: missing}
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var totalAmount int64

	for i, it := range req.Items {
		if it.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, it.Quantity)
		}
		if it.UnitAmount < 0 {
			return domain.Order{}, fmt.Errorf("item %d: unit amount cannot be negative, got %d", i, it.UnitAmount)
		}

		lineTotal := it.UnitAmount * int64(it.Quantity)
		items = append(items, domain.OrderItem{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Size:            it.Size,
			UnitAmount:      it.UnitAmount,
			Quantity:        it.Quantity,
			LineTotalAmount: lineTotal,
		})
		totalAmount += lineTotal
	}

	return domain.Order{
		ID:          uuid.NewString(),
		Customer:    customer,
		Currency:    req.Currency,
		TotalAmount: totalAmount,
		Items:       items,
		CreatedAt:   time.Now(),
	}, nil
}
