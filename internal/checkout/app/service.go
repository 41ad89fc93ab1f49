package app

import (
	"context"
	"errors"
	"fmt"

	cartdomain "github.com/dwikikusuma/tshirt-store/internal/cart/domain"
	"github.com/dwikikusuma/tshirt-store/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/tshirt-store/internal/order/domain"
)

// ErrInvoiceExport marks a checkout whose order was placed but whose
// invoice could not be written. Callers must surface it separately from
// validation failures: the order itself stands.
var ErrInvoiceExport = errors.New("invoice export failed")

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req orderdomain.PlaceOrderRequest) (orderdomain.Order, error)
}

type InvoiceWriter interface {
	WriteInvoice(ctx context.Context, order orderdomain.Order) (string, error)
}

type Service struct {
	orders   OrderPlacer
	invoices InvoiceWriter
}

func NewService(orders OrderPlacer, invoices InvoiceWriter) *Service {
	return &Service{
		orders:   orders,
		invoices: invoices,
	}
}

// Checkout places an order from the cart's current lines, writes the
// invoice and clears the cart. The cart is cleared only once the write
// is confirmed; on export failure it keeps its lines and the returned
// confirmation still carries the placed order, with the error wrapping
// ErrInvoiceExport.
func (s *Service) Checkout(ctx context.Context, cart *cartdomain.Cart, customer orderdomain.CustomerDetails) (domain.Confirmation, error) {
	lines := cart.Items()

	req := orderdomain.PlaceOrderRequest{
		Customer: customer,
		Items:    make([]orderdomain.OrderItemRequest, 0, len(lines)),
	}
	for _, li := range lines {
		if req.Currency == "" {
			req.Currency = li.UnitPrice.Currency
		}
		req.Items = append(req.Items, orderdomain.OrderItemRequest{
			ProductID:  li.ProductID,
			Name:       li.Name,
			Size:       li.Size,
			UnitAmount: li.UnitPrice.Amount,
			Quantity:   li.Quantity,
		})
	}

	order, err := s.orders.PlaceOrder(ctx, req)
	if err != nil {
		return domain.Confirmation{}, err
	}

	path, err := s.invoices.WriteInvoice(ctx, order)
	if err != nil {
		return confirmationFrom(order, ""), fmt.Errorf("%w: %w", ErrInvoiceExport, err)
	}

	cart.Clear()
	return confirmationFrom(order, path), nil
}

func confirmationFrom(order orderdomain.Order, invoicePath string) domain.Confirmation {
	lines := make([]domain.ConfirmationLine, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, domain.ConfirmationLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: domain.Money{Currency: order.Currency, Amount: it.UnitAmount},
			LineTotal: domain.Money{Currency: order.Currency, Amount: it.LineTotalAmount},
		})
	}
	return domain.Confirmation{
		OrderID:     order.ID,
		PlacedAt:    order.CreatedAt,
		Lines:       lines,
		Total:       domain.Money{Currency: order.Currency, Amount: order.TotalAmount},
		InvoicePath: invoicePath,
	}
}
