package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/tshirt-store/internal/cart/domain"
)

var ErrInvalidSize = errors.New("size not offered for this product")

type Service struct {
	catalog CatalogReader
}

func NewService(catalog CatalogReader) *Service {
	return &Service{
		catalog: catalog,
	}
}

// AddItem resolves the product, checks the chosen size against the
// product's declared sizes and appends a new line. The cart is left
// untouched on any failure.
func (s *Service) AddItem(ctx context.Context, cart *domain.Cart, productID, size string, quantity int32) (domain.LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("resolve product %s: %w", productID, err)
	}

	if !hasSize(p.Sizes, size) {
		return domain.LineItem{}, fmt.Errorf("%w: %q for product %s", ErrInvalidSize, size, productID)
	}

	item := domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Size:      size,
		UnitPrice: domain.Money{
			Currency: p.Currency,
			Amount:   p.Amount,
		},
		Quantity: quantity,
	}
	cart.Add(item)
	return item, nil
}

func (s *Service) IncrementQuantity(cart *domain.Cart, index int) error {
	return cart.Increment(index)
}

func (s *Service) DecrementQuantity(cart *domain.Cart, index int) error {
	return cart.Decrement(index)
}

func (s *Service) RemoveItem(cart *domain.Cart, index int) error {
	return cart.Remove(index)
}

func (s *Service) ClearCart(cart *domain.Cart) {
	cart.Clear()
}

func (s *Service) Total(cart *domain.Cart) domain.Money {
	return cart.Total()
}

func hasSize(sizes []string, size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
