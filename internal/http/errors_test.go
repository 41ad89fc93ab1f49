package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cartapp "github.com/dwikikusuma/tshirt-store/internal/cart/app"
	cartdomain "github.com/dwikikusuma/tshirt-store/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/tshirt-store/internal/catalog/app"
	orderapp "github.com/dwikikusuma/tshirt-store/internal/order/app"
	"github.com/dwikikusuma/tshirt-store/internal/order/infra/xlsx"
)

func TestHTTPStatusFromDomain(t *testing.T) {
	t.Run("invalid size -> 400", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromDomain(cartapp.ErrInvalidSize)
		if gotStatus != http.StatusBadRequest || gotCode != "invalid_size" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("index out of range -> 400", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromDomain(cartdomain.ErrIndexOutOfRange)
		if gotStatus != http.StatusBadRequest || gotCode != "index_out_of_range" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("empty cart -> 400", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromDomain(orderapp.ErrEmptyCart)
		if gotStatus != http.StatusBadRequest || gotCode != "empty_cart" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("incomplete customer info -> 400", func(t *testing.T) {
		err := &orderapp.IncompleteCustomerInfoError{Missing: []string{"phone"}}
		gotStatus, gotCode := httpStatusFromDomain(err)
		if gotStatus != http.StatusBadRequest || gotCode != "incomplete_customer_info" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("product not found -> 404", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromDomain(catalogapp.ErrNotFound)
		if gotStatus != http.StatusNotFound || gotCode != "not_found" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("no exported orders -> 404", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromDomain(xlsx.ErrNoExportedOrders)
		if gotStatus != http.StatusNotFound || gotCode != "no_exported_orders" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("catalog unavailable -> 503", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromDomain(catalogapp.ErrCatalogUnavailable)
		if gotStatus != http.StatusServiceUnavailable || gotCode != "catalog_unavailable" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("wrapped domain error still maps", func(t *testing.T) {
		err := fmt.Errorf("add to cart: %w", cartapp.ErrInvalidSize)
		gotStatus, gotCode := httpStatusFromDomain(err)
		if gotStatus != http.StatusBadRequest || gotCode != "invalid_size" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		gotStatus, gotCode := httpStatusFromDomain(errors.New("boom"))
		if gotStatus != http.StatusInternalServerError || gotCode != "internal" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}
