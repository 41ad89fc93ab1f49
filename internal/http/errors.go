package http

import (
	"errors"
	"net/http"

	cartapp "github.com/dwikikusuma/tshirt-store/internal/cart/app"
	cartdomain "github.com/dwikikusuma/tshirt-store/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/tshirt-store/internal/catalog/app"
	orderapp "github.com/dwikikusuma/tshirt-store/internal/order/app"
	"github.com/dwikikusuma/tshirt-store/internal/order/infra/xlsx"
)

// httpStatusFromDomain maps core errors to a response status and a
// stable machine-readable code. Validation errors re-prompt the user;
// catalog loss is the only 5xx the core produces.
func httpStatusFromDomain(err error) (int, string) {
	var incomplete *orderapp.IncompleteCustomerInfoError

	switch {
	case errors.Is(err, cartapp.ErrInvalidSize):
		return http.StatusBadRequest, "invalid_size"
	case errors.Is(err, cartdomain.ErrIndexOutOfRange):
		return http.StatusBadRequest, "index_out_of_range"
	case errors.Is(err, orderapp.ErrEmptyCart):
		return http.StatusBadRequest, "empty_cart"
	case errors.As(err, &incomplete):
		return http.StatusBadRequest, "incomplete_customer_info"
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, xlsx.ErrNoExportedOrders):
		return http.StatusNotFound, "no_exported_orders"
	case errors.Is(err, catalogapp.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "catalog_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func respondDomainError(w http.ResponseWriter, err error) {
	status, code := httpStatusFromDomain(err)
	details := err.Error()
	if status == http.StatusInternalServerError {
		details = "internal error"
	}
	respondError(w, status, code, details)
}
