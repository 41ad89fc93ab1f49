package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	checkoutapp "github.com/dwikikusuma/tshirt-store/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/tshirt-store/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/tshirt-store/internal/order/domain"
	"github.com/dwikikusuma/tshirt-store/internal/session"
)

type CheckoutHandler struct {
	sessions *session.Store
	checkout *checkoutapp.Service
}

func NewCheckoutHandler(sessions *session.Store, checkout *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		checkout: checkout,
	}
}

type CheckoutRequestDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ConfirmationLineDTO struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	Quantity  int32    `json:"quantity"`
	UnitPrice MoneyDTO `json:"unit_price"`
	Subtotal  MoneyDTO `json:"subtotal"`
}

type ConfirmationDTO struct {
	OrderID      string                `json:"order_id"`
	PlacedAt     time.Time             `json:"placed_at"`
	Lines        []ConfirmationLineDTO `json:"lines"`
	Total        MoneyDTO              `json:"total"`
	InvoiceFile  string                `json:"invoice_file,omitempty"`
	InvoiceError string                `json:"invoice_error,omitempty"`
}

// Checkout places the order for the session's cart. A failed invoice
// export still returns 201: the order stands, and the response says the
// artifact is unavailable instead of pretending the order failed.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sid := sessionIDFromContext(r.Context())
	cart := h.sessions.Cart(sid)

	conf, err := h.checkout.Checkout(r.Context(), cart, orderdomain.CustomerDetails{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil && !errors.Is(err, checkoutapp.ErrInvoiceExport) {
		respondDomainError(w, err)
		return
	}

	h.sessions.SetLastOrder(sid, conf)

	dto := confirmationDTO(conf)
	if err != nil {
		dto.InvoiceError = "invoice file unavailable; your order is placed"
	}
	respondJSON(w, http.StatusCreated, dto)
}

func confirmationDTO(conf checkoutdomain.Confirmation) ConfirmationDTO {
	lines := make([]ConfirmationLineDTO, 0, len(conf.Lines))
	for _, l := range conf.Lines {
		lines = append(lines, ConfirmationLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Size:      l.Size,
			Quantity:  l.Quantity,
			UnitPrice: MoneyDTO{Currency: l.UnitPrice.Currency, Amount: l.UnitPrice.Amount},
			Subtotal:  MoneyDTO{Currency: l.LineTotal.Currency, Amount: l.LineTotal.Amount},
		})
	}

	dto := ConfirmationDTO{
		OrderID:  conf.OrderID,
		PlacedAt: conf.PlacedAt,
		Lines:    lines,
		Total:    MoneyDTO{Currency: conf.Total.Currency, Amount: conf.Total.Amount},
	}
	if conf.InvoicePath != "" {
		dto.InvoiceFile = filepath.Base(conf.InvoicePath)
	}
	return dto
}
