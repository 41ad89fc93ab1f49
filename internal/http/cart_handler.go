package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	cartapp "github.com/dwikikusuma/tshirt-store/internal/cart/app"
	cartdomain "github.com/dwikikusuma/tshirt-store/internal/cart/domain"
	"github.com/dwikikusuma/tshirt-store/internal/session"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	sessions *session.Store
	cart     *cartapp.Service
}

func NewCartHandler(sessions *session.Store, cart *cartapp.Service) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		cart:     cart,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int32  `json:"quantity"`
}

type CartLineDTO struct {
	Index     int      `json:"index"`
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	UnitPrice MoneyDTO `json:"unit_price"`
	Quantity  int32    `json:"quantity"`
	Subtotal  int64    `json:"subtotal"`
}

type CartResponseDTO struct {
	Items []CartLineDTO `json:"items"`
	Total MoneyDTO      `json:"total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.sessionCart(r)
	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "product_id is required")
		return
	}

	cart := h.sessionCart(r)
	if _, err := h.cart.AddItem(r.Context(), cart, req.ProductID, req.Size, req.Quantity); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse(cart))
}

func (h *CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	h.mutateAtIndex(w, r, h.cart.IncrementQuantity)
}

func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	h.mutateAtIndex(w, r, h.cart.DecrementQuantity)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutateAtIndex(w, r, h.cart.RemoveItem)
}

func (h *CartHandler) mutateAtIndex(w http.ResponseWriter, r *http.Request, op func(*cartdomain.Cart, int) error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "index must be an integer")
		return
	}

	cart := h.sessionCart(r)
	if err := op(cart, index); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) sessionCart(r *http.Request) *cartdomain.Cart {
	return h.sessions.Cart(sessionIDFromContext(r.Context()))
}

func cartResponse(cart *cartdomain.Cart) CartResponseDTO {
	items := cart.Items()
	total := cart.Total()

	out := CartResponseDTO{
		Items: make([]CartLineDTO, 0, len(items)),
		Total: MoneyDTO{Currency: total.Currency, Amount: total.Amount},
	}
	for i, li := range items {
		out.Items = append(out.Items, CartLineDTO{
			Index:     i,
			ProductID: li.ProductID,
			Name:      li.Name,
			Size:      li.Size,
			UnitPrice: MoneyDTO{Currency: li.UnitPrice.Currency, Amount: li.UnitPrice.Amount},
			Quantity:  li.Quantity,
			Subtotal:  li.Subtotal(),
		})
	}
	return out
}
