package http

import (
	"net/http"

	catalogapp "github.com/dwikikusuma/tshirt-store/internal/catalog/app"
)

type ProductHandler struct {
	catalog *catalogapp.Service
}

func NewProductHandler(catalog *catalogapp.Service) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type MoneyDTO struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type ProductDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       MoneyDTO `json:"price"`
	Sizes       []string `json:"sizes"`
	Image       string   `json:"image"`
}

type ProductListResponse struct {
	Products []ProductDTO `json:"products"`
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       MoneyDTO{Currency: p.Price.Currency, Amount: p.Price.Amount},
			Sizes:       p.Sizes,
			Image:       p.Image,
		})
	}

	respondJSON(w, http.StatusOK, ProductListResponse{Products: out})
}
