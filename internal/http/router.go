package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(products *ProductHandler, cart *CartHandler, checkout *CheckoutHandler, orders *OrdersHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(r chi.Router) {
		r.Use(SessionMiddleware)

		r.Get("/products", products.ListProducts)

		r.Get("/cart", cart.GetCart)
		r.Post("/cart/items", cart.AddItem)
		r.Post("/cart/items/{index}/increment", cart.IncrementItem)
		r.Post("/cart/items/{index}/decrement", cart.DecrementItem)
		r.Delete("/cart/items/{index}", cart.RemoveItem)

		r.Post("/checkout", checkout.Checkout)
		r.Get("/orders/last/invoice", orders.DownloadLastInvoice)

		r.Get("/admin/orders/export", orders.DownloadAllOrders)
	})

	return r
}
