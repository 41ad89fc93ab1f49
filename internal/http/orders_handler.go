package http

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/dwikikusuma/tshirt-store/internal/order/infra/xlsx"
	"github.com/dwikikusuma/tshirt-store/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OrdersHandler struct {
	sessions *session.Store
	exporter *xlsx.Exporter
}

func NewOrdersHandler(sessions *session.Store, exporter *xlsx.Exporter) *OrdersHandler {
	return &OrdersHandler{
		sessions: sessions,
		exporter: exporter,
	}
}

// DownloadLastInvoice serves the invoice of the session's most recent
// order, when one was written.
func (h *OrdersHandler) DownloadLastInvoice(w http.ResponseWriter, r *http.Request) {
	sid := sessionIDFromContext(r.Context())
	conf, ok := h.sessions.LastOrder(sid)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "no order placed in this session")
		return
	}
	if conf.InvoicePath == "" {
		respondError(w, http.StatusNotFound, "no_exported_orders", "invoice was not written for the last order")
		return
	}
	serveSpreadsheet(w, r, conf.InvoicePath)
}

// DownloadAllOrders serves the aggregate file for a day (today by
// default) verbatim. It never builds new data.
func (h *OrdersHandler) DownloadAllOrders(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	path, err := h.exporter.AllOrders(r.Context(), day)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	serveSpreadsheet(w, r, path)
}

func serveSpreadsheet(w http.ResponseWriter, r *http.Request, path string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}
