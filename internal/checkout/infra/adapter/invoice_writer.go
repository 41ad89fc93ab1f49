package adapter

import (
	"context"
	"fmt"

	orderdomain "github.com/dwikikusuma/tshirt-store/internal/order/domain"
	"github.com/dwikikusuma/tshirt-store/internal/order/infra/xlsx"
)

// ExportMode picks between one file per order and one rolling file per
// calendar day.
type ExportMode string

const (
	ModePerOrder ExportMode = "per-order"
	ModePerDay   ExportMode = "per-day"
)

func ParseExportMode(s string) (ExportMode, error) {
	switch ExportMode(s) {
	case ModePerOrder, ModePerDay:
		return ExportMode(s), nil
	case "":
		return ModePerOrder, nil
	default:
		return "", fmt.Errorf("unknown export mode %q", s)
	}
}

type ExporterInvoiceWriter struct {
	exp  *xlsx.Exporter
	mode ExportMode
}

func NewExporterInvoiceWriter(exp *xlsx.Exporter, mode ExportMode) *ExporterInvoiceWriter {
	return &ExporterInvoiceWriter{exp: exp, mode: mode}
}

func (w *ExporterInvoiceWriter) WriteInvoice(ctx context.Context, order orderdomain.Order) (string, error) {
	if w.mode == ModePerDay {
		return w.exp.AppendDaily(ctx, order)
	}
	return w.exp.WriteOrder(ctx, order)
}
