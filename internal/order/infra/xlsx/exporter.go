package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dwikikusuma/tshirt-store/internal/order/domain"
	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName     = "Sheet1"
	lockRetryWait = 10 * time.Millisecond
)

// Column order is fixed; downstream admin tooling reads by position.
var header = []string{
	"Order ID",
	"Date",
	"Customer Name",
	"Phone Number",
	"Delivery Address",
	"Product Name",
	"Size",
	"Quantity",
	"Price",
	"Subtotal",
	"Total Amount",
}

var ErrNoExportedOrders = errors.New("no exported orders")

// ExportError wraps a storage failure. An order whose export fails is
// still placed; only the invoice artifact is missing.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Exporter writes orders as denormalized spreadsheet rows, one row per
// line item, under a single orders directory.
type Exporter struct {
	dir string

	// mu serializes appends within this process; the flock taken in
	// AppendDaily covers writers in other processes.
	mu sync.Mutex
}

func NewExporter(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &ExportError{Path: dir, Err: err}
	}
	return &Exporter{dir: dir}, nil
}

// WriteOrder writes one file per order, named from the order id. The
// name is deterministic, so a given order never contends with another.
func (e *Exporter) WriteOrder(ctx context.Context, order domain.Order) (string, error) {
	path := filepath.Join(e.dir, fmt.Sprintf("order_%s.xlsx", order.ID))

	f := excelize.NewFile()
	defer f.Close()

	if err := writeRows(f, 1, append([][]any{headerRow()}, orderRows(order)...)); err != nil {
		return "", &ExportError{Path: path, Err: err}
	}
	if err := f.SaveAs(path); err != nil {
		return "", &ExportError{Path: path, Err: err}
	}
	return path, nil
}

// AppendDaily appends the order's rows to the rolling file for the day
// the order was created. Existing rows are read back and preserved; the
// read-modify-write runs under an exclusive per-file lock.
func (e *Exporter) AppendDaily(ctx context.Context, order domain.Order) (string, error) {
	path := e.dailyPath(order.CreatedAt)

	e.mu.Lock()
	defer e.mu.Unlock()

	fl := flock.New(path + ".lock")
	if _, err := fl.TryLockContext(ctx, lockRetryWait); err != nil {
		return "", &ExportError{Path: path, Err: err}
	}
	defer fl.Unlock()

	f, next, err := e.openDaily(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeRows(f, next, orderRows(order)); err != nil {
		return "", &ExportError{Path: path, Err: err}
	}
	if err := f.SaveAs(path); err != nil {
		return "", &ExportError{Path: path, Err: err}
	}
	return path, nil
}

// AllOrders returns the aggregate file for the given day verbatim. It
// never generates data; a missing file is ErrNoExportedOrders.
func (e *Exporter) AllOrders(ctx context.Context, day time.Time) (string, error) {
	path := e.dailyPath(day)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w for %s", ErrNoExportedOrders, day.Format("2006-01-02"))
		}
		return "", &ExportError{Path: path, Err: err}
	}
	return path, nil
}

func (e *Exporter) dailyPath(day time.Time) string {
	return filepath.Join(e.dir, fmt.Sprintf("orders_%s.xlsx", day.Format("20060102")))
}

// openDaily opens the day file positioned at the first free row, or
// starts a fresh file with the header when none exists yet.
func (e *Exporter) openDaily(path string) (*excelize.File, int, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, 0, &ExportError{Path: path, Err: err}
		}
		f := excelize.NewFile()
		if err := writeRows(f, 1, [][]any{headerRow()}); err != nil {
			f.Close()
			return nil, 0, &ExportError{Path: path, Err: err}
		}
		return f, 2, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, &ExportError{Path: path, Err: err}
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		f.Close()
		return nil, 0, &ExportError{Path: path, Err: err}
	}
	return f, len(rows) + 1, nil
}

func headerRow() []any {
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	return row
}

func orderRows(order domain.Order) [][]any {
	date := order.CreatedAt.Format("2006-01-02 15:04:05")
	rows := make([][]any, 0, len(order.Items))
	for _, it := range order.Items {
		rows = append(rows, []any{
			order.ID,
			date,
			order.Customer.Name,
			order.Customer.Phone,
			order.Customer.Address,
			it.Name,
			it.Size,
			int(it.Quantity),
			major(it.UnitAmount),
			major(it.LineTotalAmount),
			major(order.TotalAmount),
		})
	}
	return rows
}

func writeRows(f *excelize.File, start int, rows [][]any) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// major converts minor units to the major-unit value written to cells,
// matching the amounts customers see (Rs. 500, not 50000).
func major(amount int64) float64 {
	return float64(amount) / 100
}
