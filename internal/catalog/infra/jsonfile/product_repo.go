package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dwikikusuma/tshirt-store/internal/catalog/app"
	"github.com/dwikikusuma/tshirt-store/internal/catalog/domain"
)

const catalogCurrency = "PKR"

// ProductRepo reads the catalog from a flat JSON document of the form
// {"products": [...]}. The document is read on every call; a single bad
// entry fails the whole load.
type ProductRepo struct {
	path string
}

func NewProductRepo(path string) *ProductRepo {
	return &ProductRepo{path: path}
}

type productDoc struct {
	Products []productEntry `json:"products"`
}

type productEntry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Sizes       []string    `json:"sizes"`
	Image       string      `json:"image"`
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app.ErrCatalogUnavailable, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc productDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", app.ErrCatalogUnavailable, r.path, err)
	}

	seen := make(map[string]struct{}, len(doc.Products))
	out := make([]domain.Product, 0, len(doc.Products))

	for i, entry := range doc.Products {
		p, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: product %d: %w", app.ErrCatalogUnavailable, i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %q", app.ErrCatalogUnavailable, p.ID)
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func (e productEntry) toDomain() (domain.Product, error) {
	if strings.TrimSpace(e.ID) == "" {
		return domain.Product{}, fmt.Errorf("missing id")
	}
	if strings.TrimSpace(e.Name) == "" {
		return domain.Product{}, fmt.Errorf("missing name")
	}
	if len(e.Sizes) == 0 {
		return domain.Product{}, fmt.Errorf("missing sizes")
	}
	for _, s := range e.Sizes {
		if strings.TrimSpace(s) == "" {
			return domain.Product{}, fmt.Errorf("blank size entry")
		}
	}

	amount, err := parsePrice(e.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price: %w", err)
	}

	return domain.Product{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price: domain.Money{
			Currency: catalogCurrency,
			Amount:   amount,
		},
		Sizes: append([]string(nil), e.Sizes...),
		Image: e.Image,
	}, nil
}

// parsePrice converts a JSON price to minor units. Up to two decimal
// places are accepted; the amount must be non-negative.
func parsePrice(raw json.Number) (int64, error) {
	s := raw.String()
	if s == "" {
		return 0, fmt.Errorf("missing")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative amount %s", s)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > 2 {
		return 0, fmt.Errorf("more than two decimal places in %s", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	amount, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a plain decimal: %s", s)
	}
	return amount, nil
}
