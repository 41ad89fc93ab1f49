package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/tshirt-store/internal/catalog/domain"
)

type fakeRepo struct {
	products []domain.Product
}

func (f fakeRepo) List(ctx context.Context) ([]domain.Product, error) { return f.products, nil }
func (f fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func TestGetProductValidation(t *testing.T) {
	svc := NewService(fakeRepo{})

	t.Run("blank id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "   ")
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "nope")
		if err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListProductsPreservesRepoOrder(t *testing.T) {
	svc := NewService(fakeRepo{products: []domain.Product{
		{ID: "c"}, {ID: "a"}, {ID: "b"},
	}})

	got, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}

	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}
