package session

import (
	"fmt"
	"testing"

	cartdomain "github.com/dwikikusuma/tshirt-store/internal/cart/domain"
	checkoutdomain "github.com/dwikikusuma/tshirt-store/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

func TestCartIsStablePerSession(t *testing.T) {
	store := NewStore()

	a := store.Cart("session-a")
	a.Add(cartdomain.LineItem{Name: "Red Tee", Quantity: 1})

	if got := store.Cart("session-a"); got.Len() != 1 {
		t.Fatalf("expected the same cart back, got %d lines", got.Len())
	}
	if got := store.Cart("session-b"); got.Len() != 0 {
		t.Fatalf("sessions must not share carts, got %d lines", got.Len())
	}
}

func TestLastOrder(t *testing.T) {
	store := NewStore()

	if _, ok := store.LastOrder("session-a"); ok {
		t.Fatal("expected no last order for a fresh session")
	}

	store.SetLastOrder("session-a", checkoutdomain.Confirmation{OrderID: "ord-1"})

	conf, ok := store.LastOrder("session-a")
	if !ok || conf.OrderID != "ord-1" {
		t.Fatalf("expected ord-1, got %+v (ok=%v)", conf, ok)
	}

	if _, ok := store.LastOrder("session-b"); ok {
		t.Fatal("last order must be session-scoped")
	}
}

func TestConcurrentSessions(t *testing.T) {
	store := NewStore()

	const sessions = 50
	var g errgroup.Group
	for i := 0; i < sessions; i++ {
		id := fmt.Sprintf("session-%d", i)
		g.Go(func() error {
			cart := store.Cart(id)
			cart.Add(cartdomain.LineItem{Name: "Tee", Quantity: 1})
			store.SetLastOrder(id, checkoutdomain.Confirmation{OrderID: id})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent session use failed: %v", err)
	}

	for i := 0; i < sessions; i++ {
		id := fmt.Sprintf("session-%d", i)
		if got := store.Cart(id); got.Len() != 1 {
			t.Fatalf("%s: expected 1 line, got %d", id, got.Len())
		}
		if conf, ok := store.LastOrder(id); !ok || conf.OrderID != id {
			t.Fatalf("%s: wrong last order %+v", id, conf)
		}
	}
}
