package session

import (
	"sync"

	cartdomain "github.com/dwikikusuma/tshirt-store/internal/cart/domain"
	checkoutdomain "github.com/dwikikusuma/tshirt-store/internal/checkout/domain"
)

// Store keeps per-session state in memory: the session's cart and its
// most recent order confirmation. Sessions are independent; the store
// itself may be hit by many sessions at once.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*state
}

type state struct {
	cart      *cartdomain.Cart
	lastOrder *checkoutdomain.Confirmation
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*state),
	}
}

// Cart returns the session's cart, creating the session on first use.
func (s *Store) Cart(sessionID string) *cartdomain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreate(sessionID).cart
}

func (s *Store) SetLastOrder(sessionID string, conf checkoutdomain.Confirmation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(sessionID).lastOrder = &conf
}

func (s *Store) LastOrder(sessionID string) (checkoutdomain.Confirmation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok || st.lastOrder == nil {
		return checkoutdomain.Confirmation{}, false
	}
	return *st.lastOrder, true
}

func (s *Store) getOrCreate(sessionID string) *state {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &state{cart: cartdomain.New()}
		s.sessions[sessionID] = st
	}
	return st
}
