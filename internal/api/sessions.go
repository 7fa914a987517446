package api

import (
	"sync"

	"sales-core/internal/cart"
)

// SessionManager hands out one cart per session id. It exists so cart
// state is always an explicit per-session value rather than ambient
// global state; concurrent sessions never share a cart.
type SessionManager struct {
	mu     sync.Mutex
	carts  map[string]*cart.Cart
	limits cart.Limits
}

// NewSessionManager creates an empty session registry.
func NewSessionManager(limits cart.Limits) *SessionManager {
	return &SessionManager{
		carts:  make(map[string]*cart.Cart),
		limits: limits,
	}
}

// Cart returns the cart for a session, creating it on first use.
func (m *SessionManager) Cart(sessionID string) *cart.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, found := m.carts[sessionID]
	if !found {
		c = cart.New(m.limits)
		m.carts[sessionID] = c
	}
	return c
}

// Drop forgets a session entirely.
func (m *SessionManager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
