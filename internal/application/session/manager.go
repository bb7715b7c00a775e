// Package session keeps the per-user conversation state: the single
// pending free-text expectation plus the session cart. State lives in
// process memory only and does not survive a restart.
package session

import (
	"sync"

	"github.com/jhoicas/storebot/internal/domain/entity"
)

// PendingKind tags what free-text input is currently expected from a user.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingQuantity
	PendingAdminPrice
	PendingAdminStock
	PendingAddProduct
)

// Pending is the tagged pending-input variant. Code refers to the product
// the input applies to; AddStep and Draft are only meaningful for
// PendingAddProduct.
type Pending struct {
	Kind    PendingKind
	Code    string
	AddStep int
	Draft   entity.Product
}

// Session is one user's conversation state. EditCode is the admin's
// currently selected edit target, separate from the pending variant.
type Session struct {
	Pending  Pending
	Cart     *entity.Cart
	EditCode string
}

// Manager owns all sessions, keyed by Telegram user ID. Handlers for one
// user run sequentially, but different users are served concurrently, so
// access goes through a mutex.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns the user's session, creating it on first contact.
func (m *Manager) Get(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessions[userID]
	if s == nil {
		s = &Session{Cart: entity.NewCart()}
		m.sessions[userID] = s
	}
	return s
}

// SetPending replaces the user's pending expectation. At most one is active
// at a time; setting a new one implicitly clears the previous.
func (m *Manager) SetPending(userID int64, p Pending) {
	s := m.Get(userID)
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Pending = p
}

// ClearPending resets the pending expectation to none.
func (m *Manager) ClearPending(userID int64) {
	m.SetPending(userID, Pending{})
}

// Pending returns the user's current pending expectation.
func (m *Manager) Pending(userID int64) Pending {
	s := m.Get(userID)
	m.mu.Lock()
	defer m.mu.Unlock()
	return s.Pending
}

// Cart returns the user's cart.
func (m *Manager) Cart(userID int64) *entity.Cart {
	return m.Get(userID).Cart
}

// SetEditCode records the admin's selected edit target, clearing any
// previously selected one.
func (m *Manager) SetEditCode(userID int64, code string) {
	s := m.Get(userID)
	m.mu.Lock()
	defer m.mu.Unlock()
	s.EditCode = code
}

// EditCode returns the admin's selected edit target.
func (m *Manager) EditCode(userID int64) string {
	s := m.Get(userID)
	m.mu.Lock()
	defer m.mu.Unlock()
	return s.EditCode
}

// Reset drops the whole session, cart included.
func (m *Manager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
