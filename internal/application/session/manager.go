// Package session owns the authoritative shop list and the single "current
// shop" selection that every view renders against. The Manager is an
// explicitly owned, injectable store with subscription semantics; there is
// no per-view cached copy that can diverge.
package session

import (
	"context"
	"sync"

	"github.com/bazaarmind/console/internal/domain/shop"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShopLister supplies the full shop list from the shop service
type ShopLister interface {
	ListShops(ctx context.Context) ([]shop.Shop, error)
}

// SelectionStore is the durable key-value storage holding the last
// selected shop id under a fixed namespaced key.
type SelectionStore interface {
	LoadSelection(ctx context.Context) (string, error)
	SaveSelection(ctx context.Context, shopID string) error
}

// Snapshot is an immutable view of the session state
type Snapshot struct {
	Shops   []shop.Shop
	Current *shop.Shop
	Loading bool
}

// Listener receives a snapshot after every state change
type Listener func(Snapshot)

// Manager serializes all mutations of the shop list and current selection
// behind one mutex. All operations replace whole state; readers never
// observe a half-updated list.
type Manager struct {
	mu         sync.Mutex
	shops      []shop.Shop
	current    *shop.Shop
	loading    bool
	generation uint64

	lister    ShopLister
	store     SelectionStore
	log       *zap.Logger
	listeners map[int]Listener
	nextSub   int
}

// NewManager creates a session manager
func NewManager(lister ShopLister, store SelectionStore, log *zap.Logger) *Manager {
	return &Manager{
		lister:    lister,
		store:     store,
		log:       log,
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener notified after every state change.
// The returned function unsubscribes it.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Load fetches the full shop list and re-establishes the current
// selection: the persisted shop id if it is among the results, else the
// first shop, else none. A fetch failure is logged and leaves state as
// last known; loading always ends false. Responses from loads that have
// been superseded by a newer Load call are discarded rather than applied
// last-write-wins.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	m.loading = true
	m.generation++
	gen := m.generation
	m.mu.Unlock()
	m.notify()

	shops, err := m.lister.ListShops(ctx)

	m.mu.Lock()
	if gen != m.generation {
		// A newer Load owns the state now; this response is stale.
		m.mu.Unlock()
		return nil
	}
	m.loading = false
	if err != nil {
		m.mu.Unlock()
		m.log.Error("failed to load shops", zap.Error(err))
		m.notify()
		return err
	}

	m.shops = shops
	m.current = m.restoreSelectionLocked(ctx, shops)
	m.mu.Unlock()
	m.notify()
	return nil
}

// restoreSelectionLocked applies the cold-start auto-selection policy.
// Caller holds the mutex.
func (m *Manager) restoreSelectionLocked(ctx context.Context, shops []shop.Shop) *shop.Shop {
	if len(shops) == 0 {
		return nil
	}

	savedID, err := m.store.LoadSelection(ctx)
	if err != nil {
		m.log.Warn("failed to read persisted shop selection", zap.Error(err))
	}
	if savedID != "" {
		for i := range shops {
			if shops[i].ID.String() == savedID {
				return &shops[i]
			}
		}
	}
	return &shops[0]
}

// Refresh forces re-synchronization with the shop service, for use after
// an external mutation has been confirmed.
func (m *Manager) Refresh(ctx context.Context) error {
	return m.Load(ctx)
}

// Select sets the current shop and persists its id. A nil shop clears the
// in-memory selection only; the persisted id is deliberately left intact
// so the previous selection is restored on the next cold start.
func (m *Manager) Select(ctx context.Context, s *shop.Shop) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	if s != nil && s.ID != uuid.Nil {
		if err := m.store.SaveSelection(ctx, s.ID.String()); err != nil {
			m.log.Warn("failed to persist shop selection", zap.Error(err))
		}
	}
	m.notify()
}

// Add appends the shop to the list and makes it the current selection.
// Newly created shops always become the active shop.
func (m *Manager) Add(ctx context.Context, s shop.Shop) {
	m.mu.Lock()
	m.shops = append(m.shops, s)
	m.mu.Unlock()
	m.Select(ctx, &s)
}

// Remove drops the shop from the list. When the removed shop was the
// current selection, the successor is the first shop remaining in the same
// snapshot the removal was computed from; with nothing left the selection
// becomes none. The persisted id is not cleared.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	remaining := make([]shop.Shop, 0, len(m.shops))
	for _, s := range m.shops {
		if s.ID != id {
			remaining = append(remaining, s)
		}
	}
	m.shops = remaining

	if m.current != nil && m.current.ID == id {
		if len(remaining) > 0 {
			m.current = &remaining[0]
		} else {
			m.current = nil
		}
	}
	m.mu.Unlock()
	m.notify()
}

// Current returns the current shop, or nil when none is selected
func (m *Manager) Current() *shop.Shop {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Shops returns a copy of the shop list in order
func (m *Manager) Shops() []shop.Shop {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]shop.Shop, len(m.shops))
	copy(out, m.shops)
	return out
}

// ShopByID looks up a shop in the loaded list
func (m *Manager) ShopByID(id uuid.UUID) (*shop.Shop, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.shops {
		if m.shops[i].ID == id {
			s := m.shops[i]
			return &s, true
		}
	}
	return nil, false
}

// Loading reports whether a load is in flight
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Snapshot returns a consistent copy of the whole session state
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	shops := make([]shop.Shop, len(m.shops))
	copy(shops, m.shops)
	return Snapshot{Shops: shops, Current: m.current, Loading: m.loading}
}

// notify delivers the current snapshot to all listeners outside the lock
func (m *Manager) notify() {
	m.mu.Lock()
	snap := m.snapshotLocked()
	fns := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
