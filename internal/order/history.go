package order

import (
	"fmt"
	"sync"
	"time"

	"cafe-pos/internal/model"

	"github.com/google/uuid"
)

// Repository stores confirmed orders.
type Repository interface {
	// Append records a new order, assigning its id, number and creation time.
	Append(order model.ConfirmedOrder) model.ConfirmedOrder

	// List returns every order, newest first.
	List() []model.ConfirmedOrder

	// Get returns one order by id.
	Get(id uuid.UUID) (model.ConfirmedOrder, error)

	// UpdateStatus applies a status change allowed by CanTransition.
	UpdateStatus(id uuid.UUID, status model.OrderStatus) (model.ConfirmedOrder, error)
}

// History is an append-only, in-memory Repository safe for concurrent use.
// Orders are never deleted; only Status and UpdatedAt change after Append.
type History struct {
	mu     sync.RWMutex
	orders []model.ConfirmedOrder
	index  map[uuid.UUID]int
	seq    int
	now    func() time.Time
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		index: make(map[uuid.UUID]int),
		now:   time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (h *History) WithClock(now func() time.Time) *History {
	h.now = now
	return h
}

func (h *History) Append(order model.ConfirmedOrder) model.ConfirmedOrder {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	now := h.now()

	stored := order.Clone()
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.Number = FormatNumber(h.seq)
	if stored.Status == "" {
		stored.Status = model.StatusPending
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	h.index[stored.ID] = len(h.orders)
	h.orders = append(h.orders, stored)
	return stored.Clone()
}

func (h *History) List() []model.ConfirmedOrder {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]model.ConfirmedOrder, 0, len(h.orders))
	for i := len(h.orders) - 1; i >= 0; i-- {
		out = append(out, h.orders[i].Clone())
	}
	return out
}

func (h *History) Get(id uuid.UUID) (model.ConfirmedOrder, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	idx, ok := h.index[id]
	if !ok {
		return model.ConfirmedOrder{}, model.ErrOrderNotFound
	}
	return h.orders[idx].Clone(), nil
}

func (h *History) UpdateStatus(id uuid.UUID, status model.OrderStatus) (model.ConfirmedOrder, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx, ok := h.index[id]
	if !ok {
		return model.ConfirmedOrder{}, model.ErrOrderNotFound
	}

	current := &h.orders[idx]
	if err := CanTransition(current.Status, status); err != nil {
		return model.ConfirmedOrder{}, err
	}
	if current.Status != status {
		current.Status = status
		current.UpdatedAt = h.now()
	}
	return current.Clone(), nil
}

// Len is the number of recorded orders.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.orders)
}

// FormatNumber renders the human order number for sequence n.
func FormatNumber(n int) string {
	return fmt.Sprintf("ORD-%06d", n)
}
