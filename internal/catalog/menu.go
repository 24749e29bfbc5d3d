package catalog

import (
	"fmt"
	"sync"

	"cafe-pos/internal/model"

	"github.com/google/uuid"
)

// Store is the read side of a catalog.
type Store interface {
	// List returns every item, enabled or not, in catalog order.
	List() []model.CatalogItem

	// Get returns one item by id.
	Get(id string) (model.CatalogItem, error)
}

// MenuStore is a Store that staff can edit.
type MenuStore interface {
	Store

	// Add appends an item. An empty id is replaced with a generated one.
	Add(item model.CatalogItem) (model.CatalogItem, error)

	// Update replaces the item with the same id, keeping its position.
	Update(item model.CatalogItem) (model.CatalogItem, error)

	// Delete removes an item. Lines already referencing it keep their snapshot.
	Delete(id string) error

	// Toggle flips the enabled flag and returns the updated item.
	Toggle(id string) (model.CatalogItem, error)
}

// Menu is an in-memory, ordered MenuStore safe for concurrent use.
type Menu struct {
	mu       sync.RWMutex
	items    []model.CatalogItem
	validate func(model.CatalogItem) error
}

// NewMenu creates a menu seeded with copies of items.
// validate runs on every Add and Update; nil uses ValidateItem.
func NewMenu(items []model.CatalogItem, validate func(model.CatalogItem) error) *Menu {
	if validate == nil {
		validate = ValidateItem
	}
	seeded := make([]model.CatalogItem, len(items))
	for i, item := range items {
		seeded[i] = item.Clone()
	}
	return &Menu{items: seeded, validate: validate}
}

// NewKioskMenu creates a menu that also enforces the kiosk category set.
func NewKioskMenu(items []model.CatalogItem) *Menu {
	return NewMenu(items, func(item model.CatalogItem) error {
		if err := ValidateItem(item); err != nil {
			return err
		}
		if !model.IsKioskCategory(item.Category) {
			return fmt.Errorf("%w: %q", model.ErrInvalidCategory, item.Category)
		}
		return nil
	})
}

func (m *Menu) List() []model.CatalogItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.CatalogItem, len(m.items))
	for i, item := range m.items {
		out[i] = item.Clone()
	}
	return out
}

func (m *Menu) Get(id string) (model.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return model.CatalogItem{}, model.ErrMenuItemNotFound
	}
	return m.items[idx].Clone(), nil
}

func (m *Menu) Add(item model.CatalogItem) (model.CatalogItem, error) {
	if item.ID == "" {
		item.ID = NewItemID()
	}
	if err := m.validate(item); err != nil {
		return model.CatalogItem{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(item.ID) >= 0 {
		return model.CatalogItem{}, model.ErrDuplicateMenuItem
	}
	m.items = append(m.items, item.Clone())
	return item.Clone(), nil
}

func (m *Menu) Update(item model.CatalogItem) (model.CatalogItem, error) {
	if err := m.validate(item); err != nil {
		return model.CatalogItem{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(item.ID)
	if idx < 0 {
		return model.CatalogItem{}, model.ErrMenuItemNotFound
	}
	m.items[idx] = item.Clone()
	return item.Clone(), nil
}

func (m *Menu) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return model.ErrMenuItemNotFound
	}
	m.items = append(m.items[:idx:idx], m.items[idx+1:]...)
	return nil
}

func (m *Menu) Toggle(id string) (model.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return model.CatalogItem{}, model.ErrMenuItemNotFound
	}
	m.items[idx].Enabled = !m.items[idx].Enabled
	return m.items[idx].Clone(), nil
}

// indexOf must be called with mu held.
func (m *Menu) indexOf(id string) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// NewItemID generates an id for a staff-created menu item.
func NewItemID() string {
	return "item-" + uuid.NewString()[:8]
}
