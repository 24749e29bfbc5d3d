// Package cart aggregates order lines for a kiosk cart or a terminal ticket.
//
// A Collection is a value. Every operation returns a new Collection and
// leaves the receiver untouched, so a failed confirmation can never leave
// a half-updated cart behind.
package cart

import (
	"cafe-pos/internal/model"
	"cafe-pos/internal/pricing"

	"github.com/google/uuid"
)

// Collection is an ordered list of order lines. Insertion order is kept and
// merges never reorder lines. The zero value is an empty collection.
type Collection struct {
	lines []model.OrderLine
}

// New creates a collection holding copies of lines.
func New(lines ...model.OrderLine) Collection {
	return Collection{lines: cloneLines(lines)}
}

// Add puts one unit of item with sel into the collection.
// A line with the same item, size and add-on set is incremented; otherwise a
// new line with quantity 1 and a unit price snapshot is appended.
// The returned line is the one that was created or incremented.
func (c Collection) Add(item model.CatalogItem, sel model.Selection) (Collection, model.OrderLine) {
	sel = resolveSelection(item, sel)

	lines := cloneLines(c.lines)
	for i := range lines {
		if lines[i].ItemID == item.ID && lines[i].Selection().Matches(sel) {
			lines[i].Quantity++
			return Collection{lines: lines}, lines[i].Clone()
		}
	}

	line := model.OrderLine{
		ID:        uuid.NewString(),
		ItemID:    item.ID,
		Name:      item.Name,
		Size:      sel.Size,
		Addons:    sel.Addons,
		Quantity:  1,
		UnitPrice: pricing.SelectionPrice(item, sel),
	}
	lines = append(lines, line)
	return Collection{lines: lines}, line.Clone()
}

// AdjustQuantity changes a line's quantity by delta. A result of zero or
// less removes the line. Unknown ids leave the collection unchanged.
func (c Collection) AdjustQuantity(lineID string, delta int) Collection {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return c
	}

	qty := c.lines[idx].Quantity + delta
	if qty <= 0 {
		return c.Remove(lineID)
	}

	lines := cloneLines(c.lines)
	lines[idx].Quantity = qty
	return Collection{lines: lines}
}

// SetQuantity sets a line's quantity, clamped to at least 1.
// It never removes a line. Unknown ids leave the collection unchanged.
func (c Collection) SetQuantity(lineID string, qty int) Collection {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return c
	}
	if qty < 1 {
		qty = 1
	}

	lines := cloneLines(c.lines)
	lines[idx].Quantity = qty
	return Collection{lines: lines}
}

// Remove drops a line. Removing an unknown id is a no-op.
func (c Collection) Remove(lineID string) Collection {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return c
	}

	lines := make([]model.OrderLine, 0, len(c.lines)-1)
	for i, l := range c.lines {
		if i == idx {
			continue
		}
		lines = append(lines, l.Clone())
	}
	return Collection{lines: lines}
}

// Clear returns an empty collection.
func (c Collection) Clear() Collection {
	return Collection{}
}

// Lines returns a copy of the lines in insertion order.
func (c Collection) Lines() []model.OrderLine {
	return cloneLines(c.lines)
}

// Snapshot is a deep copy of the lines, never nil, for freezing into an order.
func (c Collection) Snapshot() []model.OrderLine {
	out := cloneLines(c.lines)
	if out == nil {
		out = []model.OrderLine{}
	}
	return out
}

// Len is the number of distinct lines.
func (c Collection) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the collection has no lines.
func (c Collection) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the sum of all line quantities.
func (c Collection) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Find looks up a line by id.
func (c Collection) Find(lineID string) (model.OrderLine, bool) {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return model.OrderLine{}, false
	}
	return c.lines[idx].Clone(), true
}

func (c Collection) indexOf(lineID string) int {
	for i, l := range c.lines {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

// resolveSelection normalises add-ons and fills the default size of
// absolute-priced items so the snapshot names the size that was charged.
func resolveSelection(item model.CatalogItem, sel model.Selection) model.Selection {
	size := sel.Size
	if item.Mode == model.SizingAbsolute {
		if _, ok := item.FindSize(size); !ok {
			size = item.DefaultSize()
		}
		// Absolute items carry no add-ons.
		return model.Selection{Size: size}
	}
	return model.NewSelection(size, sel.Addons...)
}

func cloneLines(lines []model.OrderLine) []model.OrderLine {
	if lines == nil {
		return nil
	}
	out := make([]model.OrderLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}
