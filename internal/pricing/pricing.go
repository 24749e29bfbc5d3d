// Package pricing computes unit, extended and order prices for catalog items.
//
// Two sizing modes are supported. Delta items add size and add-on deltas to a
// base price; absolute items take the full price bound to the selected size.
// Arithmetic is exact; rounding happens only in the display helpers.
package pricing

import (
	"cafe-pos/internal/model"

	"github.com/shopspring/decimal"
)

// Strategy prices a single unit of an item for one sizing mode.
type Strategy interface {
	UnitPrice(item model.CatalogItem, size string, addons []string) decimal.Decimal
}

// deltaStrategy prices SizingDelta items.
type deltaStrategy struct{}

func (deltaStrategy) UnitPrice(item model.CatalogItem, size string, addons []string) decimal.Decimal {
	price := item.BasePrice

	if size != "" && len(item.Sizes) > 0 {
		if s, ok := item.FindSize(size); ok {
			price = price.Add(s.Price)
		}
	}

	// Unknown add-on names contribute nothing.
	for _, name := range model.NormalizeAddons(addons) {
		if a, ok := item.FindAddon(name); ok {
			price = price.Add(a.Price)
		}
	}

	return price
}

// absoluteStrategy prices SizingAbsolute items.
type absoluteStrategy struct{}

func (absoluteStrategy) UnitPrice(item model.CatalogItem, size string, _ []string) decimal.Decimal {
	if len(item.Sizes) == 0 {
		return decimal.Zero
	}
	if size != "" {
		if s, ok := item.FindSize(size); ok {
			return s.Price
		}
	}
	return item.Sizes[0].Price
}

var strategies = map[model.SizingMode]Strategy{
	model.SizingDelta:    deltaStrategy{},
	model.SizingAbsolute: absoluteStrategy{},
}

// For returns the strategy for a sizing mode. Unknown modes price as delta items.
func For(mode model.SizingMode) Strategy {
	if s, ok := strategies[mode]; ok {
		return s
	}
	return strategies[model.SizingDelta]
}

// UnitPrice returns the price of one unit of item with the given size and add-ons.
// It never mutates item.
func UnitPrice(item model.CatalogItem, size string, addons []string) decimal.Decimal {
	return For(item.Mode).UnitPrice(item, size, addons)
}

// SelectionPrice is UnitPrice for a Selection.
func SelectionPrice(item model.CatalogItem, sel model.Selection) decimal.Decimal {
	return UnitPrice(item, sel.Size, sel.Addons)
}

// ExtendedPrice returns unit × quantity.
func ExtendedPrice(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}
