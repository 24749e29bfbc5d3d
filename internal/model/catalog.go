package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SizingMode tells the pricing engine how to interpret size prices.
type SizingMode string

const (
	// SizingDelta items carry a base price; size and add-on prices are added to it.
	SizingDelta SizingMode = "delta"
	// SizingAbsolute items carry the full price per size.
	SizingAbsolute SizingMode = "absolute"
)

// Valid reports whether m is a known sizing mode.
func (m SizingMode) Valid() bool {
	return m == SizingDelta || m == SizingAbsolute
}

// Kiosk categories. The kiosk catalog is closed to these three tags.
const (
	CategoryBeverages = "Beverages"
	CategorySnacks    = "Snacks"
	CategoryDesserts  = "Desserts"

	// CategoryAll is the synthetic kiosk tag that matches every item.
	CategoryAll = "All"
)

// KioskCategories lists the fixed kiosk category tags.
var KioskCategories = []string{CategoryBeverages, CategorySnacks, CategoryDesserts}

// IsKioskCategory reports whether category is one of the fixed kiosk tags.
func IsKioskCategory(category string) bool {
	for _, c := range KioskCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Terminal sizes offered by menu management.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// PriceOption is a named size or add-on with its price.
// For SizingDelta items the price is added to the base price,
// for SizingAbsolute sizes it is the full price.
type PriceOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CatalogItem represents a purchasable menu item.
type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Mode        SizingMode      `json:"mode"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Sizes       []PriceOption   `json:"sizes,omitempty"`
	Addons      []PriceOption   `json:"addons,omitempty"`
	Enabled     bool            `json:"enabled"`
	Popular     bool            `json:"popular,omitempty"`
}

// UnmarshalJSON decodes an item, treating a missing "enabled" field as true.
// Kiosk catalogs carry no enabled flag.
func (i *CatalogItem) UnmarshalJSON(data []byte) error {
	type plain CatalogItem
	item := plain{Enabled: true}
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*i = CatalogItem(item)
	return nil
}

// DefaultSize returns the name of the first size, or "" when the item has none.
func (i CatalogItem) DefaultSize() string {
	if len(i.Sizes) == 0 {
		return ""
	}
	return i.Sizes[0].Name
}

// FindSize looks up a size by name.
func (i CatalogItem) FindSize(name string) (PriceOption, bool) {
	for _, s := range i.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return PriceOption{}, false
}

// FindAddon looks up an add-on by name.
func (i CatalogItem) FindAddon(name string) (PriceOption, bool) {
	for _, a := range i.Addons {
		if a.Name == name {
			return a, true
		}
	}
	return PriceOption{}, false
}

// Clone returns a deep copy of the item.
func (i CatalogItem) Clone() CatalogItem {
	out := i
	if i.Sizes != nil {
		out.Sizes = append([]PriceOption(nil), i.Sizes...)
	}
	if i.Addons != nil {
		out.Addons = append([]PriceOption(nil), i.Addons...)
	}
	return out
}
