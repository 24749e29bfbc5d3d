// Package catalog holds the menu: category derivation, filtering, the
// staff-editable menu store and catalog loading.
package catalog

import (
	"fmt"

	"cafe-pos/internal/model"
)

// Categories returns the distinct categories in first-seen order. Disabled
// items still contribute their category.
func Categories(items []model.CatalogItem) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

// Filter returns the enabled items tagged with category, in catalog order.
func Filter(items []model.CatalogItem, category string) []model.CatalogItem {
	out := make([]model.CatalogItem, 0)
	for _, item := range items {
		if item.Enabled && item.Category == category {
			out = append(out, item.Clone())
		}
	}
	return out
}

// Enabled returns every enabled item in catalog order.
func Enabled(items []model.CatalogItem) []model.CatalogItem {
	out := make([]model.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Enabled {
			out = append(out, item.Clone())
		}
	}
	return out
}

// CategoryFilter narrows a catalog to one category tag.
type CategoryFilter interface {
	// Tags lists the selectable tags in display order.
	Tags(items []model.CatalogItem) []string
	// DefaultTag is the tag selected before the user picks one.
	DefaultTag(items []model.CatalogItem) string
	// Apply returns the items shown for tag.
	Apply(items []model.CatalogItem, tag string) []model.CatalogItem
}

// KioskFilter offers a synthetic "All" tag ahead of the derived categories.
type KioskFilter struct{}

func (KioskFilter) Tags(items []model.CatalogItem) []string {
	return append([]string{model.CategoryAll}, Categories(items)...)
}

func (KioskFilter) DefaultTag([]model.CatalogItem) string {
	return model.CategoryAll
}

func (KioskFilter) Apply(items []model.CatalogItem, tag string) []model.CatalogItem {
	if tag == "" || tag == model.CategoryAll {
		return Enabled(items)
	}
	return Filter(items, tag)
}

// TerminalFilter has no "All" tag; the first derived category is the default.
type TerminalFilter struct{}

func (TerminalFilter) Tags(items []model.CatalogItem) []string {
	return Categories(items)
}

func (TerminalFilter) DefaultTag(items []model.CatalogItem) string {
	return DefaultCategory(items)
}

func (TerminalFilter) Apply(items []model.CatalogItem, tag string) []model.CatalogItem {
	if tag == "" {
		tag = DefaultCategory(items)
	}
	return Filter(items, tag)
}

// DefaultCategory is the first derived category, or "" for an empty catalog.
func DefaultCategory(items []model.CatalogItem) string {
	cats := Categories(items)
	if len(cats) == 0 {
		return ""
	}
	return cats[0]
}

// ValidateItem checks the structural rules every catalog item must satisfy.
func ValidateItem(item model.CatalogItem) error {
	if item.ID == "" || item.Name == "" {
		return fmt.Errorf("%w: id and name are required", model.ErrInvalidMenuItem)
	}
	if !item.Mode.Valid() {
		return fmt.Errorf("%w: item %s has unknown sizing mode %q", model.ErrInvalidMenuItem, item.ID, item.Mode)
	}
	if item.BasePrice.IsNegative() {
		return fmt.Errorf("%w: item %s has a negative price", model.ErrInvalidMenuItem, item.ID)
	}
	if item.Mode == model.SizingAbsolute && len(item.Sizes) == 0 {
		return fmt.Errorf("%w: item %s needs at least one size", model.ErrInvalidMenuItem, item.ID)
	}
	if err := uniqueOptions(item.ID, "size", item.Sizes); err != nil {
		return err
	}
	return uniqueOptions(item.ID, "add-on", item.Addons)
}

// ValidateKiosk checks a kiosk catalog: item rules, unique ids and the fixed category set.
func ValidateKiosk(items []model.CatalogItem) error {
	if err := validateAll(items); err != nil {
		return err
	}
	for _, item := range items {
		if !model.IsKioskCategory(item.Category) {
			return fmt.Errorf("%w: %q on item %s", model.ErrInvalidCategory, item.Category, item.ID)
		}
	}
	return nil
}

// ValidateTerminal checks a terminal menu: item rules and unique ids.
func ValidateTerminal(items []model.CatalogItem) error {
	return validateAll(items)
}

func validateAll(items []model.CatalogItem) error {
	ids := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := ValidateItem(item); err != nil {
			return err
		}
		if _, ok := ids[item.ID]; ok {
			return fmt.Errorf("%w: %s", model.ErrDuplicateMenuItem, item.ID)
		}
		ids[item.ID] = struct{}{}
	}
	return nil
}

func uniqueOptions(itemID, kind string, opts []model.PriceOption) error {
	seen := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		if o.Name == "" {
			return fmt.Errorf("%w: item %s has an unnamed %s", model.ErrInvalidMenuItem, itemID, kind)
		}
		if o.Price.IsNegative() {
			return fmt.Errorf("%w: item %s %s %q has a negative price", model.ErrInvalidMenuItem, itemID, kind, o.Name)
		}
		if _, ok := seen[o.Name]; ok {
			return fmt.Errorf("%w: item %s repeats %s %q", model.ErrInvalidMenuItem, itemID, kind, o.Name)
		}
		seen[o.Name] = struct{}{}
	}
	return nil
}
