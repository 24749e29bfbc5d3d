package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Selection is what a user picks for an item: an optional size and a set of add-ons.
type Selection struct {
	Size   string   `json:"size,omitempty"`
	Addons []string `json:"addons,omitempty"`
}

// NewSelection builds a Selection with add-ons normalised to a sorted, de-duplicated set.
func NewSelection(size string, addons ...string) Selection {
	return Selection{Size: size, Addons: NormalizeAddons(addons)}
}

// NormalizeAddons returns the add-on names as a sorted set.
// Empty names are dropped. The result is nil when nothing remains.
func NormalizeAddons(addons []string) []string {
	if len(addons) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(addons))
	out := make([]string, 0, len(addons))
	for _, a := range addons {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil
	}

	sort.Strings(out)
	return out
}

// Matches reports whether two selections denote the same line.
// Add-ons are compared as sets.
func (s Selection) Matches(other Selection) bool {
	if s.Size != other.Size {
		return false
	}
	a := NormalizeAddons(s.Addons)
	b := NormalizeAddons(other.Addons)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// OrderLine is one row of a cart or order ticket.
type OrderLine struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	Size      string          `json:"size,omitempty"`
	Addons    []string        `json:"addons,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Selection returns the line's size and add-on snapshot.
func (l OrderLine) Selection() Selection {
	return Selection{Size: l.Size, Addons: l.Addons}
}

// LineTotal is the extended price of the line.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Clone returns a deep copy of the line.
func (l OrderLine) Clone() OrderLine {
	out := l
	if l.Addons != nil {
		out.Addons = append([]string(nil), l.Addons...)
	}
	return out
}
