package model

import (
	"github.com/shopspring/decimal"
)

// Kiosk screens.
const (
	ViewMenu      = "menu"
	ViewCart      = "cart"
	ViewConfirmed = "confirmed"
)

// Totals is a priced line collection.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// MenuView is a filtered catalog page.
type MenuView struct {
	Category   string        `json:"category"`
	Categories []string      `json:"categories"`
	Items      []CatalogItem `json:"items"`
}

// KioskView is everything the kiosk screen renders for one session.
type KioskView struct {
	SessionID   string          `json:"sessionId"`
	View        string          `json:"view"`
	Lines       []OrderLine     `json:"lines"`
	ItemCount   int             `json:"itemCount"`
	Totals      Totals          `json:"totals"`
	Fulfilment  Fulfilment      `json:"fulfilment"`
	TableNumber string          `json:"tableNumber,omitempty"`
	JustAdded   bool            `json:"justAdded"`
	LastOrder   *ConfirmedOrder `json:"lastOrder,omitempty"`
}

// TicketView is the staff terminal's open ticket.
type TicketView struct {
	Lines     []OrderLine `json:"lines"`
	ItemCount int         `json:"itemCount"`
	Totals    Totals      `json:"totals"`
}
