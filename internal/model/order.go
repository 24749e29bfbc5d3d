package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a confirmed order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod is how a terminal order was paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
)

// Valid reports whether p is Cash or Card.
func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

// Fulfilment is how a kiosk order is served.
type Fulfilment string

const (
	FulfilmentDineIn   Fulfilment = "dine-in"
	FulfilmentTakeaway Fulfilment = "takeaway"
)

// Valid reports whether f is dine-in or takeaway.
func (f Fulfilment) Valid() bool {
	return f == FulfilmentDineIn || f == FulfilmentTakeaway
}

// Channel identifies which flow produced an order.
type Channel string

const (
	ChannelKiosk    Channel = "kiosk"
	ChannelTerminal Channel = "terminal"
)

// ConfirmedOrder is the snapshot taken when a cart or ticket is confirmed.
// Only Status and UpdatedAt change after creation.
type ConfirmedOrder struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	Channel       Channel         `json:"channel"`
	Lines         []OrderLine     `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	Fulfilment    Fulfilment      `json:"fulfilment,omitempty"`
	TableNumber   string          `json:"tableNumber,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Clone returns a deep copy so callers cannot reach the stored lines.
func (o ConfirmedOrder) Clone() ConfirmedOrder {
	out := o
	out.Lines = make([]OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		out.Lines[i] = l.Clone()
	}
	return out
}
