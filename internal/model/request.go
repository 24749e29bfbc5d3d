package model

import (
	"github.com/shopspring/decimal"
)

// AddLineRequest adds one unit of a menu item to a cart or ticket.
type AddLineRequest struct {
	ItemID string   `json:"itemId" validate:"required"`
	Size   string   `json:"size,omitempty"`
	Addons []string `json:"addons,omitempty" validate:"omitempty,dive,required"`
}

// AdjustLineRequest changes a kiosk line's quantity by Delta.
type AdjustLineRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// SetQuantityRequest sets a terminal line's quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// FulfilmentRequest chooses dine-in or takeaway for a kiosk session.
type FulfilmentRequest struct {
	Type        Fulfilment `json:"type" validate:"required,oneof=dine-in takeaway"`
	TableNumber string     `json:"tableNumber,omitempty" validate:"max=10"`
}

// NavigateRequest switches the kiosk screen.
type NavigateRequest struct {
	View string `json:"view" validate:"required,oneof=menu cart"`
}

// ConfirmTicketRequest confirms the terminal ticket.
type ConfirmTicketRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=Cash Card"`
}

// StatusRequest changes an order's status.
type StatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=Pending Preparing Completed Cancelled"`
}

// SizePriceRequest is one absolute size price of a menu item.
type SizePriceRequest struct {
	Size  string          `json:"size" validate:"required,oneof=Small Medium Large"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// MenuItemRequest creates or replaces a staff menu item.
type MenuItemRequest struct {
	Name        string             `json:"name" validate:"required,min=2,max=100"`
	Category    string             `json:"category" validate:"required,max=50"`
	Description string             `json:"description,omitempty" validate:"max=500"`
	Prices      []SizePriceRequest `json:"prices" validate:"required,min=1,max=3,unique=Size,dive"`
	Enabled     *bool              `json:"enabled,omitempty"`
}

// ToCatalogItem converts the request into an absolute-priced catalog item.
// Sizes are ordered Small, Medium, Large regardless of request order.
func (r MenuItemRequest) ToCatalogItem(id string) CatalogItem {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	sizes := make([]PriceOption, 0, len(r.Prices))
	for _, name := range []string{SizeSmall, SizeMedium, SizeLarge} {
		for _, p := range r.Prices {
			if p.Size == name {
				sizes = append(sizes, PriceOption{Name: name, Price: p.Price})
			}
		}
	}

	return CatalogItem{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Mode:        SizingAbsolute,
		BasePrice:   decimal.Zero,
		Sizes:       sizes,
		Enabled:     enabled,
	}
}
