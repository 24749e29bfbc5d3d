package service

import (
	"context"

	"cafe-pos/internal/model"
	"cafe-pos/internal/receipt"

	"github.com/google/uuid"
)

// KioskService drives customer kiosk sessions.
type KioskService interface {
	// OpenSession starts an empty cart on the menu screen.
	OpenSession(ctx context.Context) (*model.KioskView, error)

	// CloseSession discards a session and its pending timers.
	CloseSession(ctx context.Context, sessionID string) error

	// Menu returns the kiosk catalog filtered by category ("All" or empty for everything).
	Menu(ctx context.Context, category string) (*model.MenuView, error)

	// View returns the current state of a session.
	View(ctx context.Context, sessionID string) (*model.KioskView, error)

	// AddItem adds one unit of a menu item, merging with an identical line.
	AddItem(ctx context.Context, sessionID string, req *model.AddLineRequest) (*model.KioskView, error)

	// AdjustLine changes a line's quantity by delta; reaching zero removes it.
	AdjustLine(ctx context.Context, sessionID, lineID string, delta int) (*model.KioskView, error)

	// RemoveLine drops a line.
	RemoveLine(ctx context.Context, sessionID, lineID string) (*model.KioskView, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, sessionID string) (*model.KioskView, error)

	// SetFulfilment records dine-in or takeaway and the table number.
	SetFulfilment(ctx context.Context, sessionID string, req *model.FulfilmentRequest) (*model.KioskView, error)

	// Navigate switches between the menu and cart screens.
	Navigate(ctx context.Context, sessionID, view string) (*model.KioskView, error)

	// Confirm turns the cart into an order.
	Confirm(ctx context.Context, sessionID string) (*model.ConfirmedOrder, error)
}

// TerminalService drives the staff terminal: one open ticket and the order queue.
type TerminalService interface {
	// Menu returns enabled items of category, or of the first category when empty.
	Menu(ctx context.Context, category string) (*model.MenuView, error)

	// Ticket returns the open ticket.
	Ticket(ctx context.Context) (*model.TicketView, error)

	// AddItem adds one unit of a menu item in the requested size.
	AddItem(ctx context.Context, req *model.AddLineRequest) (*model.TicketView, error)

	// SetQuantity sets a line's quantity, never below one.
	SetQuantity(ctx context.Context, lineID string, qty int) (*model.TicketView, error)

	// RemoveLine drops a line.
	RemoveLine(ctx context.Context, lineID string) (*model.TicketView, error)

	// ClearTicket empties the ticket.
	ClearTicket(ctx context.Context) (*model.TicketView, error)

	// Confirm turns the ticket into an order paid by method.
	Confirm(ctx context.Context, method model.PaymentMethod) (*model.ConfirmedOrder, error)

	// Orders lists every order, newest first.
	Orders(ctx context.Context) ([]model.ConfirmedOrder, error)

	// ChangeStatus moves an order through its lifecycle.
	ChangeStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.ConfirmedOrder, error)

	// Receipt renders an order's receipt.
	Receipt(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error)

	// Print renders and prints an order's receipt.
	Print(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error)
}

// MenuService manages the staff menu.
type MenuService interface {
	// List returns every item, including disabled ones.
	List(ctx context.Context) ([]model.CatalogItem, error)

	// Create adds an item with a generated id.
	Create(ctx context.Context, req *model.MenuItemRequest) (*model.CatalogItem, error)

	// Update replaces an item's fields, keeping its id and position.
	Update(ctx context.Context, id string, req *model.MenuItemRequest) (*model.CatalogItem, error)

	// Delete removes an item.
	Delete(ctx context.Context, id string) error

	// Toggle flips an item's availability.
	Toggle(ctx context.Context, id string) (*model.CatalogItem, error)
}
