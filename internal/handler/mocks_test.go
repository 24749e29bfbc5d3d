package handler

import (
	"context"

	"cafe-pos/internal/model"
	"cafe-pos/internal/receipt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockKioskService is a mock implementation of KioskService.
type MockKioskService struct {
	mock.Mock
}

func (m *MockKioskService) kioskView(args mock.Arguments) (*model.KioskView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KioskView), args.Error(1)
}

func (m *MockKioskService) OpenSession(ctx context.Context) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx))
}

func (m *MockKioskService) CloseSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockKioskService) Menu(ctx context.Context, category string) (*model.MenuView, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuView), args.Error(1)
}

func (m *MockKioskService) View(ctx context.Context, sessionID string) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx, sessionID))
}

func (m *MockKioskService) AddItem(ctx context.Context, sessionID string, req *model.AddLineRequest) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx, sessionID, req))
}

func (m *MockKioskService) AdjustLine(ctx context.Context, sessionID, lineID string, delta int) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx, sessionID, lineID, delta))
}

func (m *MockKioskService) RemoveLine(ctx context.Context, sessionID, lineID string) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx, sessionID, lineID))
}

func (m *MockKioskService) ClearCart(ctx context.Context, sessionID string) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx, sessionID))
}

func (m *MockKioskService) SetFulfilment(ctx context.Context, sessionID string, req *model.FulfilmentRequest) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx, sessionID, req))
}

func (m *MockKioskService) Navigate(ctx context.Context, sessionID, view string) (*model.KioskView, error) {
	return m.kioskView(m.Called(ctx, sessionID, view))
}

func (m *MockKioskService) Confirm(ctx context.Context, sessionID string) (*model.ConfirmedOrder, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConfirmedOrder), args.Error(1)
}

// MockTerminalService is a mock implementation of TerminalService.
type MockTerminalService struct {
	mock.Mock
}

func (m *MockTerminalService) ticket(args mock.Arguments) (*model.TicketView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TicketView), args.Error(1)
}

func (m *MockTerminalService) order(args mock.Arguments) (*model.ConfirmedOrder, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConfirmedOrder), args.Error(1)
}

func (m *MockTerminalService) receiptResult(args mock.Arguments) (*receipt.Receipt, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockTerminalService) Menu(ctx context.Context, category string) (*model.MenuView, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuView), args.Error(1)
}

func (m *MockTerminalService) Ticket(ctx context.Context) (*model.TicketView, error) {
	return m.ticket(m.Called(ctx))
}

func (m *MockTerminalService) AddItem(ctx context.Context, req *model.AddLineRequest) (*model.TicketView, error) {
	return m.ticket(m.Called(ctx, req))
}

func (m *MockTerminalService) SetQuantity(ctx context.Context, lineID string, qty int) (*model.TicketView, error) {
	return m.ticket(m.Called(ctx, lineID, qty))
}

func (m *MockTerminalService) RemoveLine(ctx context.Context, lineID string) (*model.TicketView, error) {
	return m.ticket(m.Called(ctx, lineID))
}

func (m *MockTerminalService) ClearTicket(ctx context.Context) (*model.TicketView, error) {
	return m.ticket(m.Called(ctx))
}

func (m *MockTerminalService) Confirm(ctx context.Context, method model.PaymentMethod) (*model.ConfirmedOrder, error) {
	return m.order(m.Called(ctx, method))
}

func (m *MockTerminalService) Orders(ctx context.Context) ([]model.ConfirmedOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConfirmedOrder), args.Error(1)
}

func (m *MockTerminalService) ChangeStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.ConfirmedOrder, error) {
	return m.order(m.Called(ctx, id, status))
}

func (m *MockTerminalService) Receipt(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	return m.receiptResult(m.Called(ctx, id))
}

func (m *MockTerminalService) Print(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	return m.receiptResult(m.Called(ctx, id))
}

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) item(args mock.Arguments) (*model.CatalogItem, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogItem), args.Error(1)
}

func (m *MockMenuService) List(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, req *model.MenuItemRequest) (*model.CatalogItem, error) {
	return m.item(m.Called(ctx, req))
}

func (m *MockMenuService) Update(ctx context.Context, id string, req *model.MenuItemRequest) (*model.CatalogItem, error) {
	return m.item(m.Called(ctx, id, req))
}

func (m *MockMenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuService) Toggle(ctx context.Context, id string) (*model.CatalogItem, error) {
	return m.item(m.Called(ctx, id))
}
