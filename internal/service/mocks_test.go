package service

import (
	"context"

	"cafe-pos/internal/model"
	"cafe-pos/internal/receipt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of order.Repository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Append(o model.ConfirmedOrder) model.ConfirmedOrder {
	args := m.Called(o)
	return args.Get(0).(model.ConfirmedOrder)
}

func (m *MockOrderRepository) List() []model.ConfirmedOrder {
	args := m.Called()
	return args.Get(0).([]model.ConfirmedOrder)
}

func (m *MockOrderRepository) Get(id uuid.UUID) (model.ConfirmedOrder, error) {
	args := m.Called(id)
	return args.Get(0).(model.ConfirmedOrder), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uuid.UUID, status model.OrderStatus) (model.ConfirmedOrder, error) {
	args := m.Called(id, status)
	return args.Get(0).(model.ConfirmedOrder), args.Error(1)
}

// MockMenuStore is a mock implementation of catalog.MenuStore.
type MockMenuStore struct {
	mock.Mock
}

func (m *MockMenuStore) List() []model.CatalogItem {
	args := m.Called()
	return args.Get(0).([]model.CatalogItem)
}

func (m *MockMenuStore) Get(id string) (model.CatalogItem, error) {
	args := m.Called(id)
	return args.Get(0).(model.CatalogItem), args.Error(1)
}

func (m *MockMenuStore) Add(item model.CatalogItem) (model.CatalogItem, error) {
	args := m.Called(item)
	return args.Get(0).(model.CatalogItem), args.Error(1)
}

func (m *MockMenuStore) Update(item model.CatalogItem) (model.CatalogItem, error) {
	args := m.Called(item)
	return args.Get(0).(model.CatalogItem), args.Error(1)
}

func (m *MockMenuStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMenuStore) Toggle(id string) (model.CatalogItem, error) {
	args := m.Called(id)
	return args.Get(0).(model.CatalogItem), args.Error(1)
}

// MockReceiptDispatcher is a mock implementation of ReceiptDispatcher.
type MockReceiptDispatcher struct {
	mock.Mock
}

func (m *MockReceiptDispatcher) Render(o model.ConfirmedOrder) receipt.Receipt {
	args := m.Called(o)
	return args.Get(0).(receipt.Receipt)
}

func (m *MockReceiptDispatcher) Dispatch(ctx context.Context, o model.ConfirmedOrder) (receipt.Receipt, int) {
	args := m.Called(ctx, o)
	return args.Get(0).(receipt.Receipt), args.Int(1)
}

// MockCashDrawer is a mock implementation of receipt.CashDrawer.
type MockCashDrawer struct {
	mock.Mock
}

func (m *MockCashDrawer) Open(ctx context.Context, orderNumber string) error {
	args := m.Called(ctx, orderNumber)
	return args.Error(0)
}
