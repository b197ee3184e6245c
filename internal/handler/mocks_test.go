package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ShopKeeper_Go/internal/shop"
	"github.com/osse101/ShopKeeper_Go/internal/validation"
)

// MockShopService is a mock implementation of shop.Service
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) ListItems(ctx context.Context) []shop.ItemView {
	args := m.Called(ctx)
	return args.Get(0).([]shop.ItemView)
}

func (m *MockShopService) GetItem(ctx context.Context, id string) (shop.ItemView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shop.ItemView), args.Error(1)
}

func (m *MockShopService) AddItem(ctx context.Context, form validation.ItemForm) (shop.ItemView, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(shop.ItemView), args.Error(1)
}

func (m *MockShopService) EditItem(ctx context.Context, id string, form validation.ItemForm) (shop.ItemView, error) {
	args := m.Called(ctx, id, form)
	return args.Get(0).(shop.ItemView), args.Error(1)
}

func (m *MockShopService) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShopService) BuyItem(ctx context.Context, id string) (shop.Receipt, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shop.Receipt), args.Error(1)
}

func (m *MockShopService) Select(ctx context.Context, id string) (shop.SelectionView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shop.SelectionView), args.Error(1)
}

func (m *MockShopService) ClearSelection(ctx context.Context) shop.SelectionView {
	args := m.Called(ctx)
	return args.Get(0).(shop.SelectionView)
}

func (m *MockShopService) Selection(ctx context.Context) shop.SelectionView {
	args := m.Called(ctx)
	return args.Get(0).(shop.SelectionView)
}

func (m *MockShopService) BuySelected(ctx context.Context) (shop.Receipt, error) {
	args := m.Called(ctx)
	return args.Get(0).(shop.Receipt), args.Error(1)
}

func (m *MockShopService) Import(ctx context.Context, data []byte) ([]shop.ItemView, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.ItemView), args.Error(1)
}

func (m *MockShopService) ImportFile(ctx context.Context, path string) ([]shop.ItemView, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.ItemView), args.Error(1)
}

func (m *MockShopService) Export(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockShopService) ExportFile(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
