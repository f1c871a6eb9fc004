// Package mocks provides testify mocks for the repository interfaces,
// consumed by the service tests.
package mocks

import (
	"context"

	"github.com/muhamad-rafli/inventory-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)

	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) CreateProduct(ctx context.Context, payload *models.ProductPayload) (int64, error) {
	args := m.Called(ctx, payload)

	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, id int64, payload *models.ProductPayload) error {
	args := m.Called(ctx, id, payload)

	return args.Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)

	if orders, ok := args.Get(0).([]*models.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	args := m.Called(ctx, id)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) CreateOrder(ctx context.Context, payload *models.OrderPayload) (int64, error) {
	args := m.Called(ctx, payload)

	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) UpdateOrder(ctx context.Context, id int64, payload *models.OrderPayload) error {
	args := m.Called(ctx, id, payload)

	return args.Error(0)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
