package service

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/muhamad-rafli/inventory-api/internal/errors"
	"github.com/muhamad-rafli/inventory-api/internal/models"
	repository "github.com/muhamad-rafli/inventory-api/internal/repositories"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]*models.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	CreateOrder(ctx context.Context, payload *models.OrderPayload) (*models.Order, error)
	UpdateOrder(ctx context.Context, id int64, payload *models.OrderPayload) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) ListOrders(ctx context.Context) ([]*models.Order, error) {

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	// An empty table answers [], not null.
	if orders == nil {
		orders = []*models.Order{}
	}

	return orders, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) CreateOrder(ctx context.Context, payload *models.OrderPayload) (*models.Order, error) {

	id, err := s.repo.CreateOrder(ctx, payload)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to create order").WithError(err)
	}

	return payload.Echo(id), nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, payload *models.OrderPayload) (*models.Order, error) {

	err := s.repo.UpdateOrder(ctx, id, payload)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to update order").WithError(err)
	}

	return payload.Echo(id), nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {

	err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFoundError("Order not found").WithError(err)
		}

		return apperrors.DatabaseError("Failed to delete order").WithError(err)
	}

	return nil
}
