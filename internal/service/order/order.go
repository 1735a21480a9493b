package order

import (
	"context"
	"fmt"

	"bookstore/internal/entities"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.Limit > MaxLimit {
		return nil, fmt.Errorf("limit %d exceeds %d: %w", filter.Limit, MaxLimit, ErrInvalidLimit)
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus выставляет любой из допустимых статусов, переходы не ограничены.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}
