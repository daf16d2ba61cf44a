package service

import (
	"context"
	"time"

	"github.com/booklyhq/support-be/repository"
	"github.com/booklyhq/support-be/types"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order *types.Order) error
	GetOrder(ctx context.Context, id string) (*types.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*types.Order, int64, error)
	UpdateOrder(ctx context.Context, id string, update *types.Order) (*types.Order, error)
	CancelOrder(ctx context.Context, id string) (*types.Order, error)
	OrderStats(ctx context.Context) (*types.OrderStats, error)
}

type orderService struct {
	repo repository.OrderRepo
}

func NewOrderService(repo repository.OrderRepo) OrderService {
	return &orderService{
		repo: repo,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, order *types.Order) error {
	if order.OrderID == "" {
		return newError(ErrorInvalidInput, "missing_order_id", nil)
	}
	if order.CustomerEmail == "" {
		return newError(ErrorInvalidInput, "missing_customer_email", nil)
	}
	if len(order.Items) == 0 {
		return newError(ErrorInvalidInput, "missing_items", nil)
	}
	if order.TotalAmount < 0 {
		return newError(ErrorInvalidInput, "negative_total_amount", nil)
	}
	if order.Status == "" {
		order.Status = types.OrderStatusPending
	}
	if !types.ValidOrderStatus(order.Status) {
		return newError(ErrorInvalidInput, "invalid_status", nil)
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	if err := s.repo.Create(ctx, order); err != nil {
		return newError(ErrorPersistence, "order_create_error", err)
	}
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*types.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(ErrorPersistence, "order_get_error", err)
	}
	if order == nil {
		return nil, newError(ErrorNotFound, "order_not_found", nil)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*types.Order, int64, error) {
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, newError(ErrorPersistence, "order_list_error", err)
	}
	return orders, total, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, update *types.Order) (*types.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Status != "" {
		if !types.ValidOrderStatus(update.Status) {
			return nil, newError(ErrorInvalidInput, "invalid_status", nil)
		}
		order.Status = update.Status
	}
	if update.CustomerEmail != "" {
		order.CustomerEmail = update.CustomerEmail
	}
	if len(update.Items) > 0 {
		order.Items = update.Items
	}
	if update.ShippingAddress != "" {
		order.ShippingAddress = update.ShippingAddress
	}
	if update.TrackingNumber != "" {
		order.TrackingNumber = update.TrackingNumber
	}
	if update.EstimatedDelivery != nil {
		order.EstimatedDelivery = update.EstimatedDelivery
	}
	if update.TotalAmount > 0 {
		order.TotalAmount = update.TotalAmount
	}
	order.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, id, order); err != nil {
		return nil, newError(ErrorPersistence, "order_update_error", err)
	}
	return order, nil
}

// CancelOrder is the delete operation: orders are never removed, cancellation
// is a status change gated on the cancellability check.
func (s *orderService) CancelOrder(ctx context.Context, id string) (*types.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.CanBeCancelled() {
		return nil, newError(ErrorConflict, "order_not_cancellable", nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, types.OrderStatusCancelled); err != nil {
		return nil, newError(ErrorPersistence, "order_cancel_error", err)
	}
	order.Status = types.OrderStatusCancelled
	return order, nil
}

func (s *orderService) OrderStats(ctx context.Context) (*types.OrderStats, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, newError(ErrorPersistence, "order_stats_error", err)
	}
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, newError(ErrorPersistence, "order_stats_error", err)
	}
	return &types.OrderStats{
		TotalOrders: total,
		ByStatus:    byStatus,
	}, nil
}
