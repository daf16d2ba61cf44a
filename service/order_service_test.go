package service

import (
	"context"
	"testing"

	"github.com/booklyhq/support-be/types"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderValidation(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	cases := []struct {
		name   string
		order  *types.Order
		reason string
	}{
		{"missing order id", &types.Order{CustomerEmail: "a@b.com", Items: []string{"1984"}}, "missing_order_id"},
		{"missing email", &types.Order{OrderID: "ORD-1", Items: []string{"1984"}}, "missing_customer_email"},
		{"missing items", &types.Order{OrderID: "ORD-1", CustomerEmail: "a@b.com"}, "missing_items"},
		{"negative amount", &types.Order{OrderID: "ORD-1", CustomerEmail: "a@b.com", Items: []string{"1984"}, TotalAmount: -1}, "negative_total_amount"},
		{"bad status", &types.Order{OrderID: "ORD-1", CustomerEmail: "a@b.com", Items: []string{"1984"}, Status: "lost"}, "invalid_status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.CreateOrder(context.Background(), tc.order)
			svcErr := requireServiceError(t, err, ErrorInvalidInput)
			require.Equal(t, tc.reason, svcErr.Reason)
		})
	}
}

func TestCreateOrderDefaults(t *testing.T) {
	var created *types.Order
	repo := &fakeOrderRepo{
		createFn: func(ctx context.Context, order *types.Order) error {
			created = order
			return nil
		},
	}
	svc := NewOrderService(repo)

	err := svc.CreateOrder(context.Background(), &types.Order{
		OrderID:       "ORD-1",
		CustomerEmail: "a@b.com",
		Items:         []string{"1984"},
	})
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusPending, created.Status)
	require.False(t, created.OrderDate.IsZero())
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	_, err := svc.GetOrder(context.Background(), "64b000000000000000000000")
	requireServiceError(t, err, ErrorNotFound)
}

func TestCancelOrder(t *testing.T) {
	t.Run("pending order is cancelled", func(t *testing.T) {
		var updatedStatus string
		repo := &fakeOrderRepo{
			findByIDFn: func(ctx context.Context, id string) (*types.Order, error) {
				return testOrder("ORD-1", types.OrderStatusPending), nil
			},
			updateStatusFn: func(ctx context.Context, id string, status string) error {
				updatedStatus = status
				return nil
			},
		}
		svc := NewOrderService(repo)

		order, err := svc.CancelOrder(context.Background(), "64b000000000000000000000")
		require.NoError(t, err)
		require.Equal(t, types.OrderStatusCancelled, order.Status)
		require.Equal(t, types.OrderStatusCancelled, updatedStatus)
	})

	t.Run("shipped order cannot be cancelled", func(t *testing.T) {
		repo := &fakeOrderRepo{
			findByIDFn: func(ctx context.Context, id string) (*types.Order, error) {
				return testOrder("ORD-1", types.OrderStatusShipped), nil
			},
			updateStatusFn: func(ctx context.Context, id string, status string) error {
				t.Fatal("should not be called")
				return nil
			},
		}
		svc := NewOrderService(repo)

		_, err := svc.CancelOrder(context.Background(), "64b000000000000000000000")
		svcErr := requireServiceError(t, err, ErrorConflict)
		require.Equal(t, "order_not_cancellable", svcErr.Reason)
	})

	t.Run("missing order", func(t *testing.T) {
		svc := NewOrderService(&fakeOrderRepo{})

		_, err := svc.CancelOrder(context.Background(), "64b000000000000000000000")
		requireServiceError(t, err, ErrorNotFound)
	})
}
