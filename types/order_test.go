package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanBeCancelled(t *testing.T) {
	cancellable := map[string]bool{
		OrderStatusPending:    true,
		OrderStatusProcessing: true,
		OrderStatusShipped:    false,
		OrderStatusDelivered:  false,
		OrderStatusCancelled:  false,
	}

	for status, want := range cancellable {
		order := &Order{Status: status}
		require.Equal(t, want, order.CanBeCancelled(), "status %s", status)
	}
}

func TestValidOrderStatus(t *testing.T) {
	require.True(t, ValidOrderStatus(OrderStatusPending))
	require.True(t, ValidOrderStatus(OrderStatusCancelled))
	require.False(t, ValidOrderStatus("lost"))
	require.False(t, ValidOrderStatus(""))
}

func TestValidCategory(t *testing.T) {
	require.True(t, ValidCategory(CategoryShipping))
	require.True(t, ValidCategory(CategoryGeneral))
	require.False(t, ValidCategory("rumors"))
	require.False(t, ValidCategory(""))
}
