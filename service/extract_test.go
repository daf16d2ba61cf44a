package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractEntities(t *testing.T) {
	t.Run("order id upper cased", func(t *testing.T) {
		email, orderID := ExtractEntities("where is ord-12345?")
		require.Empty(t, email)
		require.Equal(t, "ORD-12345", orderID)
	})

	t.Run("email preserved as written", func(t *testing.T) {
		email, orderID := ExtractEntities("my email is John.Doe@Example.com")
		require.Equal(t, "John.Doe@Example.com", email)
		require.Empty(t, orderID)
	})

	t.Run("both present", func(t *testing.T) {
		email, orderID := ExtractEntities("order ORD-777 for jane@shop.io please")
		require.Equal(t, "jane@shop.io", email)
		require.Equal(t, "ORD-777", orderID)
	})

	t.Run("no entities", func(t *testing.T) {
		email, orderID := ExtractEntities("how do returns work?")
		require.Empty(t, email)
		require.Empty(t, orderID)
	})

	t.Run("word boundary enforced", func(t *testing.T) {
		_, orderID := ExtractEntities("the code XORD-123 is not an order")
		require.Empty(t, orderID)
	})
}
