package service

import (
	"strings"
	"testing"
	"time"

	"github.com/booklyhq/support-be/types"
	"github.com/stretchr/testify/require"
)

func testOrder(orderID, status string) *types.Order {
	return &types.Order{
		OrderID:         orderID,
		Status:          status,
		Items:           []string{"The Hobbit", "Animal Farm"},
		ShippingAddress: "123 Main St, Springfield, IL 62701",
		OrderDate:       time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildPromptSingleOrder(t *testing.T) {
	order := testOrder("ORD-54321", types.OrderStatusShipped)
	order.TrackingNumber = "TRK123"
	delivery := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	order.EstimatedDelivery = &delivery

	prompt := BuildPrompt("where is my order?", []*types.Order{order}, nil)

	require.Contains(t, prompt, "ORDER DETAILS:")
	require.Contains(t, prompt, "Order ID: ORD-54321")
	require.Contains(t, prompt, "Status: shipped")
	require.Contains(t, prompt, "Items: The Hobbit, Animal Farm")
	require.Contains(t, prompt, "Order Date: Fri Mar 14 2025")
	require.Contains(t, prompt, "Tracking Number: TRK123")
	require.Contains(t, prompt, "Estimated Delivery: Thu Mar 20 2025")
	require.Contains(t, prompt, "Shipping Address: 123 Main St")
	require.Contains(t, prompt, "USER QUESTION: where is my order?")
	require.NotContains(t, prompt, "RECENT ORDERS FOR CUSTOMER")
}

func TestBuildPromptSingleOrderOmitsEmptyFields(t *testing.T) {
	order := testOrder("ORD-1", types.OrderStatusPending)

	prompt := BuildPrompt("status?", []*types.Order{order}, nil)

	require.NotContains(t, prompt, "Tracking Number:")
	require.NotContains(t, prompt, "Estimated Delivery:")
}

func TestBuildPromptOrderList(t *testing.T) {
	first := testOrder("ORD-1", types.OrderStatusDelivered)
	first.TrackingNumber = "TRK999"
	second := testOrder("ORD-2", types.OrderStatusPending)

	prompt := BuildPrompt("my orders?", []*types.Order{first, second}, nil)

	require.Contains(t, prompt, "RECENT ORDERS FOR CUSTOMER:")
	require.Contains(t, prompt, "- Order ORD-1: delivered, ordered on Fri Mar 14 2025, tracking: TRK999")
	require.Contains(t, prompt, "- Order ORD-2: pending, ordered on Fri Mar 14 2025\n")
	// The compact list never leaks addresses.
	require.NotContains(t, prompt, "Shipping Address:")
	require.NotContains(t, prompt, "ORDER DETAILS:")
}

func TestBuildPromptKnowledge(t *testing.T) {
	articles := []*types.KnowledgeArticle{
		{Category: types.CategoryReturns, Title: "Return Policy Overview", Content: "30 days."},
		{Category: types.CategoryShipping, Title: "Standard Shipping Times", Content: "5-7 business days."},
	}

	prompt := BuildPrompt("how do returns work?", nil, articles)

	require.Contains(t, prompt, "RELEVANT KNOWLEDGE BASE:")
	require.Contains(t, prompt, "[RETURNS] Return Policy Overview\n30 days.")
	require.Contains(t, prompt, "[SHIPPING] Standard Shipping Times\n5-7 business days.")
	require.NotContains(t, prompt, "No specific order or knowledge base information found")
}

func TestBuildPromptNoContext(t *testing.T) {
	prompt := BuildPrompt("hello", nil, nil)

	require.Contains(t, prompt, "No specific order or knowledge base information found")
	require.Contains(t, prompt, "USER QUESTION: hello")
	require.True(t, strings.HasPrefix(prompt, "You are Bookly's helpful customer support agent."))
}
