package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Intent
	}{
		{"order status", "What's the status of order ORD-12345?", IntentOrderStatus},
		{"order tracking", "Where is my order?", IntentOrderStatus},
		{"track keyword", "Can I track my order somehow?", IntentOrderStatus},
		{"cancel", "I want to cancel my order", IntentCancelOrder},
		{"returns", "How do I return a book?", IntentReturns},
		{"refund", "When will I get my refund?", IntentReturns},
		{"shipping", "How long does shipping take?", IntentShipping},
		{"delivery", "Do you deliver to Canada?", IntentShipping},
		{"account", "I forgot my password", IntentAccount},
		{"login", "I can't login to my account", IntentAccount},
		{"general", "Do you sell gift cards?", IntentGeneral},
		{"empty-ish", "hello", IntentGeneral},
		{"case insensitive", "CANCEL MY ORDER PLEASE", IntentCancelOrder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DetectIntent(tc.query))
		})
	}
}

func TestDetectIntentTieBreaks(t *testing.T) {
	// "order"+"status" outranks cancel and returns.
	require.Equal(t, IntentOrderStatus,
		DetectIntent("what's the status of the order I tried to cancel and return?"))

	// cancel_order outranks returns when both match.
	require.Equal(t, IntentCancelOrder,
		DetectIntent("cancel my order, can I still return it?"))

	// returns outranks shipping.
	require.Equal(t, IntentReturns,
		DetectIntent("can I return an item that already shipped?"))
}
