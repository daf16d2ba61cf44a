package service

import "strings"

type Intent string

const (
	IntentOrderStatus Intent = "order_status"
	IntentCancelOrder Intent = "cancel_order"
	IntentReturns     Intent = "returns"
	IntentShipping    Intent = "shipping"
	IntentAccount     Intent = "account"
	IntentGeneral     Intent = "general"
)

type intentRule struct {
	match  func(q string) bool
	intent Intent
}

// Rules are evaluated in order and the first match wins. The ordering is a
// deliberate tie-break: "cancel my order, can I still return it" must resolve
// to cancel_order, not returns.
var intentRules = []intentRule{
	{
		match: func(q string) bool {
			return strings.Contains(q, "order") &&
				(strings.Contains(q, "status") || strings.Contains(q, "where") || strings.Contains(q, "track"))
		},
		intent: IntentOrderStatus,
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "cancel") && strings.Contains(q, "order")
		},
		intent: IntentCancelOrder,
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "return") || strings.Contains(q, "refund")
		},
		intent: IntentReturns,
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "ship") || strings.Contains(q, "deliver")
		},
		intent: IntentShipping,
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "password") || strings.Contains(q, "reset") || strings.Contains(q, "login")
		},
		intent: IntentAccount,
	},
}

// DetectIntent maps a raw customer query to one of the fixed intent labels.
func DetectIntent(query string) Intent {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		if rule.match(q) {
			return rule.intent
		}
	}
	return IntentGeneral
}
