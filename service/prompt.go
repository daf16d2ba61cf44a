package service

import (
	"fmt"
	"strings"

	"github.com/booklyhq/support-be/types"
)

const (
	personaPreamble = "You are Bookly's helpful customer support agent. "

	// Shown when neither orders nor knowledge matched.
	noContextInstruction = "\n\nNo specific order or knowledge base information found. " +
		"Provide a helpful general response based on common e-commerce support practices."

	answerInstructions = "Provide a helpful, concise, and friendly response. If order information is provided, reference specific details. \n" +
		"Be professional but conversational. If you don't have enough information, politely ask for more details.\n" +
		"Do not mention that you're using a knowledge base or database - just provide the information naturally."

	calendarDateLayout = "Mon Jan 02 2006"
)

// BuildPrompt deterministically assembles the generation prompt from the
// retrieval results and the original question. The block structure is part of
// the observable contract: a single order gets the detailed block with the
// shipping address, multiple orders get the compact per-line form.
func BuildPrompt(query string, orders []*types.Order, articles []*types.KnowledgeArticle) string {
	var b strings.Builder
	b.WriteString(personaPreamble)

	switch {
	case len(orders) == 1:
		writeSingleOrder(&b, orders[0])
	case len(orders) > 1:
		writeOrderList(&b, orders)
	}

	if len(articles) > 0 {
		b.WriteString("\n\nRELEVANT KNOWLEDGE BASE:\n")
		for _, article := range articles {
			fmt.Fprintf(&b, "\n[%s] %s\n%s\n",
				strings.ToUpper(article.Category), article.Title, article.Content)
		}
	}

	if len(orders) == 0 && len(articles) == 0 {
		b.WriteString(noContextInstruction)
	}

	fmt.Fprintf(&b, "\n\nUSER QUESTION: %s\n\n", query)
	b.WriteString(answerInstructions)
	return b.String()
}

func writeSingleOrder(b *strings.Builder, order *types.Order) {
	b.WriteString("\n\nORDER DETAILS:\n")
	fmt.Fprintf(b, "Order ID: %s\n", order.OrderID)
	fmt.Fprintf(b, "Status: %s\n", order.Status)
	fmt.Fprintf(b, "Items: %s\n", strings.Join(order.Items, ", "))
	fmt.Fprintf(b, "Order Date: %s\n", order.OrderDate.Format(calendarDateLayout))
	if order.TrackingNumber != "" {
		fmt.Fprintf(b, "Tracking Number: %s\n", order.TrackingNumber)
	}
	if order.EstimatedDelivery != nil {
		fmt.Fprintf(b, "Estimated Delivery: %s\n", order.EstimatedDelivery.Format(calendarDateLayout))
	}
	fmt.Fprintf(b, "Shipping Address: %s\n", order.ShippingAddress)
}

func writeOrderList(b *strings.Builder, orders []*types.Order) {
	b.WriteString("\n\nRECENT ORDERS FOR CUSTOMER:\n")
	for _, order := range orders {
		fmt.Fprintf(b, "- Order %s: %s, ordered on %s",
			order.OrderID, order.Status, order.OrderDate.Format(calendarDateLayout))
		if order.TrackingNumber != "" {
			fmt.Fprintf(b, ", tracking: %s", order.TrackingNumber)
		}
		b.WriteString("\n")
	}
}
