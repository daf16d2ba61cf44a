package types

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is a customer order for one or more books.
type Order struct {
	ID                string     `bson:"_id,omitempty" json:"id"`
	OrderID           string     `bson:"order_id" json:"order_id"`
	CustomerEmail     string     `bson:"customer_email" json:"customer_email"`
	Status            string     `bson:"status" json:"status"`
	Items             []string   `bson:"items" json:"items"`
	ShippingAddress   string     `bson:"shipping_address" json:"shipping_address"`
	OrderDate         time.Time  `bson:"order_date" json:"order_date"`
	TrackingNumber    string     `bson:"tracking_number,omitempty" json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time `bson:"estimated_delivery,omitempty" json:"estimated_delivery,omitempty"`
	TotalAmount       float64    `bson:"total_amount" json:"total_amount"`
	CreatedAt         time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `bson:"updated_at" json:"updated_at"`
}

// CanBeCancelled reports whether the order is still early enough in its
// lifecycle to be cancelled.
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
