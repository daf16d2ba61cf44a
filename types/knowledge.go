package types

import "time"

const (
	CategoryShipping = "shipping"
	CategoryReturns  = "returns"
	CategoryPayment  = "payment"
	CategoryAccount  = "account"
	CategoryProducts = "products"
	CategoryGeneral  = "general"
)

// KnowledgeArticle is a support article in the knowledge base.
type KnowledgeArticle struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Category     string    `bson:"category" json:"category"`
	Title        string    `bson:"title" json:"title"`
	Content      string    `bson:"content" json:"content"`
	Keywords     []string  `bson:"keywords" json:"keywords"`
	Priority     int       `bson:"priority" json:"priority"`
	Views        int64     `bson:"views" json:"views"`
	HelpfulCount int64     `bson:"helpful_count" json:"helpful_count"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryShipping, CategoryReturns, CategoryPayment,
		CategoryAccount, CategoryProducts, CategoryGeneral:
		return true
	}
	return false
}
