package types

import "time"

type StatusCount struct {
	Status      string  `bson:"_id" json:"status"`
	Count       int64   `bson:"count" json:"count"`
	TotalAmount float64 `bson:"total_amount" json:"total_amount"`
}

type TrendPoint struct {
	Date  string `bson:"_id" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

type CategoryCount struct {
	Category   string `bson:"_id" json:"category"`
	Count      int64  `bson:"count" json:"count"`
	TotalViews int64  `bson:"total_views" json:"total_views"`
}

type CustomerStat struct {
	Email      string    `bson:"_id" json:"email"`
	OrderCount int64     `bson:"order_count" json:"order_count"`
	TotalSpent float64   `bson:"total_spent" json:"total_spent"`
	LastOrder  time.Time `bson:"last_order" json:"last_order"`
}

type OrderStats struct {
	TotalOrders int64         `json:"totalOrders"`
	ByStatus    []StatusCount `json:"byStatus"`
}

type OrderAnalytics struct {
	Total    int64         `json:"total"`
	ByStatus []StatusCount `json:"byStatus"`
	Recent   []*Order      `json:"recent"`
	Trend    []TrendPoint  `json:"trend"`
}

type KnowledgeAnalytics struct {
	Total       int64               `json:"total"`
	ByCategory  []CategoryCount     `json:"byCategory"`
	TopArticles []*KnowledgeArticle `json:"topArticles"`
}

type DashboardData struct {
	Orders    OrderAnalytics     `json:"orders"`
	Knowledge KnowledgeAnalytics `json:"knowledge"`
	Timestamp time.Time          `json:"timestamp"`
}
