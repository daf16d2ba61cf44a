package types

type QueryRequest struct {
	Query string `json:"query"`
}

type QueryMetadata struct {
	FoundOrders    int `json:"found_orders"`
	FoundKnowledge int `json:"found_knowledge"`
}

type QueryResponse struct {
	Success   bool          `json:"success"`
	Response  string        `json:"response"`
	ToolsUsed []string      `json:"tools_used"`
	Intent    string        `json:"intent"`
	Metadata  QueryMetadata `json:"metadata"`
}

// QueryResult is the transient outcome of one pipeline run. It lives for a
// single request and is never persisted.
type QueryResult struct {
	Intent    string
	Email     string
	OrderID   string
	Orders    []*Order
	Articles  []*KnowledgeArticle
	ToolsUsed []string
	Answer    string
}

type FeedbackRequest struct {
	Helpful     bool   `json:"helpful"`
	KnowledgeID string `json:"knowledge_id"`
}
