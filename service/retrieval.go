package service

import (
	"context"
	"strings"

	"github.com/booklyhq/support-be/types"
	"github.com/rs/zerolog/log"
)

// Result bounds carried over from the original behavior; kept as named
// constants rather than inferred intent.
const (
	maxRecentOrders     = 3
	maxKnowledgeResults = 3

	minTokenLength  = 3 // tokens must be longer than this
	maxSearchTokens = 5
)

const (
	toolOrderLookup          = "OrderLookup"
	toolOrderSearch          = "OrderSearch"
	toolKnowledgeSearch      = "KnowledgeSearch"
	toolKnowledgeRegexSearch = "KnowledgeRegexSearch"
)

// Each retrieval stage returns its own tool tags; the orchestrator merges
// them instead of threading a shared accumulator through the pipeline.
type orderRetrieval struct {
	orders []*types.Order
	tools  []string
}

type knowledgeRetrieval struct {
	articles []*types.KnowledgeArticle
	tools    []string
}

// retrieveOrders fetches order records for order-related intents. With an
// order id it looks up at most one order; with only an email it returns the
// most recent orders for that customer. With neither it returns nothing —
// never the whole collection. Persistence errors here are fatal to the
// request.
func (s *QueryService) retrieveOrders(ctx context.Context, intent Intent, orderID, email string) (orderRetrieval, error) {
	if intent != IntentOrderStatus && intent != IntentCancelOrder {
		return orderRetrieval{}, nil
	}

	if orderID != "" {
		order, err := s.orders.FindByOrderID(ctx, orderID)
		if err != nil {
			return orderRetrieval{}, newError(ErrorPersistence, "order_lookup_error", err)
		}
		if order == nil {
			return orderRetrieval{}, nil
		}
		return orderRetrieval{
			orders: []*types.Order{order},
			tools:  []string{toolOrderLookup},
		}, nil
	}

	if email != "" {
		orders, err := s.orders.FindByCustomerEmail(ctx, email, maxRecentOrders)
		if err != nil {
			return orderRetrieval{}, newError(ErrorPersistence, "order_search_error", err)
		}
		if len(orders) == 0 {
			return orderRetrieval{}, nil
		}
		return orderRetrieval{
			orders: orders,
			tools:  []string{toolOrderSearch},
		}, nil
	}

	return orderRetrieval{}, nil
}

// retrieveKnowledge always runs, regardless of intent. Relevance search
// failure is non-fatal and degrades to a substring match; failure of the
// fallback itself is fatal.
func (s *QueryService) retrieveKnowledge(ctx context.Context, query string) (knowledgeRetrieval, error) {
	tokens := searchTokens(query)
	if len(tokens) == 0 {
		return knowledgeRetrieval{}, nil
	}

	phrase := strings.Join(tokens, " ")
	articles, err := s.knowledge.Search(ctx, phrase, "", maxKnowledgeResults)
	if err == nil {
		if len(articles) == 0 {
			return knowledgeRetrieval{}, nil
		}
		return knowledgeRetrieval{
			articles: articles,
			tools:    []string{toolKnowledgeSearch},
		}, nil
	}

	log.Warn().Err(err).Msg("text search unavailable, using regex fallback")

	articles, err = s.knowledge.SearchFallback(ctx, tokens, maxKnowledgeResults)
	if err != nil {
		return knowledgeRetrieval{}, newError(ErrorPersistence, "knowledge_search_error", err)
	}
	if len(articles) == 0 {
		return knowledgeRetrieval{}, nil
	}
	return knowledgeRetrieval{
		articles: articles,
		tools:    []string{toolKnowledgeRegexSearch},
	}, nil
}

// searchTokens keeps the first few meaningful words of the query as the
// search phrase.
func searchTokens(query string) []string {
	var tokens []string
	for _, word := range strings.Fields(query) {
		if len(word) <= minTokenLength {
			continue
		}
		tokens = append(tokens, word)
		if len(tokens) == maxSearchTokens {
			break
		}
	}
	return tokens
}
