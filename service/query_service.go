package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/booklyhq/support-be/repository"
	"github.com/booklyhq/support-be/types"
	"github.com/rs/zerolog/log"
)

const viewBumpTimeout = 5 * time.Second

// QueryService runs the support query pipeline: classify intent, extract
// entities, retrieve matching orders and knowledge articles, compose a prompt
// and generate the answer. One invocation per request, no shared state.
type QueryService struct {
	orders          repository.OrderRepo
	knowledge       repository.KnowledgeRepo
	ai              AIService
	generateTimeout time.Duration
}

// NewQueryService wires the pipeline. ai may be nil when no generation
// credential is configured; Process reports that as a configuration error
// before doing any retrieval work.
func NewQueryService(orders repository.OrderRepo, knowledge repository.KnowledgeRepo, ai AIService, generateTimeout time.Duration) *QueryService {
	if generateTimeout <= 0 {
		generateTimeout = 30 * time.Second
	}
	return &QueryService{
		orders:          orders,
		knowledge:       knowledge,
		ai:              ai,
		generateTimeout: generateTimeout,
	}
}

func (s *QueryService) Process(ctx context.Context, query string) (*types.QueryResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, newError(ErrorInvalidInput, "empty_query", nil)
	}
	if s.ai == nil {
		return nil, newError(ErrorConfiguration, "generation_api_key_not_set", nil)
	}

	intent := DetectIntent(query)
	email, orderID := ExtractEntities(query)

	log.Debug().
		Str("intent", string(intent)).
		Str("order_id", orderID).
		Msg("processing query")

	// Order and knowledge retrieval are independent; fan out and wait for
	// both before composing the prompt.
	var (
		wg           sync.WaitGroup
		orderRes     orderRetrieval
		knowledgeRes knowledgeRetrieval
		orderErr     error
		knowledgeErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		orderRes, orderErr = s.retrieveOrders(ctx, intent, orderID, email)
	}()
	go func() {
		defer wg.Done()
		knowledgeRes, knowledgeErr = s.retrieveKnowledge(ctx, query)
	}()
	wg.Wait()

	if orderErr != nil {
		return nil, orderErr
	}
	if knowledgeErr != nil {
		return nil, knowledgeErr
	}

	// View bumps are keyed to retrieval, not to generation succeeding, and
	// are fire and forget.
	if len(knowledgeRes.articles) > 0 {
		go s.bumpViews(knowledgeRes.articles)
	}

	tools := make([]string, 0, len(orderRes.tools)+len(knowledgeRes.tools)+1)
	tools = append(tools, orderRes.tools...)
	tools = append(tools, knowledgeRes.tools...)

	prompt := BuildPrompt(query, orderRes.orders, knowledgeRes.articles)

	tools = append(tools, s.ai.Name())

	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()

	answer, err := s.ai.Generate(genCtx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, newError(ErrorTimeout, "generation_timeout", err)
		}
		return nil, newError(ErrorUpstream, "generation_error", err)
	}

	return &types.QueryResult{
		Intent:    string(intent),
		Email:     email,
		OrderID:   orderID,
		Orders:    orderRes.orders,
		Articles:  knowledgeRes.articles,
		ToolsUsed: tools,
		Answer:    answer,
	}, nil
}

func (s *QueryService) bumpViews(articles []*types.KnowledgeArticle) {
	ctx, cancel := context.WithTimeout(context.Background(), viewBumpTimeout)
	defer cancel()

	for _, article := range articles {
		if err := s.knowledge.IncrementViews(ctx, article.ID); err != nil {
			log.Debug().Err(err).Str("article_id", article.ID).Msg("view increment failed")
		}
	}
}

// Feedback records a helpful vote for the article that answered the query.
func (s *QueryService) Feedback(ctx context.Context, req types.FeedbackRequest) error {
	if !req.Helpful || req.KnowledgeID == "" {
		return nil
	}
	if err := s.knowledge.MarkHelpful(ctx, req.KnowledgeID); err != nil {
		return newError(ErrorPersistence, "feedback_error", err)
	}
	return nil
}
