package service

import (
	"context"
	"time"

	"github.com/booklyhq/support-be/repository"
	"github.com/booklyhq/support-be/types"
)

// Function-field fakes. Tests set only the methods the code under test is
// expected to call; anything else returns zero values.

type fakeOrderRepo struct {
	findByOrderIDFn       func(ctx context.Context, orderID string) (*types.Order, error)
	findByCustomerEmailFn func(ctx context.Context, email string, limit int64) ([]*types.Order, error)
	findByIDFn            func(ctx context.Context, id string) (*types.Order, error)
	updateStatusFn        func(ctx context.Context, id string, status string) error
	createFn              func(ctx context.Context, order *types.Order) error

	lookupCalls int
	searchCalls int
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *types.Order) error {
	if f.createFn != nil {
		return f.createFn(ctx, order)
	}
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*types.Order, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByOrderID(ctx context.Context, orderID string) (*types.Order, error) {
	f.lookupCalls++
	if f.findByOrderIDFn != nil {
		return f.findByOrderIDFn(ctx, orderID)
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByCustomerEmail(ctx context.Context, email string, limit int64) ([]*types.Order, error) {
	f.searchCalls++
	if f.findByCustomerEmailFn != nil {
		return f.findByCustomerEmailFn(ctx, email, limit)
	}
	return nil, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*types.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) Replace(ctx context.Context, id string, order *types.Order) error {
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakeOrderRepo) Recent(ctx context.Context, limit int64) ([]*types.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) CountAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeOrderRepo) CountByStatus(ctx context.Context) ([]types.StatusCount, error) {
	return nil, nil
}

func (f *fakeOrderRepo) TrendSince(ctx context.Context, since time.Time) ([]types.TrendPoint, error) {
	return nil, nil
}

func (f *fakeOrderRepo) TopCustomers(ctx context.Context, limit int64) ([]types.CustomerStat, error) {
	return nil, nil
}

type fakeKnowledgeRepo struct {
	createFn         func(ctx context.Context, article *types.KnowledgeArticle) error
	findByIDFn       func(ctx context.Context, id string) (*types.KnowledgeArticle, error)
	searchFn         func(ctx context.Context, phrase string, category string, limit int64) ([]*types.KnowledgeArticle, error)
	searchFallbackFn func(ctx context.Context, tokens []string, limit int64) ([]*types.KnowledgeArticle, error)
	deleteFn         func(ctx context.Context, id string) (*types.KnowledgeArticle, error)
	incrementViewsFn func(ctx context.Context, id string) error
	markHelpfulFn    func(ctx context.Context, id string) error

	searchCalls   int
	fallbackCalls int
}

func (f *fakeKnowledgeRepo) Create(ctx context.Context, article *types.KnowledgeArticle) error {
	if f.createFn != nil {
		return f.createFn(ctx, article)
	}
	return nil
}

func (f *fakeKnowledgeRepo) FindByID(ctx context.Context, id string) (*types.KnowledgeArticle, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeKnowledgeRepo) List(ctx context.Context, category string) ([]*types.KnowledgeArticle, error) {
	return nil, nil
}

func (f *fakeKnowledgeRepo) Search(ctx context.Context, phrase string, category string, limit int64) ([]*types.KnowledgeArticle, error) {
	f.searchCalls++
	if f.searchFn != nil {
		return f.searchFn(ctx, phrase, category, limit)
	}
	return nil, nil
}

func (f *fakeKnowledgeRepo) SearchFallback(ctx context.Context, tokens []string, limit int64) ([]*types.KnowledgeArticle, error) {
	f.fallbackCalls++
	if f.searchFallbackFn != nil {
		return f.searchFallbackFn(ctx, tokens, limit)
	}
	return nil, nil
}

func (f *fakeKnowledgeRepo) Replace(ctx context.Context, id string, article *types.KnowledgeArticle) error {
	return nil
}

func (f *fakeKnowledgeRepo) Delete(ctx context.Context, id string) (*types.KnowledgeArticle, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeKnowledgeRepo) IncrementViews(ctx context.Context, id string) error {
	if f.incrementViewsFn != nil {
		return f.incrementViewsFn(ctx, id)
	}
	return nil
}

func (f *fakeKnowledgeRepo) MarkHelpful(ctx context.Context, id string) error {
	if f.markHelpfulFn != nil {
		return f.markHelpfulFn(ctx, id)
	}
	return nil
}

func (f *fakeKnowledgeRepo) CountAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeKnowledgeRepo) CountByCategory(ctx context.Context) ([]types.CategoryCount, error) {
	return nil, nil
}

func (f *fakeKnowledgeRepo) TopViewed(ctx context.Context, limit int64) ([]*types.KnowledgeArticle, error) {
	return nil, nil
}

type fakeAI struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
	name       string

	lastPrompt string
}

func (f *fakeAI) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.generateFn != nil {
		return f.generateFn(ctx, prompt)
	}
	return "generated answer", nil
}

func (f *fakeAI) Name() string {
	if f.name != "" {
		return f.name
	}
	return "fake:model"
}
