package service

import (
	"context"
	"time"

	"github.com/booklyhq/support-be/repository"
	"github.com/booklyhq/support-be/types"
	"github.com/rs/zerolog/log"
)

type KnowledgeService interface {
	CreateArticle(ctx context.Context, article *types.KnowledgeArticle) error
	GetArticle(ctx context.Context, id string) (*types.KnowledgeArticle, error)
	ListArticles(ctx context.Context, category string) ([]*types.KnowledgeArticle, error)
	SearchArticles(ctx context.Context, query, category string, limit int64) ([]*types.KnowledgeArticle, error)
	UpdateArticle(ctx context.Context, id string, update *types.KnowledgeArticle) (*types.KnowledgeArticle, error)
	DeleteArticle(ctx context.Context, id string) (*types.KnowledgeArticle, error)
	MarkHelpful(ctx context.Context, id string) (*types.KnowledgeArticle, error)
}

type knowledgeService struct {
	repo repository.KnowledgeRepo
}

func NewKnowledgeService(repo repository.KnowledgeRepo) KnowledgeService {
	return &knowledgeService{
		repo: repo,
	}
}

func (s *knowledgeService) CreateArticle(ctx context.Context, article *types.KnowledgeArticle) error {
	if !types.ValidCategory(article.Category) {
		return newError(ErrorInvalidInput, "invalid_category", nil)
	}
	if article.Title == "" || article.Content == "" {
		return newError(ErrorInvalidInput, "missing_title_or_content", nil)
	}
	if article.Priority < 1 || article.Priority > 10 {
		if article.Priority == 0 {
			article.Priority = 1
		} else {
			return newError(ErrorInvalidInput, "priority_out_of_range", nil)
		}
	}
	article.CreatedAt = time.Now()
	article.UpdatedAt = time.Now()

	if err := s.repo.Create(ctx, article); err != nil {
		return newError(ErrorPersistence, "knowledge_create_error", err)
	}
	return nil
}

// GetArticle also counts the read as a view.
func (s *knowledgeService) GetArticle(ctx context.Context, id string) (*types.KnowledgeArticle, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(ErrorPersistence, "knowledge_get_error", err)
	}
	if article == nil {
		return nil, newError(ErrorNotFound, "knowledge_not_found", nil)
	}
	if err := s.repo.IncrementViews(ctx, article.ID); err != nil {
		return nil, newError(ErrorPersistence, "knowledge_view_error", err)
	}
	article.Views++
	return article, nil
}

func (s *knowledgeService) ListArticles(ctx context.Context, category string) ([]*types.KnowledgeArticle, error) {
	articles, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, newError(ErrorPersistence, "knowledge_list_error", err)
	}
	return articles, nil
}

// SearchArticles runs the relevance search directly; every hit counts as a
// view, as on the query pipeline path. Counting is incidental, a failed
// increment never fails the search.
func (s *knowledgeService) SearchArticles(ctx context.Context, query, category string, limit int64) ([]*types.KnowledgeArticle, error) {
	if query == "" {
		return nil, newError(ErrorInvalidInput, "empty_search_query", nil)
	}
	if limit <= 0 {
		limit = 10
	}
	articles, err := s.repo.Search(ctx, query, category, limit)
	if err != nil {
		return nil, newError(ErrorPersistence, "knowledge_search_error", err)
	}
	for _, article := range articles {
		if err := s.repo.IncrementViews(ctx, article.ID); err != nil {
			log.Debug().Err(err).Str("article_id", article.ID).Msg("view increment failed")
			continue
		}
		article.Views++
	}
	return articles, nil
}

func (s *knowledgeService) UpdateArticle(ctx context.Context, id string, update *types.KnowledgeArticle) (*types.KnowledgeArticle, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(ErrorPersistence, "knowledge_get_error", err)
	}
	if article == nil {
		return nil, newError(ErrorNotFound, "knowledge_not_found", nil)
	}

	if update.Category != "" {
		if !types.ValidCategory(update.Category) {
			return nil, newError(ErrorInvalidInput, "invalid_category", nil)
		}
		article.Category = update.Category
	}
	if update.Title != "" {
		article.Title = update.Title
	}
	if update.Content != "" {
		article.Content = update.Content
	}
	if len(update.Keywords) > 0 {
		article.Keywords = update.Keywords
	}
	if update.Priority != 0 {
		if update.Priority < 1 || update.Priority > 10 {
			return nil, newError(ErrorInvalidInput, "priority_out_of_range", nil)
		}
		article.Priority = update.Priority
	}
	article.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, id, article); err != nil {
		return nil, newError(ErrorPersistence, "knowledge_update_error", err)
	}
	return article, nil
}

func (s *knowledgeService) DeleteArticle(ctx context.Context, id string) (*types.KnowledgeArticle, error) {
	article, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, newError(ErrorPersistence, "knowledge_delete_error", err)
	}
	if article == nil {
		return nil, newError(ErrorNotFound, "knowledge_not_found", nil)
	}
	return article, nil
}

func (s *knowledgeService) MarkHelpful(ctx context.Context, id string) (*types.KnowledgeArticle, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(ErrorPersistence, "knowledge_get_error", err)
	}
	if article == nil {
		return nil, newError(ErrorNotFound, "knowledge_not_found", nil)
	}
	if err := s.repo.MarkHelpful(ctx, id); err != nil {
		return nil, newError(ErrorPersistence, "knowledge_helpful_error", err)
	}
	article.HelpfulCount++
	return article, nil
}
