package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/booklyhq/support-be/repository"
	"github.com/booklyhq/support-be/types"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dashboardCacheKey = "analytics:dashboard"
	customersCacheKey = "analytics:customers"

	recentOrdersLimit = 5
	topArticlesLimit  = 5
	topCustomersLimit = 10
	trendWindowDays   = 30
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*types.DashboardData, error)
	Customers(ctx context.Context) ([]types.CustomerStat, error)
}

type analyticsService struct {
	orders    repository.OrderRepo
	knowledge repository.KnowledgeRepo
	cache     *redis.Client // nil disables caching
	cacheTTL  time.Duration
}

func NewAnalyticsService(orders repository.OrderRepo, knowledge repository.KnowledgeRepo, cache *redis.Client, cacheTTL time.Duration) AnalyticsService {
	return &analyticsService{
		orders:    orders,
		knowledge: knowledge,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*types.DashboardData, error) {
	var cached types.DashboardData
	if s.cacheGet(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	totalOrders, err := s.orders.CountAll(ctx)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_orders_error", err)
	}
	byStatus, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_orders_error", err)
	}
	recent, err := s.orders.Recent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_orders_error", err)
	}
	since := time.Now().AddDate(0, 0, -trendWindowDays)
	trend, err := s.orders.TrendSince(ctx, since)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_orders_error", err)
	}

	totalKnowledge, err := s.knowledge.CountAll(ctx)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_knowledge_error", err)
	}
	byCategory, err := s.knowledge.CountByCategory(ctx)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_knowledge_error", err)
	}
	topArticles, err := s.knowledge.TopViewed(ctx, topArticlesLimit)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_knowledge_error", err)
	}

	data := &types.DashboardData{
		Orders: types.OrderAnalytics{
			Total:    totalOrders,
			ByStatus: byStatus,
			Recent:   recent,
			Trend:    trend,
		},
		Knowledge: types.KnowledgeAnalytics{
			Total:       totalKnowledge,
			ByCategory:  byCategory,
			TopArticles: topArticles,
		},
		Timestamp: time.Now(),
	}

	s.cacheSet(ctx, dashboardCacheKey, data)
	return data, nil
}

func (s *analyticsService) Customers(ctx context.Context) ([]types.CustomerStat, error) {
	var cached []types.CustomerStat
	if s.cacheGet(ctx, customersCacheKey, &cached) {
		return cached, nil
	}

	stats, err := s.orders.TopCustomers(ctx, topCustomersLimit)
	if err != nil {
		return nil, newError(ErrorPersistence, "analytics_customers_error", err)
	}

	s.cacheSet(ctx, customersCacheKey, stats)
	return stats, nil
}

// Cache failures never fail the request; the aggregation just runs again.
func (s *analyticsService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Str("key", key).Msg("analytics cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("analytics cache decode failed")
		return false
	}
	return true
}

func (s *analyticsService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("analytics cache write failed")
	}
}
