package repository

import (
	"context"

	"github.com/kwatari/article-quadrant/internal/cache"
	"github.com/kwatari/article-quadrant/internal/model"
)

type CacheRepository interface {
	GetInsights(ctx context.Context, content model.Content) (*model.Insights, error)
	SetInsights(ctx context.Context, content model.Content, insights model.Insights) error
	IsCached(ctx context.Context, content model.Content) (bool, error)
	GetStats(ctx context.Context) (*cache.Stats, error)
	Clear(ctx context.Context) error
	Close() error
}

type cacheRepository struct {
	manager *cache.Manager
}

func NewCacheRepository(manager *cache.Manager) CacheRepository {
	return &cacheRepository{
		manager: manager,
	}
}

func (c *cacheRepository) GetInsights(ctx context.Context, content model.Content) (*model.Insights, error) {
	return c.manager.GetInsights(ctx, content)
}

func (c *cacheRepository) SetInsights(ctx context.Context, content model.Content, insights model.Insights) error {
	return c.manager.SetInsights(ctx, content, insights)
}

func (c *cacheRepository) IsCached(ctx context.Context, content model.Content) (bool, error) {
	return c.manager.IsCached(ctx, content)
}

func (c *cacheRepository) GetStats(ctx context.Context) (*cache.Stats, error) {
	return c.manager.GetStats(ctx)
}

func (c *cacheRepository) Clear(ctx context.Context) error {
	return c.manager.Clear(ctx)
}

func (c *cacheRepository) Close() error {
	return c.manager.Close()
}
