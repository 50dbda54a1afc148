package repository

import (
	"context"

	"github.com/kwatari/article-quadrant/internal/fetch"
	"github.com/kwatari/article-quadrant/internal/model"
)

type ContentRepository interface {
	Extract(ctx context.Context, source model.Source) (*model.Content, error)
}

type contentRepository struct {
	client *fetch.Client
}

func NewContentRepository(client *fetch.Client) ContentRepository {
	return &contentRepository{
		client: client,
	}
}

func (c *contentRepository) Extract(ctx context.Context, source model.Source) (*model.Content, error) {
	return c.client.Extract(ctx, source)
}
