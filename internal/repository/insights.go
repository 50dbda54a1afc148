package repository

import (
	"context"

	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/nlp"
)

type InsightRepository interface {
	AnalyzeContent(ctx context.Context, content model.Content, opts model.AnalysisOptions) (*model.Insights, error)
}

type insightRepository struct {
	client *nlp.Client
}

func NewInsightRepository(client *nlp.Client) InsightRepository {
	return &insightRepository{
		client: client,
	}
}

func (r *insightRepository) AnalyzeContent(ctx context.Context, content model.Content, opts model.AnalysisOptions) (*model.Insights, error) {
	return r.client.AnalyzeContent(ctx, content, opts)
}
