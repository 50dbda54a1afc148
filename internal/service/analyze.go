package service

import (
	"context"
	"log"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/repository"
)

// Analyze extracts content and turns it into structured insights,
// consulting the cache before calling the NLP backend.
type Analyze struct {
	content  repository.ContentRepository
	insights repository.InsightRepository
	cache    repository.CacheRepository
}

func NewAnalyze(
	content repository.ContentRepository,
	insights repository.InsightRepository,
	cache repository.CacheRepository,
) *Analyze {
	return &Analyze{
		content:  content,
		insights: insights,
		cache:    cache,
	}
}

// ExtractContent acquires normalized content for a source
func (a *Analyze) ExtractContent(ctx context.Context, source model.Source) (*model.Content, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	start := time.Now()

	content, err := a.content.Extract(ctx, source)
	if err != nil {
		logger.Printf("Error extracting content type=%s: %v", source.Type, err)
		return nil, err
	}

	logger.Printf("Content extracted type=%s words=%d duration_ms=%d",
		source.Type, content.Metadata.WordCount, time.Since(start).Milliseconds())
	return content, nil
}

// AnalyzeContent returns insights for content, from cache when possible
func (a *Analyze) AnalyzeContent(ctx context.Context, content model.Content, opts model.AnalysisOptions) (*model.Insights, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	start := time.Now()

	if cached, err := a.cache.GetInsights(ctx, content); err == nil {
		logger.Printf("Insight cache hit title=%q", content.Title)
		return cached, nil
	}

	insights, err := a.insights.AnalyzeContent(ctx, content, opts)
	if err != nil {
		logger.Printf("Error analyzing content title=%q: %v", content.Title, err)
		return nil, err
	}

	// Cache failures must not fail the analysis.
	if err := a.cache.SetInsights(ctx, content, *insights); err != nil {
		logger.Printf("Warning: caching insights failed title=%q: %v", content.Title, err)
	}

	logger.Printf("Content analyzed title=%q key_points=%d topics=%d entities=%d duration_ms=%d",
		content.Title, len(insights.KeyPoints), len(insights.MainTopics), len(insights.Entities),
		time.Since(start).Milliseconds())
	return insights, nil
}
