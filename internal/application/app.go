package application

import (
	"fmt"

	"github.com/kwatari/article-quadrant/internal/cache"
	"github.com/kwatari/article-quadrant/internal/fetch"
	"github.com/kwatari/article-quadrant/internal/infrastructure"
	"github.com/kwatari/article-quadrant/internal/nlp"
	"github.com/kwatari/article-quadrant/internal/quadrant"
	"github.com/kwatari/article-quadrant/internal/repository"
	"github.com/kwatari/article-quadrant/internal/service"
	"github.com/kwatari/article-quadrant/internal/transport/handler"
)

// Application represents the application with all business logic components
type Application struct {
	Config *infrastructure.Config

	ExtractHandler  *handler.Extract
	AnalyzeHandler  *handler.Analyze
	QuadrantHandler *handler.Quadrant
	PipelineHandler *handler.Pipeline
	CacheHandler    *handler.Cache

	PipelineService *service.Pipeline
	WatchService    *service.Watch

	cleanup func() error
}

// New creates a new application instance with all dependencies
func New() (*Application, error) {
	// Load configuration
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Initialize infrastructure clients
	fetchClient := fetch.NewClient(cfg.FetchTimeout, cfg.MaxRequestsPerMinute, cfg.MaxContentLength)
	nlpClient := nlp.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	cacheManager, err := cache.NewManager(cfg.CacheType, cfg.CacheDuration)
	if err != nil {
		return nil, fmt.Errorf("creating cache manager: %w", err)
	}

	// Create repositories
	contentRepo := repository.NewContentRepository(fetchClient)
	insightRepo := repository.NewInsightRepository(nlpClient)
	cacheRepo := repository.NewCacheRepository(cacheManager)

	// Create services (business logic)
	analyzeService := service.NewAnalyze(contentRepo, insightRepo, cacheRepo)
	pipelineService := service.NewPipeline(analyzeService, quadrant.NewGenerator())
	watchService := service.NewWatch(analyzeService, cfg.WatchURLs)

	// Create handlers (HTTP layer)
	extractHandler := handler.NewExtract(analyzeService)
	analyzeHandler := handler.NewAnalyze(analyzeService)
	quadrantHandler := handler.NewQuadrant(quadrant.NewGenerator())
	pipelineHandler := handler.NewPipeline(pipelineService)
	cacheHandler := handler.NewCache(cacheRepo)

	// Cleanup function
	cleanup := func() error {
		if cacheManager != nil {
			return cacheManager.Close()
		}
		return nil
	}

	return &Application{
		Config:          cfg,
		ExtractHandler:  extractHandler,
		AnalyzeHandler:  analyzeHandler,
		QuadrantHandler: quadrantHandler,
		PipelineHandler: pipelineHandler,
		CacheHandler:    cacheHandler,
		PipelineService: pipelineService,
		WatchService:    watchService,
		cleanup:         cleanup,
	}, nil
}

// Close cleans up application resources
func (a *Application) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
