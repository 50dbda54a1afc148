package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kwatari/article-quadrant/internal/mocks"
	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/quadrant"
)

func newTestPipeline(contentRepo *mocks.MockContentRepo, insightRepo *mocks.MockInsightRepo) *Pipeline {
	analyze := NewAnalyze(contentRepo, insightRepo, mocks.NewMockCacheRepo())
	return NewPipeline(analyze, quadrant.NewGenerator())
}

func testQuadrantConfig(title string) model.QuadrantConfig {
	cfg := model.DefaultQuadrantConfig()
	cfg.Title = title
	return cfg
}

func TestPipelineRun(t *testing.T) {
	pipeline := newTestPipeline(&mocks.MockContentRepo{}, &mocks.MockInsightRepo{})

	result, err := pipeline.Run(
		context.Background(),
		model.Source{Type: model.SourceTypeURL, Content: "http://example.com/article"},
		testQuadrantConfig("Pipeline Test"),
		model.DefaultVisualizationOptions(),
		model.DefaultAnalysisOptions(),
	)
	if err != nil {
		t.Fatalf("Failed to run pipeline: %v", err)
	}

	if result.AnalysisID == "" {
		t.Error("Expected non-empty analysis id")
	}
	if result.Content == nil || result.Content.Title != "Test Article" {
		t.Errorf("Expected extracted content in result, got %+v", result.Content)
	}
	if result.Insights == nil || len(result.Insights.KeyPoints) == 0 {
		t.Error("Expected insights in result")
	}
	if result.Quadrant == nil || result.Quadrant.SVGContent == "" {
		t.Error("Expected rendered quadrant analysis in result")
	}
	if result.Quadrant.Summary.TotalInsights != 1 {
		t.Errorf("Expected 1 total insight, got %d", result.Quadrant.Summary.TotalInsights)
	}
}

func TestPipelineRunUniqueIDs(t *testing.T) {
	pipeline := newTestPipeline(&mocks.MockContentRepo{}, &mocks.MockInsightRepo{})
	ctx := context.Background()
	source := model.Source{Type: model.SourceTypeDirectText, Content: "text"}

	first, err := pipeline.Run(ctx, source, model.DefaultQuadrantConfig(), model.DefaultVisualizationOptions(), model.DefaultAnalysisOptions())
	if err != nil {
		t.Fatalf("Failed first run: %v", err)
	}
	second, err := pipeline.Run(ctx, source, model.DefaultQuadrantConfig(), model.DefaultVisualizationOptions(), model.DefaultAnalysisOptions())
	if err != nil {
		t.Fatalf("Failed second run: %v", err)
	}

	if first.AnalysisID == second.AnalysisID {
		t.Error("Expected distinct analysis ids per run")
	}
}

func TestPipelineRunExtractFailure(t *testing.T) {
	pipeline := newTestPipeline(&mocks.MockContentRepo{Err: errors.New("unreachable")}, &mocks.MockInsightRepo{})

	_, err := pipeline.Run(
		context.Background(),
		model.Source{Type: model.SourceTypeURL, Content: "http://example.com"},
		model.DefaultQuadrantConfig(),
		model.DefaultVisualizationOptions(),
		model.DefaultAnalysisOptions(),
	)
	if err == nil {
		t.Fatal("Expected extraction failure to propagate")
	}
}

func TestPipelineRunInvalidOptions(t *testing.T) {
	pipeline := newTestPipeline(&mocks.MockContentRepo{}, &mocks.MockInsightRepo{})

	opts := model.DefaultVisualizationOptions()
	opts.Width = 5000

	_, err := pipeline.Run(
		context.Background(),
		model.Source{Type: model.SourceTypeDirectText, Content: "text"},
		model.DefaultQuadrantConfig(),
		opts,
		model.DefaultAnalysisOptions(),
	)
	if err == nil {
		t.Fatal("Expected validation failure for oversized canvas")
	}
}

func TestWatchRefresh(t *testing.T) {
	contentRepo := &mocks.MockContentRepo{}
	insightRepo := &mocks.MockInsightRepo{}
	analyze := NewAnalyze(contentRepo, insightRepo, mocks.NewMockCacheRepo())

	watch := NewWatch(analyze, []string{"http://example.com/a", "http://example.com/b"})
	watch.Refresh(context.Background())

	if contentRepo.Calls != 2 {
		t.Errorf("Expected 2 extractions, got %d", contentRepo.Calls)
	}
	if insightRepo.Calls != 2 {
		t.Errorf("Expected 2 analyses, got %d", insightRepo.Calls)
	}
}

func TestWatchRefreshContinuesOnError(t *testing.T) {
	contentRepo := &mocks.MockContentRepo{Err: errors.New("down")}
	analyze := NewAnalyze(contentRepo, &mocks.MockInsightRepo{}, mocks.NewMockCacheRepo())

	// Must not panic or abort even when every URL fails.
	watch := NewWatch(analyze, []string{"http://example.com/a", "http://example.com/b"})
	watch.Refresh(context.Background())

	if contentRepo.Calls != 2 {
		t.Errorf("Expected all URLs attempted, got %d", contentRepo.Calls)
	}
}
