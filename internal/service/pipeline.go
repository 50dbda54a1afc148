package service

import (
	"context"
	"log"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"

	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/quadrant"
)

// PipelineResult bundles everything one full run produces
type PipelineResult struct {
	AnalysisID string                  `json:"analysis_id"`
	Content    *model.Content          `json:"content"`
	Insights   *model.Insights         `json:"insights"`
	Quadrant   *model.QuadrantAnalysis `json:"quadrant_analysis"`
	Duration   time.Duration           `json:"-"`
}

// Pipeline runs the full source → content → insights → quadrant chain
type Pipeline struct {
	analyze   *Analyze
	generator *quadrant.Generator
}

func NewPipeline(analyze *Analyze, generator *quadrant.Generator) *Pipeline {
	return &Pipeline{
		analyze:   analyze,
		generator: generator,
	}
}

// Run executes the whole pipeline for one source
func (p *Pipeline) Run(
	ctx context.Context,
	source model.Source,
	cfg model.QuadrantConfig,
	opts model.VisualizationOptions,
	analysisOpts model.AnalysisOptions,
) (*PipelineResult, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	start := time.Now()
	analysisID := uuid.New().String()

	logger.Printf("Pipeline started id=%s source_type=%s", analysisID, source.Type)

	content, err := p.analyze.ExtractContent(ctx, source)
	if err != nil {
		logger.Printf("Pipeline failed id=%s stage=extract: %v", analysisID, err)
		return nil, err
	}

	insights, err := p.analyze.AnalyzeContent(ctx, *content, analysisOpts)
	if err != nil {
		logger.Printf("Pipeline failed id=%s stage=analyze: %v", analysisID, err)
		return nil, err
	}

	analysis, err := p.generator.Generate(*insights, cfg, opts)
	if err != nil {
		logger.Printf("Pipeline failed id=%s stage=quadrant: %v", analysisID, err)
		return nil, err
	}

	duration := time.Since(start)
	logger.Printf("Pipeline completed id=%s insights=%d duration_ms=%d",
		analysisID, analysis.Summary.TotalInsights, duration.Milliseconds())

	return &PipelineResult{
		AnalysisID: analysisID,
		Content:    content,
		Insights:   insights,
		Quadrant:   analysis,
		Duration:   duration,
	}, nil
}
