package quadrant

import (
	"errors"
	"math"
	"testing"

	"github.com/kwatari/article-quadrant/internal/apperr"
	"github.com/kwatari/article-quadrant/internal/model"
)

func sampleInsights() model.Insights {
	return model.Insights{
		KeyPoints: []model.KeyPoint{
			{Point: "Implement the new deployment pipeline immediately", Importance: floatPtr(0.9), Sentiment: "positive"},
			{Point: "Legacy system maintenance is costly", Importance: floatPtr(0.3), Sentiment: "negative"},
		},
		MainTopics: []model.Topic{
			{Topic: "infrastructure", Relevance: floatPtr(0.6)},
		},
		Entities: []model.Entity{
			{Entity: "Docker", Type: "technology", Frequency: intPtr(4)},
		},
	}
}

func sampleConfig(title string) model.QuadrantConfig {
	cfg := model.DefaultQuadrantConfig()
	cfg.Title = title
	return cfg
}

func TestGenerateFullPipeline(t *testing.T) {
	gen := NewGenerator()

	analysis, err := gen.Generate(sampleInsights(), sampleConfig("Release Review"), model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to generate analysis: %v", err)
	}

	if analysis.SVGContent == "" {
		t.Error("Expected non-empty SVG content")
	}
	if len(analysis.Quadrants) != 4 {
		t.Fatalf("Expected 4 quadrant groups, got %d", len(analysis.Quadrants))
	}
	if analysis.Quadrants[0].Quadrant != "Q1" {
		t.Errorf("Expected groups ordered Q1 first, got %s", analysis.Quadrants[0].Quadrant)
	}
	if analysis.Summary.TotalInsights != 4 {
		t.Errorf("Expected 4 total insights, got %d", analysis.Summary.TotalInsights)
	}
	if analysis.Summary.AnalysisTitle != "Release Review" {
		t.Errorf("Expected title 'Release Review', got %s", analysis.Summary.AnalysisTitle)
	}

	// Placed insights mirror the classification results.
	for _, group := range analysis.Quadrants {
		if group.Count != len(group.Insights) {
			t.Errorf("Expected count %d to match insights length %d", group.Count, len(group.Insights))
		}
		for _, ins := range group.Insights {
			if ins.Quadrant != group.Quadrant {
				t.Errorf("Expected insight quadrant %s, got %s", group.Quadrant, ins.Quadrant)
			}
			if ins.Weight != ins.Importance {
				t.Errorf("Expected weight to equal importance, got %v vs %v", ins.Weight, ins.Importance)
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	gen := NewGenerator()
	cfg := sampleConfig("Stability Check")
	opts := model.DefaultVisualizationOptions()

	first, err := gen.Generate(sampleInsights(), cfg, opts)
	if err != nil {
		t.Fatalf("Failed first generation: %v", err)
	}
	second, err := gen.Generate(sampleInsights(), cfg, opts)
	if err != nil {
		t.Fatalf("Failed second generation: %v", err)
	}

	if first.SVGContent != second.SVGContent {
		t.Error("Expected byte-identical SVG across identical runs")
	}
	for q, n := range first.Summary.QuadrantCounts {
		if second.Summary.QuadrantCounts[q] != n {
			t.Errorf("Expected identical count for %s, got %d vs %d", q, n, second.Summary.QuadrantCounts[q])
		}
	}
}

func TestGeneratePracticalityUrgencyRoundTrip(t *testing.T) {
	insights := model.Insights{
		KeyPoints: []model.KeyPoint{
			{Point: "Implement the new deployment pipeline immediately", Importance: floatPtr(0.9), Sentiment: "positive"},
		},
	}
	cfg := model.QuadrantConfig{
		XAxis: &model.AxisConfig{Label: "Practicality", Dimension: "practicality"},
		YAxis: &model.AxisConfig{Label: "Urgency", Dimension: "urgency"},
	}

	gen := NewGenerator()
	analysis, err := gen.Generate(insights, cfg, model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to generate analysis: %v", err)
	}

	// "implement" and "deploy" (inside "deployment") match the practicality
	// lexicon, "immediate" (inside "immediately") matches urgency. Two and
	// one matches still score below the lexicon midpoint, so the insight
	// lands in Q3.
	q3 := analysis.Quadrants[2]
	if q3.Count != 1 {
		t.Fatalf("Expected the insight in Q3, got counts %v", analysis.Summary.QuadrantCounts)
	}
	placed := q3.Insights[0]
	wantX := 2.0/6.0*2 - 1
	if math.Abs(placed.XPosition-wantX) > 1e-9 {
		t.Errorf("Expected x %v from two practicality matches, got %v", wantX, placed.XPosition)
	}
	wantY := 1.0/6.0*2 - 1
	if math.Abs(placed.YPosition-wantY) > 1e-9 {
		t.Errorf("Expected y %v from one urgency match, got %v", wantY, placed.YPosition)
	}
}

func TestGenerateEmptyInsights(t *testing.T) {
	gen := NewGenerator()

	_, err := gen.Generate(model.Insights{}, model.DefaultQuadrantConfig(), model.DefaultVisualizationOptions())
	if err == nil {
		t.Fatal("Expected error for empty insights")
	}

	var genErr *apperr.QuadrantGenerationError
	if !errors.As(err, &genErr) {
		t.Errorf("Expected QuadrantGenerationError, got %T", err)
	}
}

func TestGenerateValidatesDimensions(t *testing.T) {
	gen := NewGenerator()

	opts := model.DefaultVisualizationOptions()
	opts.Width = 1200

	_, err := gen.Generate(sampleInsights(), model.DefaultQuadrantConfig(), opts)
	if err == nil {
		t.Fatal("Expected validation error for oversized width")
	}

	var valErr *apperr.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	if valErr.Field != "width" {
		t.Errorf("Expected field 'width', got %s", valErr.Field)
	}

	opts = model.DefaultVisualizationOptions()
	opts.Height = 100
	_, err = gen.Generate(sampleInsights(), model.DefaultQuadrantConfig(), opts)
	if !errors.As(err, &valErr) {
		t.Fatalf("Expected ValidationError for undersized height, got %T", err)
	}
}

func TestGenerateValidatesAxisConfig(t *testing.T) {
	gen := NewGenerator()
	opts := model.DefaultVisualizationOptions()

	tests := []struct {
		name  string
		cfg   model.QuadrantConfig
		field string
	}{
		{
			name:  "missing x axis",
			cfg:   model.QuadrantConfig{YAxis: &model.AxisConfig{Label: "Impact"}},
			field: "x_axis",
		},
		{
			name:  "missing y axis",
			cfg:   model.QuadrantConfig{XAxis: &model.AxisConfig{Label: "Importance"}},
			field: "y_axis",
		},
		{
			name: "missing x label",
			cfg: model.QuadrantConfig{
				XAxis: &model.AxisConfig{Dimension: "importance"},
				YAxis: &model.AxisConfig{Label: "Impact"},
			},
			field: "x_axis.label",
		},
		{
			name: "missing y label",
			cfg: model.QuadrantConfig{
				XAxis: &model.AxisConfig{Label: "Importance"},
				YAxis: &model.AxisConfig{Dimension: "impact"},
			},
			field: "y_axis.label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(sampleInsights(), tt.cfg, opts)
			if err == nil {
				t.Fatal("Expected validation error for incomplete axis config")
			}

			var valErr *apperr.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("Expected ValidationError, got %T", err)
			}
			if valErr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, valErr.Field)
			}
		})
	}
}

func TestGenerateDefaultDimensions(t *testing.T) {
	// Labeled axes without dimensions fall back to x=importance and
	// y=impact; importance 0.9 lands the key point in Q1.
	insights := model.Insights{
		KeyPoints: []model.KeyPoint{
			{Point: "strong signal", Importance: floatPtr(0.9)},
		},
	}
	cfg := model.QuadrantConfig{
		XAxis: &model.AxisConfig{Label: "Importance"},
		YAxis: &model.AxisConfig{Label: "Impact"},
	}

	gen := NewGenerator()
	analysis, err := gen.Generate(insights, cfg, model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to generate analysis: %v", err)
	}

	if analysis.Summary.QuadrantCounts["Q1"] != 1 {
		t.Errorf("Expected insight in Q1, got counts %v", analysis.Summary.QuadrantCounts)
	}
}
