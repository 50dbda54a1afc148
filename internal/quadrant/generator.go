package quadrant

import (
	"github.com/kwatari/article-quadrant/internal/apperr"
	"github.com/kwatari/article-quadrant/internal/model"
)

const (
	minCanvasSize = 300
	maxCanvasSize = 1000
)

// Generator runs the full quadrant pipeline: normalize, classify, render
// and summarize.
type Generator struct {
	maxPerQuadrant int
}

func NewGenerator() *Generator {
	return &Generator{maxPerQuadrant: DefaultMaxInsightsPerQuadrant}
}

// Generate produces a complete quadrant analysis for one set of insights.
// Validation happens before any geometry; empty insight sets surface as a
// QuadrantGenerationError from normalization.
func (g *Generator) Generate(insights model.Insights, cfg model.QuadrantConfig, opts model.VisualizationOptions) (*model.QuadrantAnalysis, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	normalized, err := Normalize(insights)
	if err != nil {
		return nil, err
	}

	xDim, yDim := resolveDimensions(cfg)

	buckets, err := ClassifyAll(normalized, xDim, yDim, g.maxPerQuadrant)
	if err != nil {
		return nil, err
	}

	svg, err := RenderSVG(buckets, cfg, opts)
	if err != nil {
		return nil, err
	}

	summary := Summarize(buckets, cfg)

	labels := resolveLabels(cfg.QuadrantLabels)
	groups := make([]model.QuadrantGroup, 0, 4)
	for i, q := range quadrantOrder {
		bucket := buckets[q]
		placed := make([]model.PlacedInsight, 0, len(bucket))
		for _, ins := range bucket {
			placed = append(placed, model.PlacedInsight{
				Content:    ins.Content,
				XPosition:  ins.X,
				YPosition:  ins.Y,
				Quadrant:   string(q),
				Weight:     ins.Importance,
				Importance: ins.Importance,
				Category:   string(ins.Category),
			})
		}
		groups = append(groups, model.QuadrantGroup{
			Quadrant:      string(q),
			Label:         labels[i],
			Insights:      placed,
			Count:         len(bucket),
			DominantTheme: dominantTheme(bucket),
		})
	}

	return &model.QuadrantAnalysis{
		SVGContent:           svg,
		Quadrants:            groups,
		Summary:              summary,
		ConfigUsed:           cfg,
		VisualizationOptions: opts,
	}, nil
}

func validateConfig(cfg model.QuadrantConfig) error {
	if cfg.XAxis == nil {
		return apperr.NewValidation("quadrant configuration must include 'x_axis'", "x_axis", nil)
	}
	if cfg.YAxis == nil {
		return apperr.NewValidation("quadrant configuration must include 'y_axis'", "y_axis", nil)
	}
	if cfg.XAxis.Label == "" {
		return apperr.NewValidation("X-axis must have a 'label'", "x_axis.label", nil)
	}
	if cfg.YAxis.Label == "" {
		return apperr.NewValidation("Y-axis must have a 'label'", "y_axis.label", nil)
	}
	return nil
}

func validateOptions(opts model.VisualizationOptions) error {
	if opts.Width < minCanvasSize || opts.Width > maxCanvasSize {
		return apperr.NewValidation("width must be between 300 and 1000", "width", opts.Width)
	}
	if opts.Height < minCanvasSize || opts.Height > maxCanvasSize {
		return apperr.NewValidation("height must be between 300 and 1000", "height", opts.Height)
	}
	return nil
}

func resolveDimensions(cfg model.QuadrantConfig) (XDimension, YDimension) {
	xDim := XImportance
	if cfg.XAxis != nil && cfg.XAxis.Dimension != "" {
		xDim = XDimension(cfg.XAxis.Dimension)
	}
	yDim := YImpact
	if cfg.YAxis != nil && cfg.YAxis.Dimension != "" {
		yDim = YDimension(cfg.YAxis.Dimension)
	}
	return xDim, yDim
}
