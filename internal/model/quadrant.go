package model

// AxisConfig describes one axis of the quadrant diagram
type AxisConfig struct {
	Label    string `json:"label"`
	MinLabel string `json:"min_label,omitempty"`
	MaxLabel string `json:"max_label,omitempty"`
	// Dimension selects the coordinate heuristic; see quadrant package for
	// the recognized values per axis.
	Dimension string `json:"dimension,omitempty"`
}

// QuadrantConfig describes the 2x2 layout requested by the caller
type QuadrantConfig struct {
	XAxis          *AxisConfig `json:"x_axis"`
	YAxis          *AxisConfig `json:"y_axis"`
	QuadrantLabels []string    `json:"quadrant_labels,omitempty"`
	Title          string      `json:"title,omitempty"`
}

// DefaultQuadrantConfig returns a fully-labeled axis configuration for
// callers that run the whole pipeline without supplying their own layout.
// The quadrant generator rejects configs with missing axes or labels, so
// defaults must carry both.
func DefaultQuadrantConfig() QuadrantConfig {
	return QuadrantConfig{
		XAxis: &AxisConfig{Label: "Importance", Dimension: "importance"},
		YAxis: &AxisConfig{Label: "Impact", Dimension: "impact"},
	}
}

// VisualizationOptions configures SVG output
type VisualizationOptions struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ColorScheme string `json:"color_scheme"`
	ShowLegend  bool   `json:"show_legend"`
	ShowGrid    bool   `json:"show_grid"`
	ShowLabels  bool   `json:"show_labels"`
}

// DefaultVisualizationOptions returns the standard rendering settings.
// JSON requests decode on top of this value so absent fields keep defaults.
func DefaultVisualizationOptions() VisualizationOptions {
	return VisualizationOptions{
		Width:       500,
		Height:      500,
		ColorScheme: "professional",
		ShowLegend:  true,
		ShowGrid:    true,
		ShowLabels:  true,
	}
}

// PlacedInsight is an insight after coordinate assignment and classification
type PlacedInsight struct {
	Content    string  `json:"content"`
	XPosition  float64 `json:"x_position"`
	YPosition  float64 `json:"y_position"`
	Quadrant   string  `json:"quadrant"`
	Weight     float64 `json:"weight"`
	Importance float64 `json:"importance"`
	Category   string  `json:"category"`
}

// QuadrantGroup is the per-quadrant slice of the analysis result
type QuadrantGroup struct {
	Quadrant      string          `json:"quadrant"`
	Label         string          `json:"label"`
	Insights      []PlacedInsight `json:"insights"`
	Count         int             `json:"count"`
	DominantTheme *string         `json:"dominant_theme"`
}

// Summary carries aggregate statistics over the classified quadrants
type Summary struct {
	TotalInsights    int            `json:"total_insights"`
	DominantQuadrant string         `json:"dominant_quadrant,omitempty"`
	AnalysisTitle    string         `json:"analysis_title"`
	KeyFindings      []string       `json:"key_findings"`
	Recommendations  []string       `json:"recommendations"`
	QuadrantCounts   map[string]int `json:"quadrant_counts"`
}

// QuadrantAnalysis is the complete result of one quadrant generation
type QuadrantAnalysis struct {
	SVGContent           string               `json:"svg_content"`
	Quadrants            []QuadrantGroup      `json:"quadrants"`
	Summary              Summary              `json:"summary"`
	ConfigUsed           QuadrantConfig       `json:"config_used"`
	VisualizationOptions VisualizationOptions `json:"visualization_options"`
}
