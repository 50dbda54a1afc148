package quadrant

import (
	"fmt"
	"math"
	"strings"

	"github.com/kwatari/article-quadrant/internal/apperr"
	"github.com/kwatari/article-quadrant/internal/model"
)

const (
	canvasPadding = 60
	arrowSize     = 8

	insightLabelMaxLength = 40
)

const defaultTitle = "Quadrant Analysis"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// RenderSVG draws the full quadrant scene as a standalone SVG document.
// It is all-or-nothing: any internal panic is converted into a
// QuadrantGenerationError and no partial document is returned.
func RenderSVG(buckets Buckets, cfg model.QuadrantConfig, opts model.VisualizationOptions) (svg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			svg = ""
			err = apperr.NewQuadrantGeneration(fmt.Sprintf("svg generation failed: %v", r), nil)
		}
	}()

	width := opts.Width
	height := opts.Height
	palette := PaletteFor(opts.ColorScheme)
	labels := resolveLabels(cfg.QuadrantLabels)

	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}

	centerX := width / 2
	centerY := height / 2
	drawableWidth := width - 2*canvasPadding
	drawableHeight := height - 2*canvasPadding

	parts := []string{
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height),
		fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, width, height, palette.Background),
		`<defs>`,
		`<style>`,
		`  .title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; }`,
		`  .axis-label { font-family: Arial, sans-serif; font-size: 12px; fill: #666; }`,
		`  .quadrant-label { font-family: Arial, sans-serif; font-size: 14px; font-weight: bold; }`,
		`  .insight { font-family: Arial, sans-serif; font-size: 10px; }`,
		`  .grid-line { stroke: #e0e0e0; stroke-width: 1; stroke-dasharray: 2,2; }`,
		`  .axis-line { stroke: #333; stroke-width: 2; }`,
		`</style>`,
		`</defs>`,
	}

	// Quadrant background rectangles. Populated quadrants render more
	// opaque than empty ones.
	type rect struct{ x1, y1, x2, y2 int }
	quadrantRects := map[Quadrant]rect{
		Q1: {centerX, canvasPadding, centerX + drawableWidth/2, centerY},
		Q2: {canvasPadding, canvasPadding, centerX, centerY},
		Q3: {canvasPadding, centerY, centerX, centerY + drawableHeight/2},
		Q4: {centerX, centerY, centerX + drawableWidth/2, centerY + drawableHeight/2},
	}
	for _, q := range quadrantOrder {
		r := quadrantRects[q]
		opacity := "0.1"
		if len(buckets[q]) > 0 {
			opacity = "0.3"
		}
		parts = append(parts, fmt.Sprintf(
			`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="%s"/>`,
			r.x1, r.y1, r.x2-r.x1, r.y2-r.y1, palette.quadrantFill(q), opacity))
	}

	if opts.ShowGrid {
		parts = append(parts,
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`, centerX, canvasPadding, centerX, height-canvasPadding),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`, canvasPadding, centerY, width-canvasPadding, centerY))
	}

	// Axis lines and directional arrows.
	parts = append(parts,
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis-line"/>`, canvasPadding, centerY, width-canvasPadding, centerY),
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis-line"/>`, centerX, canvasPadding, centerX, height-canvasPadding),
		fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="%s"/>`,
			width-canvasPadding, centerY,
			width-canvasPadding-arrowSize, centerY-arrowSize/2,
			width-canvasPadding-arrowSize, centerY+arrowSize/2,
			palette.Axes),
		fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="%s"/>`,
			centerX, canvasPadding,
			centerX-arrowSize/2, canvasPadding+arrowSize,
			centerX+arrowSize/2, canvasPadding+arrowSize,
			palette.Axes))

	if opts.ShowLabels {
		xLabel, xMin, xMax := axisLabels(cfg.XAxis, "X Axis")
		yLabel, yMin, yMax := axisLabels(cfg.YAxis, "Y Axis")

		parts = append(parts,
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" class="axis-label">%s</text>`, width-canvasPadding, centerY+20, xmlEscaper.Replace(xMax)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="axis-label">%s</text>`, centerX, height-20, xmlEscaper.Replace(xLabel)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="start" class="axis-label">%s</text>`, canvasPadding, centerY+20, xmlEscaper.Replace(xMin)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" class="axis-label">%s</text>`, centerX-20, canvasPadding+10, xmlEscaper.Replace(yMax)),
			fmt.Sprintf(`<text x="20" y="%d" text-anchor="middle" transform="rotate(-90 20 %d)" class="axis-label">%s</text>`, centerY, centerY, xmlEscaper.Replace(yLabel)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" class="axis-label">%s</text>`, centerX-20, height-canvasPadding, xmlEscaper.Replace(yMin)))

		labelPositions := [4][2]int{
			{width - canvasPadding - 40, canvasPadding + 20},
			{canvasPadding + 40, canvasPadding + 20},
			{canvasPadding + 40, height - canvasPadding - 20},
			{width - canvasPadding - 40, height - canvasPadding - 20},
		}
		for i, pos := range labelPositions {
			parts = append(parts, fmt.Sprintf(
				`<text x="%d" y="%d" text-anchor="middle" class="quadrant-label">%s</text>`,
				pos[0], pos[1], xmlEscaper.Replace(labels[i])))
		}
	}

	// Insight markers and labels, one pair per bucketed insight.
	for _, q := range quadrantOrder {
		for _, ins := range buckets[q] {
			pixelX := centerX + roundToInt(ins.X*float64(width/2-canvasPadding))
			pixelY := centerY - roundToInt(ins.Y*float64(height/2-canvasPadding))

			circleSize := roundToInt(4 + ins.Importance*4)
			if circleSize < 3 {
				circleSize = 3
			}
			fontSize := roundToInt(10 + ins.Importance*4)
			if fontSize < 8 {
				fontSize = 8
			}

			parts = append(parts,
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s" stroke="%s" stroke-width="1"/>`,
					pixelX, pixelY, circleSize, palette.Insight, palette.InsightBorder),
				fmt.Sprintf(`<text x="%d" y="%d" class="insight" font-size="%dpx" fill="%s">%s</text>`,
					pixelX+circleSize+2, pixelY+3, fontSize, palette.Text,
					xmlEscaper.Replace(Truncate(ins.Content, insightLabelMaxLength))))
		}
	}

	if opts.ShowLegend {
		legendY := height - 40
		legendX := canvasPadding
		parts = append(parts,
			`<g transform="translate(0, -10)">`,
			fmt.Sprintf(`<text x="%d" y="%d" class="axis-label">Quadrants:</text>`, legendX, legendY))
		for i, q := range quadrantOrder {
			xPos := legendX + 80 + i*100
			parts = append(parts,
				fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" fill="%s" opacity="0.5"/>`,
					xPos, legendY-8, palette.quadrantFill(q)),
				fmt.Sprintf(`<text x="%d" y="%d" class="axis-label">%s</text>`,
					xPos+16, legendY, xmlEscaper.Replace(labels[i])))
		}
		parts = append(parts, `</g>`)
	}

	// Title goes on top of everything else.
	parts = append(parts, fmt.Sprintf(
		`<text x="%d" y="25" text-anchor="middle" class="title" fill="%s">%s</text>`,
		centerX, palette.Title, xmlEscaper.Replace(title)))

	parts = append(parts, `</svg>`)

	return strings.Join(parts, "\n"), nil
}

// Truncate shortens text to maxLength runes, reserving three for the
// ellipsis marker.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-3]) + "..."
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}

func resolveLabels(labels []string) [4]string {
	if len(labels) == 4 {
		return [4]string{labels[0], labels[1], labels[2], labels[3]}
	}
	return [4]string{"Q1", "Q2", "Q3", "Q4"}
}

func axisLabels(axis *model.AxisConfig, fallback string) (label, min, max string) {
	label, min, max = fallback, "Low", "High"
	if axis == nil {
		return label, min, max
	}
	if axis.Label != "" {
		label = axis.Label
	}
	if axis.MinLabel != "" {
		min = axis.MinLabel
	}
	if axis.MaxLabel != "" {
		max = axis.MaxLabel
	}
	return label, min, max
}
