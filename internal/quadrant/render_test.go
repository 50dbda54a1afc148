package quadrant

import (
	"strings"
	"testing"

	"github.com/kwatari/article-quadrant/internal/model"
)

func TestRenderSVGBasicStructure(t *testing.T) {
	insights := []Insight{
		{Content: "important finding", Importance: 0.8, Sentiment: "positive"},
	}
	buckets, err := ClassifyAll(insights, XImportance, YImpact, 15)
	if err != nil {
		t.Fatalf("Failed to classify insights: %v", err)
	}

	cfg := model.QuadrantConfig{Title: "Test Analysis"}
	svg, err := RenderSVG(buckets, cfg, model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to render SVG: %v", err)
	}

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("Expected SVG document to start with svg element")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("Expected SVG document to end with closing svg tag")
	}
	if !strings.Contains(svg, "Test Analysis") {
		t.Error("Expected title in SVG output")
	}
	if !strings.Contains(svg, "important finding") {
		t.Error("Expected insight text in SVG output")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("Expected insight marker in SVG output")
	}
	if !strings.Contains(svg, "Quadrants:") {
		t.Error("Expected legend in SVG output")
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	insights := []Insight{
		{Content: "a < b & c > d", Importance: 0.5, Sentiment: "neutral"},
	}
	buckets, err := ClassifyAll(insights, XImportance, YImpact, 15)
	if err != nil {
		t.Fatalf("Failed to classify insights: %v", err)
	}

	cfg := model.QuadrantConfig{Title: `"Quotes" & <Tags>`}
	svg, err := RenderSVG(buckets, cfg, model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to render SVG: %v", err)
	}

	if !strings.Contains(svg, "a &lt; b &amp; c &gt; d") {
		t.Error("Expected insight text to be XML-escaped")
	}
	if !strings.Contains(svg, "&quot;Quotes&quot; &amp; &lt;Tags&gt;") {
		t.Error("Expected title to be XML-escaped")
	}
}

func TestRenderSVGTogglesSections(t *testing.T) {
	buckets := Buckets{Q1: {}, Q2: {}, Q3: {}, Q4: {}}
	cfg := model.QuadrantConfig{}

	opts := model.DefaultVisualizationOptions()
	opts.ShowGrid = false
	opts.ShowLegend = false
	opts.ShowLabels = false

	svg, err := RenderSVG(buckets, cfg, opts)
	if err != nil {
		t.Fatalf("Failed to render SVG: %v", err)
	}

	if strings.Contains(svg, "grid-line\"/>") {
		t.Error("Expected no grid lines when grid is disabled")
	}
	if strings.Contains(svg, "Quadrants:") {
		t.Error("Expected no legend when legend is disabled")
	}
	if strings.Contains(svg, `class="quadrant-label"`) {
		t.Error("Expected no quadrant labels when labels are disabled")
	}
	// Default title is still drawn.
	if !strings.Contains(svg, "Quadrant Analysis") {
		t.Error("Expected default title in SVG output")
	}
}

func TestRenderSVGQuadrantOpacity(t *testing.T) {
	insights := []Insight{
		{Content: "only one insight", Importance: 1.0, Sentiment: "neutral"},
	}
	buckets, err := ClassifyAll(insights, XImportance, YImpact, 15)
	if err != nil {
		t.Fatalf("Failed to classify insights: %v", err)
	}

	svg, err := RenderSVG(buckets, model.QuadrantConfig{}, model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to render SVG: %v", err)
	}

	if strings.Count(svg, `opacity="0.3"`) != 1 {
		t.Errorf("Expected exactly one populated quadrant rectangle, got %d", strings.Count(svg, `opacity="0.3"`))
	}
	if strings.Count(svg, `opacity="0.1"`) != 3 {
		t.Errorf("Expected three empty quadrant rectangles, got %d", strings.Count(svg, `opacity="0.1"`))
	}
}

func TestRenderSVGCustomLabels(t *testing.T) {
	buckets := Buckets{Q1: {}, Q2: {}, Q3: {}, Q4: {}}
	cfg := model.QuadrantConfig{
		QuadrantLabels: []string{"Do First", "Schedule", "Delegate", "Eliminate"},
	}

	svg, err := RenderSVG(buckets, cfg, model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to render SVG: %v", err)
	}

	for _, label := range cfg.QuadrantLabels {
		if !strings.Contains(svg, label) {
			t.Errorf("Expected label %q in SVG output", label)
		}
	}
}

func TestRenderSVGIgnoresWrongLabelCount(t *testing.T) {
	buckets := Buckets{Q1: {}, Q2: {}, Q3: {}, Q4: {}}
	cfg := model.QuadrantConfig{QuadrantLabels: []string{"Only", "Two"}}

	svg, err := RenderSVG(buckets, cfg, model.DefaultVisualizationOptions())
	if err != nil {
		t.Fatalf("Failed to render SVG: %v", err)
	}

	if strings.Contains(svg, ">Only<") {
		t.Error("Expected partial label list to be ignored")
	}
	if !strings.Contains(svg, ">Q1<") {
		t.Error("Expected default Q1 label when label list is not length 4")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 40); got != "short" {
		t.Errorf("Expected unmodified text, got %q", got)
	}

	long := strings.Repeat("a", 50)
	got := Truncate(long, 40)
	if len(got) != 40 {
		t.Errorf("Expected length 40, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}

	// Rune-aware so multibyte text never splits mid-character.
	multibyte := strings.Repeat("日", 50)
	got = Truncate(multibyte, 40)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
	if strings.Count(got, "日") != 37 {
		t.Errorf("Expected 37 kept runes, got %d", strings.Count(got, "日"))
	}
}

func TestPaletteForFallback(t *testing.T) {
	if got := PaletteFor("professional"); got.Insight != "#1976d2" {
		t.Errorf("Expected professional insight color #1976d2, got %s", got.Insight)
	}
	if got := PaletteFor("vibrant"); got.Q1Fill != "#ff9800" {
		t.Errorf("Expected vibrant Q1 fill #ff9800, got %s", got.Q1Fill)
	}
	if got := PaletteFor("monochrome"); got.Q4Fill != "#c0c0c0" {
		t.Errorf("Expected monochrome Q4 fill #c0c0c0, got %s", got.Q4Fill)
	}
	if got := PaletteFor("does-not-exist"); got.Insight != "#1976d2" {
		t.Errorf("Expected fallback to professional palette, got %s", got.Insight)
	}
}
