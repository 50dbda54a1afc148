package quadrant

import (
	"fmt"
	"strings"

	"github.com/kwatari/article-quadrant/internal/model"
)

var recommendations = map[Quadrant]string{
	Q1: "Focus on strategic initiatives that require significant investment",
	Q2: "Prioritize quick wins that deliver high value",
	Q3: "Consider if low-effort items are worth pursuing",
	Q4: "Reevaluate high-effort, low-impact activities",
}

// Summarize derives headline statistics from classified buckets. It never
// fails: an internal panic downgrades to an empty summary so the rendered
// scene is still deliverable.
func Summarize(buckets Buckets, cfg model.QuadrantConfig) (summary model.Summary) {
	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}

	defer func() {
		if r := recover(); r != nil {
			summary = model.Summary{
				AnalysisTitle:   title,
				KeyFindings:     []string{},
				Recommendations: []string{},
				QuadrantCounts:  map[string]int{},
			}
		}
	}()

	total := 0
	counts := make(map[string]int, 4)
	findings := []string{}

	// Argmax over the fixed Q1..Q4 order so ties resolve to the earliest
	// quadrant.
	dominant := Quadrant("")
	bestCount := -1
	for _, q := range quadrantOrder {
		n := len(buckets[q])
		total += n
		counts[string(q)] = n
		if n > 0 {
			findings = append(findings, fmt.Sprintf("Quadrant %s contains %d insights", q, n))
		}
		if n > bestCount {
			dominant = q
			bestCount = n
		}
	}

	recs := []string{}
	if rec, ok := recommendations[dominant]; ok {
		recs = append(recs, rec)
	}

	return model.Summary{
		TotalInsights:    total,
		DominantQuadrant: string(dominant),
		AnalysisTitle:    title,
		KeyFindings:      findings,
		Recommendations:  recs,
		QuadrantCounts:   counts,
	}
}

// dominantTheme frequency-counts words longer than three characters across
// the first five insights of a bucket and returns the most frequent one.
// Ties resolve to the word seen first; an empty bucket or all-short words
// yield nil.
func dominantTheme(insights []*Insight) *string {
	limit := len(insights)
	if limit > 5 {
		limit = 5
	}

	counts := make(map[string]int)
	var order []string
	for _, ins := range insights[:limit] {
		for _, word := range strings.Fields(strings.ToLower(ins.Content)) {
			if len(word) <= 3 {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	var best string
	bestCount := 0
	for _, word := range order {
		if counts[word] > bestCount {
			best = word
			bestCount = counts[word]
		}
	}
	if bestCount == 0 {
		return nil
	}
	return &best
}
