package quadrant

import (
	"math"
	"strings"
)

// XDimension selects the heuristic that maps an insight onto the x axis
type XDimension string

const (
	XImportance   XDimension = "importance"
	XSentiment    XDimension = "sentiment"
	XNovelty      XDimension = "novelty"
	XPracticality XDimension = "practicality"
	XCustom       XDimension = "custom"
)

// YDimension selects the heuristic that maps an insight onto the y axis
type YDimension string

const (
	YUrgency     YDimension = "urgency"
	YImpact      YDimension = "impact"
	YFeasibility YDimension = "feasibility"
	YComplexity  YDimension = "complexity"
	YCustom      YDimension = "custom"
)

// Fixed lexicons for the text-based dimensions. Matching is substring-based
// and case-insensitive, so "immediately" matches "immediate".
var (
	practicalityLexicon = []string{"implement", "execute", "build", "create", "develop", "deploy"}
	urgencyLexicon      = []string{"immediate", "urgent", "critical", "now", "asap", "emergency"}
	complexityLexicon   = []string{"complex", "difficult", "challenging", "hard", "complicated"}
)

// MapCoordinates converts one insight into a point in [-1,1]^2. It is a pure
// function of the insight and the two dimension names. It never fails: a
// non-finite intermediate result falls back to the center (0,0) so the
// rendering pipeline stays total.
func MapCoordinates(ins Insight, xDim XDimension, yDim YDimension) (float64, float64) {
	importance := clamp(ins.Importance, 0, 1)
	sentiment := sentimentValue(ins.Sentiment)

	var x float64
	switch xDim {
	case XImportance:
		x = importance*2 - 1
	case XSentiment:
		x = sentiment
	case XNovelty:
		x = math.Min(uniqueWordRatio(ins.Content)*2-1, 1)
	case XPracticality:
		x = lexiconScore(ins.Content, practicalityLexicon)*2 - 1
	case XCustom:
		x = (importance + sentiment) / 2
	default:
		// Unrecognized dimensions use the custom formula.
		x = (importance + sentiment) / 2
	}

	var y float64
	switch yDim {
	case YUrgency:
		y = lexiconScore(ins.Content, urgencyLexicon)*2 - 1
	case YImpact:
		y = importance*2 - 1
	case YFeasibility:
		// More complexity language means lower feasibility.
		y = 1 - lexiconScore(ins.Content, complexityLexicon)*2
	case YComplexity:
		y = lexiconScore(ins.Content, complexityLexicon)*2 - 1
	case YCustom:
		y = (importance - sentiment) / 2
	default:
		y = (importance - sentiment) / 2
	}

	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0
	}

	return clamp(x, -1, 1), clamp(y, -1, 1)
}

// lexiconScore counts how many lexicon words appear in content and
// normalizes by the lexicon size. Each word counts at most once.
func lexiconScore(content string, lexicon []string) float64 {
	lower := strings.ToLower(content)
	matches := 0
	for _, word := range lexicon {
		if strings.Contains(lower, word) {
			matches++
		}
	}
	return float64(matches) / float64(len(lexicon))
}

// uniqueWordRatio measures vocabulary diversity of the content. Empty
// content reads as zero instead of dividing by zero.
func uniqueWordRatio(content string) float64 {
	words := strings.Fields(content)
	if len(words) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		seen[word] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
