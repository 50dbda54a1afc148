package quadrant

import (
	"github.com/kwatari/article-quadrant/internal/apperr"
	"github.com/kwatari/article-quadrant/internal/model"
)

// maxEntities limits how many entities are promoted to insights; entities
// beyond the first ten rarely carry signal.
const maxEntities = 10

// Normalize flattens key points, topics and entities into a single ordered
// insight list. Key points come first, then topics, then entities, matching
// their order in the input.
func Normalize(insights model.Insights) ([]Insight, error) {
	out := make([]Insight, 0, len(insights.KeyPoints)+len(insights.MainTopics)+maxEntities)

	for _, point := range insights.KeyPoints {
		importance := 0.5
		if point.Importance != nil {
			importance = *point.Importance
		}
		sentiment := point.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		out = append(out, Insight{
			Content:    point.Point,
			Importance: importance,
			Sentiment:  sentiment,
			Category:   CategoryKeyPoint,
		})
	}

	for _, topic := range insights.MainTopics {
		relevance := 0.5
		if topic.Relevance != nil {
			relevance = *topic.Relevance
		}
		out = append(out, Insight{
			Content:    "Topic: " + topic.Topic,
			Importance: relevance,
			Sentiment:  "neutral",
			Category:   CategoryTopic,
		})
	}

	entities := insights.Entities
	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}
	for _, entity := range entities {
		// A missing frequency defaults to one mention; an explicit zero is
		// kept and scores zero importance.
		frequency := 1
		if entity.Frequency != nil {
			frequency = *entity.Frequency
		}
		importance := float64(frequency) / 10
		if importance > 1 {
			importance = 1
		}
		out = append(out, Insight{
			Content:    "Entity: " + entity.Entity,
			Importance: importance,
			Sentiment:  "neutral",
			Category:   CategoryEntity,
		})
	}

	if len(out) == 0 {
		return nil, apperr.NewQuadrantGeneration("no insights available for quadrant analysis", nil)
	}

	return out, nil
}
