package quadrant

// Category tags where a normalized insight came from
type Category string

const (
	CategoryKeyPoint Category = "key_point"
	CategoryTopic    Category = "topic"
	CategoryEntity   Category = "entity"
)

// Quadrant identifies one of the four regions of the plane
type Quadrant string

const (
	Q1 Quadrant = "Q1" // top-right
	Q2 Quadrant = "Q2" // top-left
	Q3 Quadrant = "Q3" // bottom-left
	Q4 Quadrant = "Q4" // bottom-right
)

// quadrantOrder fixes the iteration order everywhere buckets are walked,
// which keeps rendering and summaries deterministic.
var quadrantOrder = [4]Quadrant{Q1, Q2, Q3, Q4}

// Insight is a scorable unit of extracted meaning. X, Y and Quadrant are
// assigned exactly once by ClassifyAll and never recomputed afterwards.
type Insight struct {
	Content    string
	Importance float64
	Sentiment  string
	Category   Category

	X        float64
	Y        float64
	Quadrant Quadrant
}

// sentimentValues maps sentiment labels onto [-1, 1]. Unknown labels read
// as neutral.
var sentimentValues = map[string]float64{
	"very_positive": 1.0,
	"positive":      0.5,
	"neutral":       0.0,
	"negative":      -0.5,
	"very_negative": -1.0,
}

func sentimentValue(label string) float64 {
	return sentimentValues[label]
}
