package quadrant

import (
	"fmt"

	"github.com/kwatari/article-quadrant/internal/apperr"
)

// DefaultMaxInsightsPerQuadrant caps how many insights one quadrant holds;
// overflow is silently dropped.
const DefaultMaxInsightsPerQuadrant = 15

// Buckets maps each quadrant to its classified insights in insertion order.
// Always iterate via quadrantOrder, never over the map directly.
type Buckets map[Quadrant][]*Insight

// Classify assigns a point to a quadrant by coordinate sign. Boundary points
// (x==0 or y==0) resolve toward Q3/Q4; this asymmetry is load-bearing for
// reproducibility and must not be changed.
func Classify(x, y float64) Quadrant {
	switch {
	case x > 0 && y > 0:
		return Q1
	case x <= 0 && y > 0:
		return Q2
	case x <= 0 && y <= 0:
		return Q3
	default: // x > 0 && y <= 0
		return Q4
	}
}

// ClassifyAll maps every insight to coordinates, classifies it, mutates its
// position fields in place and buckets it. Insights past a quadrant's cap
// are classified but not bucketed.
func ClassifyAll(insights []Insight, xDim XDimension, yDim YDimension, maxPerQuadrant int) (buckets Buckets, err error) {
	defer func() {
		if r := recover(); r != nil {
			buckets = nil
			err = apperr.NewQuadrantGeneration(fmt.Sprintf("insight classification failed: %v", r), nil)
		}
	}()

	if maxPerQuadrant <= 0 {
		maxPerQuadrant = DefaultMaxInsightsPerQuadrant
	}

	buckets = Buckets{Q1: {}, Q2: {}, Q3: {}, Q4: {}}

	for i := range insights {
		ins := &insights[i]
		x, y := MapCoordinates(*ins, xDim, yDim)
		ins.X = x
		ins.Y = y
		quadrant := Classify(x, y)
		ins.Quadrant = quadrant

		if len(buckets[quadrant]) < maxPerQuadrant {
			buckets[quadrant] = append(buckets[quadrant], ins)
		}
	}

	return buckets, nil
}
