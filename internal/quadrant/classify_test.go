package quadrant

import (
	"testing"
)

func TestClassifyTieBreaks(t *testing.T) {
	cases := []struct {
		x, y float64
		want Quadrant
	}{
		{0, 0, Q3},
		{0, 0.5, Q2},
		{0.5, 0, Q4},
		{-0.001, 0.001, Q2},
		{0.5, 0.5, Q1},
		{-0.5, -0.5, Q3},
		{0.5, -0.5, Q4},
	}

	for _, c := range cases {
		got := Classify(c.x, c.y)
		if got != c.want {
			t.Errorf("Expected %s for (%v,%v), got %s", c.want, c.x, c.y, got)
		}
	}
}

func TestClassifyAllCapsQuadrant(t *testing.T) {
	// 20 insights with importance 1.0 all land at (1,1) in Q1.
	insights := make([]Insight, 20)
	for i := range insights {
		insights[i] = Insight{Content: "high value item", Importance: 1.0, Sentiment: "neutral"}
	}

	buckets, err := ClassifyAll(insights, XImportance, YImpact, 15)
	if err != nil {
		t.Fatalf("Failed to classify insights: %v", err)
	}

	if len(buckets[Q1]) != 15 {
		t.Errorf("Expected 15 insights in Q1, got %d", len(buckets[Q1]))
	}

	// Every insight still carries its position even past the cap.
	for i := range insights {
		if insights[i].Quadrant != Q1 {
			t.Errorf("Expected insight %d classified as Q1, got %s", i, insights[i].Quadrant)
		}
	}
}

func TestClassifyAllAssignsPositions(t *testing.T) {
	insights := []Insight{
		{Content: "good news", Importance: 0.9, Sentiment: "positive"},
		{Content: "bad news", Importance: 0.1, Sentiment: "negative"},
	}

	buckets, err := ClassifyAll(insights, XImportance, YImpact, 15)
	if err != nil {
		t.Fatalf("Failed to classify insights: %v", err)
	}

	if len(buckets[Q1]) != 1 {
		t.Errorf("Expected 1 insight in Q1, got %d", len(buckets[Q1]))
	}
	if len(buckets[Q3]) != 1 {
		t.Errorf("Expected 1 insight in Q3, got %d", len(buckets[Q3]))
	}

	if insights[0].X <= 0 || insights[0].Y <= 0 {
		t.Errorf("Expected positive coordinates for first insight, got (%v,%v)", insights[0].X, insights[0].Y)
	}
	if insights[1].Quadrant != Q3 {
		t.Errorf("Expected second insight in Q3, got %s", insights[1].Quadrant)
	}
}

func TestClassifyAllEmptyInput(t *testing.T) {
	buckets, err := ClassifyAll(nil, XImportance, YImpact, 15)
	if err != nil {
		t.Fatalf("Failed to classify empty input: %v", err)
	}

	for _, q := range quadrantOrder {
		if len(buckets[q]) != 0 {
			t.Errorf("Expected empty bucket for %s, got %d entries", q, len(buckets[q]))
		}
	}
}
