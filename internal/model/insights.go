package model

// Topic is an extracted theme with a relevance score.
// Relevance is a pointer so an absent value can default to 0.5 while an
// explicit zero is preserved.
type Topic struct {
	Topic     string   `json:"topic"`
	Relevance *float64 `json:"relevance,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
}

// KeyPoint is a single extracted insight sentence
type KeyPoint struct {
	Point      string   `json:"point"`
	Importance *float64 `json:"importance,omitempty"`
	Sentiment  string   `json:"sentiment,omitempty"`
}

// Entity is a named entity with its mention frequency
type Entity struct {
	Entity    string `json:"entity"`
	Type      string `json:"type"`
	Frequency *int   `json:"frequency,omitempty"`
}

// OverallSentiment summarizes document-level sentiment
type OverallSentiment struct {
	Polarity   float64 `json:"polarity"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// TextStatistics carries readability metrics for the analyzed text
type TextStatistics struct {
	WordCount         int      `json:"word_count"`
	SentenceCount     int      `json:"sentence_count"`
	ParagraphCount    int      `json:"paragraph_count"`
	AvgSentenceLength float64  `json:"avg_sentence_length"`
	ReadabilityScore  *float64 `json:"readability_score,omitempty"`
	ComplexityLevel   string   `json:"complexity_level,omitempty"`
}

// Insights is the structure produced by the NLP collaborator and consumed
// by the quadrant pipeline
type Insights struct {
	MainTopics       []Topic           `json:"main_topics"`
	KeyPoints        []KeyPoint        `json:"key_points"`
	Entities         []Entity          `json:"entities"`
	OverallSentiment *OverallSentiment `json:"overall_sentiment,omitempty"`
	Statistics       *TextStatistics   `json:"statistics,omitempty"`
}

// Empty reports whether no insight source is present at all
func (i *Insights) Empty() bool {
	return len(i.MainTopics) == 0 && len(i.KeyPoints) == 0 && len(i.Entities) == 0
}

// AnalysisOptions configures the NLP extraction collaborator
type AnalysisOptions struct {
	ExtractTopics     bool   `json:"extract_topics"`
	SentimentAnalysis bool   `json:"sentiment_analysis"`
	KeyEntities       bool   `json:"key_entities"`
	IncludeStatistics bool   `json:"include_statistics"`
	MaxInsights       int    `json:"max_insights"`
	Language          string `json:"language"`
}

// DefaultAnalysisOptions returns the standard extraction settings
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		ExtractTopics:     true,
		SentimentAnalysis: true,
		KeyEntities:       true,
		IncludeStatistics: true,
		MaxInsights:       20,
		Language:          "auto",
	}
}
