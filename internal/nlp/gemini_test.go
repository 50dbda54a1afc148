package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kwatari/article-quadrant/internal/model"
)

func insightJSON() string {
	return `{
		"main_topics": [{"topic": "deployment", "relevance": 0.8, "keywords": ["ci", "cd"]}],
		"key_points": [{"point": "Automate releases", "importance": 0.9, "sentiment": "positive"}],
		"entities": [{"entity": "Jenkins", "type": "technology", "frequency": 3}],
		"overall_sentiment": {"polarity": 0.4, "label": "positive", "confidence": 0.7}
	}`
}

func geminiStub(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": reply}},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(response)
	}))
}

func TestAnalyzeContent(t *testing.T) {
	server := geminiStub(t, insightJSON())
	defer server.Close()

	client := NewClient("test-key", "test-model")
	client.baseURL = server.URL

	content := model.Content{Title: "CI article", Text: "Some article about deployment automation."}
	insights, err := client.AnalyzeContent(context.Background(), content, model.DefaultAnalysisOptions())
	if err != nil {
		t.Fatalf("Failed to analyze content: %v", err)
	}

	if len(insights.KeyPoints) != 1 {
		t.Fatalf("Expected 1 key point, got %d", len(insights.KeyPoints))
	}
	if insights.KeyPoints[0].Point != "Automate releases" {
		t.Errorf("Expected key point 'Automate releases', got '%s'", insights.KeyPoints[0].Point)
	}
	if insights.KeyPoints[0].Importance == nil || *insights.KeyPoints[0].Importance != 0.9 {
		t.Errorf("Expected importance 0.9, got %v", insights.KeyPoints[0].Importance)
	}
	if len(insights.MainTopics) != 1 || insights.MainTopics[0].Topic != "deployment" {
		t.Errorf("Expected topic 'deployment', got %+v", insights.MainTopics)
	}
	if insights.OverallSentiment == nil || insights.OverallSentiment.Label != "positive" {
		t.Errorf("Expected positive overall sentiment, got %+v", insights.OverallSentiment)
	}
}

func TestAnalyzeContentStripsCodeFences(t *testing.T) {
	server := geminiStub(t, "```json\n"+insightJSON()+"\n```")
	defer server.Close()

	client := NewClient("test-key", "test-model")
	client.baseURL = server.URL

	content := model.Content{Text: "article body"}
	insights, err := client.AnalyzeContent(context.Background(), content, model.DefaultAnalysisOptions())
	if err != nil {
		t.Fatalf("Failed to analyze fenced response: %v", err)
	}
	if len(insights.Entities) != 1 || insights.Entities[0].Entity != "Jenkins" {
		t.Errorf("Expected Jenkins entity, got %+v", insights.Entities)
	}
}

func TestAnalyzeContentEmptyText(t *testing.T) {
	client := NewClient("test-key", "test-model")

	_, err := client.AnalyzeContent(context.Background(), model.Content{Text: "   "}, model.DefaultAnalysisOptions())
	if err == nil {
		t.Fatal("Expected error for empty text")
	}
}

func TestAnalyzeContentMalformedResponse(t *testing.T) {
	server := geminiStub(t, "this is not json")
	defer server.Close()

	client := NewClient("test-key", "test-model")
	client.baseURL = server.URL

	_, err := client.AnalyzeContent(context.Background(), model.Content{Text: "article"}, model.DefaultAnalysisOptions())
	if err == nil {
		t.Fatal("Expected error for malformed response")
	}
}

func TestAnalyzeContentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", "test-model")
	client.baseURL = server.URL

	_, err := client.AnalyzeContent(context.Background(), model.Content{Text: "article"}, model.DefaultAnalysisOptions())
	if err == nil {
		t.Fatal("Expected error for API failure")
	}
	if !strings.Contains(err.Error(), "insight extraction request failed") {
		t.Errorf("Expected wrapped request failure, got '%s'", err.Error())
	}
}

func TestBuildInsightPromptRespectsOptions(t *testing.T) {
	content := model.Content{Title: "T", Text: "body"}

	opts := model.DefaultAnalysisOptions()
	full := buildInsightPrompt(content, opts)
	if !strings.Contains(full, "main_topics") || !strings.Contains(full, "overall_sentiment") {
		t.Error("Expected all sections in the default prompt")
	}

	opts.ExtractTopics = false
	opts.SentimentAnalysis = false
	opts.KeyEntities = false
	opts.IncludeStatistics = false
	minimal := buildInsightPrompt(content, opts)
	if strings.Contains(minimal, "main_topics") || strings.Contains(minimal, "overall_sentiment") {
		t.Error("Expected disabled sections to be omitted")
	}
	if !strings.Contains(minimal, "key_points") {
		t.Error("Expected key_points to always be requested")
	}
}
