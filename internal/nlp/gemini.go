package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kwatari/article-quadrant/internal/apperr"
	"github.com/kwatari/article-quadrant/internal/model"
)

// Client handles Gemini API operations
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Gemini API client
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// geminiRequest represents the request structure for Gemini API
type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// geminiResponse represents the response structure from Gemini API
type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// AnalyzeContent extracts structured insights from article content
func (c *Client) AnalyzeContent(ctx context.Context, content model.Content, opts model.AnalysisOptions) (*model.Insights, error) {
	if strings.TrimSpace(content.Text) == "" {
		return nil, apperr.NewInsightAnalysis("no text content to analyze", nil)
	}

	prompt := buildInsightPrompt(content, opts)

	raw, err := c.callGeminiAPI(ctx, prompt)
	if err != nil {
		return nil, apperr.NewInsightAnalysis("insight extraction request failed", err)
	}

	insights, err := parseInsights(raw)
	if err != nil {
		return nil, apperr.NewInsightAnalysis("parsing insight response failed", err)
	}

	return insights, nil
}

// buildInsightPrompt creates a strict-JSON extraction prompt
func buildInsightPrompt(content model.Content, opts model.AnalysisOptions) string {
	var sections []string
	if opts.ExtractTopics {
		sections = append(sections, `"main_topics": [{"topic": string, "relevance": number 0-1, "keywords": [string]}]`)
	}
	sections = append(sections, `"key_points": [{"point": string, "importance": number 0-1, "sentiment": one of "very_positive","positive","neutral","negative","very_negative"}]`)
	if opts.KeyEntities {
		sections = append(sections, `"entities": [{"entity": string, "type": string, "frequency": integer}]`)
	}
	if opts.SentimentAnalysis {
		sections = append(sections, `"overall_sentiment": {"polarity": number -1..1, "label": string, "confidence": number 0-1}`)
	}
	if opts.IncludeStatistics {
		sections = append(sections, `"statistics": {"word_count": integer, "sentence_count": integer, "paragraph_count": integer, "avg_sentence_length": number}`)
	}

	maxInsights := opts.MaxInsights
	if maxInsights <= 0 {
		maxInsights = 20
	}

	title := content.Title
	if title == "" {
		title = "(untitled)"
	}

	return fmt.Sprintf(`You are an analysis engine. Analyze the article below and respond with ONLY a JSON object, no markdown fences, no commentary.

The JSON object must have exactly these fields:
{%s}

Rules:
- At most %d key points, ordered by importance.
- importance and relevance are decimals between 0 and 1.
- entity frequency is the number of mentions in the text.
- Language of the article: %s. Respond with JSON keys in English regardless.
- Base everything strictly on the article text; never invent facts.

Title: %s

Article text:
%s`, strings.Join(sections, ", "), maxInsights, opts.Language, title, content.Text)
}

// parseInsights decodes the model response, tolerating stray code fences
func parseInsights(raw string) (*model.Insights, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var insights model.Insights
	if err := json.Unmarshal([]byte(cleaned), &insights); err != nil {
		return nil, fmt.Errorf("unmarshaling insights: %w", err)
	}

	if insights.Empty() {
		return nil, fmt.Errorf("response contained no insights")
	}

	return &insights, nil
}

// callGeminiAPI makes the actual API call to Gemini
func (c *Client) callGeminiAPI(ctx context.Context, prompt string) (string, error) {
	geminiReq := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     0.2,
			TopP:            0.8,
			MaxOutputTokens: 8000,
		},
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(geminiReq)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
