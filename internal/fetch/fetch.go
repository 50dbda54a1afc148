package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/kwatari/article-quadrant/internal/apperr"
	"github.com/kwatari/article-quadrant/internal/model"
)

const maxFileSize = 50 * 1024 * 1024

var (
	scriptRe = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	styleRe  = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
	titleRe  = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
)

// Client acquires article content from URLs, local files and direct text
type Client struct {
	httpClient       *http.Client
	limiter          *RateLimiter
	maxContentLength int
	userAgent        string
}

// NewClient creates a content acquisition client
func NewClient(timeout time.Duration, maxRequestsPerMinute, maxContentLength int) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxContentLength <= 0 {
		maxContentLength = 50000
	}
	return &Client{
		httpClient:       &http.Client{Timeout: timeout},
		limiter:          NewRateLimiter(maxRequestsPerMinute),
		maxContentLength: maxContentLength,
		userAgent:        "ArticleQuadrantAnalyzer/1.0",
	}
}

// Extract produces normalized content for any supported source type
func (c *Client) Extract(ctx context.Context, source model.Source) (*model.Content, error) {
	switch source.Type {
	case model.SourceTypeURL:
		return c.extractFromURL(ctx, source.Content)
	case model.SourceTypeFilePath:
		return c.extractFromFile(source.Content)
	case model.SourceTypeDirectText:
		return c.extractFromText(source.Content), nil
	default:
		return nil, apperr.NewContentExtraction(
			fmt.Sprintf("unsupported source type: %s", source.Type),
			source.Type, source.Content, nil)
	}
}

// extractFromURL fetches a page and strips it down to readable text
func (c *Client) extractFromURL(ctx context.Context, rawURL string) (*model.Content, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, apperr.NewValidation("URL must use http or https", "url", rawURL)
	}

	if err := c.limiter.Wait(ctx, parsed.Host); err != nil {
		return nil, apperr.NewNetwork("rate limit wait interrupted", rawURL, err)
	}

	html, err := c.fetchHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	text := c.truncate(extractTextFromHTML(html))
	if text == "" {
		return nil, apperr.NewContentExtraction("no text content found", model.SourceTypeURL, rawURL, nil)
	}

	return &model.Content{
		Title: extractTitle(html),
		Text:  text,
		Metadata: model.ContentMetadata{
			SourceType:       model.SourceTypeURL,
			SourceURL:        rawURL,
			Domain:           parsed.Host,
			WordCount:        len(strings.Fields(text)),
			ExtractionMethod: "html",
			FetchedAt:        time.Now(),
		},
	}, nil
}

// extractFromFile reads article text from a local file
func (c *Client) extractFromFile(path string) (*model.Content, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperr.NewContentExtraction(
			fmt.Sprintf("file not found: %s", path),
			model.SourceTypeFilePath, path, err)
	}
	if info.IsDir() {
		return nil, apperr.NewContentExtraction(
			fmt.Sprintf("path is not a file: %s", path),
			model.SourceTypeFilePath, path, nil)
	}
	if info.Size() > maxFileSize {
		return nil, apperr.NewContentExtraction(
			fmt.Sprintf("file too large: %d bytes (maximum: %d bytes)", info.Size(), maxFileSize),
			model.SourceTypeFilePath, path, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewContentExtraction("reading file failed", model.SourceTypeFilePath, path, err)
	}

	raw := string(data)
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	method := "file"

	// HTML files go through the same stripper as fetched pages.
	if strings.Contains(strings.ToLower(raw), "<html") {
		if t := extractTitle(raw); t != "" {
			title = t
		}
		raw = extractTextFromHTML(raw)
		method = "file_html"
	}

	text := c.truncate(strings.TrimSpace(raw))
	if text == "" {
		return nil, apperr.NewContentExtraction("file contains no text", model.SourceTypeFilePath, path, nil)
	}

	return &model.Content{
		Title: title,
		Text:  text,
		Metadata: model.ContentMetadata{
			SourceType:       model.SourceTypeFilePath,
			WordCount:        len(strings.Fields(text)),
			ExtractionMethod: method,
			FetchedAt:        time.Now(),
		},
	}, nil
}

// extractFromText passes direct input through unchanged apart from truncation
func (c *Client) extractFromText(text string) *model.Content {
	text = c.truncate(strings.TrimSpace(text))
	return &model.Content{
		Text: text,
		Metadata: model.ContentMetadata{
			SourceType:       model.SourceTypeDirectText,
			WordCount:        len(strings.Fields(text)),
			ExtractionMethod: "direct",
			FetchedAt:        time.Now(),
		},
	}
}

// fetchHTML fetches HTML content from a URL
func (c *Client) fetchHTML(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return "", apperr.NewNetwork("creating request failed", rawURL, err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.NewNetwork("fetching URL failed", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.NewNetwork(
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), rawURL, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.NewNetwork("reading response body failed", rawURL, err)
	}

	return string(body), nil
}

func (c *Client) truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= c.maxContentLength {
		return text
	}
	return string(runes[:c.maxContentLength])
}

// extractTextFromHTML strips markup and normalizes whitespace
func extractTextFromHTML(html string) string {
	html = scriptRe.ReplaceAllString(html, "")
	html = styleRe.ReplaceAllString(html, "")
	text := tagRe.ReplaceAllString(html, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// extractTitle pulls the document title, empty when absent
func extractTitle(html string) string {
	match := titleRe.FindStringSubmatch(html)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(match[1], " "))
}
