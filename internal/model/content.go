package model

import "time"

// Source types accepted by the extraction pipeline
const (
	SourceTypeURL        = "url"
	SourceTypeFilePath   = "file_path"
	SourceTypeDirectText = "direct_text"
)

// Source describes where article content comes from
type Source struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ContentMetadata carries provenance information for extracted content
type ContentMetadata struct {
	SourceType       string    `json:"source_type"`
	SourceURL        string    `json:"source_url,omitempty"`
	Domain           string    `json:"domain,omitempty"`
	WordCount        int       `json:"word_count"`
	ExtractionMethod string    `json:"extraction_method"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// Content is the normalized article produced by the extraction collaborator
type Content struct {
	Title    string          `json:"title"`
	Text     string          `json:"text"`
	Metadata ContentMetadata `json:"metadata"`
}
