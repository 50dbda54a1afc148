package apperr

import (
	"errors"
)

// Category classifies errors for machine handling
type Category string

const (
	CategoryNetwork       Category = "network"
	CategoryFileSystem    Category = "file_system"
	CategoryContent       Category = "content"
	CategoryAnalysis      Category = "analysis"
	CategoryVisualization Category = "visualization"
	CategoryValidation    Category = "validation"
	CategoryUnknown       Category = "unknown"
)

// Severity indicates how serious an error is
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AnalysisError is the base error for all domain failures
type AnalysisError struct {
	Message  string
	Category Category
	Severity Severity
	Details  map[string]interface{}
	cause    error
}

func (e *AnalysisError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.cause
}

// ValidationError reports malformed or missing input before any computation
type ValidationError struct {
	AnalysisError
	Field string
	Value interface{}
}

// NewValidation creates a validation error for a specific field
func NewValidation(message, field string, value interface{}) *ValidationError {
	details := map[string]interface{}{}
	if field != "" {
		details["field"] = field
	}
	if value != nil {
		details["value"] = value
	}
	return &ValidationError{
		AnalysisError: AnalysisError{
			Message:  message,
			Category: CategoryValidation,
			Severity: SeverityMedium,
			Details:  details,
		},
		Field: field,
		Value: value,
	}
}

// QuadrantGenerationError reports failures during classification or rendering
type QuadrantGenerationError struct {
	AnalysisError
}

// NewQuadrantGeneration creates a quadrant generation error wrapping an optional cause
func NewQuadrantGeneration(message string, cause error) *QuadrantGenerationError {
	return &QuadrantGenerationError{
		AnalysisError: AnalysisError{
			Message:  message,
			Category: CategoryVisualization,
			Severity: SeverityMedium,
			cause:    cause,
		},
	}
}

// ContentExtractionError reports content acquisition failures
type ContentExtractionError struct {
	AnalysisError
	SourceType string
	SourceInfo string
}

// NewContentExtraction creates a content extraction error
func NewContentExtraction(message, sourceType, sourceInfo string, cause error) *ContentExtractionError {
	return &ContentExtractionError{
		AnalysisError: AnalysisError{
			Message:  message,
			Category: CategoryContent,
			Severity: SeverityMedium,
			Details: map[string]interface{}{
				"source_type": sourceType,
				"source_info": sourceInfo,
			},
			cause: cause,
		},
		SourceType: sourceType,
		SourceInfo: sourceInfo,
	}
}

// InsightAnalysisError reports NLP extraction failures
type InsightAnalysisError struct {
	AnalysisError
}

// NewInsightAnalysis creates an insight analysis error
func NewInsightAnalysis(message string, cause error) *InsightAnalysisError {
	return &InsightAnalysisError{
		AnalysisError: AnalysisError{
			Message:  message,
			Category: CategoryAnalysis,
			Severity: SeverityMedium,
			cause:    cause,
		},
	}
}

// NetworkError reports failures reaching remote resources
type NetworkError struct {
	AnalysisError
	URL string
}

// NewNetwork creates a network error for a URL
func NewNetwork(message, url string, cause error) *NetworkError {
	return &NetworkError{
		AnalysisError: AnalysisError{
			Message:  message,
			Category: CategoryNetwork,
			Severity: SeverityMedium,
			Details:  map[string]interface{}{"url": url},
			cause:    cause,
		},
		URL: url,
	}
}

// Report is the wire representation of a domain error
type Report struct {
	Type             string                 `json:"type"`
	Message          string                 `json:"message"`
	Category         Category               `json:"category"`
	Severity         Severity               `json:"severity"`
	Details          map[string]interface{} `json:"details,omitempty"`
	SuggestedActions []string               `json:"suggested_actions,omitempty"`
}

// ReportFor builds a structured report from any error.
// Unknown error types are downgraded to the generic unknown category so raw
// internals never cross the API boundary.
func ReportFor(err error) Report {
	report := Report{
		Type:     "AnalysisError",
		Message:  err.Error(),
		Category: CategoryUnknown,
		Severity: SeverityMedium,
	}

	var validationErr *ValidationError
	var generationErr *QuadrantGenerationError
	var extractionErr *ContentExtractionError
	var analysisErr *InsightAnalysisError
	var networkErr *NetworkError
	var baseErr *AnalysisError

	switch {
	case errors.As(err, &validationErr):
		report.Type = "ValidationError"
		report.Category = validationErr.Category
		report.Severity = validationErr.Severity
		report.Details = validationErr.Details
	case errors.As(err, &generationErr):
		report.Type = "QuadrantGenerationError"
		report.Category = generationErr.Category
		report.Severity = generationErr.Severity
		report.Details = generationErr.Details
	case errors.As(err, &extractionErr):
		report.Type = "ContentExtractionError"
		report.Category = extractionErr.Category
		report.Severity = extractionErr.Severity
		report.Details = extractionErr.Details
	case errors.As(err, &analysisErr):
		report.Type = "InsightAnalysisError"
		report.Category = analysisErr.Category
		report.Severity = analysisErr.Severity
		report.Details = analysisErr.Details
	case errors.As(err, &networkErr):
		report.Type = "NetworkError"
		report.Category = networkErr.Category
		report.Severity = networkErr.Severity
		report.Details = networkErr.Details
	case errors.As(err, &baseErr):
		report.Category = baseErr.Category
		report.Severity = baseErr.Severity
		report.Details = baseErr.Details
	}

	report.SuggestedActions = Guidance(err)
	return report
}

// Guidance returns suggested actions for common error types
func Guidance(err error) []string {
	var validationErr *ValidationError
	var generationErr *QuadrantGenerationError
	var extractionErr *ContentExtractionError
	var networkErr *NetworkError

	switch {
	case errors.As(err, &networkErr):
		return []string{
			"Check your internet connection",
			"Verify the URL is accessible",
			"Check if the website blocks automated requests",
		}
	case errors.As(err, &extractionErr):
		switch extractionErr.SourceType {
		case "url":
			return []string{
				"Check if the URL is valid and accessible",
				"Verify the website allows content extraction",
				"Check for paywall restrictions",
			}
		case "file_path":
			return []string{
				"Verify the file path is correct",
				"Check file permissions",
				"Ensure the file format is supported",
			}
		default:
			return []string{
				"Check text encoding",
				"Ensure text is not empty",
			}
		}
	case errors.As(err, &validationErr):
		return []string{
			"Check input parameter formats",
			"Verify required fields are provided",
			"Ensure values are within allowed ranges",
		}
	case errors.As(err, &generationErr):
		return []string{
			"Check quadrant configuration parameters",
			"Verify insight data format",
			"Ensure coordinates are within valid ranges (-1 to 1)",
		}
	}
	return []string{
		"Try again with different content",
		"Contact support if the issue persists",
	}
}

// Wrap converts an arbitrary error into an AnalysisError unless it already is one
func Wrap(err error, message string) error {
	var baseErr *AnalysisError
	if errors.As(err, &baseErr) {
		return err
	}
	return &AnalysisError{
		Message:  message,
		Category: CategoryUnknown,
		Severity: SeverityMedium,
		cause:    err,
	}
}
