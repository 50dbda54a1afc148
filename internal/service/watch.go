package service

import (
	"context"
	"log"
	"time"

	"github.com/kwatari/article-quadrant/internal/model"
)

// Watch refreshes the insight cache for a configured set of URLs. It is
// driven by the server's cron schedule.
type Watch struct {
	analyze *Analyze
	urls    []string
}

func NewWatch(analyze *Analyze, urls []string) *Watch {
	return &Watch{
		analyze: analyze,
		urls:    urls,
	}
}

// Refresh re-extracts and re-analyzes every watched URL. Failures are
// logged per URL and do not stop the sweep.
func (w *Watch) Refresh(ctx context.Context) {
	if len(w.urls) == 0 {
		return
	}

	start := time.Now()
	log.Printf("Watch refresh started urls=%d", len(w.urls))

	refreshed := 0
	for _, url := range w.urls {
		source := model.Source{Type: model.SourceTypeURL, Content: url}

		content, err := w.analyze.ExtractContent(ctx, source)
		if err != nil {
			log.Printf("Watch refresh failed url=%s stage=extract: %v", url, err)
			continue
		}

		if _, err := w.analyze.AnalyzeContent(ctx, *content, model.DefaultAnalysisOptions()); err != nil {
			log.Printf("Watch refresh failed url=%s stage=analyze: %v", url, err)
			continue
		}

		refreshed++
	}

	log.Printf("Watch refresh completed refreshed=%d/%d duration_ms=%d",
		refreshed, len(w.urls), time.Since(start).Milliseconds())
}
