package mocks

import (
	"context"

	"github.com/kwatari/article-quadrant/internal/cache"
	"github.com/kwatari/article-quadrant/internal/model"
)

// Mock Content Repository
type MockContentRepo struct {
	Content *model.Content
	Err     error
	Calls   int
}

func (m *MockContentRepo) Extract(ctx context.Context, source model.Source) (*model.Content, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Content != nil {
		return m.Content, nil
	}
	return &model.Content{
		Title: "Test Article",
		Text:  "test article body",
		Metadata: model.ContentMetadata{
			SourceType: source.Type,
			SourceURL:  source.Content,
			WordCount:  3,
		},
	}, nil
}

// Mock Insight Repository
type MockInsightRepo struct {
	Insights *model.Insights
	Err      error
	Calls    int
}

func (m *MockInsightRepo) AnalyzeContent(ctx context.Context, content model.Content, opts model.AnalysisOptions) (*model.Insights, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Insights != nil {
		return m.Insights, nil
	}
	importance := 0.8
	return &model.Insights{
		KeyPoints: []model.KeyPoint{
			{Point: "test key point", Importance: &importance, Sentiment: "positive"},
		},
	}, nil
}

// Mock Cache Repository backed by an in-memory map
type MockCacheRepo struct {
	Entries  map[string]model.Insights
	GetCalls int
	SetCalls int
}

func NewMockCacheRepo() *MockCacheRepo {
	return &MockCacheRepo{Entries: make(map[string]model.Insights)}
}

func (m *MockCacheRepo) GetInsights(ctx context.Context, content model.Content) (*model.Insights, error) {
	m.GetCalls++
	if insights, ok := m.Entries[cache.GenerateKey(content)]; ok {
		return &insights, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *MockCacheRepo) SetInsights(ctx context.Context, content model.Content, insights model.Insights) error {
	m.SetCalls++
	m.Entries[cache.GenerateKey(content)] = insights
	return nil
}

func (m *MockCacheRepo) IsCached(ctx context.Context, content model.Content) (bool, error) {
	_, ok := m.Entries[cache.GenerateKey(content)]
	return ok, nil
}

func (m *MockCacheRepo) GetStats(ctx context.Context) (*cache.Stats, error) {
	return &cache.Stats{TotalEntries: len(m.Entries)}, nil
}

func (m *MockCacheRepo) Clear(ctx context.Context) error {
	m.Entries = make(map[string]model.Insights)
	return nil
}

func (m *MockCacheRepo) Close() error {
	return nil
}
