package article_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"wikisummary/internal/article"
	"wikisummary/internal/domain"
)

type stubFetcher struct {
	mu          sync.Mutex
	article     domain.Article
	featuredURL string
	err         error
	fetchedURLs []string
}

func (f *stubFetcher) RandomArticle(_ context.Context) (domain.Article, error) {
	return f.article, f.err
}

func (f *stubFetcher) FetchArticle(_ context.Context, articleURL string) (domain.Article, error) {
	f.mu.Lock()
	f.fetchedURLs = append(f.fetchedURLs, articleURL)
	f.mu.Unlock()

	if f.err != nil {
		return domain.Article{}, f.err
	}

	a := f.article
	a.URL = articleURL

	return a, nil
}

func (f *stubFetcher) FeaturedArticleURL(_ context.Context) (string, error) {
	return f.featuredURL, f.err
}

type stubSummarizer struct {
	mu      sync.Mutex
	calls   int
	summary string
	err     error
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	return s.summary, s.err
}

func (s *stubSummarizer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

func TestServiceRandom(t *testing.T) {
	fetcher := &stubFetcher{
		article: domain.Article{URL: "https://en.wikipedia.org/wiki/Cat", Content: "Cats."},
	}
	stub := &stubSummarizer{summary: "A summary."}
	svc := article.NewService(fetcher, stub, slog.Default())

	got, err := svc.Random(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.SummaryResult{URL: "https://en.wikipedia.org/wiki/Cat", Content: "Cats.", Summary: "A summary."}
	if got != want {
		t.Fatalf("unexpected result: got %+v want %+v", got, want)
	}
}

func TestServiceRandomFailures(t *testing.T) {
	tests := []struct {
		name         string
		fetcher      *stubFetcher
		summarizer   *stubSummarizer
		wantContains string
		wantSumCalls int
	}{
		{
			name:         "Fetch fails",
			fetcher:      &stubFetcher{err: errors.New("connection refused")},
			summarizer:   &stubSummarizer{summary: "unused"},
			wantContains: "Failed to fetch Wikipedia content: connection refused",
			wantSumCalls: 0,
		},
		{
			name:         "Empty content",
			fetcher:      &stubFetcher{article: domain.Article{URL: "u"}},
			summarizer:   &stubSummarizer{summary: "unused"},
			wantContains: "Failed to extract content from Wikipedia",
			wantSumCalls: 0,
		},
		{
			name:         "Summarizer fails",
			fetcher:      &stubFetcher{article: domain.Article{URL: "u", Content: "c"}},
			summarizer:   &stubSummarizer{err: errors.New("401 invalid api key")},
			wantContains: "Error generating summary: 401 invalid api key",
			wantSumCalls: 1,
		},
		{
			name:         "Empty summary",
			fetcher:      &stubFetcher{article: domain.Article{URL: "u", Content: "c"}},
			summarizer:   &stubSummarizer{},
			wantContains: "Failed to generate summary",
			wantSumCalls: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := article.NewService(test.fetcher, test.summarizer, slog.Default())

			_, err := svc.Random(context.Background())
			if err == nil || !strings.Contains(err.Error(), test.wantContains) {
				t.Fatalf("expected error containing %q, got %v", test.wantContains, err)
			}

			if domain.IsValidation(err) {
				t.Fatalf("expected non-validation error, got %v", err)
			}

			if got := test.summarizer.callCount(); got != test.wantSumCalls {
				t.Fatalf("expected %d summarizer calls, got %d", test.wantSumCalls, got)
			}
		})
	}
}

func TestServiceGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"Missing URL", "", domain.ErrNoURL},
		{"Foreign host", "https://example.com", domain.ErrInvalidURL},
		{"FTP scheme", "ftp://en.wikipedia.org/x", domain.ErrInvalidURL},
		{"Blank URL", "   ", domain.ErrInvalidURL},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fetcher := &stubFetcher{}
			svc := article.NewService(fetcher, &stubSummarizer{}, slog.Default())

			_, err := svc.Generate(context.Background(), domain.ArticleRequest{URL: test.url})
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}

			if len(fetcher.fetchedURLs) != 0 {
				t.Fatalf("expected no fetch on validation failure, got %v", fetcher.fetchedURLs)
			}
		})
	}
}

func TestServiceGenerate(t *testing.T) {
	fetcher := &stubFetcher{article: domain.Article{Content: "Cats."}}
	svc := article.NewService(fetcher, &stubSummarizer{summary: "A summary."}, slog.Default())

	got, err := svc.Generate(context.Background(), domain.ArticleRequest{URL: "https://en.wikipedia.org/wiki/Cat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.URL != "" {
		t.Fatalf("expected explicit flow to omit URL, got %q", got.URL)
	}

	if got.Content != "Cats." || got.Summary != "A summary." {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestServiceGenerateSummarizerFailure(t *testing.T) {
	fetcher := &stubFetcher{article: domain.Article{Content: "Cats."}}
	svc := article.NewService(fetcher, &stubSummarizer{err: errors.New("rate limit reached")}, slog.Default())

	_, err := svc.Generate(context.Background(), domain.ArticleRequest{URL: "https://en.wikipedia.org/wiki/Cat"})

	var summarizationErr *domain.SummarizationError
	if !errors.As(err, &summarizationErr) {
		t.Fatalf("expected SummarizationError, got %v", err)
	}
}

func TestServiceFeatured(t *testing.T) {
	fetcher := &stubFetcher{
		featuredURL: "https://en.wikipedia.org/wiki/Ada_Lovelace",
		article:     domain.Article{Content: "Ada."},
	}
	svc := article.NewService(fetcher, &stubSummarizer{summary: "A summary."}, slog.Default())

	got, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.URL != "https://en.wikipedia.org/wiki/Ada_Lovelace" {
		t.Fatalf("unexpected URL: %q", got.URL)
	}

	if len(fetcher.fetchedURLs) != 1 || fetcher.fetchedURLs[0] != got.URL {
		t.Fatalf("expected featured article to be fetched, got %v", fetcher.fetchedURLs)
	}
}

func TestServiceWithoutSummarizer(t *testing.T) {
	fetcher := &stubFetcher{article: domain.Article{Content: "Cats."}}
	svc := article.NewService(fetcher, nil, slog.Default())

	_, err := svc.Generate(context.Background(), domain.ArticleRequest{URL: "https://en.wikipedia.org/wiki/Cat"})

	var summarizationErr *domain.SummarizationError
	if !errors.As(err, &summarizationErr) {
		t.Fatalf("expected SummarizationError, got %v", err)
	}
}
