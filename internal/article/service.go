package article

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"wikisummary/internal/domain"
	"wikisummary/internal/summarizer"
	"wikisummary/internal/wiki"
)

type Fetcher interface {
	RandomArticle(ctx context.Context) (domain.Article, error)
	FetchArticle(ctx context.Context, articleURL string) (domain.Article, error)
	FeaturedArticleURL(ctx context.Context) (string, error)
}

// Service runs the fetch, extract and summarize pipeline. It keeps no state
// between calls.
type Service struct {
	fetcher    Fetcher
	summarizer summarizer.Summarizer
	log        *slog.Logger
}

func NewService(fetcher Fetcher, s summarizer.Summarizer, log *slog.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		summarizer: s,
		log:        log,
	}
}

// Random summarizes whatever article the random-article redirect lands on.
func (s *Service) Random(ctx context.Context) (domain.SummaryResult, error) {
	a, err := s.fetcher.RandomArticle(ctx)
	if err != nil {
		return domain.SummaryResult{}, domain.NewExtractionError(err)
	}

	if a.Content == "" {
		return domain.SummaryResult{}, domain.ErrEmptyContent
	}

	summary, err := s.summarize(ctx, a)
	if err != nil {
		return domain.SummaryResult{}, err
	}

	if summary == "" {
		return domain.SummaryResult{}, domain.ErrEmptySummary
	}

	return domain.SummaryResult{URL: a.URL, Content: a.Content, Summary: summary}, nil
}

// Generate summarizes the article at req.URL after validating it.
func (s *Service) Generate(ctx context.Context, req domain.ArticleRequest) (domain.SummaryResult, error) {
	if req.URL == "" {
		return domain.SummaryResult{}, domain.ErrNoURL
	}

	articleURL := strings.TrimSpace(req.URL)
	if !wiki.IsValidArticleURL(articleURL) {
		return domain.SummaryResult{}, domain.ErrInvalidURL
	}

	a, err := s.fetcher.FetchArticle(ctx, articleURL)
	if err != nil {
		return domain.SummaryResult{}, domain.NewExtractionError(err)
	}

	summary, err := s.summarize(ctx, a)
	if err != nil {
		return domain.SummaryResult{}, err
	}

	return domain.SummaryResult{Content: a.Content, Summary: summary}, nil
}

// Featured summarizes today's featured article.
func (s *Service) Featured(ctx context.Context) (domain.SummaryResult, error) {
	articleURL, err := s.fetcher.FeaturedArticleURL(ctx)
	if err != nil {
		return domain.SummaryResult{}, domain.NewExtractionError(err)
	}

	a, err := s.fetcher.FetchArticle(ctx, articleURL)
	if err != nil {
		return domain.SummaryResult{}, domain.NewExtractionError(err)
	}

	summary, err := s.summarize(ctx, a)
	if err != nil {
		return domain.SummaryResult{}, err
	}

	return domain.SummaryResult{URL: a.URL, Content: a.Content, Summary: summary}, nil
}

func (s *Service) summarize(ctx context.Context, a domain.Article) (string, error) {
	if s.summarizer == nil {
		return "", domain.NewSummarizationError(errors.New("summarizer is not configured"))
	}

	summary, err := s.summarizer.Summarize(ctx, a.Content)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to summarize article",
			"error", err,
			"articleURL", a.URL,
			"contentLength", len(a.Content))

		return "", domain.NewSummarizationError(err)
	}

	return summary, nil
}
