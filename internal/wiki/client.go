package wiki

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wikisummary/internal/domain"

	"github.com/mmcdole/gofeed"
)

const (
	userAgent = "wikisummary/1.0 (article summary generator)"

	randomArticlePath = "/wiki/Special:Random"
	featuredFeedPath  = "/w/api.php?action=featuredfeed&feed=featured&feedformat=atom"
)

// Client fetches Wikipedia pages. The underlying http.Client must follow
// redirects: the effective URL of the final request is reported back.
type Client struct {
	baseURL    string
	httpClient *http.Client
	feedParser *gofeed.Parser
	log        *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	feedParser := gofeed.NewParser()
	feedParser.Client = httpClient
	feedParser.UserAgent = userAgent

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		feedParser: feedParser,
		log:        log,
	}
}

// RandomArticle follows the random-article redirect and extracts the page it
// lands on.
func (c *Client) RandomArticle(ctx context.Context) (domain.Article, error) {
	return c.FetchArticle(ctx, c.baseURL+randomArticlePath)
}

// FetchArticle downloads articleURL and extracts its body text.
func (c *Client) FetchArticle(ctx context.Context, articleURL string) (domain.Article, error) {
	articleURL = strings.TrimSpace(articleURL)
	if articleURL == "" {
		return domain.Article{}, errors.New("article URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return domain.Article{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req) //nolint:gosec // Validated Wikipedia URL
	if err != nil {
		return domain.Article{}, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			c.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"articleURL", articleURL,
				"operation", "FetchArticle")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Article{}, fmt.Errorf("do request: unexpected status: %d", resp.StatusCode)
	}

	effectiveURL := articleURL
	if resp.Request != nil && resp.Request.URL != nil {
		effectiveURL = resp.Request.URL.String()
	}

	content, err := Extract(resp.Body, ContentRootSelector)
	if err != nil {
		return domain.Article{}, fmt.Errorf("extract content: %w", err)
	}

	c.log.DebugContext(ctx, "Article is extracted",
		"articleURL", articleURL,
		"effectiveURL", effectiveURL,
		"contentLength", len(content))

	return domain.Article{URL: effectiveURL, Content: content}, nil
}
