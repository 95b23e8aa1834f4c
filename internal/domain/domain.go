package domain

// ArticleRequest is the body of an explicit summary request.
type ArticleRequest struct {
	URL string `json:"url"`
}

// Article is extracted body text together with the page it came from.
type Article struct {
	URL     string
	Content string
}

// SummaryResult is returned once per request and never stored.
type SummaryResult struct {
	URL     string `json:"url,omitempty"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}
