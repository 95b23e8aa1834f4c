package summarizer

import (
	"context"
)

// Summarizer produces a short summary of extracted article text.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}
