package domain

import "errors"

var (
	ErrNoURL      = &ValidationError{Reason: "No URL provided"}
	ErrInvalidURL = &ValidationError{Reason: "Invalid Wikipedia URL"}

	//nolint:staticcheck // Returned to HTTP clients as is.
	ErrEmptyContent = errors.New("Failed to extract content from Wikipedia")
	//nolint:staticcheck // Returned to HTTP clients as is.
	ErrEmptySummary = errors.New("Failed to generate summary")
)

// ValidationError reports a missing or malformed article URL.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ExtractionError covers upstream fetch failures and pages without a content root.
type ExtractionError struct {
	Err error
}

func NewExtractionError(err error) *ExtractionError {
	return &ExtractionError{Err: err}
}

func (e *ExtractionError) Error() string {
	return "Failed to fetch Wikipedia content: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SummarizationError covers model and transport failures of the summary call.
type SummarizationError struct {
	Err error
}

func NewSummarizationError(err error) *SummarizationError {
	return &SummarizationError{Err: err}
}

func (e *SummarizationError) Error() string {
	return "Error generating summary: " + e.Err.Error()
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
