package holidays

import (
	"errors"
	"fmt"

	"workdays/pkg/platform/sentinel"
)

var errSourceRequired = errors.New("holiday source is required")

// ErrorCategory is the normalized failure taxonomy of the holiday feed.
type ErrorCategory string

const (
	// ErrorTimeout indicates the feed took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorUnavailable indicates a transport failure reaching the feed
	ErrorUnavailable ErrorCategory = "unavailable"

	// ErrorBadStatus indicates a non-200 response
	ErrorBadStatus ErrorCategory = "bad_status"

	// ErrorBadData indicates a body that is not one of the accepted layouts
	ErrorBadData ErrorCategory = "bad_data"
)

// FeedError wraps feed failures with a normalized category. Every FeedError
// matches sentinel.ErrUnavailable.
type FeedError struct {
	Category   ErrorCategory
	URL        string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *FeedError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("holiday feed %s [%s]: %s: %v", e.URL, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("holiday feed %s [%s]: %s", e.URL, e.Category, e.Message)
}

func (e *FeedError) Unwrap() error {
	return e.Underlying
}

func (e *FeedError) Is(target error) bool {
	return target == sentinel.ErrUnavailable
}

func newFeedError(category ErrorCategory, url, message string, underlying error) *FeedError {
	return &FeedError{
		Category:   category,
		URL:        url,
		Message:    message,
		Underlying: underlying,
		Retryable:  category == ErrorTimeout || category == ErrorUnavailable,
	}
}

// Category extracts the error category, or "" for non-feed errors.
func Category(err error) ErrorCategory {
	var fe *FeedError
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ""
}

// IsRetryable reports whether err is a transient feed failure.
func IsRetryable(err error) bool {
	var fe *FeedError
	if errors.As(err, &fe) {
		return fe.Retryable
	}
	return false
}
