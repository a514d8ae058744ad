package vision

import (
	"errors"
	"fmt"
	"net/http"
)

// upstreamError reports a non-2xx answer from the model API.
type upstreamError struct {
	status int
	body   string
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("model api http error: %d %s: %s", e.status, http.StatusText(e.status), e.body)
}

// StatusCode returns the upstream HTTP status.
func (e *upstreamError) StatusCode() int { return e.status }

// retryable reports whether the status is worth another attempt.
func (e *upstreamError) retryable() bool {
	return e.status == http.StatusTooManyRequests || e.status >= 500
}

// ErrEmptyCompletion is returned when the API answers without any choice.
var ErrEmptyCompletion = errors.New("model api returned no choices")

// IsUpstream reports whether err came from a non-2xx model API response.
func IsUpstream(err error) bool {
	var ue *upstreamError
	return errors.As(err, &ue)
}
