package countries

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError describes one failed fetch from the reference source.
type FetchError struct {
	Op         string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewStatusError classifies an HTTP status. Rate limiting and server errors
// are retryable, other client errors are not.
func NewStatusError(status int) *FetchError {
	return &FetchError{
		Op:         "fetch",
		StatusCode: status,
		Retryable:  status == http.StatusTooManyRequests || status >= http.StatusInternalServerError,
		Err:        fmt.Errorf(ErrMsgUnexpectedStatus, status),
	}
}

// IsRetryable reports whether another attempt may succeed. Errors that are
// not a FetchError are treated as transient.
func IsRetryable(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Retryable
	}
	return err != nil
}
