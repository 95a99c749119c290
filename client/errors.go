package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized signals a missing or expired session. The caller should
// prompt for login; submitted input is not lost.
var ErrUnauthorized = errors.New("unauthorized: session missing or expired")

// ValidationError is a local, pre-network failure: the user corrects the
// input and retries. No request was issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

// ItemNotFoundError means the cart references an id absent from the
// catalog, e.g. a stale menu. The submission aborts without a request.
type ItemNotFoundError struct {
	ItemID uint
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %d not found in menu", e.ItemID)
}

// APIError is a non-2xx response other than 401. Message carries the
// server's user-visible error text when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.StatusCode)
}
