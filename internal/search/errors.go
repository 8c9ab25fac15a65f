package search

import "errors"

var (
	// ErrNotConfigured is returned when the client has no usable API key.
	ErrNotConfigured = errors.New("search API key is not configured")

	// ErrUnexpectedStatus is returned when the search API answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("search API returned unexpected status")

	// ErrDecodeResponse is returned when the search API response is not valid JSON.
	ErrDecodeResponse = errors.New("failed to decode search API response")
)
