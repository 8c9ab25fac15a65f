package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrUnknownStrategy is returned when Strategy is neither "search" nor "classifier".
	ErrUnknownStrategy = errors.New("unknown strategy: must be \"search\" or \"classifier\"")

	// ErrInvalidTimeout is returned when a timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidRateLimit is returned when the search rate limit is negative.
	ErrInvalidRateLimit = errors.New("invalid search rate limit: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidMaxTextLength is returned when the text limit is below the minimum analyzable length.
	ErrInvalidMaxTextLength = errors.New("invalid max text length: must be at least 10")

	// ErrEmptyListenAddress is returned when the server has no address to listen on.
	ErrEmptyListenAddress = errors.New("listen address must not be empty")

	// ErrConflictingReportFormats is returned when both --json and --markdown are set.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidDuration is returned when a duration in the config file cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration in configuration file")
)
