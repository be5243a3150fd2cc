package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'paymill config set-key' or PAYMILL_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidRetryMax    = errors.New("retry_max must be a non-negative integer")
)

// Command errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, use table, json or yaml")
	ErrInvalidSortField    = errors.New("invalid sort field")
	ErrInvalidSortOrder    = errors.New("invalid sort order, use asc or desc")
	ErrInvalidDateRange    = errors.New("date range must be <start>..<end> in RFC 3339 or YYYY-MM-DD")
	ErrInvalidStatus       = errors.New("unknown status")
	ErrNotDeleted          = errors.New("resource did not exist")
	ErrConfirmationNeeded  = errors.New("refusing to delete without --force")
)
