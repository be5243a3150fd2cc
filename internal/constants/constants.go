package constants

import "time"

// API endpoint.
const (
	// DefaultBaseURL is the public PAYMILL API root.
	DefaultBaseURL = "https://api.paymill.com/v2.1"

	// DefaultUserAgent is sent when the configuration does not override it.
	DefaultUserAgent = "paymill-go/1.0"
)

// Resource path segments.
const (
	PathOffers        = "/offers"
	PathSubscriptions = "/subscriptions"
	PathClients       = "/clients"
	PathPayments      = "/payments"
	PathTransactions  = "/transactions"
	PathRefunds       = "/refunds"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless the configuration asks for them.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the number of items the CLI asks for per page.
	DefaultPageSize = 20

	// MaxPageSize is the largest page the API serves.
	MaxPageSize = 100

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 40
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaskedKeyVisibleChars is how many trailing characters of a key stay visible.
	MaskedKeyVisibleChars = 4
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Sort order constants.
const (
	// SortOrderDesc short form for descending.
	SortOrderDesc = "desc"

	// SortOrderAsc short form for ascending.
	SortOrderAsc = "asc"
)
