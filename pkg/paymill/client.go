package paymill

import "time"

// API exposes one client per PAYMILL resource.
type API interface {
	Offers() OffersClient
	Subscriptions() SubscriptionsClient
	Clients() ClientsClient
	Payments() PaymentsClient
	Transactions() TransactionsClient
	Refunds() RefundsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a paymill.API.
//
// The value is copied when the client is built; changing it afterwards has no
// effect on existing clients, so one client can be shared by goroutines.
//
// # Timeouts and retries
//
// Per-request deadlines should be controlled via the context passed to client
// methods. Requests are never retried unless RetryMax is set, in which case
// connection errors, 429 and 5xx responses are retried with exponential
// backoff between RetryWaitMin and RetryWaitMax.
type Config struct {
	// APIKey: private API key. It is sent as the Basic auth username with an
	// empty password.
	APIKey string
	// BaseURL: API root, e.g. "https://api.paymill.com/v2.1". When empty the
	// public endpoint is used. paymillclient.New trims a trailing slash and
	// adds "https://" if no scheme is present.
	BaseURL string

	// HTTPTimeout: overall timeout of a single HTTP exchange. Zero selects the
	// default.
	HTTPTimeout time.Duration
	// RetryMax: number of retries for transient failures. Zero disables
	// retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
