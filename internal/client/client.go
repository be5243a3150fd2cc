package client

import (
	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// Client implements the paymill.API interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Resource clients
	offers        paymill.OffersClient
	subscriptions paymill.SubscriptionsClient
	clients       paymill.ClientsClient
	payments      paymill.PaymentsClient
	transactions  paymill.TransactionsClient
	refunds       paymill.RefundsClient
}

// New creates a new PAYMILL API client. The configuration is copied.
func New(config *paymill.Config) (*Client, error) {
	if config == nil {
		return nil, paymill.ErrConfigRequired
	}

	cfg := *config

	if cfg.APIKey == "" {
		return nil, paymill.ErrAPIKeyRequired
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(cfg.BaseURL, cfg.APIKey, createHTTPClientOptions(&cfg)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *paymill.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.offers = NewOffersClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.clients = NewClientsClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
	c.transactions = NewTransactionsClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Offers implements paymill.API.Offers.
func (c *Client) Offers() paymill.OffersClient {
	return c.offers
}

// Subscriptions implements paymill.API.Subscriptions.
func (c *Client) Subscriptions() paymill.SubscriptionsClient {
	return c.subscriptions
}

// Clients implements paymill.API.Clients.
func (c *Client) Clients() paymill.ClientsClient {
	return c.clients
}

// Payments implements paymill.API.Payments.
func (c *Client) Payments() paymill.PaymentsClient {
	return c.payments
}

// Transactions implements paymill.API.Transactions.
func (c *Client) Transactions() paymill.TransactionsClient {
	return c.transactions
}

// Refunds implements paymill.API.Refunds.
func (c *Client) Refunds() paymill.RefundsClient {
	return c.refunds
}
