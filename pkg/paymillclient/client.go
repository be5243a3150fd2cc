// Package paymillclient provides the main entry point for creating PAYMILL API clients
package paymillclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/paymill-go/internal/client"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// New creates a new PAYMILL API client.
func New(config *paymill.Config) (paymill.API, error) {
	if config == nil {
		return nil, paymill.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, paymill.ErrAPIKeyRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	// Use the internal client implementation
	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for the public endpoint.
func NewWithAPIKey(apiKey string) (paymill.API, error) {
	return New(&paymill.Config{
		APIKey: apiKey,
	})
}

// NewWithEndpoint creates a client for a specific API root.
func NewWithEndpoint(endpoint, apiKey string) (paymill.API, error) {
	return New(&paymill.Config{
		APIKey:  apiKey,
		BaseURL: endpoint,
	})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https.
// An empty endpoint is left empty so the default applies.
func normalizeBaseURL(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return ""
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
