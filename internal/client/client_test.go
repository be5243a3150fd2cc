package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ paymill.API = (*Client)(nil)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, paymill.ErrConfigRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := New(&paymill.Config{BaseURL: "https://example.com"})
		require.ErrorIs(t, err, paymill.ErrAPIKeyRequired)
	})

	t.Run("defaults base URL", func(t *testing.T) {
		t.Parallel()

		client, err := New(&paymill.Config{APIKey: "key"})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultBaseURL, client.BaseURL())
		assert.NotNil(t, client.Offers())
		assert.NotNil(t, client.Subscriptions())
		assert.NotNil(t, client.Clients())
		assert.NotNil(t, client.Payments())
		assert.NotNil(t, client.Transactions())
		assert.NotNil(t, client.Refunds())
	})

	t.Run("copies config", func(t *testing.T) {
		t.Parallel()

		var gotUser string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			gotUser, _, _ = request.BasicAuth()
			writeJSON(writer, http.StatusOK, `{"data":[],"data_count":0}`)
		}))
		defer server.Close()

		config := &paymill.Config{APIKey: "first-key", BaseURL: server.URL, HTTPTimeout: time.Second, RetryMax: 1}

		client, err := New(config)
		require.NoError(t, err)

		config.APIKey = "second-key"

		_, err = client.Offers().List(context.Background(), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "first-key", gotUser)
	})
}
