package paymillclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/fivetwenty-io/paymill-go/pkg/paymillclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		api, err := paymillclient.New(&paymill.Config{APIKey: "key"})
		require.NoError(t, err)
		assert.NotNil(t, api)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := paymillclient.New(nil)
		require.ErrorIs(t, err, paymill.ErrConfigRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := paymillclient.NewWithAPIKey("")
		require.ErrorIs(t, err, paymill.ErrAPIKeyRequired)
	})

	t.Run("does not modify config", func(t *testing.T) {
		t.Parallel()

		config := &paymill.Config{APIKey: "key", BaseURL: "api.example.com/"}

		_, err := paymillclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com/", config.BaseURL)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user, password, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "private-key", user)
		assert.Empty(t, password)
		assert.Equal(t, "/offers", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(writer, `{"data":[{"id":"offer_1","amount":"4200","interval":"1 MONTH"}],"data_count":"1"}`)
	}))
	defer server.Close()

	// Trailing slash is trimmed before paths are joined.
	api, err := paymillclient.NewWithEndpoint(server.URL+"/", "private-key")
	require.NoError(t, err)

	offers, err := api.Offers().List(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, offers.Items, 1)
	assert.Equal(t, paymill.IntervalUnitMonth, offers.Items[0].Interval.Unit)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.Method == http.MethodPost && request.URL.Path == "/clients":
			writer.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(writer, `{"data":{"id":"client_1","email":"jane@example.com"}}`)
		case strings.HasPrefix(request.URL.Path, "/clients/"):
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"error":"Client not found","exception":"client_not_found"}`)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	api, err := paymillclient.NewWithEndpoint(server.URL, "private-key")
	require.NoError(t, err)

	created, err := api.Clients().CreateWithEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "client_1", created.ID)

	_, err = api.Clients().Get(context.Background(), "client_2")
	require.Error(t, err)
	assert.True(t, paymill.IsNotFound(err))

	statusErr := &paymill.HTTPStatusError{}
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "client_not_found", statusErr.Exception)
}
