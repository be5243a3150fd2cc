package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	paymillhttp "github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/offers/offer_1", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("X-Request-Id"))

			user, pass, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "test-key", user)
			assert.Empty(t, pass)

			_, _ = writer.Write([]byte(`{"data":{"id":"offer_1"}}`))
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/offers/offer_1", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"data":{"id":"offer_1"}}`, string(resp.Body))
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("request without key sends no credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _, ok := request.BasicAuth()
			assert.False(t, ok)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "")

		_, err := client.Get(context.Background(), "/offers", nil)
		require.NoError(t, err)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/offers", request.URL.Path)
			assert.Equal(t, "count=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL+"/", "")

		resp, err := client.Get(context.Background(), "/offers", url.Values{"count": []string{"2"}})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("request with form body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)

			form, err := url.ParseQuery(string(body))
			assert.NoError(t, err)
			assert.Equal(t, "Gold", form.Get("name"))
			assert.Equal(t, "4200", form.Get("amount"))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "")

		resp, err := client.Post(context.Background(), "/offers", url.Values{
			"name":   []string{"Gold"},
			"amount": []string{"4200"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":"Offer not found","exception":"offer_not_found"}`))
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "/offers/missing", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		statusErr := &paymill.HTTPStatusError{}
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Equal(t, "Offer not found", statusErr.Message)
		assert.Equal(t, "offer_not_found", statusErr.Exception)
		assert.True(t, paymill.IsNotFound(err))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "paymill-test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "", paymillhttp.WithUserAgent("paymill-test"))

		resp, err := client.Do(context.Background(), &paymillhttp.Request{
			Method:  http.MethodGet,
			Path:    "/offers",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := paymillhttp.NewClient(server.URL, "", paymillhttp.WithLogger(logger), paymillhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/offers", nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		form   bool
		fn     func(*paymillhttp.Client, context.Context) (*paymillhttp.Response, error)
	}{
		{
			name:   "GET",
			method: http.MethodGet,
			fn: func(c *paymillhttp.Client, ctx context.Context) (*paymillhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: http.MethodPost,
			form:   true,
			fn: func(c *paymillhttp.Client, ctx context.Context) (*paymillhttp.Response, error) {
				return c.Post(ctx, "/test", url.Values{"key": []string{"value"}})
			},
		},
		{
			name:   "PUT",
			method: http.MethodPut,
			form:   true,
			fn: func(c *paymillhttp.Client, ctx context.Context) (*paymillhttp.Response, error) {
				return c.Put(ctx, "/test", nil)
			},
		},
		{
			name:   "DELETE",
			method: http.MethodDelete,
			fn: func(c *paymillhttp.Client, ctx context.Context) (*paymillhttp.Response, error) {
				return c.Delete(ctx, "/test", nil)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)

				if testCase.form {
					assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
				} else {
					assert.Empty(t, request.Header.Get("Content-Type"))
				}

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := paymillhttp.NewClient(server.URL, "")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "", paymillhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := paymillhttp.NewClient(server.URL, "", paymillhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load()) // Should not retry
	})
}

func TestClient_Failures(t *testing.T) {
	t.Parallel()
	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := paymillhttp.NewClient(server.URL, "")

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)

		_, err := client.Get(ctx, "/test", nil)
		require.Error(t, err)

		cancelled := &paymill.CancelledError{}
		require.ErrorAs(t, err, &cancelled)
		assert.True(t, paymill.IsCancelled(err))
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		serverURL := server.URL
		server.Close()

		client := paymillhttp.NewClient(serverURL, "")

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)

		transportErr := &paymill.TransportError{}
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.MethodGet, transportErr.Method)
		assert.Equal(t, "/test", transportErr.Path)
	})
}
