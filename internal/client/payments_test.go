package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentsClient_Get(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[paymill.Payment]{
		{
			Name:         "credit card",
			ID:           "pay_1",
			ExpectedPath: "/payments/pay_1",
			StatusCode:   http.StatusOK,
			Body:         `{"data":{"id":"pay_1","type":"creditcard","client":"client_1","card_type":"visa","country":null,"expire_month":"12","expire_year":"2030","last4":"1111"}}`,
			Check: func(t *testing.T, payment *paymill.Payment) {
				t.Helper()
				assert.Equal(t, paymill.PaymentTypeCreditCard, payment.Type)
				assert.Equal(t, "Credit card", payment.Type.DisplayName())
				assert.Equal(t, paymill.Int(2030), payment.ExpireYear)
				assert.Equal(t, "client_1", payment.Client.ID())
			},
		},
		{
			Name:         "direct debit",
			ID:           "pay_2",
			ExpectedPath: "/payments/pay_2",
			StatusCode:   http.StatusOK,
			Body:         `{"data":{"id":"pay_2","type":"debit","iban":"DE12500105170648489890","bic":"BENEDEPPYYY","holder":"Max Mustermann"}}`,
			Check: func(t *testing.T, payment *paymill.Payment) {
				t.Helper()
				assert.Equal(t, paymill.PaymentTypeDebit, payment.Type)
				assert.Equal(t, "DE12500105170648489890", payment.IBAN)
				assert.True(t, payment.Client.IsZero())
			},
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*paymill.Payment, error) {
		return c.Payments().Get
	})
}

func TestPaymentsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/payments", request.URL.Path)

		form := readForm(t, request)
		assert.Equal(t, "tok_1", form.Get("token"))
		assert.Equal(t, "client_1", form.Get("client"))

		writeJSON(writer, http.StatusOK, `{"data":{"id":"pay_1","type":"creditcard"}}`)
	}))
	defer server.Close()

	payment, err := NewTestClient(server.URL).Payments().Create(context.Background(), &paymill.PaymentCreateRequest{
		Token:  "tok_1",
		Client: "client_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_1", payment.ID)
}

func TestPaymentsClient_ListAndDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet:
			assert.Equal(t, "visa", request.URL.Query().Get("card_type"))
			assert.Equal(t, "created_at_desc", request.URL.Query().Get("order"))
			writeJSON(writer, http.StatusOK, `{"data":[{"id":"pay_1"}],"data_count":1}`)
		case http.MethodDelete:
			writeJSON(writer, http.StatusNotFound, `{"error":"Payment not found"}`)
		}
	}))
	defer server.Close()

	payments := NewTestClient(server.URL).Payments()

	list, err := payments.List(context.Background(), paymill.NewPaymentFilter().ByCardType("visa"), paymill.NewPaymentOrder().ByCreatedAt().Desc(), nil)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	deleted, err := payments.Delete(context.Background(), "pay_1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
