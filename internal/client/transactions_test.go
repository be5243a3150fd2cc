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

const transactionJSON = `{
	"id": "tran_54645bcb98ba7acfe204",
	"amount": "4200",
	"origin_amount": 4200,
	"currency": "EUR",
	"status": "closed",
	"description": "Order #42",
	"livemode": false,
	"refunds": [{"id": "refund_1", "transaction": "tran_54645bcb98ba7acfe204", "amount": "100", "status": "refunded"}],
	"payment": "pay_1",
	"client": {"id": "client_1", "email": null},
	"response_code": 20000,
	"short_id": "0000.1212.3434",
	"is_fraud": false,
	"created_at": 1349946151,
	"updated_at": 1349946151
}`

func TestTransactionsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/transactions", request.URL.Path)

		query := request.URL.Query()
		assert.Equal(t, "client_1", query.Get("client"))
		assert.Equal(t, "<5000", query.Get("amount"))
		assert.Equal(t, "closed", query.Get("status"))
		assert.Equal(t, "amount_asc", query.Get("order"))
		assert.Equal(t, "20", query.Get("offset"))

		writeJSON(writer, http.StatusOK, `{"data":[`+transactionJSON+`,{"id":"tran_2","status":"something_new"}],"data_count":2}`)
	}))
	defer server.Close()

	filter := paymill.NewTransactionFilter().
		ByClientID("client_1").
		ByAmountLessThan(5000).
		ByStatus(paymill.TransactionStatusClosed)
	order := paymill.NewTransactionOrder().ByAmount()

	list, err := NewTestClient(server.URL).Transactions().List(context.Background(), filter, order, &paymill.Page{Offset: 20})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	first := list.Items[0]
	assert.Equal(t, paymill.TransactionStatusClosed, first.Status)
	assert.True(t, first.Successful())
	assert.Equal(t, "42", first.AmountFormatted().String())
	require.Len(t, first.Refunds, 1)
	assert.True(t, first.Refunds[0].IsFull())
	assert.Equal(t, "pay_1", first.Payment.ID())
	assert.True(t, first.Payment.IsReference())
	assert.True(t, first.Client.IsFull())

	assert.Equal(t, paymill.TransactionStatusUnknown, list.Items[1].Status)
	assert.Equal(t, "Unknown", list.Items[1].Status.DisplayName())
}

func TestTransactionsClient_ListItemFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, `{"data":[{"id":"tran_1","amount":"forty"}],"data_count":1}`)
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).Transactions().List(context.Background(), nil, nil, nil)
	require.Error(t, err)

	decodeErr := &paymill.DecodeError{}
	require.ErrorAs(t, err, &decodeErr)
	assert.ErrorIs(t, err, paymill.ErrInvalidInteger)
}

func TestTransactionsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("with token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/transactions", request.URL.Path)

			form := readForm(t, request)
			assert.Equal(t, "4200", form.Get("amount"))
			assert.Equal(t, "EUR", form.Get("currency"))
			assert.Equal(t, "098f6bcd4621d373cade4e832627b4f6", form.Get("token"))
			assert.NotContains(t, form, "payment")

			writeJSON(writer, http.StatusOK, `{"data":`+transactionJSON+`}`)
		}))
		defer server.Close()

		transaction, err := NewTestClient(server.URL).Transactions().Create(context.Background(), &paymill.TransactionCreateRequest{
			Amount:   4200,
			Currency: "EUR",
			Token:    "098f6bcd4621d373cade4e832627b4f6",
		})
		require.NoError(t, err)
		assert.Equal(t, "tran_54645bcb98ba7acfe204", transaction.ID)
	})

	t.Run("without payment source", func(t *testing.T) {
		t.Parallel()

		server, calls := newCountingServer(t)

		_, err := NewTestClient(server.URL).Transactions().Create(context.Background(), &paymill.TransactionCreateRequest{
			Amount:   4200,
			Currency: "EUR",
		})
		require.Error(t, err)
		assert.True(t, paymill.IsValidation(err))
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestTransactionsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/transactions/tran_1", request.URL.Path)
		assert.Equal(t, http.MethodPut, request.Method)
		assert.Equal(t, "Order #43", readForm(t, request).Get("description"))

		writeJSON(writer, http.StatusOK, `{"data":{"id":"tran_1","description":"Order #43"}}`)
	}))
	defer server.Close()

	transaction, err := NewTestClient(server.URL).Transactions().Update(context.Background(), "tran_1", &paymill.TransactionUpdateRequest{
		Description: "Order #43",
	})
	require.NoError(t, err)
	assert.Equal(t, "Order #43", transaction.Description)
}
