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

const refundJSON = `{
	"id": "refund_87bc404a95d5ce616049",
	"amount": "042",
	"status": "refunded",
	"description": null,
	"livemode": false,
	"created_at": 1349947042,
	"updated_at": 1349947042,
	"response_code": 20000,
	"transaction": {"id": "tran_1", "amount": "4158", "status": "partial_refunded", "refunds": ["refund_87bc404a95d5ce616049"]}
}`

func TestRefundsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/refunds/tran_1", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		form := readForm(t, request)
		assert.Equal(t, "42", form.Get("amount"))
		assert.Equal(t, "Sample Description", form.Get("description"))
		assert.NotContains(t, form, "transaction")

		writeJSON(writer, http.StatusOK, `{"data":`+refundJSON+`}`)
	}))
	defer server.Close()

	refunds := NewTestClient(server.URL).Refunds()

	refund, err := refunds.CreateForTransaction(context.Background(), &paymill.Transaction{Base: paymill.Base{ID: "tran_1"}}, 42, "Sample Description")
	require.NoError(t, err)
	assert.Equal(t, paymill.Int(42), refund.Amount)
	assert.Equal(t, paymill.RefundStatusRefunded, refund.Status)

	transaction, ok := refund.Transaction.Entity()
	require.True(t, ok)
	assert.Equal(t, paymill.TransactionStatusPartialRefunded, transaction.Status)
	assert.Equal(t, []string{"refund_87bc404a95d5ce616049"}, transaction.Refunds.IDs())
}

func TestRefundsClient_CreateValidation(t *testing.T) {
	t.Parallel()

	server, calls := newCountingServer(t)
	refunds := NewTestClient(server.URL).Refunds()

	_, err := refunds.CreateForTransaction(context.Background(), nil, 42, "")
	require.Error(t, err)

	validationErr := &paymill.ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "transaction", validationErr.Field)

	_, err = refunds.Create(context.Background(), &paymill.RefundCreateRequest{Transaction: "tran_1"})
	require.Error(t, err)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)

	assert.Equal(t, int32(0), calls.Load())
}

func TestRefundsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/refunds", request.URL.Path)
		assert.Equal(t, "tran_1", request.URL.Query().Get("transaction"))
		assert.Equal(t, "client_desc", request.URL.Query().Get("order"))

		writeJSON(writer, http.StatusOK, `{"data":[`+refundJSON+`],"data_count":"1"}`)
	}))
	defer server.Close()

	list, err := NewTestClient(server.URL).Refunds().List(context.Background(),
		paymill.NewRefundFilter().ByTransactionID("tran_1"),
		paymill.NewRefundOrder().Desc().ByClient(),
		nil)
	require.NoError(t, err)
	assert.Equal(t, paymill.Int(1), list.Total)
	require.Len(t, list.Items, 1)
}
