package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// RefundsClient implements paymill.RefundsClient.
type RefundsClient struct {
	resource *resource[paymill.Refund]
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient *http.Client) *RefundsClient {
	return &RefundsClient{
		resource: newResource[paymill.Refund](httpClient, constants.PathRefunds, "refund"),
	}
}

// List implements paymill.RefundsClient.List.
func (c *RefundsClient) List(ctx context.Context, filter *paymill.RefundFilter, order *paymill.RefundOrder, page *paymill.Page) (*paymill.ListResponse[paymill.Refund], error) {
	return c.resource.list(ctx, filter, order, page)
}

// Get implements paymill.RefundsClient.Get.
func (c *RefundsClient) Get(ctx context.Context, id string) (*paymill.Refund, error) {
	return c.resource.get(ctx, id)
}

// Create implements paymill.RefundsClient.Create. Refunds are posted to
// /refunds/{transaction}.
func (c *RefundsClient) Create(ctx context.Context, request *paymill.RefundCreateRequest) (*paymill.Refund, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("creating refund: %w", err)
	}

	return c.resource.createAt(ctx, request.Transaction, request.Form())
}

// CreateForTransaction implements paymill.RefundsClient.CreateForTransaction.
func (c *RefundsClient) CreateForTransaction(ctx context.Context, transaction *paymill.Transaction, amount int, description string) (*paymill.Refund, error) {
	return c.Create(ctx, &paymill.RefundCreateRequest{
		Transaction: transactionID(transaction),
		Amount:      amount,
		Description: description,
	})
}
