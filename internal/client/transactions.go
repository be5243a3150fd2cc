package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// TransactionsClient implements paymill.TransactionsClient.
type TransactionsClient struct {
	resource *resource[paymill.Transaction]
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(httpClient *http.Client) *TransactionsClient {
	return &TransactionsClient{
		resource: newResource[paymill.Transaction](httpClient, constants.PathTransactions, "transaction"),
	}
}

// List implements paymill.TransactionsClient.List.
func (c *TransactionsClient) List(ctx context.Context, filter *paymill.TransactionFilter, order *paymill.TransactionOrder, page *paymill.Page) (*paymill.ListResponse[paymill.Transaction], error) {
	return c.resource.list(ctx, filter, order, page)
}

// Get implements paymill.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, id string) (*paymill.Transaction, error) {
	return c.resource.get(ctx, id)
}

// Create implements paymill.TransactionsClient.Create.
func (c *TransactionsClient) Create(ctx context.Context, request *paymill.TransactionCreateRequest) (*paymill.Transaction, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return c.resource.create(ctx, request.Form())
}

// Update implements paymill.TransactionsClient.Update.
func (c *TransactionsClient) Update(ctx context.Context, id string, request *paymill.TransactionUpdateRequest) (*paymill.Transaction, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("updating transaction: %w", err)
	}

	return c.resource.update(ctx, id, request.Form())
}
