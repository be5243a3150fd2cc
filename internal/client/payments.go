package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// PaymentsClient implements paymill.PaymentsClient.
type PaymentsClient struct {
	resource *resource[paymill.Payment]
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *http.Client) *PaymentsClient {
	return &PaymentsClient{
		resource: newResource[paymill.Payment](httpClient, constants.PathPayments, "payment"),
	}
}

// List implements paymill.PaymentsClient.List.
func (c *PaymentsClient) List(ctx context.Context, filter *paymill.PaymentFilter, order *paymill.PaymentOrder, page *paymill.Page) (*paymill.ListResponse[paymill.Payment], error) {
	return c.resource.list(ctx, filter, order, page)
}

// Get implements paymill.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, id string) (*paymill.Payment, error) {
	return c.resource.get(ctx, id)
}

// Create implements paymill.PaymentsClient.Create.
func (c *PaymentsClient) Create(ctx context.Context, request *paymill.PaymentCreateRequest) (*paymill.Payment, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return c.resource.create(ctx, request.Form())
}

// Delete implements paymill.PaymentsClient.Delete.
func (c *PaymentsClient) Delete(ctx context.Context, id string) (bool, error) {
	return c.resource.delete(ctx, id, nil)
}
