package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// ClientsClient implements paymill.ClientsClient.
type ClientsClient struct {
	resource *resource[paymill.Client]
}

// NewClientsClient creates a new clients client.
func NewClientsClient(httpClient *http.Client) *ClientsClient {
	return &ClientsClient{
		resource: newResource[paymill.Client](httpClient, constants.PathClients, "client"),
	}
}

// List implements paymill.ClientsClient.List.
func (c *ClientsClient) List(ctx context.Context, filter *paymill.ClientFilter, order *paymill.ClientOrder, page *paymill.Page) (*paymill.ListResponse[paymill.Client], error) {
	return c.resource.list(ctx, filter, order, page)
}

// Get implements paymill.ClientsClient.Get.
func (c *ClientsClient) Get(ctx context.Context, id string) (*paymill.Client, error) {
	return c.resource.get(ctx, id)
}

// Create implements paymill.ClientsClient.Create.
func (c *ClientsClient) Create(ctx context.Context, request *paymill.ClientCreateRequest) (*paymill.Client, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return c.resource.create(ctx, request.Form())
}

// CreateWithEmail implements paymill.ClientsClient.CreateWithEmail.
func (c *ClientsClient) CreateWithEmail(ctx context.Context, email string) (*paymill.Client, error) {
	return c.Create(ctx, &paymill.ClientCreateRequest{Email: email})
}

// Update implements paymill.ClientsClient.Update.
func (c *ClientsClient) Update(ctx context.Context, id string, request *paymill.ClientUpdateRequest) (*paymill.Client, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}

	return c.resource.update(ctx, id, request.Form())
}

// Delete implements paymill.ClientsClient.Delete.
func (c *ClientsClient) Delete(ctx context.Context, id string) (bool, error) {
	return c.resource.delete(ctx, id, nil)
}
