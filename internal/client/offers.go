package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// OffersClient implements paymill.OffersClient.
type OffersClient struct {
	resource *resource[paymill.Offer]
}

// NewOffersClient creates a new offers client.
func NewOffersClient(httpClient *http.Client) *OffersClient {
	return &OffersClient{
		resource: newResource[paymill.Offer](httpClient, constants.PathOffers, "offer"),
	}
}

// List implements paymill.OffersClient.List.
func (c *OffersClient) List(ctx context.Context, filter *paymill.OfferFilter, order *paymill.OfferOrder, page *paymill.Page) (*paymill.ListResponse[paymill.Offer], error) {
	return c.resource.list(ctx, filter, order, page)
}

// Get implements paymill.OffersClient.Get.
func (c *OffersClient) Get(ctx context.Context, id string) (*paymill.Offer, error) {
	return c.resource.get(ctx, id)
}

// Create implements paymill.OffersClient.Create.
func (c *OffersClient) Create(ctx context.Context, request *paymill.OfferCreateRequest) (*paymill.Offer, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("creating offer: %w", err)
	}

	return c.resource.create(ctx, request.Form())
}

// Update implements paymill.OffersClient.Update.
func (c *OffersClient) Update(ctx context.Context, id string, request *paymill.OfferUpdateRequest) (*paymill.Offer, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("updating offer: %w", err)
	}

	return c.resource.update(ctx, id, request.Form())
}

// Delete implements paymill.OffersClient.Delete.
func (c *OffersClient) Delete(ctx context.Context, id string, removeWithSubscriptions bool) (bool, error) {
	var form url.Values
	if removeWithSubscriptions {
		form = url.Values{"remove_with_subscriptions": []string{"true"}}
	}

	return c.resource.delete(ctx, id, form)
}
