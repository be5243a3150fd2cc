package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/fivetwenty-io/paymill-go/internal/http"
	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
)

// SubscriptionsClient implements paymill.SubscriptionsClient.
type SubscriptionsClient struct {
	resource *resource[paymill.Subscription]
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{
		resource: newResource[paymill.Subscription](httpClient, constants.PathSubscriptions, "subscription"),
	}
}

// List implements paymill.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, filter *paymill.SubscriptionFilter, order *paymill.SubscriptionOrder, page *paymill.Page) (*paymill.ListResponse[paymill.Subscription], error) {
	return c.resource.list(ctx, filter, order, page)
}

// Get implements paymill.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string) (*paymill.Subscription, error) {
	return c.resource.get(ctx, id)
}

// Create implements paymill.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *paymill.SubscriptionCreateRequest) (*paymill.Subscription, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return c.resource.create(ctx, request.Form())
}

// CreateWithOfferAndPayment implements paymill.SubscriptionsClient.CreateWithOfferAndPayment.
func (c *SubscriptionsClient) CreateWithOfferAndPayment(ctx context.Context, offer *paymill.Offer, payment *paymill.Payment, trialStart *time.Time) (*paymill.Subscription, error) {
	request := &paymill.SubscriptionCreateRequest{
		Offer:   offerID(offer),
		Payment: paymentID(payment),
		StartAt: trialStart,
	}

	return c.Create(ctx, request)
}

// CreateWithOfferPaymentAndClient implements paymill.SubscriptionsClient.CreateWithOfferPaymentAndClient.
func (c *SubscriptionsClient) CreateWithOfferPaymentAndClient(ctx context.Context, offer *paymill.Offer, payment *paymill.Payment, client *paymill.Client, trialStart *time.Time) (*paymill.Subscription, error) {
	request := &paymill.SubscriptionCreateRequest{
		Offer:   offerID(offer),
		Payment: paymentID(payment),
		Client:  clientID(client),
		StartAt: trialStart,
	}

	// the client is optional on the plain create, not here
	err := validation.Struct(request)
	if err == nil {
		err = validation.Required("client", request.Client)
	}

	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return c.resource.create(ctx, request.Form())
}

// Update implements paymill.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, id string, request *paymill.SubscriptionUpdateRequest) (*paymill.Subscription, error) {
	err := validation.Struct(request)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return c.resource.update(ctx, id, request.Form())
}

// Delete implements paymill.SubscriptionsClient.Delete.
func (c *SubscriptionsClient) Delete(ctx context.Context, id string) (bool, error) {
	return c.resource.delete(ctx, id, nil)
}

func offerID(offer *paymill.Offer) string {
	if offer == nil {
		return ""
	}

	return offer.ID
}

func paymentID(payment *paymill.Payment) string {
	if payment == nil {
		return ""
	}

	return payment.ID
}

func clientID(client *paymill.Client) string {
	if client == nil {
		return ""
	}

	return client.ID
}

func transactionID(transaction *paymill.Transaction) string {
	if transaction == nil {
		return ""
	}

	return transaction.ID
}
