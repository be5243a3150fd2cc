package paymill

import (
	"context"
	"net/url"
	"time"
)

// Client is a customer of the merchant. It owns payments and subscriptions.
type Client struct {
	Base `yaml:",inline"`

	Email        string                `json:"email"        yaml:"email"`
	Description  string                `json:"description"  yaml:"description"`
	Payment      RefList[Payment]      `json:"payment"      yaml:"payment"`
	Subscription RefList[Subscription] `json:"subscription" yaml:"subscription"`
}

// ClientCreateRequest is the body of a client creation. Both fields are
// optional.
type ClientCreateRequest struct {
	Email       string `form:"email"       validate:"omitempty,email"`
	Description string `form:"description"`
}

// Form encodes the request body.
func (r *ClientCreateRequest) Form() url.Values {
	return newForm().
		str("email", r.Email).
		str("description", r.Description).
		encode()
}

// ClientUpdateRequest changes a client. Nil fields are left untouched.
type ClientUpdateRequest struct {
	Email       *string `form:"email"       validate:"omitempty,email"`
	Description *string `form:"description"`
}

// Form encodes the request body.
func (r *ClientUpdateRequest) Form() url.Values {
	return newForm().
		strPtr("email", r.Email).
		strPtr("description", r.Description).
		encode()
}

var clientFilterKeys = []string{"payment", "email", "description", "created_at", "updated_at"}

// ClientFilter restricts a client listing.
type ClientFilter struct {
	slots filterSlots
}

// NewClientFilter creates an empty filter.
func NewClientFilter() *ClientFilter {
	return &ClientFilter{}
}

// ByPaymentID matches the owner of a payment.
func (f *ClientFilter) ByPaymentID(paymentID string) *ClientFilter {
	f.slots.set("payment", paymentID)

	return f
}

// ByEmail matches the email address.
func (f *ClientFilter) ByEmail(email string) *ClientFilter {
	f.slots.set("email", email)

	return f
}

// ByDescription matches the description.
func (f *ClientFilter) ByDescription(description string) *ClientFilter {
	f.slots.set("description", description)

	return f
}

// ByCreatedAt matches clients created within [start, end].
func (f *ClientFilter) ByCreatedAt(start, end time.Time) *ClientFilter {
	f.slots.setRange("created_at", start, end)

	return f
}

// ByUpdatedAt matches clients updated within [start, end].
func (f *ClientFilter) ByUpdatedAt(start, end time.Time) *ClientFilter {
	f.slots.setRange("updated_at", start, end)

	return f
}

// Pairs implements Query.
func (f *ClientFilter) Pairs() []QueryPair {
	if f == nil {
		return nil
	}

	return f.slots.pairs(clientFilterKeys)
}

// ClientOrder sorts a client listing.
type ClientOrder struct {
	sort sortKey
}

// NewClientOrder creates an order with no active field.
func NewClientOrder() *ClientOrder {
	return &ClientOrder{}
}

// ByEmail sorts by email address.
func (o *ClientOrder) ByEmail() *ClientOrder {
	o.sort.by("email")

	return o
}

// ByDescription sorts by description.
func (o *ClientOrder) ByDescription() *ClientOrder {
	o.sort.by("description")

	return o
}

// ByCreatedAt sorts by creation time.
func (o *ClientOrder) ByCreatedAt() *ClientOrder {
	o.sort.by("created_at")

	return o
}

// Asc sorts ascending.
func (o *ClientOrder) Asc() *ClientOrder {
	o.sort.direction(Ascending)

	return o
}

// Desc sorts descending.
func (o *ClientOrder) Desc() *ClientOrder {
	o.sort.direction(Descending)

	return o
}

// Key returns the active sort key.
func (o *ClientOrder) Key() SortKey {
	return o.sort.key
}

// Pairs implements Query.
func (o *ClientOrder) Pairs() []QueryPair {
	if o == nil {
		return nil
	}

	return o.sort.pairs()
}

// ClientsClient manages clients.
type ClientsClient interface {
	List(ctx context.Context, filter *ClientFilter, order *ClientOrder, page *Page) (*ListResponse[Client], error)
	Get(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, request *ClientCreateRequest) (*Client, error)
	// CreateWithEmail creates a client with only an email address.
	CreateWithEmail(ctx context.Context, email string) (*Client, error)
	Update(ctx context.Context, id string, request *ClientUpdateRequest) (*Client, error)
	// Delete removes a client. It reports false when the client was already
	// gone.
	Delete(ctx context.Context, id string) (bool, error)
}
