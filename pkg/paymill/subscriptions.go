package paymill

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Subscription charges a client periodically for an offer.
type Subscription struct {
	Base `yaml:",inline"`

	Offer            Ref[Offer]         `json:"offer"              yaml:"offer"`
	Livemode         bool               `json:"livemode"           yaml:"livemode"`
	Amount           Int                `json:"amount"             yaml:"amount"`
	TempAmount       Int                `json:"temp_amount"        yaml:"temp_amount,omitempty"`
	Currency         string             `json:"currency"           yaml:"currency"`
	Name             string             `json:"name"               yaml:"name"`
	Interval         Interval           `json:"interval"           yaml:"interval"`
	TrialStart       Timestamp          `json:"trial_start"        yaml:"trial_start"`
	TrialEnd         Timestamp          `json:"trial_end"          yaml:"trial_end"`
	PeriodOfValidity Interval           `json:"period_of_validity" yaml:"period_of_validity"`
	EndOfPeriod      Timestamp          `json:"end_of_period"      yaml:"end_of_period"`
	NextCaptureAt    Timestamp          `json:"next_capture_at"    yaml:"next_capture_at"`
	CanceledAt       Timestamp          `json:"canceled_at"        yaml:"canceled_at"`
	Payment          Ref[Payment]       `json:"payment"            yaml:"payment"`
	Client           Ref[Client]        `json:"client"             yaml:"client"`
	Status           SubscriptionStatus `json:"status"             yaml:"status"`
	IsCanceled       bool               `json:"is_canceled"        yaml:"is_canceled"`
	IsDeleted        bool               `json:"is_deleted"         yaml:"is_deleted"`
}

// AmountFormatted returns the amount in major units.
func (s *Subscription) AmountFormatted() decimal.Decimal {
	return formatAmount(s.Amount)
}

// SubscriptionCreateRequest subscribes a client to an offer. When Client is
// empty the client of the payment is used.
type SubscriptionCreateRequest struct {
	Offer            string     `form:"offer"   validate:"required"`
	Payment          string     `form:"payment" validate:"required"`
	Client           string     `form:"client"`
	StartAt          *time.Time `form:"start_at"`
	Amount           *int       `form:"amount"   validate:"omitempty,gt=0"`
	Currency         string     `form:"currency" validate:"omitempty,len=3"`
	Interval         *Interval  `form:"interval"`
	Name             string     `form:"name"`
	PeriodOfValidity *Interval  `form:"period_of_validity"`
}

// Form encodes the request body.
func (r *SubscriptionCreateRequest) Form() url.Values {
	return newForm().
		str("offer", r.Offer).
		str("payment", r.Payment).
		str("client", r.Client).
		unixTime("start_at", r.StartAt).
		intPtr("amount", r.Amount).
		str("currency", r.Currency).
		interval("interval", r.Interval).
		str("name", r.Name).
		interval("period_of_validity", r.PeriodOfValidity).
		encode()
}

// SubscriptionUpdateRequest changes a subscription. Unset fields are left
// untouched.
type SubscriptionUpdateRequest struct {
	Offer            string    `form:"offer"`
	Payment          string    `form:"payment"`
	Amount           *int      `form:"amount"   validate:"omitempty,gt=0"`
	Currency         *string   `form:"currency" validate:"omitempty,len=3"`
	Interval         *Interval `form:"interval"`
	Name             *string   `form:"name"`
	Pause            *bool     `form:"pause"`
	PeriodOfValidity *Interval `form:"period_of_validity"`
}

// Form encodes the request body.
func (r *SubscriptionUpdateRequest) Form() url.Values {
	return newForm().
		str("offer", r.Offer).
		str("payment", r.Payment).
		intPtr("amount", r.Amount).
		strPtr("currency", r.Currency).
		interval("interval", r.Interval).
		strPtr("name", r.Name).
		boolPtr("pause", r.Pause).
		interval("period_of_validity", r.PeriodOfValidity).
		encode()
}

var subscriptionFilterKeys = []string{"offer", "created_at", "updated_at"}

// SubscriptionFilter restricts a subscription listing.
type SubscriptionFilter struct {
	slots filterSlots
}

// NewSubscriptionFilter creates an empty filter.
func NewSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{}
}

// ByOfferID matches subscriptions of an offer.
func (f *SubscriptionFilter) ByOfferID(offerID string) *SubscriptionFilter {
	f.slots.set("offer", offerID)

	return f
}

// ByCreatedAt matches subscriptions created within [start, end].
func (f *SubscriptionFilter) ByCreatedAt(start, end time.Time) *SubscriptionFilter {
	f.slots.setRange("created_at", start, end)

	return f
}

// ByUpdatedAt matches subscriptions updated within [start, end].
func (f *SubscriptionFilter) ByUpdatedAt(start, end time.Time) *SubscriptionFilter {
	f.slots.setRange("updated_at", start, end)

	return f
}

// Pairs implements Query.
func (f *SubscriptionFilter) Pairs() []QueryPair {
	if f == nil {
		return nil
	}

	return f.slots.pairs(subscriptionFilterKeys)
}

// SubscriptionOrder sorts a subscription listing.
type SubscriptionOrder struct {
	sort sortKey
}

// NewSubscriptionOrder creates an order with no active field.
func NewSubscriptionOrder() *SubscriptionOrder {
	return &SubscriptionOrder{}
}

// ByOffer sorts by offer.
func (o *SubscriptionOrder) ByOffer() *SubscriptionOrder {
	o.sort.by("offer")

	return o
}

// ByCanceledAt sorts by cancellation time.
func (o *SubscriptionOrder) ByCanceledAt() *SubscriptionOrder {
	o.sort.by("canceled_at")

	return o
}

// ByCreatedAt sorts by creation time.
func (o *SubscriptionOrder) ByCreatedAt() *SubscriptionOrder {
	o.sort.by("created_at")

	return o
}

// Asc sorts ascending.
func (o *SubscriptionOrder) Asc() *SubscriptionOrder {
	o.sort.direction(Ascending)

	return o
}

// Desc sorts descending.
func (o *SubscriptionOrder) Desc() *SubscriptionOrder {
	o.sort.direction(Descending)

	return o
}

// Key returns the active sort key.
func (o *SubscriptionOrder) Key() SortKey {
	return o.sort.key
}

// Pairs implements Query.
func (o *SubscriptionOrder) Pairs() []QueryPair {
	if o == nil {
		return nil
	}

	return o.sort.pairs()
}

// SubscriptionsClient manages subscriptions.
type SubscriptionsClient interface {
	List(ctx context.Context, filter *SubscriptionFilter, order *SubscriptionOrder, page *Page) (*ListResponse[Subscription], error)
	Get(ctx context.Context, id string) (*Subscription, error)
	Create(ctx context.Context, request *SubscriptionCreateRequest) (*Subscription, error)
	// CreateWithOfferAndPayment subscribes the client of payment to offer.
	// Only the identifiers of the arguments are sent; trialStart may be nil.
	CreateWithOfferAndPayment(ctx context.Context, offer *Offer, payment *Payment, trialStart *time.Time) (*Subscription, error)
	// CreateWithOfferPaymentAndClient subscribes client to offer, charging
	// payment.
	CreateWithOfferPaymentAndClient(ctx context.Context, offer *Offer, payment *Payment, client *Client, trialStart *time.Time) (*Subscription, error)
	Update(ctx context.Context, id string, request *SubscriptionUpdateRequest) (*Subscription, error)
	// Delete cancels and removes a subscription. It reports false when the
	// subscription was already gone.
	Delete(ctx context.Context, id string) (bool, error)
}
