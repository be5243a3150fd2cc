package paymill

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a recurring plan clients can subscribe to.
type Offer struct {
	Base `yaml:",inline"`

	Name              string            `json:"name"               yaml:"name"`
	Amount            Int               `json:"amount"             yaml:"amount"`
	Currency          string            `json:"currency"           yaml:"currency"`
	Interval          Interval          `json:"interval"           yaml:"interval"`
	TrialPeriodDays   Int               `json:"trial_period_days"  yaml:"trial_period_days"`
	SubscriptionCount SubscriptionCount `json:"subscription_count" yaml:"subscription_count"`
}

// AmountFormatted returns the amount in major units, e.g. 4200 -> 42.00.
func (o *Offer) AmountFormatted() decimal.Decimal {
	return formatAmount(o.Amount)
}

// SubscriptionCount reports how many subscriptions use an offer.
type SubscriptionCount struct {
	Active   Int `json:"active"   yaml:"active"`
	Inactive Int `json:"inactive" yaml:"inactive"`
}

// OfferCreateRequest is the body of an offer creation.
type OfferCreateRequest struct {
	Name            string   `form:"name"              validate:"required"`
	Amount          int      `form:"amount"            validate:"gt=0"`
	Currency        string   `form:"currency"          validate:"required,len=3"`
	Interval        Interval `form:"interval"          validate:"required"`
	TrialPeriodDays *int     `form:"trial_period_days" validate:"omitempty,gte=0"`
}

// Form encodes the request body.
func (r *OfferCreateRequest) Form() url.Values {
	return newForm().
		integer("amount", r.Amount).
		str("currency", r.Currency).
		interval("interval", &r.Interval).
		str("name", r.Name).
		intPtr("trial_period_days", r.TrialPeriodDays).
		encode()
}

// OfferUpdateRequest changes an offer. Nil fields are left untouched.
type OfferUpdateRequest struct {
	Name                *string   `form:"name"`
	Amount              *int      `form:"amount"               validate:"omitempty,gt=0"`
	Currency            *string   `form:"currency"             validate:"omitempty,len=3"`
	Interval            *Interval `form:"interval"`
	TrialPeriodDays     *int      `form:"trial_period_days"    validate:"omitempty,gte=0"`
	UpdateSubscriptions bool      `form:"update_subscriptions"`
}

// Form encodes the request body.
func (r *OfferUpdateRequest) Form() url.Values {
	return newForm().
		strPtr("name", r.Name).
		intPtr("amount", r.Amount).
		strPtr("currency", r.Currency).
		interval("interval", r.Interval).
		intPtr("trial_period_days", r.TrialPeriodDays).
		flag("update_subscriptions", r.UpdateSubscriptions).
		encode()
}

var offerFilterKeys = []string{"name", "trial_period_days", "amount", "created_at", "updated_at"}

// OfferFilter restricts an offer listing.
type OfferFilter struct {
	slots filterSlots
}

// NewOfferFilter creates an empty filter.
func NewOfferFilter() *OfferFilter {
	return &OfferFilter{}
}

// ByName matches the offer name.
func (f *OfferFilter) ByName(name string) *OfferFilter {
	f.slots.set("name", name)

	return f
}

// ByTrialPeriodDays matches the trial length.
func (f *OfferFilter) ByTrialPeriodDays(days int) *OfferFilter {
	f.slots.setInt("trial_period_days", days)

	return f
}

// ByAmount matches the exact amount.
func (f *OfferFilter) ByAmount(amount int) *OfferFilter {
	f.slots.setInt("amount", amount)

	return f
}

// ByAmountGreaterThan matches amounts above amount.
func (f *OfferFilter) ByAmountGreaterThan(amount int) *OfferFilter {
	f.slots.setGreaterThan("amount", amount)

	return f
}

// ByAmountLessThan matches amounts below amount.
func (f *OfferFilter) ByAmountLessThan(amount int) *OfferFilter {
	f.slots.setLessThan("amount", amount)

	return f
}

// ByCreatedAt matches offers created within [start, end].
func (f *OfferFilter) ByCreatedAt(start, end time.Time) *OfferFilter {
	f.slots.setRange("created_at", start, end)

	return f
}

// ByUpdatedAt matches offers updated within [start, end].
func (f *OfferFilter) ByUpdatedAt(start, end time.Time) *OfferFilter {
	f.slots.setRange("updated_at", start, end)

	return f
}

// Pairs implements Query.
func (f *OfferFilter) Pairs() []QueryPair {
	if f == nil {
		return nil
	}

	return f.slots.pairs(offerFilterKeys)
}

// OfferOrder sorts an offer listing.
type OfferOrder struct {
	sort sortKey
}

// NewOfferOrder creates an order with no active field.
func NewOfferOrder() *OfferOrder {
	return &OfferOrder{}
}

// ByInterval sorts by billing interval.
func (o *OfferOrder) ByInterval() *OfferOrder {
	o.sort.by("interval")

	return o
}

// ByAmount sorts by amount.
func (o *OfferOrder) ByAmount() *OfferOrder {
	o.sort.by("amount")

	return o
}

// ByCreatedAt sorts by creation time.
func (o *OfferOrder) ByCreatedAt() *OfferOrder {
	o.sort.by("created_at")

	return o
}

// ByTrialPeriodDays sorts by trial length.
func (o *OfferOrder) ByTrialPeriodDays() *OfferOrder {
	o.sort.by("trial_period_days")

	return o
}

// Asc sorts ascending.
func (o *OfferOrder) Asc() *OfferOrder {
	o.sort.direction(Ascending)

	return o
}

// Desc sorts descending.
func (o *OfferOrder) Desc() *OfferOrder {
	o.sort.direction(Descending)

	return o
}

// Key returns the active sort key.
func (o *OfferOrder) Key() SortKey {
	return o.sort.key
}

// Pairs implements Query.
func (o *OfferOrder) Pairs() []QueryPair {
	if o == nil {
		return nil
	}

	return o.sort.pairs()
}

// OffersClient manages offers.
type OffersClient interface {
	List(ctx context.Context, filter *OfferFilter, order *OfferOrder, page *Page) (*ListResponse[Offer], error)
	Get(ctx context.Context, id string) (*Offer, error)
	Create(ctx context.Context, request *OfferCreateRequest) (*Offer, error)
	Update(ctx context.Context, id string, request *OfferUpdateRequest) (*Offer, error)
	// Delete removes an offer. It reports false when the offer was already
	// gone. removeWithSubscriptions also deletes the offer's subscriptions.
	Delete(ctx context.Context, id string, removeWithSubscriptions bool) (bool, error)
}
