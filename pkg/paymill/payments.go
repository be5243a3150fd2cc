package paymill

import (
	"context"
	"net/url"
	"time"
)

// Payment is a stored payment instrument, either a credit card or a direct
// debit account.
type Payment struct {
	Base `yaml:",inline"`

	Type        PaymentType `json:"type"         yaml:"type"`
	Client      Ref[Client] `json:"client"       yaml:"client"`
	CardType    string      `json:"card_type"    yaml:"card_type,omitempty"`
	Country     string      `json:"country"      yaml:"country,omitempty"`
	ExpireMonth Int         `json:"expire_month" yaml:"expire_month,omitempty"`
	ExpireYear  Int         `json:"expire_year"  yaml:"expire_year,omitempty"`
	CardHolder  string      `json:"card_holder"  yaml:"card_holder,omitempty"`
	Last4       string      `json:"last4"        yaml:"last4,omitempty"`
	Code        string      `json:"code"         yaml:"code,omitempty"`
	Holder      string      `json:"holder"       yaml:"holder,omitempty"`
	Account     string      `json:"account"      yaml:"account,omitempty"`
	IBAN        string      `json:"iban"         yaml:"iban,omitempty"`
	BIC         string      `json:"bic"          yaml:"bic,omitempty"`
}

// PaymentCreateRequest creates a payment from a bridge token.
type PaymentCreateRequest struct {
	Token  string `form:"token"  validate:"required"`
	Client string `form:"client"`
}

// Form encodes the request body.
func (r *PaymentCreateRequest) Form() url.Values {
	return newForm().
		str("token", r.Token).
		str("client", r.Client).
		encode()
}

var paymentFilterKeys = []string{"card_type", "created_at"}

// PaymentFilter restricts a payment listing.
type PaymentFilter struct {
	slots filterSlots
}

// NewPaymentFilter creates an empty filter.
func NewPaymentFilter() *PaymentFilter {
	return &PaymentFilter{}
}

// ByCardType matches the card brand, e.g. "visa".
func (f *PaymentFilter) ByCardType(cardType string) *PaymentFilter {
	f.slots.set("card_type", cardType)

	return f
}

// ByCreatedAt matches payments created within [start, end].
func (f *PaymentFilter) ByCreatedAt(start, end time.Time) *PaymentFilter {
	f.slots.setRange("created_at", start, end)

	return f
}

// Pairs implements Query.
func (f *PaymentFilter) Pairs() []QueryPair {
	if f == nil {
		return nil
	}

	return f.slots.pairs(paymentFilterKeys)
}

// PaymentOrder sorts a payment listing.
type PaymentOrder struct {
	sort sortKey
}

// NewPaymentOrder creates an order with no active field.
func NewPaymentOrder() *PaymentOrder {
	return &PaymentOrder{}
}

// ByCreatedAt sorts by creation time.
func (o *PaymentOrder) ByCreatedAt() *PaymentOrder {
	o.sort.by("created_at")

	return o
}

// Asc sorts ascending.
func (o *PaymentOrder) Asc() *PaymentOrder {
	o.sort.direction(Ascending)

	return o
}

// Desc sorts descending.
func (o *PaymentOrder) Desc() *PaymentOrder {
	o.sort.direction(Descending)

	return o
}

// Key returns the active sort key.
func (o *PaymentOrder) Key() SortKey {
	return o.sort.key
}

// Pairs implements Query.
func (o *PaymentOrder) Pairs() []QueryPair {
	if o == nil {
		return nil
	}

	return o.sort.pairs()
}

// PaymentsClient manages payments. Payments cannot be updated.
type PaymentsClient interface {
	List(ctx context.Context, filter *PaymentFilter, order *PaymentOrder, page *Page) (*ListResponse[Payment], error)
	Get(ctx context.Context, id string) (*Payment, error)
	Create(ctx context.Context, request *PaymentCreateRequest) (*Payment, error)
	// Delete removes a payment. It reports false when the payment was
	// already gone.
	Delete(ctx context.Context, id string) (bool, error)
}
