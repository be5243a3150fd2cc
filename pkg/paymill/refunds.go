package paymill

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Refund returns all or part of a transaction's amount.
type Refund struct {
	Base `yaml:",inline"`

	Transaction  Ref[Transaction] `json:"transaction"   yaml:"transaction"`
	Amount       Int              `json:"amount"        yaml:"amount"`
	Status       RefundStatus     `json:"status"        yaml:"status"`
	Description  string           `json:"description"   yaml:"description"`
	Livemode     bool             `json:"livemode"      yaml:"livemode"`
	ResponseCode Int              `json:"response_code" yaml:"response_code"`
}

// AmountFormatted returns the refunded amount in major units.
func (r *Refund) AmountFormatted() decimal.Decimal {
	return formatAmount(r.Amount)
}

// RefundCreateRequest refunds a transaction. The transaction id is part of
// the request path, not the body.
type RefundCreateRequest struct {
	Transaction string `form:"transaction" validate:"required"`
	Amount      int    `form:"amount"      validate:"gt=0"`
	Description string `form:"description"`
}

// Form encodes the request body.
func (r *RefundCreateRequest) Form() url.Values {
	return newForm().
		integer("amount", r.Amount).
		str("description", r.Description).
		encode()
}

var refundFilterKeys = []string{"client", "transaction", "amount", "created_at"}

// RefundFilter restricts a refund listing.
type RefundFilter struct {
	slots filterSlots
}

// NewRefundFilter creates an empty filter.
func NewRefundFilter() *RefundFilter {
	return &RefundFilter{}
}

// ByClientID matches refunds of a client.
func (f *RefundFilter) ByClientID(clientID string) *RefundFilter {
	f.slots.set("client", clientID)

	return f
}

// ByTransactionID matches refunds of a transaction.
func (f *RefundFilter) ByTransactionID(transactionID string) *RefundFilter {
	f.slots.set("transaction", transactionID)

	return f
}

// ByAmount matches the exact amount.
func (f *RefundFilter) ByAmount(amount int) *RefundFilter {
	f.slots.setInt("amount", amount)

	return f
}

// ByAmountGreaterThan matches amounts above amount.
func (f *RefundFilter) ByAmountGreaterThan(amount int) *RefundFilter {
	f.slots.setGreaterThan("amount", amount)

	return f
}

// ByAmountLessThan matches amounts below amount.
func (f *RefundFilter) ByAmountLessThan(amount int) *RefundFilter {
	f.slots.setLessThan("amount", amount)

	return f
}

// ByCreatedAt matches refunds created within [start, end].
func (f *RefundFilter) ByCreatedAt(start, end time.Time) *RefundFilter {
	f.slots.setRange("created_at", start, end)

	return f
}

// Pairs implements Query.
func (f *RefundFilter) Pairs() []QueryPair {
	if f == nil {
		return nil
	}

	return f.slots.pairs(refundFilterKeys)
}

// RefundOrder sorts a refund listing.
type RefundOrder struct {
	sort sortKey
}

// NewRefundOrder creates an order with no active field.
func NewRefundOrder() *RefundOrder {
	return &RefundOrder{}
}

// ByTransaction sorts by transaction.
func (o *RefundOrder) ByTransaction() *RefundOrder {
	o.sort.by("transaction")

	return o
}

// ByClient sorts by client.
func (o *RefundOrder) ByClient() *RefundOrder {
	o.sort.by("client")

	return o
}

// ByAmount sorts by amount.
func (o *RefundOrder) ByAmount() *RefundOrder {
	o.sort.by("amount")

	return o
}

// ByCreatedAt sorts by creation time.
func (o *RefundOrder) ByCreatedAt() *RefundOrder {
	o.sort.by("created_at")

	return o
}

// Asc sorts ascending.
func (o *RefundOrder) Asc() *RefundOrder {
	o.sort.direction(Ascending)

	return o
}

// Desc sorts descending.
func (o *RefundOrder) Desc() *RefundOrder {
	o.sort.direction(Descending)

	return o
}

// Key returns the active sort key.
func (o *RefundOrder) Key() SortKey {
	return o.sort.key
}

// Pairs implements Query.
func (o *RefundOrder) Pairs() []QueryPair {
	if o == nil {
		return nil
	}

	return o.sort.pairs()
}

// RefundsClient manages refunds. Refunds are immutable once created.
type RefundsClient interface {
	List(ctx context.Context, filter *RefundFilter, order *RefundOrder, page *Page) (*ListResponse[Refund], error)
	Get(ctx context.Context, id string) (*Refund, error)
	Create(ctx context.Context, request *RefundCreateRequest) (*Refund, error)
	// CreateForTransaction refunds amount of transaction.
	CreateForTransaction(ctx context.Context, transaction *Transaction, amount int, description string) (*Refund, error)
}
