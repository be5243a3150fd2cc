package paymill

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single charge against a payment.
type Transaction struct {
	Base `yaml:",inline"`

	Amount       Int               `json:"amount"        yaml:"amount"`
	OriginAmount Int               `json:"origin_amount" yaml:"origin_amount"`
	Currency     string            `json:"currency"      yaml:"currency"`
	Status       TransactionStatus `json:"status"        yaml:"status"`
	Description  string            `json:"description"   yaml:"description"`
	Livemode     bool              `json:"livemode"      yaml:"livemode"`
	Refunds      RefList[Refund]   `json:"refunds"       yaml:"refunds"`
	Payment      Ref[Payment]      `json:"payment"       yaml:"payment"`
	Client       Ref[Client]       `json:"client"        yaml:"client"`
	ResponseCode Int               `json:"response_code" yaml:"response_code"`
	ShortID      string            `json:"short_id"      yaml:"short_id,omitempty"`
	IsFraud      bool              `json:"is_fraud"      yaml:"is_fraud"`
}

// AmountFormatted returns the amount in major units.
func (t *Transaction) AmountFormatted() decimal.Decimal {
	return formatAmount(t.Amount)
}

// Successful reports whether the charge was processed.
func (t *Transaction) Successful() bool {
	return t.ResponseCode == transactionSuccessCode
}

const transactionSuccessCode = 20000

// TransactionCreateRequest charges either a stored payment or a bridge token.
type TransactionCreateRequest struct {
	Amount      int    `form:"amount"      validate:"gt=0"`
	Currency    string `form:"currency"    validate:"required,len=3"`
	Payment     string `form:"payment"     validate:"required_without=Token"`
	Token       string `form:"token"       validate:"required_without=Payment"`
	Client      string `form:"client"`
	Description string `form:"description"`
	FeeAmount   *int   `form:"fee_amount"  validate:"omitempty,gte=0"`
	FeePayment  string `form:"fee_payment"`
}

// Form encodes the request body.
func (r *TransactionCreateRequest) Form() url.Values {
	return newForm().
		integer("amount", r.Amount).
		str("currency", r.Currency).
		str("payment", r.Payment).
		str("token", r.Token).
		str("client", r.Client).
		str("description", r.Description).
		intPtr("fee_amount", r.FeeAmount).
		str("fee_payment", r.FeePayment).
		encode()
}

// TransactionUpdateRequest changes the description of a transaction, the only
// mutable field.
type TransactionUpdateRequest struct {
	Description string `form:"description" validate:"required"`
}

// Form encodes the request body.
func (r *TransactionUpdateRequest) Form() url.Values {
	return newForm().
		str("description", r.Description).
		encode()
}

var transactionFilterKeys = []string{
	"client", "payment", "amount", "description", "status", "created_at", "updated_at",
}

// TransactionFilter restricts a transaction listing.
type TransactionFilter struct {
	slots filterSlots
}

// NewTransactionFilter creates an empty filter.
func NewTransactionFilter() *TransactionFilter {
	return &TransactionFilter{}
}

// ByClientID matches transactions of a client.
func (f *TransactionFilter) ByClientID(clientID string) *TransactionFilter {
	f.slots.set("client", clientID)

	return f
}

// ByPaymentID matches transactions charged to a payment.
func (f *TransactionFilter) ByPaymentID(paymentID string) *TransactionFilter {
	f.slots.set("payment", paymentID)

	return f
}

// ByAmount matches the exact amount.
func (f *TransactionFilter) ByAmount(amount int) *TransactionFilter {
	f.slots.setInt("amount", amount)

	return f
}

// ByAmountGreaterThan matches amounts above amount.
func (f *TransactionFilter) ByAmountGreaterThan(amount int) *TransactionFilter {
	f.slots.setGreaterThan("amount", amount)

	return f
}

// ByAmountLessThan matches amounts below amount.
func (f *TransactionFilter) ByAmountLessThan(amount int) *TransactionFilter {
	f.slots.setLessThan("amount", amount)

	return f
}

// ByDescription matches the description.
func (f *TransactionFilter) ByDescription(description string) *TransactionFilter {
	f.slots.set("description", description)

	return f
}

// ByStatus matches the transaction status.
func (f *TransactionFilter) ByStatus(status TransactionStatus) *TransactionFilter {
	f.slots.set("status", string(status))

	return f
}

// ByCreatedAt matches transactions created within [start, end].
func (f *TransactionFilter) ByCreatedAt(start, end time.Time) *TransactionFilter {
	f.slots.setRange("created_at", start, end)

	return f
}

// ByUpdatedAt matches transactions updated within [start, end].
func (f *TransactionFilter) ByUpdatedAt(start, end time.Time) *TransactionFilter {
	f.slots.setRange("updated_at", start, end)

	return f
}

// Pairs implements Query.
func (f *TransactionFilter) Pairs() []QueryPair {
	if f == nil {
		return nil
	}

	return f.slots.pairs(transactionFilterKeys)
}

// TransactionOrder sorts a transaction listing.
type TransactionOrder struct {
	sort sortKey
}

// NewTransactionOrder creates an order with no active field.
func NewTransactionOrder() *TransactionOrder {
	return &TransactionOrder{}
}

// ByCreatedAt sorts by creation time.
func (o *TransactionOrder) ByCreatedAt() *TransactionOrder {
	o.sort.by("created_at")

	return o
}

// ByAmount sorts by amount.
func (o *TransactionOrder) ByAmount() *TransactionOrder {
	o.sort.by("amount")

	return o
}

// Asc sorts ascending.
func (o *TransactionOrder) Asc() *TransactionOrder {
	o.sort.direction(Ascending)

	return o
}

// Desc sorts descending.
func (o *TransactionOrder) Desc() *TransactionOrder {
	o.sort.direction(Descending)

	return o
}

// Key returns the active sort key.
func (o *TransactionOrder) Key() SortKey {
	return o.sort.key
}

// Pairs implements Query.
func (o *TransactionOrder) Pairs() []QueryPair {
	if o == nil {
		return nil
	}

	return o.sort.pairs()
}

// TransactionsClient manages transactions. Transactions cannot be deleted;
// refunds reverse them.
type TransactionsClient interface {
	List(ctx context.Context, filter *TransactionFilter, order *TransactionOrder, page *Page) (*ListResponse[Transaction], error)
	Get(ctx context.Context, id string) (*Transaction, error)
	Create(ctx context.Context, request *TransactionCreateRequest) (*Transaction, error)
	Update(ctx context.Context, id string, request *TransactionUpdateRequest) (*Transaction, error)
}
