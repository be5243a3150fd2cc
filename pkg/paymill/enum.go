package paymill

import "fmt"

// EnumMember is a single value of a closed set.
type EnumMember[T ~string] struct {
	Value   T
	Name    string
	Unknown bool
}

// EnumRegistry maps wire strings to the members of a closed set. Values the
// registry does not know resolve to its unknown sentinel.
type EnumRegistry[T ~string] struct {
	members []EnumMember[T]
	byValue map[string]EnumMember[T]
	unknown EnumMember[T]
}

// NewEnumRegistry builds a registry. Exactly one member, the first argument,
// is the unknown sentinel.
func NewEnumRegistry[T ~string](unknown EnumMember[T], members ...EnumMember[T]) *EnumRegistry[T] {
	if !unknown.Unknown {
		panic(fmt.Sprintf("paymill: sentinel %q must be marked unknown", unknown.Value))
	}

	registry := &EnumRegistry[T]{
		members: make([]EnumMember[T], 0, len(members)),
		byValue: make(map[string]EnumMember[T], len(members)),
		unknown: unknown,
	}

	for _, member := range members {
		if member.Unknown {
			panic(fmt.Sprintf("paymill: %q is a second unknown sentinel", member.Value))
		}

		registry.members = append(registry.members, member)
		registry.byValue[string(member.Value)] = member
	}

	return registry
}

// Lookup returns the member for a wire value.
func (r *EnumRegistry[T]) Lookup(wire string) (EnumMember[T], bool) {
	member, ok := r.byValue[wire]

	return member, ok
}

// Parse returns the value for wire, or the unknown sentinel.
func (r *EnumRegistry[T]) Parse(wire string) T {
	if member, ok := r.byValue[wire]; ok {
		return member.Value
	}

	return r.unknown.Value
}

// Member returns the member describing value.
func (r *EnumRegistry[T]) Member(value T) EnumMember[T] {
	if member, ok := r.byValue[string(value)]; ok {
		return member
	}

	return r.unknown
}

// Unknown returns the sentinel member.
func (r *EnumRegistry[T]) Unknown() EnumMember[T] {
	return r.unknown
}

// Members returns the known members in declaration order.
func (r *EnumRegistry[T]) Members() []EnumMember[T] {
	out := make([]EnumMember[T], len(r.members))
	copy(out, r.members)

	return out
}

// unmarshalEnum decodes a JSON string through registry. Anything that is not
// a known wire string, null and non-string tokens included, becomes the
// unknown sentinel.
func unmarshalEnum[T ~string](registry *EnumRegistry[T], data []byte, target *T) error {
	wire, isNull, err := jsonString(data)
	if err != nil || isNull {
		*target = registry.unknown.Value

		return nil
	}

	*target = registry.Parse(wire)

	return nil
}

// IntervalUnit is the unit of an Interval.
type IntervalUnit string

// Interval units.
const (
	IntervalUnitUnknown IntervalUnit = ""
	IntervalUnitDay     IntervalUnit = "DAY"
	IntervalUnitWeek    IntervalUnit = "WEEK"
	IntervalUnitMonth   IntervalUnit = "MONTH"
	IntervalUnitYear    IntervalUnit = "YEAR"
)

// IntervalUnits is the registry of interval units.
var IntervalUnits = NewEnumRegistry(
	EnumMember[IntervalUnit]{Value: IntervalUnitUnknown, Name: "Unknown", Unknown: true},
	EnumMember[IntervalUnit]{Value: IntervalUnitDay, Name: "Day"},
	EnumMember[IntervalUnit]{Value: IntervalUnitWeek, Name: "Week"},
	EnumMember[IntervalUnit]{Value: IntervalUnitMonth, Name: "Month"},
	EnumMember[IntervalUnit]{Value: IntervalUnitYear, Name: "Year"},
)

// IsUnknown reports whether u is the unknown sentinel.
func (u IntervalUnit) IsUnknown() bool { return IntervalUnits.Member(u).Unknown }

// DisplayName returns the human readable name.
func (u IntervalUnit) DisplayName() string { return IntervalUnits.Member(u).Name }

// UnmarshalJSON implements json.Unmarshaler.
func (u *IntervalUnit) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(IntervalUnits, data, u)
}

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

// Subscription states.
const (
	SubscriptionStatusUnknown  SubscriptionStatus = ""
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
	SubscriptionStatusFailed   SubscriptionStatus = "failed"
)

// SubscriptionStatuses is the registry of subscription states.
var SubscriptionStatuses = NewEnumRegistry(
	EnumMember[SubscriptionStatus]{Value: SubscriptionStatusUnknown, Name: "Unknown", Unknown: true},
	EnumMember[SubscriptionStatus]{Value: SubscriptionStatusActive, Name: "Active"},
	EnumMember[SubscriptionStatus]{Value: SubscriptionStatusInactive, Name: "Inactive"},
	EnumMember[SubscriptionStatus]{Value: SubscriptionStatusExpired, Name: "Expired"},
	EnumMember[SubscriptionStatus]{Value: SubscriptionStatusFailed, Name: "Failed"},
)

// IsUnknown reports whether s is the unknown sentinel.
func (s SubscriptionStatus) IsUnknown() bool { return SubscriptionStatuses.Member(s).Unknown }

// DisplayName returns the human readable name.
func (s SubscriptionStatus) DisplayName() string { return SubscriptionStatuses.Member(s).Name }

// UnmarshalJSON implements json.Unmarshaler.
func (s *SubscriptionStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(SubscriptionStatuses, data, s)
}

// TransactionStatus is the processing state of a transaction.
type TransactionStatus string

// Transaction states.
const (
	TransactionStatusUnknown         TransactionStatus = ""
	TransactionStatusOpen            TransactionStatus = "open"
	TransactionStatusPending         TransactionStatus = "pending"
	TransactionStatusClosed          TransactionStatus = "closed"
	TransactionStatusFailed          TransactionStatus = "failed"
	TransactionStatusPartialRefunded TransactionStatus = "partial_refunded"
	TransactionStatusRefunded        TransactionStatus = "refunded"
	TransactionStatusPreauthorize    TransactionStatus = "preauthorize"
	TransactionStatusChargeback      TransactionStatus = "chargeback"
)

// TransactionStatuses is the registry of transaction states.
var TransactionStatuses = NewEnumRegistry(
	EnumMember[TransactionStatus]{Value: TransactionStatusUnknown, Name: "Unknown", Unknown: true},
	EnumMember[TransactionStatus]{Value: TransactionStatusOpen, Name: "Open"},
	EnumMember[TransactionStatus]{Value: TransactionStatusPending, Name: "Pending"},
	EnumMember[TransactionStatus]{Value: TransactionStatusClosed, Name: "Closed"},
	EnumMember[TransactionStatus]{Value: TransactionStatusFailed, Name: "Failed"},
	EnumMember[TransactionStatus]{Value: TransactionStatusPartialRefunded, Name: "Partially refunded"},
	EnumMember[TransactionStatus]{Value: TransactionStatusRefunded, Name: "Refunded"},
	EnumMember[TransactionStatus]{Value: TransactionStatusPreauthorize, Name: "Preauthorized"},
	EnumMember[TransactionStatus]{Value: TransactionStatusChargeback, Name: "Chargeback"},
)

// IsUnknown reports whether s is the unknown sentinel.
func (s TransactionStatus) IsUnknown() bool { return TransactionStatuses.Member(s).Unknown }

// DisplayName returns the human readable name.
func (s TransactionStatus) DisplayName() string { return TransactionStatuses.Member(s).Name }

// UnmarshalJSON implements json.Unmarshaler.
func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(TransactionStatuses, data, s)
}

// RefundStatus is the processing state of a refund.
type RefundStatus string

// Refund states.
const (
	RefundStatusUnknown  RefundStatus = ""
	RefundStatusOpen     RefundStatus = "open"
	RefundStatusRefunded RefundStatus = "refunded"
	RefundStatusFailed   RefundStatus = "failed"
)

// RefundStatuses is the registry of refund states.
var RefundStatuses = NewEnumRegistry(
	EnumMember[RefundStatus]{Value: RefundStatusUnknown, Name: "Unknown", Unknown: true},
	EnumMember[RefundStatus]{Value: RefundStatusOpen, Name: "Open"},
	EnumMember[RefundStatus]{Value: RefundStatusRefunded, Name: "Refunded"},
	EnumMember[RefundStatus]{Value: RefundStatusFailed, Name: "Failed"},
)

// IsUnknown reports whether s is the unknown sentinel.
func (s RefundStatus) IsUnknown() bool { return RefundStatuses.Member(s).Unknown }

// DisplayName returns the human readable name.
func (s RefundStatus) DisplayName() string { return RefundStatuses.Member(s).Name }

// UnmarshalJSON implements json.Unmarshaler.
func (s *RefundStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(RefundStatuses, data, s)
}

// PaymentType is the kind of payment method.
type PaymentType string

// Payment method kinds.
const (
	PaymentTypeUnknown    PaymentType = ""
	PaymentTypeCreditCard PaymentType = "creditcard"
	PaymentTypeDebit      PaymentType = "debit"
)

// PaymentTypes is the registry of payment method kinds.
var PaymentTypes = NewEnumRegistry(
	EnumMember[PaymentType]{Value: PaymentTypeUnknown, Name: "Unknown", Unknown: true},
	EnumMember[PaymentType]{Value: PaymentTypeCreditCard, Name: "Credit card"},
	EnumMember[PaymentType]{Value: PaymentTypeDebit, Name: "Direct debit"},
)

// IsUnknown reports whether t is the unknown sentinel.
func (t PaymentType) IsUnknown() bool { return PaymentTypes.Member(t).Unknown }

// DisplayName returns the human readable name.
func (t PaymentType) DisplayName() string { return PaymentTypes.Member(t).Name }

// UnmarshalJSON implements json.Unmarshaler.
func (t *PaymentType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(PaymentTypes, data, t)
}
