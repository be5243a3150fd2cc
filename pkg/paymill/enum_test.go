package paymill_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumRegistry(t *testing.T) {
	t.Parallel()

	member, ok := paymill.TransactionStatuses.Lookup("partial_refunded")
	require.True(t, ok)
	assert.Equal(t, paymill.TransactionStatusPartialRefunded, member.Value)
	assert.Equal(t, "Partially refunded", member.Name)

	_, ok = paymill.TransactionStatuses.Lookup("PARTIAL_REFUNDED")
	assert.False(t, ok)

	assert.Equal(t, paymill.TransactionStatusUnknown, paymill.TransactionStatuses.Parse("disputed"))
	assert.True(t, paymill.TransactionStatuses.Unknown().Unknown)

	members := paymill.SubscriptionStatuses.Members()
	require.Len(t, members, 4)
	assert.Equal(t, paymill.SubscriptionStatusActive, members[0].Value)

	for _, m := range members {
		assert.False(t, m.Unknown)
	}
}

func TestNewEnumRegistry_Sentinel(t *testing.T) {
	t.Parallel()

	type color string

	assert.Panics(t, func() {
		paymill.NewEnumRegistry(paymill.EnumMember[color]{Value: "", Name: "Unknown"})
	})

	assert.Panics(t, func() {
		paymill.NewEnumRegistry(
			paymill.EnumMember[color]{Value: "", Name: "Unknown", Unknown: true},
			paymill.EnumMember[color]{Value: "?", Name: "Other", Unknown: true},
		)
	})
}

func TestEnum_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected paymill.SubscriptionStatus
	}{
		{name: "known", input: `"expired"`, expected: paymill.SubscriptionStatusExpired},
		{name: "unknown", input: `"suspended"`, expected: paymill.SubscriptionStatusUnknown},
		{name: "null", input: `null`, expected: paymill.SubscriptionStatusUnknown},
		{name: "number", input: `7`, expected: paymill.SubscriptionStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var status paymill.SubscriptionStatus

			require.NoError(t, json.Unmarshal([]byte(tt.input), &status))
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.expected == paymill.SubscriptionStatusUnknown, status.IsUnknown())
		})
	}
}

func TestDisplayNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Month", paymill.IntervalUnitMonth.DisplayName())
	assert.Equal(t, "Direct debit", paymill.PaymentTypeDebit.DisplayName())
	assert.Equal(t, "Refunded", paymill.RefundStatusRefunded.DisplayName())
	assert.Equal(t, "Unknown", paymill.RefundStatus("bogus").DisplayName())
}
