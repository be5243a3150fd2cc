package validation_test

import (
	"testing"

	"github.com/fivetwenty-io/paymill-go/internal/validation"
	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     interface{}
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid offer",
			value: &paymill.OfferCreateRequest{Name: "Gold", Amount: 4200, Currency: "EUR", Interval: paymill.Interval{Count: 1, Unit: paymill.IntervalUnitMonth}},
		},
		{
			name:      "missing offer name",
			value:     &paymill.OfferCreateRequest{Amount: 4200, Currency: "EUR", Interval: paymill.Interval{Count: 1, Unit: paymill.IntervalUnitMonth}},
			wantField: "name",
			wantMsg:   "name is a required field",
		},
		{
			name:      "missing offer interval",
			value:     &paymill.OfferCreateRequest{Name: "Gold", Amount: 4200, Currency: "EUR"},
			wantField: "interval",
		},
		{
			name:      "subscription without offer",
			value:     &paymill.SubscriptionCreateRequest{Payment: "pay_1"},
			wantField: "offer",
			wantMsg:   "offer is a required field",
		},
		{
			name:      "transaction without payment or token",
			value:     &paymill.TransactionCreateRequest{Amount: 100, Currency: "EUR"},
			wantField: "payment",
			wantMsg:   "payment is required when token is not set",
		},
		{
			name:  "transaction with token",
			value: &paymill.TransactionCreateRequest{Amount: 100, Currency: "EUR", Token: "tok_1"},
		},
		{
			name:      "client with bad email",
			value:     &paymill.ClientCreateRequest{Email: "not-an-email"},
			wantField: "email",
		},
		{
			name:      "nil request",
			value:     (*paymill.PaymentCreateRequest)(nil),
			wantField: "",
			wantMsg:   "request is required",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := validation.Struct(testCase.value)
			if testCase.wantField == "" && testCase.wantMsg == "" {
				require.NoError(t, err)

				return
			}

			validationErr := &paymill.ValidationError{}
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, testCase.wantField, validationErr.Field)

			if testCase.wantMsg != "" {
				assert.Equal(t, testCase.wantMsg, validationErr.Message)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	require.NoError(t, validation.Required("offer", "offer_1"))

	err := validation.Required("offer", "  ")
	require.Error(t, err)
	assert.True(t, paymill.IsValidation(err))
	assert.Equal(t, "validation failed on offer: offer is a required field", err.Error())
}
