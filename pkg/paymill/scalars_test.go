package paymill_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected paymill.Int
		wantErr  error
	}{
		{name: "number", input: `42`, expected: 42},
		{name: "string", input: `"42"`, expected: 42},
		{name: "negative string", input: `"-7"`, expected: -7},
		{name: "null", input: `null`, expected: 0},
		{name: "empty string", input: `""`, expected: 0},
		{name: "not a number", input: `"forty"`, wantErr: paymill.ErrInvalidInteger},
		{name: "fraction", input: `4.2`, wantErr: paymill.ErrInvalidInteger},
		{name: "boolean", input: `true`, wantErr: paymill.ErrUnexpectedToken},
		{name: "object", input: `{}`, wantErr: paymill.ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var value paymill.Int

			err := json.Unmarshal([]byte(tt.input), &value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				decodeErr := &paymill.DecodeError{}
				assert.ErrorAs(t, err, &decodeErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected paymill.Interval
		wantErr  error
	}{
		{name: "month", input: "1 MONTH", expected: paymill.Interval{Count: 1, Unit: paymill.IntervalUnitMonth}},
		{name: "days", input: "3 DAY", expected: paymill.Interval{Count: 3, Unit: paymill.IntervalUnitDay}},
		{name: "extra whitespace", input: " 2  WEEK ", expected: paymill.Interval{Count: 2, Unit: paymill.IntervalUnitWeek}},
		{name: "single token", input: "abc", wantErr: paymill.ErrInvalidInterval},
		{name: "three tokens", input: "1 MONTH extra", wantErr: paymill.ErrInvalidInterval},
		{name: "count not a number", input: "one MONTH", wantErr: paymill.ErrInvalidInterval},
		{name: "unknown unit", input: "1 FORTNIGHT", wantErr: paymill.ErrUnknownIntervalUnit},
		{name: "units are case sensitive", input: "1 month", wantErr: paymill.ErrUnknownIntervalUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			interval, err := paymill.ParseInterval(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				formatErr := &paymill.FormatError{}
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, tt.input, formatErr.Input)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, interval)
		})
	}
}

func TestInterval_JSON(t *testing.T) {
	t.Parallel()

	var interval paymill.Interval

	require.NoError(t, json.Unmarshal([]byte(`"2 YEAR"`), &interval))
	assert.Equal(t, "2 YEAR", interval.String())

	out, err := json.Marshal(interval)
	require.NoError(t, err)
	assert.JSONEq(t, `"2 YEAR"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`null`), &interval))
	assert.True(t, interval.IsZero())

	err = json.Unmarshal([]byte(`3`), &interval)
	require.ErrorIs(t, err, paymill.ErrUnexpectedToken)
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var ts paymill.Timestamp

	require.NoError(t, json.Unmarshal([]byte(`1349946151`), &ts))
	assert.Equal(t, time.Date(2012, time.October, 11, 9, 2, 31, 0, time.UTC), ts.Time)

	require.NoError(t, json.Unmarshal([]byte(`"1349946151"`), &ts))
	assert.Equal(t, int64(1349946151), ts.Unix())

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`0`), &ts))
	assert.True(t, ts.IsZero())
}
