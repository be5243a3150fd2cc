package paymill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const jsonNull = "null"

// jsonString reads a JSON string token. Any other token kind is a decode
// error; null is reported separately.
func jsonString(data []byte) (string, bool, error) {
	raw := bytes.TrimSpace(data)
	if string(raw) == jsonNull {
		return "", true, nil
	}

	if len(raw) == 0 || raw[0] != '"' {
		return "", false, &DecodeError{Value: string(raw), Err: ErrUnexpectedToken}
	}

	var value string

	err := json.Unmarshal(raw, &value)
	if err != nil {
		return "", false, &DecodeError{Value: string(raw), Err: err}
	}

	return value, false, nil
}

// Int is an integer the API sometimes sends as a string. null decodes to 0.
type Int int

// Int returns the plain int value.
func (i Int) Int() int {
	return int(i)
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)

	switch {
	case string(raw) == jsonNull:
		*i = 0

		return nil

	case len(raw) > 0 && raw[0] == '"':
		text, _, err := jsonString(raw)
		if err != nil {
			return err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			*i = 0

			return nil
		}

		value, err := strconv.Atoi(text)
		if err != nil {
			return &DecodeError{Value: text, Err: ErrInvalidInteger}
		}

		*i = Int(value)

		return nil

	case len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')):
		value, err := strconv.Atoi(string(raw))
		if err != nil {
			return &DecodeError{Value: string(raw), Err: ErrInvalidInteger}
		}

		*i = Int(value)

		return nil

	default:
		return &DecodeError{Value: string(raw), Err: ErrUnexpectedToken}
	}
}

// Timestamp is a point in time sent as Unix seconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler. 0 and null decode to the zero
// time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var seconds Int

	err := seconds.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	if seconds == 0 {
		t.Time = time.Time{}

		return nil
	}

	t.Time = time.Unix(int64(seconds), 0).UTC()

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(jsonNull), nil
	}

	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// MarshalYAML emits the time itself rather than the wrapper struct.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}

	return t.Time, nil
}

// Interval is a billing period such as "1 MONTH".
type Interval struct {
	Count int
	Unit  IntervalUnit
}

// ParseInterval parses "<count> <unit>". Unlike plain enumeration fields an
// unknown unit is rejected here.
func ParseInterval(value string) (Interval, error) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return Interval{}, &FormatError{Input: value, Err: ErrInvalidInterval}
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil {
		return Interval{}, &FormatError{Input: value, Err: fmt.Errorf("%w: count %q is not a number", ErrInvalidInterval, parts[0])}
	}

	member, ok := IntervalUnits.Lookup(parts[1])
	if !ok {
		return Interval{}, &FormatError{Input: value, Err: fmt.Errorf("%w %q", ErrUnknownIntervalUnit, parts[1])}
	}

	return Interval{Count: count, Unit: member.Value}, nil
}

// IsZero reports whether the interval is unset.
func (i Interval) IsZero() bool {
	return i.Count == 0 && i.Unit == IntervalUnitUnknown
}

// String returns the wire form.
func (i Interval) String() string {
	if i.IsZero() {
		return ""
	}

	return fmt.Sprintf("%d %s", i.Count, i.Unit)
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Interval) UnmarshalJSON(data []byte) error {
	value, isNull, err := jsonString(data)
	if err != nil {
		return err
	}

	if isNull {
		*i = Interval{}

		return nil
	}

	parsed, err := ParseInterval(value)
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (i Interval) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte(jsonNull), nil
	}

	return json.Marshal(i.String())
}

// MarshalYAML emits the wire form.
func (i Interval) MarshalYAML() (interface{}, error) {
	if i.IsZero() {
		return nil, nil
	}

	return i.String(), nil
}
