package paymill

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// formBuilder collects request body fields. Unset values are skipped so the
// server keeps its own defaults.
type formBuilder struct {
	values url.Values
}

func newForm() *formBuilder {
	return &formBuilder{values: url.Values{}}
}

func (f *formBuilder) str(key, value string) *formBuilder {
	if value != "" {
		f.values.Set(key, value)
	}

	return f
}

func (f *formBuilder) strPtr(key string, value *string) *formBuilder {
	if value != nil {
		f.values.Set(key, *value)
	}

	return f
}

func (f *formBuilder) integer(key string, value int) *formBuilder {
	if value != 0 {
		f.values.Set(key, strconv.Itoa(value))
	}

	return f
}

func (f *formBuilder) intPtr(key string, value *int) *formBuilder {
	if value != nil {
		f.values.Set(key, strconv.Itoa(*value))
	}

	return f
}

func (f *formBuilder) boolPtr(key string, value *bool) *formBuilder {
	if value != nil {
		f.values.Set(key, strconv.FormatBool(*value))
	}

	return f
}

func (f *formBuilder) flag(key string, value bool) *formBuilder {
	if value {
		f.values.Set(key, "true")
	}

	return f
}

func (f *formBuilder) unixTime(key string, value *time.Time) *formBuilder {
	if value != nil && !value.IsZero() {
		f.values.Set(key, strconv.FormatInt(value.Unix(), 10))
	}

	return f
}

func (f *formBuilder) interval(key string, value *Interval) *formBuilder {
	if value != nil && !value.IsZero() {
		f.values.Set(key, value.String())
	}

	return f
}

func (f *formBuilder) encode() url.Values {
	return f.values
}

// RefList is a to-many relation. The API sends an array of objects or
// identifiers, a single object, or null.
type RefList[T any] []Ref[T]

// UnmarshalJSON implements json.Unmarshaler.
func (l *RefList[T]) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == jsonNull {
		*l = nil

		return nil
	}

	if raw[0] == '[' {
		var refs []Ref[T]

		err := json.Unmarshal(raw, &refs)
		if err != nil {
			return &DecodeError{Value: string(raw), Err: err}
		}

		*l = refs

		return nil
	}

	var single Ref[T]

	err := single.UnmarshalJSON(raw)
	if err != nil {
		return err
	}

	*l = RefList[T]{single}

	return nil
}

// IDs returns the identifiers of every related entity.
func (l RefList[T]) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, ref := range l {
		ids = append(ids, ref.ID())
	}

	return ids
}

// formatAmount converts minor currency units into a decimal amount, e.g.
// 4200 -> 42.00.
func formatAmount(amount Int) decimal.Decimal {
	return decimal.New(int64(amount), -2)
}
