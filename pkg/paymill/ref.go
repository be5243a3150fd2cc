package paymill

import (
	"bytes"
	"encoding/json"
)

// identifiable is implemented by every entity through Base.
type identifiable interface {
	EntityID() string
}

// Ref is a related entity that the API embeds either as a full object or as
// a bare identifier. The zero value means the field was absent or null.
type Ref[T any] struct {
	entity *T
	id     string
	set    bool
}

// Full wraps a fully populated entity.
func Full[T any](entity *T) Ref[T] {
	if entity == nil {
		return Ref[T]{}
	}

	ref := Ref[T]{entity: entity, set: true}
	if e, ok := any(entity).(identifiable); ok {
		ref.id = e.EntityID()
	}

	return ref
}

// Reference builds a reference-only value carrying just the identifier.
func Reference[T any](id string) Ref[T] {
	return Ref[T]{id: id, set: true}
}

// ID returns the identifier of the related entity.
func (r Ref[T]) ID() string {
	return r.id
}

// IsZero reports whether the field was absent.
func (r Ref[T]) IsZero() bool {
	return !r.set
}

// IsFull reports whether the whole entity was decoded.
func (r Ref[T]) IsFull() bool {
	return r.entity != nil
}

// IsReference reports whether only the identifier is known.
func (r Ref[T]) IsReference() bool {
	return r.set && r.entity == nil
}

// Entity returns the decoded entity. The boolean is false for references and
// absent values.
func (r Ref[T]) Entity() (*T, bool) {
	return r.entity, r.entity != nil
}

// UnmarshalJSON implements json.Unmarshaler. Objects are decoded into T;
// anything that cannot be decoded that way collapses to a reference and is
// never reported as an error.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == jsonNull {
		*r = Ref[T]{}

		return nil
	}

	if raw[0] == '{' {
		entity := new(T)

		err := json.Unmarshal(raw, entity)
		if err == nil {
			*r = Full(entity)

			return nil
		}

		var probe struct {
			ID json.RawMessage `json:"id"`
		}

		id := ""
		if json.Unmarshal(raw, &probe) == nil {
			id = scalarText(probe.ID)
		}

		*r = Reference[T](id)

		return nil
	}

	*r = Reference[T](scalarText(raw))

	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.entity != nil:
		return json.Marshal(r.entity)
	case r.set:
		return json.Marshal(r.id)
	default:
		return []byte(jsonNull), nil
	}
}

// MarshalYAML emits the entity, the identifier or nothing.
func (r Ref[T]) MarshalYAML() (interface{}, error) {
	switch {
	case r.entity != nil:
		return r.entity, nil
	case r.set:
		return r.id, nil
	default:
		return nil, nil
	}
}

// scalarText renders a scalar JSON token as plain text. Strings are
// unquoted; arrays, objects and null yield "".
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == jsonNull {
		return ""
	}

	switch raw[0] {
	case '"':
		var text string
		if json.Unmarshal(raw, &text) != nil {
			return ""
		}

		return text
	case '{', '[':
		return ""
	default:
		return string(raw)
	}
}
