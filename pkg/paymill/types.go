package paymill

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Base holds the attributes shared by every persisted entity.
type Base struct {
	ID        string    `json:"id"         yaml:"id"`
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`
	UpdatedAt Timestamp `json:"updated_at" yaml:"updated_at"`
	AppID     string    `json:"app_id"     yaml:"app_id,omitempty"`
}

// EntityID returns the identifier.
func (b Base) EntityID() string {
	return b.ID
}

// ListResponse is the list envelope: one page of items plus the total number
// of matches, which does not depend on the page size requested.
type ListResponse[T any] struct {
	Items []T    `json:"data"       yaml:"items"`
	Total Int    `json:"data_count" yaml:"total"`
	Mode  string `json:"mode"       yaml:"mode,omitempty"`
}

// DecodeEntity decodes a single-entity response. A {"data": {...}} envelope
// is unwrapped; a bare object is accepted as is.
func DecodeEntity[T any](body []byte) (*T, error) {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return nil, &DecodeError{Err: ErrEmptyResponse}
	}

	payload := raw

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	if json.Unmarshal(raw, &envelope) == nil {
		data := bytes.TrimSpace(envelope.Data)
		if len(data) > 0 && data[0] == '{' {
			payload = data
		}
	}

	var entity T

	err := json.Unmarshal(payload, &entity)
	if err != nil {
		return nil, asDecodeError(err)
	}

	return &entity, nil
}

// DecodeList decodes a list envelope. A failing item fails the whole list.
func DecodeList[T any](body []byte) (*ListResponse[T], error) {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return nil, &DecodeError{Err: ErrEmptyResponse}
	}

	var list ListResponse[T]

	err := json.Unmarshal(raw, &list)
	if err != nil {
		return nil, asDecodeError(err)
	}

	if list.Items == nil {
		list.Items = []T{}
	}

	return &list, nil
}

func asDecodeError(err error) error {
	decodeErr := &DecodeError{}
	if errors.As(err, &decodeErr) {
		return err
	}

	formatErr := &FormatError{}
	if errors.As(err, &formatErr) {
		return err
	}

	return &DecodeError{Err: err}
}
