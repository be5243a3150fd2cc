package paymill

import (
	"net/url"
	"strconv"
	"time"
)

// Query parameter names shared by every list endpoint.
const (
	QueryKeyOrder  = "order"
	QueryKeyCount  = "count"
	QueryKeyOffset = "offset"
)

const (
	greaterThanPrefix  = ">"
	lessThanPrefix     = "<"
	dateRangeSeparator = "_"
	ascSuffix          = "_asc"
	descSuffix         = "_desc"
)

// QueryPair is one serialized list constraint.
type QueryPair struct {
	Key   string
	Value string
}

// Query is anything that contributes parameters to a list request.
type Query interface {
	Pairs() []QueryPair
}

// Values merges the pairs of every non-nil query into url.Values.
func Values(queries ...Query) url.Values {
	values := url.Values{}

	for _, query := range queries {
		if query == nil {
			continue
		}

		for _, pair := range query.Pairs() {
			values.Set(pair.Key, pair.Value)
		}
	}

	return values
}

// filterSlots keeps one value per wire key. The zero value is ready to use;
// serialization order comes from the key list of the owning filter.
type filterSlots struct {
	values map[string]string
}

func (s *filterSlots) set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}

	s.values[key] = value
}

func (s *filterSlots) setInt(key string, value int) {
	s.set(key, strconv.Itoa(value))
}

func (s *filterSlots) setGreaterThan(key string, value int) {
	s.set(key, greaterThanPrefix+strconv.Itoa(value))
}

func (s *filterSlots) setLessThan(key string, value int) {
	s.set(key, lessThanPrefix+strconv.Itoa(value))
}

// setRange stores both bounds, in Unix seconds, under one key.
func (s *filterSlots) setRange(key string, start, end time.Time) {
	s.set(key, strconv.FormatInt(start.Unix(), 10)+dateRangeSeparator+strconv.FormatInt(end.Unix(), 10))
}

func (s *filterSlots) pairs(keys []string) []QueryPair {
	pairs := make([]QueryPair, 0, len(s.values))

	for _, key := range keys {
		if value, ok := s.values[key]; ok {
			pairs = append(pairs, QueryPair{Key: key, Value: value})
		}
	}

	return pairs
}

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// SortKey is the single active sort field of an order.
type SortKey struct {
	Field     string
	Direction Direction
}

// sortKey backs every resource order. An empty field means no ordering.
type sortKey struct {
	key SortKey
}

func (o *sortKey) by(field string) {
	o.key.Field = field
}

func (o *sortKey) direction(direction Direction) {
	o.key.Direction = direction
}

func (o *sortKey) pairs() []QueryPair {
	if o.key.Field == "" {
		return nil
	}

	suffix := ascSuffix
	if o.key.Direction == Descending {
		suffix = descSuffix
	}

	return []QueryPair{{Key: QueryKeyOrder, Value: o.key.Field + suffix}}
}

// Page selects a window of a list. Zero fields are left to the server.
type Page struct {
	Count  int
	Offset int
}

// NewPage creates a page selector.
func NewPage(count, offset int) *Page {
	return &Page{Count: count, Offset: offset}
}

// Pairs implements Query.
func (p *Page) Pairs() []QueryPair {
	if p == nil {
		return nil
	}

	var pairs []QueryPair

	if p.Count > 0 {
		pairs = append(pairs, QueryPair{Key: QueryKeyCount, Value: strconv.Itoa(p.Count)})
	}

	if p.Offset > 0 {
		pairs = append(pairs, QueryPair{Key: QueryKeyOffset, Value: strconv.Itoa(p.Offset)})
	}

	return pairs
}
