// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"encoding/json"
)

type Map[K comparable, V any] struct {
	items []MapItem[K, V]
	index map[K]int
}

type MapItem[K comparable, V any] struct {
	Key   K
	Value V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: map[K]int{}}
}

// Set inserts or replaces value for key. Replaced keys keep
// their original position. Returns true if key was already present.
func (m *Map[K, V]) Set(key K, value V) bool {
	if m.index == nil {
		m.index = map[K]int{}
	}
	if i, found := m.index[key]; found {
		m.items[i].Value = value
		return true
	}
	m.index[key] = len(m.items)
	m.items = append(m.items, MapItem[K, V]{key, value})
	return false
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, found := m.index[key]; found {
		return m.items[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) Keys() (keys []K) {
	m.Iterate(func(k K, _ V) {
		keys = append(keys, k)
	})
	return
}

// Items returns a copy of the entries in insertion order.
func (m *Map[K, V]) Items() []MapItem[K, V] {
	return append([]MapItem[K, V]{}, m.items...)
}

func (m *Map[K, V]) Iterate(iterFunc func(k K, v V)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map[K, V]) Len() int { return len(m.items) }

// Below methods disallow marshaling of Map directly;
// callers are expected to convert to their own representation first
var _ json.Marshaler = &Map[string, string]{}

func (*Map[K, V]) MarshalJSON() ([]byte, error) { panic("Unexpected marshaling of *orderedmap.Map") }
