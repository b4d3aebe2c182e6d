// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"sort"
)

// Set stores item under item.Key. If the key already exists its value is
// replaced without changing the key's position; the previous item is returned.
func (m *Map) Set(item *MapItem) *MapItem {
	prev, _ := m.items.Get(item.Key)
	m.items.Set(item.Key, item)
	return prev
}

func (m *Map) Get(key string) (Node, bool) {
	item, found := m.items.Get(key)
	if !found {
		return nil, false
	}
	return item.Value, true
}

func (m *Map) Item(key string) (*MapItem, bool) {
	return m.items.Get(key)
}

func (m *Map) Len() int { return m.items.Len() }

func (m *Map) Keys() []string { return m.items.Keys() }

func (m *Map) Items() []*MapItem {
	var result []*MapItem
	for _, entry := range m.items.Items() {
		result = append(result, entry.Value)
	}
	return result
}

// SortedItems returns items ordered by key.
func (m *Map) SortedItems() []*MapItem {
	items := m.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}

func (m *Map) Iterate(iterFunc func(item *MapItem)) {
	m.items.Iterate(func(_ string, item *MapItem) {
		iterFunc(item)
	})
}

// AsInterface converts the map to plain Go values: map[string]interface{}
// for maps and string for scalars.
func (m *Map) AsInterface() map[string]interface{} {
	result := map[string]interface{}{}
	m.Iterate(func(item *MapItem) {
		result[item.Key] = NodeAsInterface(item.Value)
	})
	return result
}

func NodeAsInterface(node Node) interface{} {
	switch typedNode := node.(type) {
	case *Map:
		return typedNode.AsInterface()
	case *Scalar:
		return typedNode.Value
	default:
		panic("Unknown document node")
	}
}
