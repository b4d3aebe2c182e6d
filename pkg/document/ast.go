// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"carvel.dev/yamlloader/pkg/filepos"
	"carvel.dev/yamlloader/pkg/orderedmap"
)

type Node interface {
	GetPosition() *filepos.Position

	sealed() // limits concrete Nodes to Scalar and Map
}

var _ = []Node{&Scalar{}, &Map{}}

type Scalar struct {
	Value    string
	Position *filepos.Position
}

type Map struct {
	Position *filepos.Position

	items orderedmap.Map[string, *MapItem]
}

type MapItem struct {
	Key      string
	Value    Node
	Position *filepos.Position
}

func NewScalar(value string, pos *filepos.Position) *Scalar {
	return &Scalar{Value: value, Position: pos}
}

func NewMap(pos *filepos.Position) *Map {
	return &Map{Position: pos}
}

func (s *Scalar) GetPosition() *filepos.Position { return s.Position }
func (m *Map) GetPosition() *filepos.Position    { return m.Position }

func (*Scalar) sealed() {}
func (*Map) sealed()    {}
