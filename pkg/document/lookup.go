// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"strings"

	"carvel.dev/yamlloader/pkg/filepos"
)

type KeyNotFoundError struct {
	Path     []string
	Missing  string
	Position *filepos.Position // of the map that lacks the key
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("Expected to find key '%s' (path '%s') in map at %s",
		e.Missing, strings.Join(e.Path, "."), e.Position.AsCompactString())
}

type NotAMapError struct {
	Path     []string
	Position *filepos.Position
}

func (e NotAMapError) Error() string {
	return fmt.Sprintf("Expected value at path '%s' to be a map, but was a scalar (%s)",
		strings.Join(e.Path, "."), e.Position.AsCompactString())
}

// SplitPath turns "a.b.c" into its keys. Empty path results in no keys.
func SplitPath(path string) []string {
	if len(path) == 0 {
		return nil
	}
	return strings.Split(path, ".")
}

// Lookup walks nested maps by keys. No keys returns m itself.
func (m *Map) Lookup(path ...string) (Node, error) {
	var current Node = m

	for i, key := range path {
		currentMap, ok := current.(*Map)
		if !ok {
			return nil, NotAMapError{Path: path[:i], Position: current.GetPosition()}
		}
		val, found := currentMap.Get(key)
		if !found {
			return nil, KeyNotFoundError{Path: path[:i+1], Missing: key, Position: currentMap.Position}
		}
		current = val
	}

	return current, nil
}

// LookupScalar is Lookup that additionally requires a scalar value.
func (m *Map) LookupScalar(path ...string) (string, error) {
	node, err := m.Lookup(path...)
	if err != nil {
		return "", err
	}
	scalar, ok := node.(*Scalar)
	if !ok {
		return "", fmt.Errorf("Expected value at path '%s' to be a scalar, but was a map (%s)",
			strings.Join(path, "."), node.GetPosition().AsCompactString())
	}
	return scalar.Value, nil
}
