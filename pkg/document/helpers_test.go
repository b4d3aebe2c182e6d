// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document_test

import (
	"fmt"
	"strings"
	"testing"

	"carvel.dev/yamlloader/pkg/document"
	"carvel.dev/yamlloader/pkg/filepos"
	"github.com/k14s/difflib"
)

type kv struct {
	key string
	val interface{} // string or []kv
}

// buildMap constructs a map with line numbers assigned in visiting order.
func buildMap(items ...kv) *document.Map {
	line := 1
	return buildMapAt(filepos.NewPositionInFile(1, "test.yml"), items, &line)
}

func buildMapAt(pos *filepos.Position, items []kv, line *int) *document.Map {
	m := document.NewMap(pos)
	for _, item := range items {
		itemPos := filepos.NewPositionInFile(*line, "test.yml")
		*line++

		var val document.Node
		switch typedVal := item.val.(type) {
		case string:
			val = document.NewScalar(typedVal, itemPos)
		case []kv:
			val = buildMapAt(itemPos, typedVal, line)
		default:
			panic(fmt.Sprintf("Unexpected test value %T", typedVal))
		}
		m.Set(&document.MapItem{Key: item.key, Value: val, Position: itemPos})
	}
	return m
}

func expectEquals(t *testing.T, resultStr, expectedStr string) {
	t.Helper()
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		t.Fatalf("Not equal; diff expected...actual:\n%v", diff)
	}
}
