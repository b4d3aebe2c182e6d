// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"fmt"

	"carvel.dev/yamlloader/pkg/filepos"
)

// Error describes a lexical problem found in the input.
type Error struct {
	Context  string // eg "while scanning a simple key"
	Problem  string
	Position *filepos.Position
}

var _ error = &Error{}

func (e *Error) Error() string {
	msg := e.Problem
	if len(e.Context) > 0 {
		msg = e.Context + " " + msg
	}
	if len(e.Position.GetFile()) > 0 {
		return fmt.Sprintf("yaml: %s: %s", e.Position.AsCompactString(), msg)
	}
	return fmt.Sprintf("yaml: %s: %s", e.Position.AsString(), msg)
}
