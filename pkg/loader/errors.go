// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"

	"carvel.dev/yamlloader/pkg/filepos"
	"carvel.dev/yamlloader/pkg/token"
)

// InvalidInputError is returned when input could not be located or read.
type InvalidInputError struct {
	Path string
	Err  error
}

func (e InvalidInputError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("Invalid input: %s", e.Err)
	}
	return fmt.Sprintf("Invalid input '%s': %s", e.Path, e.Err)
}

func (e InvalidInputError) Unwrap() error { return e.Err }

// LexerInitError is returned when input was rejected before scanning started
// (e.g. unsupported encoding).
type LexerInitError struct {
	Err error
}

func (e LexerInitError) Error() string { return fmt.Sprintf("Initializing scanner: %s", e.Err) }

func (e LexerInitError) Unwrap() error { return e.Err }

// TokenError is returned when the token stream could not be read to its end.
type TokenError struct {
	Problem  string
	Position *filepos.Position
	Err      error
}

func (e TokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Scanning tokens: %s", e.Err)
	}
	return fmt.Sprintf("Scanning tokens: %s (%s)", e.Problem, e.Position.AsCompactString())
}

func (e TokenError) Unwrap() error { return e.Err }

type DuplicateKeyError struct {
	Key              string
	Position         *filepos.Position
	PreviousPosition *filepos.Position
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("Found duplicate key '%s' at %s (previously defined at %s)",
		e.Key, e.Position.AsCompactString(), e.PreviousPosition.AsCompactString())
}

type UnexpectedTokenError struct {
	Token  token.Token
	Reason string
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Unexpected token %s at %s: %s", e.Token, e.Token.Position.AsCompactString(), e.Reason)
}

type UnsupportedSequenceError struct {
	Key      string // empty when sequence is not a value of a key
	Position *filepos.Position
}

func (e UnsupportedSequenceError) Error() string {
	if len(e.Key) == 0 {
		return fmt.Sprintf("Unsupported sequence at %s", e.Position.AsCompactString())
	}
	return fmt.Sprintf("Unsupported sequence as value of key '%s' at %s", e.Key, e.Position.AsCompactString())
}

type MultipleDocumentsError struct {
	Position *filepos.Position
}

func (e MultipleDocumentsError) Error() string {
	return fmt.Sprintf("Expected a single YAML document, but found another document start at %s",
		e.Position.AsCompactString())
}

type DepthLimitError struct {
	MaxDepth int
	Position *filepos.Position
}

func (e DepthLimitError) Error() string {
	return fmt.Sprintf("Exceeded maximum nesting depth of %d at %s", e.MaxDepth, e.Position.AsCompactString())
}
