// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"

	"carvel.dev/yamlloader/pkg/filepos"
)

type Kind int

const (
	Other Kind = iota
	StreamStart
	StreamEnd
	DocumentStart
	DocumentEnd
	Key
	Value
	BlockMappingStart
	BlockMappingEnd
	BlockSequenceStart
	BlockEntry
	BlockSequenceEnd
	Scalar
	Comment
)

var kindStrings = []string{
	Other:              "OTHER",
	StreamStart:        "STREAM-START",
	StreamEnd:          "STREAM-END",
	DocumentStart:      "DOCUMENT-START",
	DocumentEnd:        "DOCUMENT-END",
	Key:                "KEY",
	Value:              "VALUE",
	BlockMappingStart:  "BLOCK-MAPPING-START",
	BlockMappingEnd:    "BLOCK-MAPPING-END",
	BlockSequenceStart: "BLOCK-SEQUENCE-START",
	BlockEntry:         "BLOCK-ENTRY",
	BlockSequenceEnd:   "BLOCK-SEQUENCE-END",
	Scalar:             "SCALAR",
	Comment:            "COMMENT",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
	return kindStrings[k]
}

type ScalarStyle int

const (
	PlainStyle ScalarStyle = iota
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
)

var styleStrings = []string{
	PlainStyle:        "plain",
	SingleQuotedStyle: "single-quoted",
	DoubleQuotedStyle: "double-quoted",
	LiteralStyle:      "literal",
	FoldedStyle:       "folded",
}

func (s ScalarStyle) String() string {
	if s < 0 || int(s) >= len(styleStrings) {
		return fmt.Sprintf("unknown(%d)", int(s))
	}
	return styleStrings[s]
}

type Token struct {
	Kind     Kind
	Text     string // only for Scalar and Comment
	Style    ScalarStyle
	Position *filepos.Position
}

func New(kind Kind) Token {
	return Token{Kind: kind, Position: filepos.NewUnknownPosition()}
}

func NewScalar(text string) Token {
	return Token{Kind: Scalar, Text: text, Position: filepos.NewUnknownPosition()}
}

func (t Token) String() string {
	switch t.Kind {
	case Scalar, Comment:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

// Source produces tokens lazily. After StreamEnd has been returned
// the behavior of further Next calls is up to the implementation.
type Source interface {
	Next() (Token, error)
}
