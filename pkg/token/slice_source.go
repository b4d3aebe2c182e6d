// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
)

// SliceSource replays a fixed list of tokens.
type SliceSource struct {
	tokens []Token
	pos    int
}

var _ Source = &SliceSource{}

func NewSliceSource(tokens ...Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

func (s *SliceSource) Next() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, fmt.Errorf("Expected more tokens after %d token(s)", len(s.tokens))
	}
	tok := s.tokens[s.pos]
	s.pos++
	if tok.Position == nil {
		tok.Position = New(tok.Kind).Position
	}
	return tok, nil
}

// ReadAll drains src until StreamEnd (inclusive) or an error.
func ReadAll(src Source) ([]Token, error) {
	var result []Token
	for {
		tok, err := src.Next()
		if err != nil {
			return result, err
		}
		result = append(result, tok)
		if tok.Kind == StreamEnd {
			return result, nil
		}
	}
}
