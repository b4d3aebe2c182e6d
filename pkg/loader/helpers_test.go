// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package loader_test

import (
	"fmt"
	"os"
	"strings"

	"carvel.dev/yamlloader/pkg/token"
)

var (
	ss  = token.New(token.StreamStart)
	se  = token.New(token.StreamEnd)
	ds  = token.New(token.DocumentStart)
	de  = token.New(token.DocumentEnd)
	key = token.New(token.Key)
	val = token.New(token.Value)
	bms = token.New(token.BlockMappingStart)
	bme = token.New(token.BlockMappingEnd)
	bss = token.New(token.BlockSequenceStart)
	be  = token.New(token.BlockEntry)
	bse = token.New(token.BlockSequenceEnd)
)

func sc(text string) token.Token { return token.NewScalar(text) }

// pair produces KEY SCALAR VALUE SCALAR
func pair(k, v string) []token.Token {
	return []token.Token{key, sc(k), val, sc(v)}
}

// flatten joins single tokens and token groups (eg pair) into one slice
func flatten(groups ...interface{}) []token.Token {
	var tokens []token.Token
	for _, group := range groups {
		switch typedGroup := group.(type) {
		case token.Token:
			tokens = append(tokens, typedGroup)
		case []token.Token:
			tokens = append(tokens, typedGroup...)
		default:
			panic(fmt.Sprintf("Unexpected token group %T", group))
		}
	}
	return tokens
}

func stream(groups ...interface{}) *token.SliceSource {
	return token.NewSliceSource(flatten(groups...)...)
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(str string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(str, args...))
}

func kvArg(name string) string {
	name += "="
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, name) {
			return strings.TrimPrefix(arg, name)
		}
	}
	return ""
}
