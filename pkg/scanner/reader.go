// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"carvel.dev/yamlloader/pkg/filepos"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// mark is a cursor position within the input.
type mark struct {
	index  int // rune index
	line   int // 0 based
	column int // 0 based
}

// reader holds decoded input and the cursor.
type reader struct {
	src   []rune
	lines []string
	name  string

	mark mark
}

func newReader(data []byte, name string) (*reader, error) {
	r := &reader{name: name}

	switch {
	case bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE):
		return nil, r.errorAt(mark{}, "while reading the input", "found unsupported UTF-16 encoding")
	case bytes.HasPrefix(data, bomUTF8):
		data = data[len(bomUTF8):]
	}

	if !utf8.Valid(data) {
		offset := 0
		for offset < len(data) {
			ch, size := utf8.DecodeRune(data[offset:])
			if ch == utf8.RuneError && size <= 1 {
				break
			}
			offset += size
		}
		return nil, r.errorAt(r.markAtByte(data, offset), "while reading the input", "found invalid UTF-8 sequence")
	}

	r.src = []rune(string(data))
	r.lines = strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	line, column := 0, 0
	for i, ch := range r.src {
		if !isPrintable(ch) {
			return nil, r.errorAt(mark{i, line, column}, "while reading the input", "control characters are not allowed")
		}
		if ch == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}

	return r, nil
}

func (r *reader) markAtByte(data []byte, offset int) mark {
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte{'\n'})
	column := utf8.RuneCount(prefix[bytes.LastIndexByte(prefix, '\n')+1:])
	return mark{utf8.RuneCount(prefix), line, column}
}

func (r *reader) peek(offset int) rune {
	idx := r.mark.index + offset
	if idx < len(r.src) {
		return r.src[idx]
	}
	return eof
}

// skip advances over a single non-break character.
func (r *reader) skip() {
	r.mark.index++
	r.mark.column++
}

// skipBreak advances over a line break, treating CR LF as one break.
func (r *reader) skipBreak() {
	if r.peek(0) == '\r' && r.peek(1) == '\n' {
		r.mark.index += 2
	} else {
		r.mark.index++
	}
	r.mark.line++
	r.mark.column = 0
}

// readBreak advances over a line break and returns its normalised form.
func (r *reader) readBreak() string {
	ch := r.peek(0)
	r.skipBreak()
	switch ch {
	case '\u2028', '\u2029':
		return string(ch)
	default:
		return "\n"
	}
}

// atDocumentIndicator reports '---' or '...' at the start of a line.
func (r *reader) atDocumentIndicator() bool {
	if r.mark.column != 0 {
		return false
	}
	ch := r.peek(0)
	return (ch == '-' || ch == '.') && r.peek(1) == ch && r.peek(2) == ch && isBlankz(r.peek(3))
}

// atLineStart reports whether only spaces precede the cursor on its line.
func (r *reader) atLineStart() bool {
	for i := r.mark.index - 1; i >= 0; i-- {
		switch r.src[i] {
		case ' ':
			continue
		case '\n', '\r', '\u0085', '\u2028', '\u2029':
			return true
		default:
			return false
		}
	}
	return true
}

func (r *reader) position(m mark) *filepos.Position {
	pos := filepos.NewPositionInFile(m.line+1, r.name)
	pos.SetColumn(m.column + 1)
	if m.line < len(r.lines) {
		pos.SetLine(strings.TrimSuffix(r.lines[m.line], "\r"))
	}
	return pos
}

func (r *reader) errorAt(m mark, context, problem string) *Error {
	return &Error{Context: context, Problem: problem, Position: r.position(m)}
}
