// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"strings"

	"carvel.dev/yamlloader/pkg/token"
)

func (s *Scanner) scanPlainScalar() (token.Token, error) {
	var (
		text           strings.Builder
		whitespaces    strings.Builder
		leadingBreak   string
		trailingBreaks strings.Builder
		leadingBlanks  bool
	)

	start := s.mark
	indent := s.indent() + 1

	for {
		if s.atDocumentIndicator() {
			break
		}
		if s.peek(0) == '#' {
			break
		}

		for !isBlankz(s.peek(0)) {
			if s.peek(0) == ':' && isBlankz(s.peek(1)) {
				break
			}

			if leadingBlanks || whitespaces.Len() > 0 {
				if leadingBlanks {
					if leadingBreak == "\n" && trailingBreaks.Len() == 0 {
						text.WriteByte(' ')
					} else {
						if leadingBreak != "\n" {
							text.WriteString(leadingBreak)
						}
						text.WriteString(trailingBreaks.String())
					}
					leadingBreak = ""
					trailingBreaks.Reset()
					leadingBlanks = false
				} else {
					text.WriteString(whitespaces.String())
					whitespaces.Reset()
				}
			}

			text.WriteRune(s.peek(0))
			s.skip()
		}

		if !(isBlank(s.peek(0)) || isBreak(s.peek(0))) {
			break
		}

		for isBlank(s.peek(0)) || isBreak(s.peek(0)) {
			if isBlank(s.peek(0)) {
				if leadingBlanks && s.mark.column < indent && isTab(s.peek(0)) {
					return token.Token{}, s.errorAt(start, "while scanning a plain scalar", "found a tab character that violates indentation")
				}
				if !leadingBlanks {
					whitespaces.WriteRune(s.peek(0))
				}
				s.skip()
			} else {
				if !leadingBlanks {
					whitespaces.Reset()
					leadingBreak = s.readBreak()
					leadingBlanks = true
				} else {
					trailingBreaks.WriteString(s.readBreak())
				}
			}
		}

		if s.mark.column < indent {
			break
		}
	}

	if leadingBlanks {
		s.simpleKeyAllowed = true
	}

	tok := s.newToken(token.Scalar, start)
	tok.Text = text.String()
	tok.Style = token.PlainStyle
	return tok, nil
}

func (s *Scanner) scanQuotedScalar(single bool) (token.Token, error) {
	const context = "while scanning a quoted scalar"

	var (
		text           strings.Builder
		whitespaces    strings.Builder
		leadingBreak   string
		trailingBreaks strings.Builder
	)

	start := s.mark
	quote := s.peek(0)
	s.skip()

	for {
		if s.atDocumentIndicator() {
			return token.Token{}, s.errorAt(start, context, "found unexpected document indicator")
		}
		if isZ(s.peek(0)) {
			return token.Token{}, s.errorAt(start, context, "found unexpected end of stream")
		}

		leadingBlanks := false

		for !isBlankz(s.peek(0)) {
			ch := s.peek(0)

			if single && ch == '\'' && s.peek(1) == '\'' {
				text.WriteByte('\'')
				s.skip()
				s.skip()
				continue
			}
			if ch == quote {
				break
			}
			if !single && ch == '\\' && isBreak(s.peek(1)) {
				// escaped line break joins lines without a space
				s.skip()
				s.skipBreak()
				leadingBlanks = true
				break
			}
			if !single && ch == '\\' {
				err := s.scanEscape(&text, start)
				if err != nil {
					return token.Token{}, err
				}
				continue
			}

			text.WriteRune(ch)
			s.skip()
		}

		if s.peek(0) == quote {
			break
		}

		for isBlank(s.peek(0)) || isBreak(s.peek(0)) {
			if isBlank(s.peek(0)) {
				if !leadingBlanks {
					whitespaces.WriteRune(s.peek(0))
				}
				s.skip()
			} else {
				if !leadingBlanks {
					whitespaces.Reset()
					leadingBreak = s.readBreak()
					leadingBlanks = true
				} else {
					trailingBreaks.WriteString(s.readBreak())
				}
			}
		}

		if leadingBlanks {
			if leadingBreak == "\n" && trailingBreaks.Len() == 0 {
				text.WriteByte(' ')
			} else {
				if leadingBreak != "\n" {
					text.WriteString(leadingBreak)
				}
				text.WriteString(trailingBreaks.String())
			}
			leadingBreak = ""
			trailingBreaks.Reset()
		} else {
			text.WriteString(whitespaces.String())
			whitespaces.Reset()
		}
	}

	// closing quote
	s.skip()

	tok := s.newToken(token.Scalar, start)
	tok.Text = text.String()
	tok.Style = token.DoubleQuotedStyle
	if single {
		tok.Style = token.SingleQuotedStyle
	}
	return tok, nil
}

var simpleEscapes = map[rune]string{
	'0':  "\x00",
	'a':  "\x07",
	'b':  "\x08",
	't':  "\x09",
	'\t': "\x09",
	'n':  "\x0A",
	'v':  "\x0B",
	'f':  "\x0C",
	'r':  "\x0D",
	'e':  "\x1B",
	' ':  " ",
	'"':  "\"",
	'/':  "/",
	'\\': "\\",
	'N':  "\u0085",
	'_':  "\u00a0",
	'L':  "\u2028",
	'P':  "\u2029",
}

var hexEscapeLengths = map[rune]int{'x': 2, 'u': 4, 'U': 8}

func (s *Scanner) scanEscape(text *strings.Builder, start mark) error {
	const context = "while parsing a quoted scalar"

	ch := s.peek(1)

	if replacement, found := simpleEscapes[ch]; found {
		text.WriteString(replacement)
		s.skip()
		s.skip()
		return nil
	}

	length, found := hexEscapeLengths[ch]
	if !found {
		return s.errorAt(start, context, "found unknown escape character")
	}

	s.skip()
	s.skip()

	var value rune
	for i := 0; i < length; i++ {
		if !isHex(s.peek(0)) {
			return s.errorAt(start, context, "did not find expected hexdecimal number")
		}
		value = (value << 4) + asHex(s.peek(0))
		s.skip()
	}

	if (value >= 0xD800 && value <= 0xDFFF) || value > 0x10FFFF {
		return s.errorAt(start, context, "found invalid Unicode character escape code")
	}
	text.WriteRune(value)
	return nil
}

func (s *Scanner) scanBlockScalar(literal bool) (token.Token, error) {
	const context = "while scanning a block scalar"

	var (
		text           strings.Builder
		leadingBreak   string
		trailingBreaks string
		chomping       int // -1 strip, 0 clip, +1 keep
		increment      int
	)

	start := s.mark
	s.skip()

	readChomping := func() {
		switch s.peek(0) {
		case '+':
			chomping = +1
			s.skip()
		case '-':
			chomping = -1
			s.skip()
		}
	}

	readChomping()
	if isDigit(s.peek(0)) {
		if s.peek(0) == '0' {
			return token.Token{}, s.errorAt(start, context, "found an indentation indicator equal to 0")
		}
		increment = int(s.peek(0) - '0')
		s.skip()
		if chomping == 0 {
			readChomping()
		}
	}

	for isBlank(s.peek(0)) {
		s.skip()
	}
	if s.peek(0) == '#' {
		for !isBreakz(s.peek(0)) {
			s.skip()
		}
	}
	if !isBreakz(s.peek(0)) {
		return token.Token{}, s.errorAt(start, context, "did not find expected comment or line break")
	}
	if isBreak(s.peek(0)) {
		s.skipBreak()
	}

	indent := 0
	if increment > 0 {
		if s.indent() >= 0 {
			indent = s.indent() + increment
		} else {
			indent = increment
		}
	}

	trailingBreaks, indent, err := s.scanBlockScalarBreaks(indent, start)
	if err != nil {
		return token.Token{}, err
	}

	leadingBlank := false

	for s.mark.column == indent && !isZ(s.peek(0)) {
		trailingBlank := isBlank(s.peek(0))

		if !literal && leadingBreak == "\n" && !leadingBlank && !trailingBlank {
			if len(trailingBreaks) == 0 {
				text.WriteByte(' ')
			}
			leadingBreak = ""
		} else {
			text.WriteString(leadingBreak)
			leadingBreak = ""
		}
		text.WriteString(trailingBreaks)
		trailingBreaks = ""

		leadingBlank = isBlank(s.peek(0))

		for !isBreakz(s.peek(0)) {
			text.WriteRune(s.peek(0))
			s.skip()
		}

		if isZ(s.peek(0)) {
			break
		}

		leadingBreak = s.readBreak()

		trailingBreaks, indent, err = s.scanBlockScalarBreaks(indent, start)
		if err != nil {
			return token.Token{}, err
		}
	}

	if chomping != -1 {
		text.WriteString(leadingBreak)
	}
	if chomping == 1 {
		text.WriteString(trailingBreaks)
	}

	tok := s.newToken(token.Scalar, start)
	tok.Text = text.String()
	tok.Style = token.FoldedStyle
	if literal {
		tok.Style = token.LiteralStyle
	}
	return tok, nil
}

// scanBlockScalarBreaks eats indentation and empty lines, determining
// the indentation of the block scalar when it is not known yet.
func (s *Scanner) scanBlockScalarBreaks(indent int, start mark) (string, int, error) {
	var breaks strings.Builder
	maxIndent := 0

	for {
		for (indent == 0 || s.mark.column < indent) && isSpace(s.peek(0)) {
			s.skip()
		}
		if s.mark.column > maxIndent {
			maxIndent = s.mark.column
		}

		if (indent == 0 || s.mark.column < indent) && isTab(s.peek(0)) {
			return "", 0, s.errorAt(start, "while scanning a block scalar", "found a tab character where an indentation space is expected")
		}

		if !isBreak(s.peek(0)) {
			break
		}
		breaks.WriteString(s.readBreak())
	}

	if indent == 0 {
		indent = maxIndent
		if indent < s.indent()+1 {
			indent = s.indent() + 1
		}
		if indent < 1 {
			indent = 1
		}
	}
	return breaks.String(), indent, nil
}
