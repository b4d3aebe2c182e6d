// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"carvel.dev/yamlloader/pkg/token"
)

// maxSimpleKeyLength matches the YAML limit for implicit keys.
const maxSimpleKeyLength = 1024

type Opts struct {
	// AssociatedName is used as the file name of token positions
	AssociatedName string
	// Comments makes the scanner emit COMMENT tokens instead of skipping them
	Comments bool
}

type blockKind int

const (
	mappingBlock blockKind = iota
	sequenceBlock
)

type block struct {
	column     int
	kind       blockKind
	indentless bool
}

type simpleKey struct {
	possible    bool
	required    bool
	tokenNumber int
	mark        mark
}

type Scanner struct {
	*reader
	opts Opts

	tokens       []token.Token // queue; index 0 is the next token handed out
	tokensParsed int
	lastKind     token.Kind // kind of the last token appended to the queue

	streamStartProduced bool
	streamEndProduced   bool

	blocks           []block
	simpleKey        simpleKey
	simpleKeyAllowed bool

	err error
}

var _ token.Source = &Scanner{}

// New validates the encoding of data and prepares a scanner over it.
func New(data []byte, opts Opts) (*Scanner, error) {
	r, err := newReader(data, opts.AssociatedName)
	if err != nil {
		return nil, err
	}
	return &Scanner{reader: r, opts: opts}, nil
}

// Next returns the next token. Once STREAM-END was returned,
// further calls keep returning STREAM-END. Errors are sticky.
func (s *Scanner) Next() (token.Token, error) {
	if s.err != nil {
		return token.Token{}, s.err
	}
	if s.streamEndProduced && len(s.tokens) == 0 {
		return s.newToken(token.StreamEnd, s.mark), nil
	}

	err := s.fetchMoreTokens()
	if err != nil {
		s.err = err
		return token.Token{}, err
	}

	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	s.tokensParsed++
	return tok, nil
}

func (s *Scanner) indent() int {
	if len(s.blocks) == 0 {
		return -1
	}
	return s.blocks[len(s.blocks)-1].column
}

func (s *Scanner) newToken(kind token.Kind, m mark) token.Token {
	return token.Token{Kind: kind, Position: s.position(m)}
}

// insertToken appends tok (number < 0) or inserts it at queue index number.
func (s *Scanner) insertToken(number int, tok token.Token) {
	if number < 0 || number >= len(s.tokens) {
		s.tokens = append(s.tokens, tok)
		if tok.Kind != token.Comment {
			s.lastKind = tok.Kind
		}
		return
	}
	s.tokens = append(s.tokens, token.Token{})
	copy(s.tokens[number+1:], s.tokens[number:])
	s.tokens[number] = tok
}

func (s *Scanner) fetchMoreTokens() error {
	for {
		needMoreTokens := len(s.tokens) == 0

		if !needMoreTokens {
			// a potential simple key may still claim the head position
			err := s.staleSimpleKey()
			if err != nil {
				return err
			}
			needMoreTokens = s.simpleKey.possible && s.simpleKey.tokenNumber == s.tokensParsed
		}

		if !needMoreTokens {
			return nil
		}

		err := s.fetchNextToken()
		if err != nil {
			return err
		}
	}
}

func (s *Scanner) fetchNextToken() error {
	if !s.streamStartProduced {
		return s.fetchStreamStart()
	}

	err := s.scanToNextToken()
	if err != nil {
		return err
	}

	err = s.staleSimpleKey()
	if err != nil {
		return err
	}

	s.unrollIndent(s.mark.column)

	ch := s.peek(0)

	if isZ(ch) {
		return s.fetchStreamEnd()
	}

	if s.atLineStart() {
		err = s.closeSequenceAtColumn(ch)
		if err != nil {
			return err
		}
	}

	if s.mark.column == 0 && ch == '%' {
		return s.errorAt(s.mark, "while scanning a directive", "found unsupported directive")
	}

	if s.atDocumentIndicator() {
		if ch == '-' {
			return s.fetchDocumentIndicator(token.DocumentStart)
		}
		return s.fetchDocumentIndicator(token.DocumentEnd)
	}

	next := s.peek(1)

	switch {
	case ch == '[' || ch == '{' || ch == ']' || ch == '}' || ch == ',':
		return s.errorAt(s.mark, "while scanning for the next token", "found unsupported flow collection indicator '"+string(ch)+"'")

	case ch == '-' && isBlankz(next):
		return s.fetchBlockEntry()

	case ch == '?' && isBlankz(next):
		return s.errorAt(s.mark, "while scanning for the next token", "found unsupported explicit key indicator '?'")

	case ch == ':' && isBlankz(next):
		return s.fetchValue()

	case ch == '*':
		return s.errorAt(s.mark, "while scanning an alias", "found unsupported alias")

	case ch == '&':
		return s.errorAt(s.mark, "while scanning an anchor", "found unsupported anchor")

	case ch == '!':
		return s.errorAt(s.mark, "while scanning a tag", "found unsupported tag")

	case ch == '|':
		return s.fetchBlockScalar(true)

	case ch == '>':
		return s.fetchBlockScalar(false)

	case ch == '\'':
		return s.fetchQuotedScalar(true)

	case ch == '"':
		return s.fetchQuotedScalar(false)

	case isTab(ch):
		return s.errorAt(s.mark, "while scanning for the next token", "found a tab character that violates indentation")

	case !(isBlankz(ch) || isIndicator(ch)) ||
		(ch == '-' && !isBlank(next)) ||
		((ch == '?' || ch == ':') && !isBlankz(next)):
		return s.fetchPlainScalar()
	}

	return s.errorAt(s.mark, "while scanning for the next token", "found character that cannot start any token")
}

// staleSimpleKey drops the potential simple key when it can no longer
// be followed by ':' (keys are limited to a single line).
func (s *Scanner) staleSimpleKey() error {
	key := &s.simpleKey
	if key.possible && (key.mark.line < s.mark.line || key.mark.index+maxSimpleKeyLength < s.mark.index) {
		if key.required {
			return s.errorAt(key.mark, "while scanning a simple key", "could not find expected ':'")
		}
		key.possible = false
	}
	return nil
}

// saveSimpleKey records that the token about to be queued may be a key.
func (s *Scanner) saveSimpleKey() error {
	if !s.simpleKeyAllowed {
		return nil
	}

	// required if the token is at the indentation of the current mapping
	required := s.indent() == s.mark.column

	err := s.removeSimpleKey()
	if err != nil {
		return err
	}

	s.simpleKey = simpleKey{
		possible:    true,
		required:    required,
		tokenNumber: s.tokensParsed + len(s.tokens),
		mark:        s.mark,
	}
	return nil
}

func (s *Scanner) removeSimpleKey() error {
	if s.simpleKey.possible && s.simpleKey.required {
		return s.errorAt(s.simpleKey.mark, "while scanning a simple key", "could not find expected ':'")
	}
	s.simpleKey.possible = false
	return nil
}

// rollIndent opens a new block if column is deeper than the current
// indentation. The start token is inserted at token number (or appended
// if number is -1).
func (s *Scanner) rollIndent(column, number int, kind blockKind, m mark) {
	if s.indent() >= column {
		return
	}
	s.blocks = append(s.blocks, block{column: column, kind: kind})

	startKind := token.BlockMappingStart
	if kind == sequenceBlock {
		startKind = token.BlockSequenceStart
	}
	if number > -1 {
		number -= s.tokensParsed
	}
	s.insertToken(number, s.newToken(startKind, m))
}

// unrollIndent closes every block deeper than column.
func (s *Scanner) unrollIndent(column int) {
	for s.indent() > column {
		s.popBlock()
	}
}

func (s *Scanner) popBlock() {
	top := s.blocks[len(s.blocks)-1]
	s.blocks = s.blocks[:len(s.blocks)-1]

	endKind := token.BlockMappingEnd
	if top.kind == sequenceBlock {
		endKind = token.BlockSequenceEnd
	}
	s.insertToken(-1, s.newToken(endKind, s.mark))
}

// closeSequenceAtColumn ends a sequence whose column equals the current
// column when the line does not start with another entry.
func (s *Scanner) closeSequenceAtColumn(ch rune) error {
	if len(s.blocks) == 0 {
		return nil
	}
	top := s.blocks[len(s.blocks)-1]
	if top.kind != sequenceBlock || top.column != s.mark.column {
		return nil
	}
	if ch == '-' && isBlankz(s.peek(1)) {
		return nil
	}
	if s.atDocumentIndicator() {
		return nil
	}
	if !top.indentless {
		return s.errorAt(s.mark, "while scanning a block sequence", "did not find expected '-' indicator")
	}
	s.popBlock()
	return nil
}

func (s *Scanner) fetchStreamStart() error {
	s.simpleKeyAllowed = true
	s.streamStartProduced = true
	s.insertToken(-1, s.newToken(token.StreamStart, s.mark))
	return nil
}

func (s *Scanner) fetchStreamEnd() error {
	// Force new line.
	if s.mark.column != 0 {
		s.mark.column = 0
		s.mark.line++
	}

	s.unrollIndent(-1)

	err := s.removeSimpleKey()
	if err != nil {
		return err
	}
	s.simpleKeyAllowed = false

	s.insertToken(-1, s.newToken(token.StreamEnd, s.mark))
	s.streamEndProduced = true
	return nil
}

func (s *Scanner) fetchDocumentIndicator(kind token.Kind) error {
	s.unrollIndent(-1)

	err := s.removeSimpleKey()
	if err != nil {
		return err
	}
	s.simpleKeyAllowed = false

	start := s.mark
	s.skip()
	s.skip()
	s.skip()

	s.insertToken(-1, s.newToken(kind, start))
	return nil
}

func (s *Scanner) fetchBlockEntry() error {
	if !s.simpleKeyAllowed {
		return s.errorAt(s.mark, "", "block sequence entries are not allowed in this context")
	}

	column := s.mark.column

	switch {
	case s.indent() < column:
		s.rollIndent(column, -1, sequenceBlock, s.mark)

	case s.blocks[len(s.blocks)-1].kind == mappingBlock:
		// indentless sequence as the value of a key at the same column
		if s.lastKind != token.Value {
			return s.errorAt(s.mark, "", "block sequence entries are not allowed in this context")
		}
		s.blocks = append(s.blocks, block{column: column, kind: sequenceBlock, indentless: true})
		s.insertToken(-1, s.newToken(token.BlockSequenceStart, s.mark))
	}

	err := s.removeSimpleKey()
	if err != nil {
		return err
	}
	s.simpleKeyAllowed = true

	start := s.mark
	s.skip()
	s.insertToken(-1, s.newToken(token.BlockEntry, start))
	return nil
}

func (s *Scanner) fetchValue() error {
	if !s.simpleKey.possible {
		if !s.simpleKeyAllowed {
			return s.errorAt(s.mark, "", "mapping values are not allowed in this context")
		}
		return s.errorAt(s.mark, "while scanning a mapping value", "found a value without a key")
	}

	key := s.simpleKey
	s.insertToken(key.tokenNumber-s.tokensParsed, s.newToken(token.Key, key.mark))

	// may need to open the mapping in front of the KEY token
	s.rollIndent(key.mark.column, key.tokenNumber, mappingBlock, key.mark)

	s.simpleKey.possible = false
	s.simpleKeyAllowed = false

	start := s.mark
	s.skip()
	s.insertToken(-1, s.newToken(token.Value, start))
	return nil
}

func (s *Scanner) fetchPlainScalar() error {
	err := s.saveSimpleKey()
	if err != nil {
		return err
	}
	s.simpleKeyAllowed = false

	tok, err := s.scanPlainScalar()
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

func (s *Scanner) fetchQuotedScalar(single bool) error {
	err := s.saveSimpleKey()
	if err != nil {
		return err
	}
	s.simpleKeyAllowed = false

	tok, err := s.scanQuotedScalar(single)
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

func (s *Scanner) fetchBlockScalar(literal bool) error {
	err := s.removeSimpleKey()
	if err != nil {
		return err
	}
	s.simpleKeyAllowed = true

	tok, err := s.scanBlockScalar(literal)
	if err != nil {
		return err
	}
	s.insertToken(-1, tok)
	return nil
}

// scanToNextToken eats blanks, comments and line breaks.
func (s *Scanner) scanToNextToken() error {
	for {
		// tabs are only separators once something was found on the line
		for isSpace(s.peek(0)) || (isTab(s.peek(0)) && !s.simpleKeyAllowed) {
			s.skip()
		}

		// blank lines made of tabs are fine too
		if isTab(s.peek(0)) {
			offset := 0
			for isBlank(s.peek(offset)) {
				offset++
			}
			if isBreakz(s.peek(offset)) || s.peek(offset) == '#' {
				for i := 0; i < offset; i++ {
					s.skip()
				}
			}
		}

		if s.peek(0) == '#' {
			start := s.mark
			var text []rune
			for !isBreakz(s.peek(0)) {
				text = append(text, s.peek(0))
				s.skip()
			}
			if s.opts.Comments {
				tok := s.newToken(token.Comment, start)
				tok.Text = string(text[1:])
				s.insertToken(-1, tok)
			}
		}

		if !isBreak(s.peek(0)) {
			return nil
		}
		s.skipBreak()
		s.simpleKeyAllowed = true
	}
}
