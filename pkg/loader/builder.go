// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"carvel.dev/yamlloader/pkg/document"
	"carvel.dev/yamlloader/pkg/filepos"
	"carvel.dev/yamlloader/pkg/token"
)

type mode int

const (
	modeNone mode = iota
	modeExpectKey
	modeExpectValue
)

// frame is the parse state of one map level.
type frame struct {
	doc        *document.Map
	mode       mode
	pendingKey *string
	pendingPos *filepos.Position
	opened     bool
	terminator token.Kind
}

func (f *frame) clearPending() {
	f.pendingKey = nil
	f.pendingPos = nil
}

type Builder struct {
	opts Opts
}

func NewBuilder(opts Opts) *Builder {
	if opts.Logger == nil {
		opts.Logger = NoopLogger{}
	}
	return &Builder{opts}
}

// BuildDocument builds the map of a whole stream.
func (b *Builder) BuildDocument(src token.Source) (*document.Map, error) {
	return b.Build(src, token.StreamEnd)
}

// Build consumes tokens until terminator is processed at the outermost level.
// Use token.BlockMappingEnd to build a single mapping block.
func (b *Builder) Build(src token.Source, terminator token.Kind) (*document.Map, error) {
	root := &frame{terminator: terminator}
	stack := []*frame{root}
	docStarts := 0

	for {
		tok, err := src.Next()
		if err != nil {
			return nil, TokenError{Err: err}
		}
		if tok.Position == nil {
			tok.Position = filepos.NewUnknownPosition()
		}

		cur := stack[len(stack)-1]
		if cur.doc == nil {
			cur.doc = document.NewMap(tok.Position)
		}

		switch tok.Kind {
		case token.StreamStart, token.Comment, token.BlockEntry, token.BlockSequenceEnd:
			// no state change

		case token.Key:
			err = b.flushEmptyValue(cur)
			if err != nil {
				return nil, err
			}
			cur.mode = modeExpectKey

		case token.Value:
			if cur.pendingKey == nil {
				return nil, UnexpectedTokenError{tok, "mapping value without a key"}
			}
			cur.mode = modeExpectValue

		case token.BlockMappingStart:
			switch {
			case cur.mode == modeExpectValue && cur.pendingKey != nil:
				if b.opts.MaxDepth > 0 && len(stack) > b.opts.MaxDepth {
					return nil, DepthLimitError{MaxDepth: b.opts.MaxDepth, Position: tok.Position}
				}
				child := document.NewMap(tok.Position)
				err = b.insert(cur, child)
				if err != nil {
					return nil, err
				}
				stack = append(stack, &frame{doc: child, opened: true, terminator: token.BlockMappingEnd})

			case !cur.opened:
				cur.opened = true
				cur.doc.Position = tok.Position

			default:
				return nil, UnexpectedTokenError{tok, "mapping is not allowed in this position"}
			}

		case token.BlockSequenceStart:
			err = b.skipSequence(src, cur, tok)
			if err != nil {
				return nil, err
			}

		case token.Scalar:
			text := b.truncate(tok.Text)

			switch cur.mode {
			case modeExpectKey:
				cur.pendingKey = &text
				cur.pendingPos = tok.Position
			case modeExpectValue:
				err = b.insert(cur, document.NewScalar(text, tok.Position))
				if err != nil {
					return nil, err
				}
			default:
				b.opts.Logger.Debugf("Dropping scalar %q outside of key or value position (%s)\n",
					text, tok.Position.AsCompactString())
			}
			cur.mode = modeNone

		case token.DocumentStart:
			docStarts++
			if docStarts > 1 || root.opened || len(stack) > 1 {
				return nil, MultipleDocumentsError{Position: tok.Position}
			}
			cur.mode = modeNone

		case token.BlockMappingEnd, token.StreamEnd:
			err = b.flushEmptyValue(cur)
			if err != nil {
				return nil, err
			}
			cur.mode = modeNone

		default:
			cur.mode = modeNone
		}

		if tok.Kind == cur.terminator {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return cur.doc, nil
			}
			continue
		}

		if tok.Kind == token.StreamEnd {
			return nil, TokenError{Problem: "unexpected end of stream", Position: tok.Position}
		}
	}
}

// insert stores val under the pending key of f and clears it.
func (b *Builder) insert(f *frame, val document.Node) error {
	item := &document.MapItem{Key: *f.pendingKey, Value: val, Position: f.pendingPos}
	f.clearPending()
	f.mode = modeNone

	if existing, found := f.doc.Item(item.Key); found {
		switch b.opts.DuplicateKeys {
		case DuplicateLastWins:
			b.opts.Logger.Debugf("Replacing value of duplicate key '%s' (%s)\n", item.Key, item.Position.AsCompactString())
		default:
			return DuplicateKeyError{Key: item.Key, Position: item.Position, PreviousPosition: existing.Position}
		}
	}

	f.doc.Set(item)
	return nil
}

// flushEmptyValue stores a key that never received a value as an empty scalar.
func (b *Builder) flushEmptyValue(f *frame) error {
	if f.pendingKey == nil {
		return nil
	}
	return b.insert(f, document.NewScalar("", f.pendingPos))
}

// skipSequence consumes tokens up to the BLOCK-SEQUENCE-END matching start.
func (b *Builder) skipSequence(src token.Source, f *frame, start token.Token) error {
	var key string
	inValue := f.mode == modeExpectValue && f.pendingKey != nil
	if inValue {
		key = *f.pendingKey
	}

	if b.opts.Sequences == SequenceReject {
		return UnsupportedSequenceError{Key: key, Position: start.Position}
	}

	depth := 1
	for depth > 0 {
		tok, err := src.Next()
		if err != nil {
			return TokenError{Err: err}
		}
		switch tok.Kind {
		case token.BlockSequenceStart:
			depth++
		case token.BlockSequenceEnd:
			depth--
		case token.StreamEnd:
			return TokenError{Problem: "unexpected end of stream within sequence", Position: tok.Position}
		}
	}

	if inValue {
		b.opts.Logger.Debugf("Skipping sequence value of key '%s' (%s)\n", key, start.Position.AsCompactString())
		f.clearPending()
	} else {
		b.opts.Logger.Debugf("Skipping sequence (%s)\n", start.Position.AsCompactString())
	}
	f.mode = modeNone
	return nil
}

func (b *Builder) truncate(text string) string {
	if b.opts.MaxScalarLength <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= b.opts.MaxScalarLength {
		return text
	}
	return string(runes[:b.opts.MaxScalarLength])
}
