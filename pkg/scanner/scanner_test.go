// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner_test

import (
	"strings"

	"carvel.dev/yamlloader/pkg/scanner"
	"carvel.dev/yamlloader/pkg/token"
	. "gopkg.in/check.v1"
)

func scanAll(input string, opts scanner.Opts) (string, error) {
	s, err := scanner.New([]byte(input), opts)
	if err != nil {
		return "", err
	}
	tokens, err := token.ReadAll(s)
	var result []string
	for _, tok := range tokens {
		result = append(result, tok.String())
	}
	return strings.Join(result, " "), err
}

var scanTests = []struct {
	input  string
	tokens string
}{
	{
		"",
		`STREAM-START STREAM-END`,
	}, {
		"\n\n",
		`STREAM-START STREAM-END`,
	}, {
		"a: 1\nb: 2\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") KEY SCALAR("b") VALUE SCALAR("2") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: 1",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a:\n  b: 1\n  c: 2\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE BLOCK-MAPPING-START KEY SCALAR("b") VALUE SCALAR("1") KEY SCALAR("c") VALUE SCALAR("2") BLOCK-MAPPING-END BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a:\n  b:\n    c: 1\nd: 2\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE BLOCK-MAPPING-START KEY SCALAR("b") VALUE BLOCK-MAPPING-START KEY SCALAR("c") VALUE SCALAR("1") BLOCK-MAPPING-END BLOCK-MAPPING-END KEY SCALAR("d") VALUE SCALAR("2") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"items:\n  - x\n  - y\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("items") VALUE BLOCK-SEQUENCE-START BLOCK-ENTRY SCALAR("x") BLOCK-ENTRY SCALAR("y") BLOCK-SEQUENCE-END BLOCK-MAPPING-END STREAM-END`,
	}, {
		"items:\n- x\n- y\nk: v\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("items") VALUE BLOCK-SEQUENCE-START BLOCK-ENTRY SCALAR("x") BLOCK-ENTRY SCALAR("y") BLOCK-SEQUENCE-END KEY SCALAR("k") VALUE SCALAR("v") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"- a: 1\n  b: 2\n- c: 3\n",
		`STREAM-START BLOCK-SEQUENCE-START BLOCK-ENTRY BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") KEY SCALAR("b") VALUE SCALAR("2") BLOCK-MAPPING-END BLOCK-ENTRY BLOCK-MAPPING-START KEY SCALAR("c") VALUE SCALAR("3") BLOCK-MAPPING-END BLOCK-SEQUENCE-END STREAM-END`,
	}, {
		"- - a\n",
		`STREAM-START BLOCK-SEQUENCE-START BLOCK-ENTRY BLOCK-SEQUENCE-START BLOCK-ENTRY SCALAR("a") BLOCK-SEQUENCE-END BLOCK-SEQUENCE-END STREAM-END`,
	}, {
		"a: |\n  line1\n  line2\nb: x\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("line1\nline2\n") KEY SCALAR("b") VALUE SCALAR("x") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: >\n  one\n  two\n\n  three\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("one two\nthree\n") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: |-\n  x\n\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("x") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: |+\n  x\n\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("x\n\n") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: one\n  two\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("one two") BLOCK-MAPPING-END STREAM-END`,
	}, {
		`a: "x\ty \"q\" \x41\u0042"`,
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("x\ty \"q\" AB") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: 'it''s'\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("it's") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: \"one\n  two\"\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("one two") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"\"quoted key\": v\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("quoted key") VALUE SCALAR("v") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"url: http://example.com:8080/x#frag\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("url") VALUE SCALAR("http://example.com:8080/x#frag") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"# c\na: 1 # trailing\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"---\na: 1\n...\n",
		`STREAM-START DOCUMENT-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") BLOCK-MAPPING-END DOCUMENT-END STREAM-END`,
	}, {
		"a:\nb: 1\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE KEY SCALAR("b") VALUE SCALAR("1") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"plain scalar document\n",
		`STREAM-START SCALAR("plain scalar document") STREAM-END`,
	}, {
		"\xEF\xBB\xBFa: 1\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") BLOCK-MAPPING-END STREAM-END`,
	}, {
		"a: 1\r\nb: 2\r\n",
		`STREAM-START BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") KEY SCALAR("b") VALUE SCALAR("2") BLOCK-MAPPING-END STREAM-END`,
	},
}

func (s *S) TestScan(c *C) {
	for _, item := range scanTests {
		tokens, err := scanAll(item.input, scanner.Opts{})
		c.Assert(err, IsNil, Commentf("input: %q", item.input))
		c.Assert(tokens, Equals, item.tokens, Commentf("input: %q", item.input))
	}
}

func (s *S) TestScanComments(c *C) {
	tokens, err := scanAll("# c\na: 1 # trailing\n", scanner.Opts{Comments: true})
	c.Assert(err, IsNil)
	c.Assert(tokens, Equals, `STREAM-START COMMENT(" c") BLOCK-MAPPING-START KEY SCALAR("a") VALUE SCALAR("1") COMMENT(" trailing") BLOCK-MAPPING-END STREAM-END`)
}

var scanErrorTests = []struct {
	input string
	err   string
}{
	{"a: [1, 2]\n", "yaml: line 1: while scanning for the next token found unsupported flow collection indicator '['"},
	{"a: {b: 1}\n", "yaml: line 1: while scanning for the next token found unsupported flow collection indicator '{'"},
	{"a: &x 1\n", "yaml: line 1: while scanning an anchor found unsupported anchor"},
	{"a: *x\n", "yaml: line 1: while scanning an alias found unsupported alias"},
	{"a: !!str 1\n", "yaml: line 1: while scanning a tag found unsupported tag"},
	{"%YAML 1.2\n---\n", "yaml: line 1: while scanning a directive found unsupported directive"},
	{"? a\n: b\n", "yaml: line 1: while scanning for the next token found unsupported explicit key indicator '?'"},
	{"a: 1\nb\n", "yaml: line 2: while scanning a simple key could not find expected ':'"},
	{"a: b: c\n", "yaml: line 1: mapping values are not allowed in this context"},
	{"a: \"unterminated\n", "yaml: line 1: while scanning a quoted scalar found unexpected end of stream"},
	{"a: \"\\q\"\n", "yaml: line 1: while parsing a quoted scalar found unknown escape character"},
	{"a: \"\\uD800\"\n", "yaml: line 1: while parsing a quoted scalar found invalid Unicode character escape code"},
	{"a:\n\tb: 1\n", "yaml: line 2: while scanning for the next token found a tab character that violates indentation"},
	{"- a\nb: 1\n", "yaml: line 2: while scanning a block sequence did not find expected '-' indicator"},
	{"a: 1\n- b\n", "yaml: line 2: block sequence entries are not allowed in this context"},
	{"a: |0\n  x\n", "yaml: line 1: while scanning a block scalar found an indentation indicator equal to 0"},
	{"a: | x\n", "yaml: line 1: while scanning a block scalar did not find expected comment or line break"},
	{"a: @x\n", "yaml: line 1: while scanning for the next token found character that cannot start any token"},
}

func (s *S) TestScanErrors(c *C) {
	for _, item := range scanErrorTests {
		_, err := scanAll(item.input, scanner.Opts{})
		c.Assert(err, NotNil, Commentf("input: %q", item.input))
		c.Assert(err.Error(), Equals, item.err, Commentf("input: %q", item.input))
	}
}

func (s *S) TestErrorsAreSticky(c *C) {
	scan, err := scanner.New([]byte("a: [1]\n"), scanner.Opts{})
	c.Assert(err, IsNil)

	_, err = token.ReadAll(scan)
	c.Assert(err, NotNil)

	_, secondErr := scan.Next()
	c.Assert(secondErr, Equals, err)
}

func (s *S) TestStreamEndRepeats(c *C) {
	scan, err := scanner.New([]byte(""), scanner.Opts{})
	c.Assert(err, IsNil)

	_, err = token.ReadAll(scan)
	c.Assert(err, IsNil)

	tok, err := scan.Next()
	c.Assert(err, IsNil)
	c.Assert(tok.Kind, Equals, token.StreamEnd)
}

func (s *S) TestInitErrors(c *C) {
	_, err := scanner.New([]byte{0xFF, 0xFE, 'a', 0}, scanner.Opts{AssociatedName: "in.yml"})
	c.Assert(err, ErrorMatches, `yaml: in.yml:1: while reading the input found unsupported UTF-16 encoding`)

	_, err = scanner.New([]byte("a: 1\nb: \xff\n"), scanner.Opts{AssociatedName: "in.yml"})
	c.Assert(err, ErrorMatches, `yaml: in.yml:2: while reading the input found invalid UTF-8 sequence`)

	_, err = scanner.New([]byte("a: \x01\n"), scanner.Opts{})
	c.Assert(err, ErrorMatches, `yaml: line 1: while reading the input control characters are not allowed`)

	typedErr, ok := err.(*scanner.Error)
	c.Assert(ok, Equals, true)
	c.Assert(typedErr.Position.Column(), Equals, 4)
}

func (s *S) TestTokenPositions(c *C) {
	scan, err := scanner.New([]byte("a:\n  b: 1\n"), scanner.Opts{AssociatedName: "config.yml"})
	c.Assert(err, IsNil)

	tokens, err := token.ReadAll(scan)
	c.Assert(err, IsNil)

	var scalarB token.Token
	for _, tok := range tokens {
		if tok.Kind == token.Scalar && tok.Text == "b" {
			scalarB = tok
		}
	}
	c.Assert(scalarB.Position.AsCompactString(), Equals, "config.yml:2")
	c.Assert(scalarB.Position.Column(), Equals, 3)
	c.Assert(scalarB.Position.GetLine(), Equals, "  b: 1")
}

func (s *S) TestScalarStyles(c *C) {
	scan, err := scanner.New([]byte("a: plain\nb: 'single'\nc: \"double\"\nd: |\n  lit\ne: >\n  fold\n"), scanner.Opts{})
	c.Assert(err, IsNil)

	tokens, err := token.ReadAll(scan)
	c.Assert(err, IsNil)

	styles := map[string]token.ScalarStyle{}
	var lastKey string
	for i, tok := range tokens {
		if tok.Kind != token.Scalar {
			continue
		}
		if tokens[i-1].Kind == token.Key {
			lastKey = tok.Text
			continue
		}
		styles[lastKey] = tok.Style
	}
	c.Assert(styles, DeepEquals, map[string]token.ScalarStyle{
		"a": token.PlainStyle,
		"b": token.SingleQuotedStyle,
		"c": token.DoubleQuotedStyle,
		"d": token.LiteralStyle,
		"e": token.FoldedStyle,
	})
}
