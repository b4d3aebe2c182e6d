// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package scanner

// eof is returned by peek past the end of input.
const eof rune = -1

func isBlank(r rune) bool { return r == ' ' || r == '\t' }

func isSpace(r rune) bool { return r == ' ' }

func isTab(r rune) bool { return r == '\t' }

func isBreak(r rune) bool {
	return r == '\r' || r == '\n' || r == '\u0085' || r == '\u2028' || r == '\u2029'
}

func isZ(r rune) bool { return r == eof }

func isBreakz(r rune) bool { return isBreak(r) || isZ(r) }

func isBlankz(r rune) bool { return isBlank(r) || isBreakz(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func asHex(r rune) rune {
	switch {
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - '0'
	}
}

// isPrintable reports characters allowed in a YAML stream.
func isPrintable(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == 0x85:
		return true
	case r >= 0xA0 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD && r != 0xFEFF:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// isIndicator reports characters that cannot start a plain scalar
// when followed by a blank (or at all, for most of them).
func isIndicator(r rune) bool {
	switch r {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return true
	}
	return false
}
