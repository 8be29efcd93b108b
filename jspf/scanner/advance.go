package scanner

import (
	"github.com/SmileWuji/ImTiredOfJQ/jspf"
)

// Advance recognizes the token starting at byte position offset of src.
// top is the innermost lexical context, which decides the kind of a closing
// parenthesis. Advance returns the token's kind, its lexeme and the offset
// just behind it.
//
// If no rule matches, Advance returns INVALID with an empty lexeme and an
// unchanged offset. Advance does not modify any state, it is safe to call
// concurrently.
func Advance(src string, offset int, top LexContext) (jspf.TokKind, string, int) {
	if offset < 0 || offset >= len(src) {
		return jspf.Invalid, "", offset
	}
	switch ch := src[offset]; ch {
	case '.':
		return single(jspf.Nav, src, offset)
	case '$':
		return single(jspf.Val, src, offset)
	case '^':
		return single(jspf.Root, src, offset)
	case '|':
		return single(jspf.Union, src, offset)
	case '<':
		return single(jspf.SelectBegin, src, offset)
	case '>':
		return single(jspf.SelectEnd, src, offset)
	case '/':
		return delimited(jspf.Regex, src, offset, '/')
	case '[':
		return delimited(jspf.StrMatch, src, offset, ']')
	case '{':
		return delimited(jspf.SetMatch, src, offset, '}')
	case '(':
		return openGroupToken(src, offset)
	case ')':
		kind := ClosingKind(top)
		if kind == jspf.Invalid {
			return jspf.Invalid, "", offset
		}
		return single(kind, src, offset)
	case '?', '*', '+':
		return quantifier(src, offset)
	default:
		if isSpace(ch) {
			end := offset + 1
			for end < len(src) && isSpace(src[end]) {
				end++
			}
			return jspf.Whitespace, src[offset:end], end
		}
	}
	return jspf.Invalid, "", offset
}

func single(kind jspf.TokKind, src string, offset int) (jspf.TokKind, string, int) {
	return kind, src[offset : offset+1], offset + 1
}

// delimited scans a literal up to and including the closing delimiter. A
// backslash protects the byte following it.
func delimited(kind jspf.TokKind, src string, offset int, closing byte) (jspf.TokKind, string, int) {
	escaped := false
	for i := offset + 1; i < len(src); i++ {
		switch {
		case escaped:
			escaped = false
		case src[i] == '\\':
			escaped = true
		case src[i] == closing:
			return kind, src[offset : i+1], i + 1
		}
	}
	return jspf.Invalid, "", offset
}

func openGroupToken(src string, offset int) (jspf.TokKind, string, int) {
	if len(src)-offset >= 3 && src[offset+1] == '?' {
		switch src[offset+2] {
		case '=':
			return jspf.NoncapPosBegin, src[offset : offset+3], offset + 3
		case '!':
			return jspf.NoncapNegBegin, src[offset : offset+3], offset + 3
		}
	}
	return single(jspf.CapBegin, src, offset)
}

// quantifier kinds by leading byte, in the order default, greedy, lazy
var quantifiers = map[byte][3]jspf.TokKind{
	'?': {jspf.DefaultOptional, jspf.GreedyOptional, jspf.LazyOptional},
	'*': {jspf.DefaultAny, jspf.GreedyAny, jspf.LazyAny},
	'+': {jspf.DefaultExist, jspf.GreedyExist, jspf.LazyExist},
}

func quantifier(src string, offset int) (jspf.TokKind, string, int) {
	variants := quantifiers[src[offset]]
	if offset+1 < len(src) {
		switch src[offset+1] {
		case '?':
			return variants[2], src[offset : offset+2], offset + 2
		case '+':
			return variants[1], src[offset : offset+2], offset + 2
		}
	}
	return single(variants[0], src, offset)
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// InvalidCode classifies a failure of Advance at offset into one of the
// lexical error codes of package jspf.
func InvalidCode(src string, offset int) int {
	if offset >= 0 && offset < len(src) {
		switch src[offset] {
		case '/', '[', '{':
			return jspf.ErrUnterminatedLiteral
		case ')':
			return jspf.ErrUnmatchedClose
		}
	}
	return jspf.ErrUnrecognizedChar
}
