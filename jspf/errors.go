package jspf

import (
	"fmt"
	"strings"
)

// Origin tells which stage of the front end rejected a program.
type Origin int

const (
	Lexical Origin = iota + 1
	Syntactic
)

func (o Origin) String() string {
	switch o {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// Error codes of the tokenizer.
const (
	ErrUnrecognizedChar = iota + 101
	ErrUnterminatedLiteral
	ErrUnmatchedClose
	ErrUnclosedGroup
)

// Error codes of the parser.
const (
	ErrUnexpectedToken = iota + 201
	ErrNestingTooDeep
)

// ExcerptLen is the maximum number of bytes a lexical error quotes from the
// program.
const ExcerptLen = 5

// SyntaxError is the single error type of the front end. Lexical errors fill
// in Excerpt, syntactic errors fill in Expected, Actual, Lexeme and
// TokenIndex. Offset is always a byte position in the program text.
type SyntaxError struct {
	Origin     Origin
	Code       int
	Msg        string
	Offset     int
	Excerpt    string
	Expected   []TokKind
	Actual     TokKind
	Lexeme     string
	TokenIndex int
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// Excerpt returns up to ExcerptLen bytes of src, starting at offset.
func Excerpt(src string, offset int) string {
	if offset < 0 || offset >= len(src) {
		return ""
	}
	end := offset + ExcerptLen
	if end > len(src) {
		end = len(src)
	}
	return src[offset:end]
}

// LexicalError creates an error for a tokenizer failure at offset.
func LexicalError(code int, src string, offset int) *SyntaxError {
	excerpt := Excerpt(src, offset)
	var msg string
	switch code {
	case ErrUnterminatedLiteral:
		msg = fmt.Sprintf("Unterminated literal %q at byte %d", excerpt, offset)
	case ErrUnmatchedClose:
		msg = fmt.Sprintf("Unmatched closing group %q at byte %d", excerpt, offset)
	case ErrUnclosedGroup:
		msg = fmt.Sprintf("Unclosed group %q at byte %d", excerpt, offset)
	default:
		msg = fmt.Sprintf("Unrecognized token %q at byte %d", excerpt, offset)
	}
	return &SyntaxError{
		Origin:  Lexical,
		Code:    code,
		Msg:     msg,
		Offset:  offset,
		Excerpt: excerpt,
	}
}

// UnexpectedTokenError creates an error for a token the parser cannot accept.
// inx is the position of the token within the token stream.
func UnexpectedTokenError(tok Token, inx int, expected []TokKind) *SyntaxError {
	return &SyntaxError{
		Origin: Syntactic,
		Code:   ErrUnexpectedToken,
		Msg: fmt.Sprintf("Unexpected token %s %q at token %d (byte %d), expecting one of %s",
			tok.Kind(), tok.Lexeme(), inx, tok.Offset(), KindList(expected)),
		Offset:     tok.Offset(),
		Expected:   expected,
		Actual:     tok.Kind(),
		Lexeme:     tok.Lexeme(),
		TokenIndex: inx,
	}
}

// NestingError creates an error for a group nested deeper than limit.
func NestingError(tok Token, inx int, limit int) *SyntaxError {
	return &SyntaxError{
		Origin:     Syntactic,
		Code:       ErrNestingTooDeep,
		Msg:        fmt.Sprintf("Nesting deeper than %d at token %d (byte %d)", limit, inx, tok.Offset()),
		Offset:     tok.Offset(),
		Actual:     tok.Kind(),
		Lexeme:     tok.Lexeme(),
		TokenIndex: inx,
	}
}

// KindList formats a list of token kinds as "{A, B, C}".
func KindList(kinds []TokKind) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range kinds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteByte('}')
	return b.String()
}
