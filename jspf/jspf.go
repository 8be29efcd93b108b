package jspf

import "fmt"

//go:generate stringer -type=TokKind -linecomment

// TokKind is a category type for a Token. The set of kinds is closed.
type TokKind int

// Token kinds. WHITESPACE never reaches the parser, INVALID never appears in a
// successfully tokenized stream, and EOF is produced by the parser only, to
// signal the end of the token stream.
const (
	Invalid         TokKind = iota // INVALID
	Whitespace                     // WHITESPACE
	Nav                            // NAV
	Val                            // VAL
	Root                           // ROOT
	Regex                          // REGEX
	StrMatch                       // STR_MATCH
	SetMatch                       // SET_MATCH
	SelectBegin                    // SELECT_BEGIN
	SelectEnd                      // SELECT_END
	CapBegin                       // CAP_BEGIN
	CapEnd                         // CAP_END
	NoncapPosBegin                 // NONCAP_POS_BEGIN
	NoncapPosEnd                   // NONCAP_POS_END
	NoncapNegBegin                 // NONCAP_NEG_BEGIN
	NoncapNegEnd                   // NONCAP_NEG_END
	Union                          // UNION
	DefaultOptional                // DEFAULT_OPTIONAL
	DefaultAny                     // DEFAULT_ANY
	DefaultExist                   // DEFAULT_EXIST
	GreedyOptional                 // GREEDY_OPTIONAL
	GreedyAny                      // GREEDY_ANY
	GreedyExist                    // GREEDY_EXIST
	LazyOptional                   // LAZY_OPTIONAL
	LazyAny                        // LAZY_ANY
	LazyExist                      // LAZY_EXIST
	EOF                            // EOF
)

// KindByName returns the token kind for a kind name as printed by
// TokKind.String, e.g. "STR_MATCH".
func KindByName(name string) (TokKind, bool) {
	for k := Invalid; k <= EOF; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return Invalid, false
}

// IsQuantifier is true for the nine quantifier kinds.
func (k TokKind) IsQuantifier() bool {
	return k >= DefaultOptional && k <= LazyExist
}

// --- Tokens ----------------------------------------------------------------

// Token is an immutable input token, as produced by a tokenizer.
//
// An example would be a token for a regular expression condition:
//
//    Kind   = REGEX        // category of this token
//    Lexeme = "/bar\d+/"   // lexeme as it appeared in the program, delimiters included
//    Offset = 6            // byte position of the first character in the program
//
type Token struct {
	kind   TokKind
	lexeme string
	offset int
}

// MakeToken creates a token.
func MakeToken(kind TokKind, lexeme string, offset int) Token {
	return Token{
		kind:   kind,
		lexeme: lexeme,
		offset: offset,
	}
}

// Kind returns the token's category.
func (t Token) Kind() TokKind {
	return t.kind
}

// Lexeme returns the token's text exactly as written in the program.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Offset returns the byte index of the token's first character.
func (t Token) Offset() int {
	return t.offset
}

// Span returns the byte range the token covers.
func (t Token) Span() Span {
	return Span{uint64(t.offset), uint64(t.offset + len(t.lexeme))}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.kind, t.lexeme, t.offset)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Tokens and parse
// tree nodes track which program bytes they cover. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other. A null span
// does not contribute.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
