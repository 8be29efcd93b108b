package scanner

import (
	"github.com/SmileWuji/ImTiredOfJQ/jspf"
)

// Tokenizer turns a JSPF program into tokens. Whitespace is not part of the
// result. Errors are of type *jspf.SyntaxError.
type Tokenizer interface {
	Tokenize(src string) ([]jspf.Token, error)
}

// DefaultTokenizer is the hand-written tokenizer, built on Advance.
// The zero value is ready to use.
type DefaultTokenizer struct {
	observer func(jspf.Token, []LexContext)
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Option configures a default tokenizer.
type Option func(t *DefaultTokenizer)

// Observer sets a function to be called for every token emitted, together with
// a snapshot of the context stack (bottom first) taken after the token has
// been accounted for.
func Observer(fn func(tok jspf.Token, contexts []LexContext)) Option {
	return func(t *DefaultTokenizer) {
		t.observer = fn
	}
}

// NewTokenizer creates a default tokenizer.
func NewTokenizer(opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize is a shortcut for tokenizing src with a default tokenizer.
func Tokenize(src string) ([]jspf.Token, error) {
	return NewTokenizer().Tokenize(src)
}

// Tokenize is part of interface Tokenizer. It fails on the first byte no rule
// matches and when groups are left open at the end of the program. No partial
// result is returned.
func (t *DefaultTokenizer) Tokenize(src string) ([]jspf.Token, error) {
	cs := NewContextStack()
	var tokens []jspf.Token
	offset := 0
	for offset < len(src) {
		kind, lexeme, next := Advance(src, offset, cs.Top())
		if kind == jspf.Invalid {
			err := jspf.LexicalError(InvalidCode(src, offset), src, offset)
			tracer().Errorf("tokenizer: %v", err)
			return nil, err
		}
		if kind != jspf.Whitespace {
			tok := jspf.MakeToken(kind, lexeme, offset)
			cs.Track(kind, offset)
			tracer().Debugf("token %s, contexts %s", tok, cs)
			if t.observer != nil {
				t.observer(tok, cs.Contexts())
			}
			tokens = append(tokens, tok)
		}
		offset = next
	}
	if err := cs.Unclosed(src); err != nil {
		tracer().Errorf("tokenizer: %v", err)
		return nil, err
	}
	return tokens, nil
}
