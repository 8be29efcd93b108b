package compiler

import (
	"fmt"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/scanner"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/scanner/lexmach"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/syntax"
	"github.com/npillmayer/schuko/gconf"
)

// Configuration keys.
const (
	KeyMaxDepth   = "jspf.max-depth"
	KeyLexmachine = "jspf.lexmachine"
)

type config struct {
	tokenizer  scanner.Tokenizer
	lexmachine bool
	maxDepth   int
}

// Option configures a single compile.
type Option func(c *config)

// WithTokenizer sets the tokenizer to use. It takes precedence over
// UseLexmachine.
func WithTokenizer(t scanner.Tokenizer) Option {
	return func(c *config) {
		c.tokenizer = t
	}
}

// UseLexmachine selects the lexmachine tokenizer instead of the default one.
func UseLexmachine(b bool) Option {
	return func(c *config) {
		c.lexmachine = b
	}
}

// MaxDepth limits the nesting of selectors.
func MaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

func configure(opts []Option) config {
	c := config{maxDepth: syntax.DefaultMaxDepth}
	if n := gconf.GetInt(KeyMaxDepth); n > 0 {
		c.maxDepth = n
	}
	c.lexmachine = gconf.GetBool(KeyLexmachine)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) tokenizerFor() (scanner.Tokenizer, error) {
	if c.tokenizer != nil {
		return c.tokenizer, nil
	}
	if c.lexmachine {
		return lexmach.NewTokenizer()
	}
	return scanner.NewTokenizer(), nil
}

// Tokenize splits a program into tokens, dropping whitespace.
func Tokenize(program string, opts ...Option) ([]jspf.Token, error) {
	c := configure(opts)
	return c.tokenize(program)
}

func (c config) tokenize(program string) ([]jspf.Token, error) {
	tz, err := c.tokenizerFor()
	if err != nil {
		return nil, fmt.Errorf("compiler: %w", err)
	}
	return tz.Tokenize(program)
}

// Compile tokenizes and parses a program and returns its parse tree. The first
// error aborts compilation, no partial tree is returned.
func Compile(program string, opts ...Option) (*syntax.Tree, error) {
	c := configure(opts)
	tokens, err := c.tokenize(program)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%d tokens for program %q", len(tokens), program)
	tree, err := syntax.NewParser(syntax.MaxDepth(c.maxDepth)).Parse(tokens)
	if err != nil {
		return nil, err
	}
	tracer().Infof("compiled %q", program)
	return tree, nil
}
