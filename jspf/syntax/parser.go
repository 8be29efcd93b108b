package syntax

import (
	"fmt"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/grammar"
)

// DefaultMaxDepth is the default limit for nested selectors.
const DefaultMaxDepth = 512

// Parser is a recursive-descent parser for JSPF. A Parser holds configuration
// only; every call to Parse works on its own state, so a Parser may be used
// concurrently.
type Parser struct {
	ga       *grammar.Analysis
	maxDepth int
}

// Option configures a parser.
type Option func(p *Parser)

// MaxDepth limits the nesting of selectors. Values < 1 select the default.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		p.maxDepth = n
	}
}

// NewParser creates a parser for the JSPF grammar.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		ga:       grammar.Selector(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse derives a parse tree from tokens, starting at S. It fails with a
// *jspf.SyntaxError on the first token which cannot be accepted, including
// tokens following a complete selector. Tokens must not contain whitespace.
func (p *Parser) Parse(tokens []jspf.Token) (*Tree, error) {
	r := &run{Parser: p, tokens: tokens}
	tree, err := r.parseS()
	if err == nil {
		err = r.expectEnd()
	}
	if err != nil {
		tracer().Errorf("parser: %v", err)
		return nil, err
	}
	if r.pos != len(tokens) {
		panic(fmt.Sprintf("parser stopped at token %d of %d without error", r.pos, len(tokens)))
	}
	return tree, nil
}

// run is the state of one call to Parse.
type run struct {
	*Parser
	tokens []jspf.Token
	pos    int // index of the lookahead token
	depth  int // nesting of S
}

// peek returns the kind of the lookahead token, EOF at the end of input.
func (r *run) peek() jspf.TokKind {
	if r.pos >= len(r.tokens) {
		return jspf.EOF
	}
	return r.tokens[r.pos].Kind()
}

// lookahead returns the lookahead token. At the end of input this is an EOF
// token located just behind the last token.
func (r *run) lookahead() jspf.Token {
	if r.pos < len(r.tokens) {
		return r.tokens[r.pos]
	}
	end := 0
	if n := len(r.tokens); n > 0 {
		end = int(r.tokens[n-1].Span().To())
	}
	return jspf.MakeToken(jspf.EOF, "", end)
}

// expect consumes the lookahead token if it is of kind k.
func (r *run) expect(k jspf.TokKind) (Leaf, error) {
	if r.peek() != k {
		return Leaf{}, r.unexpected(grammar.NewKindSet(k))
	}
	tok := r.tokens[r.pos]
	r.pos++
	tracer().Debugf("match %s", tok)
	return Leaf{tok}, nil
}

func (r *run) expectEnd() error {
	if r.peek() != jspf.EOF {
		return r.unexpected(grammar.NewKindSet(jspf.EOF))
	}
	return nil
}

func (r *run) unexpected(expected *grammar.KindSet) error {
	return jspf.UnexpectedTokenError(r.lookahead(), r.pos, expected.Kinds())
}

func (r *run) in(set *grammar.KindSet) bool {
	return set.Contains(r.peek())
}

// --- Non-terminal procedures -----------------------------------------------

// S → A Q E
func (r *run) parseS() (*Tree, error) {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.maxDepth {
		return nil, jspf.NestingError(r.lookahead(), r.pos, r.maxDepth)
	}
	if !r.in(r.ga.First(grammar.S)) {
		return nil, r.unexpected(r.ga.Expected(grammar.S))
	}
	return r.chain(newTree(grammar.S))
}

// chain appends A Q E to tree, with E → ε | A Q E.
//
// E nests once per atom of a selector. The E nodes are therefore collected in
// a loop and linked up from the tail, which keeps the call depth independent
// of the length of the selector.
func (r *run) chain(tree *Tree) (*Tree, error) {
	links := []*Tree{tree}
	for {
		link := links[len(links)-1]
		atom, err := r.parseA()
		if err != nil {
			return nil, err
		}
		link.add(atom)
		quant, err := r.parseQ()
		if err != nil {
			return nil, err
		}
		link.add(quant)
		if r.in(r.ga.First(grammar.A)) {
			links = append(links, newTree(grammar.E))
			continue
		}
		if !r.in(r.ga.Follow(grammar.E)) {
			return nil, r.unexpected(r.ga.Expected(grammar.E))
		}
		links = append(links, newTree(grammar.E)) // E → ε
		break
	}
	for i := len(links) - 1; i > 0; i-- {
		links[i-1].add(links[i])
	}
	return tree, nil
}

// A → "<" S U ">" | "(" S U ")" | "(?!" S U ")" | "(?=" S U ")" | T C
func (r *run) parseA() (*Tree, error) {
	tree := newTree(grammar.A)
	switch k := r.peek(); k {
	case jspf.SelectBegin:
		return r.group(tree, jspf.SelectBegin, jspf.SelectEnd)
	case jspf.CapBegin:
		return r.group(tree, jspf.CapBegin, jspf.CapEnd)
	case jspf.NoncapNegBegin:
		return r.group(tree, jspf.NoncapNegBegin, jspf.NoncapNegEnd)
	case jspf.NoncapPosBegin:
		return r.group(tree, jspf.NoncapPosBegin, jspf.NoncapPosEnd)
	default:
		if r.in(r.ga.First(grammar.T)) {
			step, err := r.parseT()
			if err != nil {
				return nil, err
			}
			tree.add(step)
			cond, err := r.parseC()
			if err != nil {
				return nil, err
			}
			tree.add(cond)
			return tree, nil
		}
	}
	return nil, r.unexpected(r.ga.Expected(grammar.A))
}

// group appends "open S U close" to tree.
func (r *run) group(tree *Tree, openKind, closeKind jspf.TokKind) (*Tree, error) {
	leaf, err := r.expect(openKind)
	if err != nil {
		return nil, err
	}
	tree.add(leaf)
	sel, err := r.parseS()
	if err != nil {
		return nil, err
	}
	tree.add(sel)
	alt, err := r.parseU()
	if err != nil {
		return nil, err
	}
	tree.add(alt)
	if leaf, err = r.expect(closeKind); err != nil {
		return nil, err
	}
	tree.add(leaf)
	return tree, nil
}

// U → ε | "|" S
func (r *run) parseU() (*Tree, error) {
	tree := newTree(grammar.U)
	switch {
	case r.in(r.ga.First(grammar.U)):
		leaf, err := r.expect(jspf.Union)
		if err != nil {
			return nil, err
		}
		tree.add(leaf)
		sel, err := r.parseS()
		if err != nil {
			return nil, err
		}
		tree.add(sel)
		return tree, nil
	case r.in(r.ga.Follow(grammar.U)):
		return tree, nil
	}
	return nil, r.unexpected(r.ga.Expected(grammar.U))
}

// C → ε | REGEX | STR_MATCH | SET_MATCH
func (r *run) parseC() (*Tree, error) {
	return r.optionalTerminal(grammar.C)
}

// Q → ε | one of the nine quantifiers
func (r *run) parseQ() (*Tree, error) {
	return r.optionalTerminal(grammar.Q)
}

// T → NAV | VAL | ROOT
func (r *run) parseT() (*Tree, error) {
	tree := newTree(grammar.T)
	if !r.in(r.ga.First(grammar.T)) {
		return nil, r.unexpected(r.ga.Expected(grammar.T))
	}
	leaf, _ := r.expect(r.peek())
	tree.add(leaf)
	return tree, nil
}

// optionalTerminal parses non-terminals deriving ε or a single token.
func (r *run) optionalTerminal(nt grammar.NonTerm) (*Tree, error) {
	tree := newTree(nt)
	switch {
	case r.in(r.ga.First(nt)):
		leaf, _ := r.expect(r.peek())
		tree.add(leaf)
		return tree, nil
	case r.in(r.ga.Follow(nt)):
		return tree, nil
	}
	return nil, r.unexpected(r.ga.Expected(nt))
}
