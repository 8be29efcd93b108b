package grammar

import (
	"fmt"
	"strings"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"golang.org/x/exp/ebnf"
)

// FromEBNF reads a grammar in EBNF notation, as understood by package
// golang.org/x/exp/ebnf. Production names are the one-letter names of
// non-terminals, quoted tokens are token kind names.
//
// Only a restricted form of EBNF is accepted: the body of a production is
// either an option [ x ], denoting ε | x, or a list of alternatives, each of
// which is a sequence of names and tokens. Rules are numbered in order of the
// non-terminals (S first), alternatives in source order, ε-productions first.
func FromEBNF(name string, src string) (*Grammar, error) {
	eg, err := ebnf.Parse(name, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	if err = ebnf.Verify(eg, S.String()); err != nil {
		return nil, err
	}
	for pname := range eg {
		if _, ok := NonTermByName(pname); !ok {
			return nil, fmt.Errorf("production %s does not name a non-terminal", pname)
		}
	}
	b := NewGrammarBuilder(name)
	for _, nt := range NonTerms {
		prod, ok := eg[nt.String()]
		if !ok {
			continue
		}
		body := prod.Expr
		if opt, ok := body.(*ebnf.Option); ok {
			b.LHS(nt).Epsilon()
			body = opt.Body
		}
		for _, alt := range alternatives(body) {
			rb := b.LHS(nt)
			for _, x := range sequence(alt) {
				switch sym := x.(type) {
				case *ebnf.Name:
					n, _ := NonTermByName(sym.String)
					rb.N(n)
				case *ebnf.Token:
					kind, ok := jspf.KindByName(sym.String)
					if !ok {
						return nil, fmt.Errorf("%s: unknown token kind %q", sym.Pos(), sym.String)
					}
					rb.T(kind)
				default:
					return nil, fmt.Errorf("%s: unsupported EBNF expression %T in production %s",
						x.Pos(), x, nt)
				}
			}
			rb.End()
		}
	}
	return b.Grammar()
}

func alternatives(x ebnf.Expression) []ebnf.Expression {
	if alt, ok := x.(ebnf.Alternative); ok {
		return alt
	}
	return []ebnf.Expression{x}
}

func sequence(x ebnf.Expression) []ebnf.Expression {
	if seq, ok := x.(ebnf.Sequence); ok {
		return seq
	}
	return []ebnf.Expression{x}
}
