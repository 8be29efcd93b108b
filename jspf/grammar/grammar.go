package grammar

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
)

// NonTerm is a non-terminal symbol of the JSPF grammar.
type NonTerm int8

// Non-terminals, start symbol first.
const (
	S NonTerm = iota // selector
	E                // rest of a sequence of atoms
	A                // atom
	U                // union suffix
	C                // condition
	Q                // quantifier
	T                // navigation step
)

// NonTerms lists all non-terminals in order.
var NonTerms = []NonTerm{S, E, A, U, C, Q, T}

var ntNames = [...]string{"S", "E", "A", "U", "C", "Q", "T"}

var ntDescriptions = [...]string{
	"selector", "sequence", "atom", "union", "condition", "quantifier", "step",
}

func (nt NonTerm) String() string {
	if nt < S || nt > T {
		return fmt.Sprintf("NonTerm(%d)", int(nt))
	}
	return ntNames[nt]
}

// Describe returns a human readable name of a non-terminal.
func (nt NonTerm) Describe() string {
	if nt < S || nt > T {
		return nt.String()
	}
	return ntDescriptions[nt]
}

// NonTermByName finds a non-terminal by its one-letter name.
func NonTermByName(name string) (NonTerm, bool) {
	for _, nt := range NonTerms {
		if ntNames[nt] == name {
			return nt, true
		}
	}
	return S, false
}

// --- Symbols ---------------------------------------------------------------

// Symbol is a symbol on the right hand side of a production: either a token
// kind or a non-terminal.
type Symbol struct {
	Kind     jspf.TokKind // for terminals
	NonTerm  NonTerm      // for non-terminals
	terminal bool
}

// TermSym creates a terminal symbol.
func TermSym(kind jspf.TokKind) Symbol {
	return Symbol{Kind: kind, terminal: true}
}

// NonTermSym creates a non-terminal symbol.
func NonTermSym(nt NonTerm) Symbol {
	return Symbol{NonTerm: nt}
}

// IsTerminal is true for token kinds.
func (sym Symbol) IsTerminal() bool {
	return sym.terminal
}

func (sym Symbol) String() string {
	if sym.terminal {
		return sym.Kind.String()
	}
	return sym.NonTerm.String()
}

// --- Rules -----------------------------------------------------------------

// Rule is a production of the grammar. A rule with an empty RHS is an
// ε-production.
type Rule struct {
	Serial int     // ordinal number of this rule within the grammar
	LHS    NonTerm // left hand side
	RHS    []Symbol
}

// IsEpsilon is true for ε-productions.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS.String())
	b.WriteString(" →")
	if r.IsEpsilon() {
		b.WriteString(" ε")
	}
	for _, sym := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	return b.String()
}

// Grammar is a set of rules. The start symbol is S.
type Grammar struct {
	Name  string
	rules []*Rule
}

// Rules returns all rules in order of their serial numbers.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Rule returns the rule with serial number n.
func (g *Grammar) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// RulesFor returns all rules with left hand side nt, in order.
func (g *Grammar) RulesFor(nt NonTerm) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == nt {
			rules = append(rules, r)
		}
	}
	return rules
}

// Terminals returns all token kinds occurring in the grammar, ordered.
func (g *Grammar) Terminals() []jspf.TokKind {
	set := NewKindSet()
	for _, r := range g.rules {
		for _, sym := range r.RHS {
			if sym.IsTerminal() {
				set.Add(sym.Kind)
			}
		}
	}
	return set.Kinds()
}

// Dump is a debugging helper
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a tool to construct a grammar rule by rule.
//
//	b := NewGrammarBuilder("G")
//	b.LHS(S).N(A).T(jspf.Nav).End()  // S → A NAV
//	b.LHS(A).Epsilon()               // A → ε
//	g, err := b.Grammar()
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a builder for a named grammar.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: &Grammar{Name: name}}
}

// RuleBuilder collects the right hand side of a rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

// LHS starts a new rule for non-terminal nt.
func (gb *GrammarBuilder) LHS(nt NonTerm) *RuleBuilder {
	return &RuleBuilder{gb: gb, rule: &Rule{LHS: nt}}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(nt NonTerm) *RuleBuilder {
	rb.rule.RHS = append(rb.rule.RHS, NonTermSym(nt))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(kind jspf.TokKind) *RuleBuilder {
	if kind == jspf.Invalid || kind == jspf.Whitespace || kind == jspf.EOF {
		if rb.gb.err == nil {
			rb.gb.err = fmt.Errorf("token kind %s cannot be used in a production", kind)
		}
	}
	rb.rule.RHS = append(rb.rule.RHS, TermSym(kind))
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	rb.rule.Serial = len(rb.gb.g.rules)
	rb.gb.g.rules = append(rb.gb.g.rules, rb.rule)
	return rb.rule
}

// Epsilon closes the rule as an ε-production.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rule.RHS) > 0 && rb.gb.err == nil {
		rb.gb.err = fmt.Errorf("ε-production %s has symbols", rb.rule)
	}
	rb.rule.RHS = nil
	return rb.End()
}

// Grammar returns the grammar built so far. It is an error if the start
// symbol S has no rule, if a non-terminal is used without having rules, or
// if a non-terminal with rules is unreachable from S.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	g := gb.g
	if len(g.RulesFor(S)) == 0 {
		return nil, errors.New("grammar has no rule for start symbol S")
	}
	reached := map[NonTerm]bool{S: true}
	queue := []NonTerm{S}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, r := range g.RulesFor(nt) {
			for _, sym := range r.RHS {
				if sym.IsTerminal() || reached[sym.NonTerm] {
					continue
				}
				if len(g.RulesFor(sym.NonTerm)) == 0 {
					return nil, fmt.Errorf("non-terminal %s used in %s has no rules", sym.NonTerm, r)
				}
				reached[sym.NonTerm] = true
				queue = append(queue, sym.NonTerm)
			}
		}
	}
	for _, r := range g.rules {
		if !reached[r.LHS] {
			return nil, fmt.Errorf("non-terminal %s is not reachable from S", r.LHS)
		}
	}
	g.Dump()
	return g, nil
}
