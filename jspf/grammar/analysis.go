package grammar

import (
	"github.com/SmileWuji/ImTiredOfJQ/jspf"
)

// Analysis holds the results of analysing a grammar: nullable non-terminals,
// FIRST and FOLLOW sets and the LL(1) predict table. An Analysis is read-only
// after creation.
type Analysis struct {
	g        *Grammar
	nullable map[NonTerm]bool
	first    map[NonTerm]*KindSet
	follow   map[NonTerm]*KindSet
	table    *PredictTable
}

// Analyze computes nullable, FIRST and FOLLOW for all non-terminals of g by
// fixed-point iteration, then derives the predict table. EOF is a member of
// FOLLOW(S).
func Analyze(g *Grammar) *Analysis {
	ga := &Analysis{
		g:        g,
		nullable: make(map[NonTerm]bool),
		first:    make(map[NonTerm]*KindSet),
		follow:   make(map[NonTerm]*KindSet),
	}
	for _, nt := range NonTerms {
		ga.first[nt] = NewKindSet()
		ga.follow[nt] = NewKindSet()
	}
	ga.computeNullable()
	ga.computeFirst()
	ga.computeFollow()
	ga.table = buildPredictTable(ga)
	for _, nt := range NonTerms {
		tracer().Debugf("FIRST(%s) = %s, FOLLOW(%s) = %s, nullable=%v", nt, ga.first[nt],
			nt, ga.follow[nt], ga.nullable[nt])
	}
	return ga
}

// Grammar returns the analysed grammar.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// Nullable is true if nt derives ε.
func (ga *Analysis) Nullable(nt NonTerm) bool {
	return ga.nullable[nt]
}

// First returns FIRST(nt). ε is not a member, use Nullable instead.
// The set must not be modified.
func (ga *Analysis) First(nt NonTerm) *KindSet {
	return ga.first[nt]
}

// Follow returns FOLLOW(nt). The set must not be modified.
func (ga *Analysis) Follow(nt NonTerm) *KindSet {
	return ga.follow[nt]
}

// Table returns the predict table.
func (ga *Analysis) Table() *PredictTable {
	return ga.table
}

// FirstOf computes FIRST of a sequence of symbols and whether the sequence
// derives ε.
func (ga *Analysis) FirstOf(seq []Symbol) (*KindSet, bool) {
	set := NewKindSet()
	for _, sym := range seq {
		if sym.IsTerminal() {
			set.Add(sym.Kind)
			return set, false
		}
		set.Union(ga.first[sym.NonTerm])
		if !ga.nullable[sym.NonTerm] {
			return set, false
		}
	}
	return set, true
}

// Predict returns the lookahead set of a rule: FIRST of its RHS, plus FOLLOW
// of its LHS if the RHS derives ε.
func (ga *Analysis) Predict(r *Rule) *KindSet {
	set, nullable := ga.FirstOf(r.RHS)
	if nullable {
		set.Union(ga.follow[r.LHS])
	}
	return set
}

// Expected returns the token kinds acceptable at the start of nt: FIRST(nt),
// plus FOLLOW(nt) if nt is nullable.
func (ga *Analysis) Expected(nt NonTerm) *KindSet {
	set := ga.first[nt].Copy()
	if ga.nullable[nt] {
		set.Union(ga.follow[nt])
	}
	return set
}

func (ga *Analysis) computeNullable() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if ga.nullable[r.LHS] {
				continue
			}
			if _, n := ga.FirstOf(r.RHS); n {
				ga.nullable[r.LHS] = true
				changed = true
			}
		}
	}
}

func (ga *Analysis) computeFirst() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			set, _ := ga.FirstOf(r.RHS)
			if ga.first[r.LHS].Union(set) {
				changed = true
			}
		}
	}
}

// For every rule A → α B β, FOLLOW(B) includes FIRST(β), and FOLLOW(A) if β
// derives ε.
func (ga *Analysis) computeFollow() {
	ga.follow[S].Add(jspf.EOF)
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			for i, sym := range r.RHS {
				if sym.IsTerminal() {
					continue
				}
				rest, nullable := ga.FirstOf(r.RHS[i+1:])
				if ga.follow[sym.NonTerm].Union(rest) {
					changed = true
				}
				if nullable && ga.follow[sym.NonTerm].Union(ga.follow[r.LHS]) {
					changed = true
				}
			}
		}
	}
}
