/*
Package grammar holds the LL(1) grammar of JSPF and its analysis.

The grammar is written down in EBNF (see JSPFGrammar) and converted into
productions with a GrammarBuilder. Clients may as well build grammars by hand:

	b := grammar.NewGrammarBuilder("tiny")
	b.LHS(grammar.S).N(grammar.T).End()
	b.LHS(grammar.T).T(jspf.Nav).End()
	b.LHS(grammar.T).Epsilon()
	g, err := b.Grammar()

Analyze computes the nullable non-terminals, FIRST and FOLLOW sets, and derives
an LL(1) predict table from them. Every cell of the predict table holding more
than one production is a conflict.

	ga := grammar.Analyze(g)
	ga.First(grammar.A)     // ordered set of token kinds
	ga.Follow(grammar.E)
	ga.Table().Conflicts()  // empty for an LL(1) grammar

Selector returns the analysed JSPF grammar. It is built once per process and
is read-only afterwards, therefore safe for concurrent use.

The JSPF productions are:

	S → A Q E
	E → ε | A Q E
	A → "<" S U ">" | "(" S U ")" | "(?!" S U ")" | "(?=" S U ")" | T C
	U → ε | "|" S
	C → ε | REGEX | STR_MATCH | SET_MATCH
	Q → ε | one of the nine quantifiers
	T → NAV | VAL | ROOT

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 SmileWuji

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jspf.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("jspf.grammar")
}
