package grammar

import (
	"fmt"
	"sync"
)

// JSPFGrammar is the grammar of JSPF in EBNF notation.
const JSPFGrammar = `
S = A Q E .
E = [ A Q E ] .
A = "SELECT_BEGIN" S U "SELECT_END"
  | "CAP_BEGIN" S U "CAP_END"
  | "NONCAP_NEG_BEGIN" S U "NONCAP_NEG_END"
  | "NONCAP_POS_BEGIN" S U "NONCAP_POS_END"
  | T C .
U = [ "UNION" S ] .
C = [ "REGEX" | "STR_MATCH" | "SET_MATCH" ] .
Q = [ "DEFAULT_OPTIONAL" | "DEFAULT_ANY" | "DEFAULT_EXIST"
    | "GREEDY_OPTIONAL" | "GREEDY_ANY" | "GREEDY_EXIST"
    | "LAZY_OPTIONAL" | "LAZY_ANY" | "LAZY_EXIST" ] .
T = "NAV" | "VAL" | "ROOT" .
`

var selector *Analysis

var selectorOnce sync.Once // monitors one-time creation of the JSPF grammar

// Selector returns the analysed JSPF grammar. It panics if the grammar cannot
// be built or is not LL(1), both of which are programming errors.
func Selector() *Analysis {
	selectorOnce.Do(func() {
		tracer().Infof("Creating JSPF grammar")
		g, err := FromEBNF("JSPF", JSPFGrammar)
		if err != nil {
			panic(fmt.Sprintf("cannot create JSPF grammar: %v", err))
		}
		ga := Analyze(g)
		if ga.Table().HasConflicts() {
			panic(fmt.Sprintf("JSPF grammar is not LL(1): %v", ga.Table().Conflicts()))
		}
		selector = ga
	})
	return selector
}
