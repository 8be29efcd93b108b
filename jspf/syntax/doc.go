/*
Package syntax implements a predictive recursive-descent parser for JSPF.

The parser has one procedure per non-terminal of the JSPF grammar. Each
procedure looks at a single token of lookahead and selects a production by
testing the token kind against FIRST of the production, or against FOLLOW of
the non-terminal for ε-productions. The sets are taken from
grammar.Selector(). The parser does not consult the predict table of package
grammar; the table is used to check the grammar for LL(1) conflicts, and its
cells agree with the choices made here. There is no backtracking and no error recovery: the first
token which cannot be accepted aborts the parse with a *jspf.SyntaxError.

	tokens, err := scanner.Tokenize("<.$/^[h-y]+-\\d\\d$/>")
	…
	tree, err := syntax.NewParser().Parse(tokens)

The resulting parse tree mirrors the derivation exactly. ε-productions result
in tree nodes without children. Trees may be walked with a Listener.

Nesting of groups maps directly to recursion depth of the parser. The depth is
limited, see option MaxDepth. Sequences of atoms are parsed in a loop; the
resulting chain of E nodes is as long as the sequence, and all operations on
trees (Walk, String, Equal, Digest, …) work without recursion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 SmileWuji

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jspf.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("jspf.syntax")
}
