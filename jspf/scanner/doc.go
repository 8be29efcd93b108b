/*
Package scanner implements the context-sensitive tokenizer for JSPF programs.

Most JSPF tokens are determined by their leading byte alone. Delimited
literals (/…/, […], {…}) scan forward to their closing delimiter, honouring
backslash escapes. Operators which share a prefix ((, (?=, (?!, and the
quantifier pairs) are resolved by a short lookahead. The closing parenthesis
is the only lexeme whose token kind depends on context: a stack of lexical
contexts remembers which kind of group is currently open.

Advance is the single-step rule. It is a pure function of the program text, an
offset and the top of the context stack. Tokenize drives Advance over a whole
program, maintains the context stack and drops whitespace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 SmileWuji

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jspf.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("jspf.scanner")
}
