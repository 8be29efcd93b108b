/*
Package lexmach provides a second tokenizer engine for JSPF, backed by the
lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The DFA is compiled once per process from regular expressions for the delimited
literals, plus one literal pattern per operator. Longest-match semantics of the
DFA resolve the multi-byte operators ((?=, (?!, ??, *+, …). The closing
parenthesis cannot be decided by a regular language; the DFA reports it as a
generic close, which is then resolved against the lexical context stack of
package scanner.

	tz, err := lexmach.NewTokenizer()
	if err != nil {
		// DFA could not be compiled
	}
	tokens, err := tz.Tokenize(`<.$/^[h-y]+-\d\d$/>`)

The token streams and errors are identical to the ones of the default
tokenizer of package scanner.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 SmileWuji

*/
package lexmach
