/*
Package jspf is the front end of a compiler for the JSON selection path format
(JSPF), a small query language for navigating and pattern-matching hierarchical
documents.

A JSPF program is a chain of navigation steps. A step moves into a child (.),
to the current value ($) or to the document root (^) and may be constrained by
a regular expression (/…/), a literal string ([…]) or a value set ({…}). Steps
are grouped by selections (<…>), capture groups ((…)) and positive or negative
lookaheads ((?=…) and (?!…)), groups may hold alternatives separated by |,
and every atom may carry a quantifier (?, *, + in default, greedy and lazy
variants).

Package structure is as follows:

■ scanner: Package scanner implements the context-sensitive tokenizer.

■ grammar: Package grammar holds the LL(1) grammar of JSPF and computes
FIRST and FOLLOW sets for it.

■ syntax: Package syntax implements a predictive recursive-descent parser
producing parse trees.

■ compiler: Package compiler glues the stages together.

The base package contains the token model and the error type which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 SmileWuji

*/
package jspf
