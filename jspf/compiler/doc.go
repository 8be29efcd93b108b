/*
Package compiler glues the stages of the JSPF front end together.

	tree, err := compiler.Compile(`^.[foo]./bar\d+/`)
	if err != nil {
		var serr *jspf.SyntaxError
		if errors.As(err, &serr) { … }
	}

Compile tokenizes a program, then parses the tokens. Both stages report
failures as *jspf.SyntaxError. Compile keeps no state between calls and may
be called concurrently.

Defaults for the options are taken from the global configuration (package
gconf of schuko):

	jspf.max-depth    int   maximum nesting of selectors (default 512)
	jspf.lexmachine   bool  use the lexmachine tokenizer (default false)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 SmileWuji

*/
package compiler

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jspf.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("jspf.compiler")
}
