/*
Command jspf is a command line front end for the JSPF compiler.

	jspf tokens '<.$/^[h-y]+-\d\d$/>'
	jspf parse '^.[foo]./bar\d+/'
	jspf grammar --html table.html
	jspf repl

Settings may be read from a configuration file (TOML, or YAML if the file
name ends in .yaml or .yml):

	max_depth  = 64
	lexmachine = true
	trace      = "Info"

Flags --trace and --lexmachine override the file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 SmileWuji

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jspf.cli'
func tracer() tracing.Trace {
	return tracing.Select("jspf.cli")
}
