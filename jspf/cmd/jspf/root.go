package main

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	traceLevel string
	useLM      bool
	settings   = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "jspf",
	Short: "Tokenize and parse JSPF selection programs",
	Long: `jspf runs the stages of the JSPF front end on a program and shows
the result: the token stream, the parse tree or the grammar tables.

Commands:
  tokens   - token stream of a program
  parse    - parse tree of a program
  grammar  - productions, FIRST/FOLLOW sets and predict table
  repl     - compile programs interactively`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().BoolVar(&useLM, "lexmachine", false, "tokenize with lexmachine")
}

// tracingKeys are the tracers of all stages.
var tracingKeys = []string{"jspf.cli", "jspf.compiler", "jspf.scanner", "jspf.grammar", "jspf.syntax"}

func setup(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("trace") {
		c.Trace = traceLevel
	}
	if cmd.Flags().Changed("lexmachine") {
		c.Lexmachine = useLM
	}
	settings = c
	level := tracing.TraceLevelFromString(c.Trace)
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", c.Trace)
	return nil
}
