package main

import (
	"github.com/SmileWuji/ImTiredOfJQ/jspf/compiler"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <program>",
	Short: "Shows the parse tree of a program",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	program := args[0]
	tree, err := compiler.Compile(program, settings.options()...)
	if err != nil {
		showError(program, err)
		return err
	}
	showTree(tree)
	return nil
}
