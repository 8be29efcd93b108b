package main

import (
	"github.com/SmileWuji/ImTiredOfJQ/jspf/compiler"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <program>",
	Short: "Shows the token stream of a program",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	program := args[0]
	tokens, err := compiler.Tokenize(program, settings.options()...)
	if err != nil {
		showError(program, err)
		return err
	}
	showTokens(tokens)
	return nil
}
