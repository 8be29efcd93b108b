package main

import (
	"fmt"
	"os"

	"github.com/SmileWuji/ImTiredOfJQ/jspf/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var htmlFile string

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Shows the JSPF grammar and its LL(1) tables",
	Args:  cobra.NoArgs,
	RunE:  runGrammar,
}

func init() {
	grammarCmd.Flags().StringVar(&htmlFile, "html", "", "write the predict table as HTML to file")
	rootCmd.AddCommand(grammarCmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	ga := grammar.Selector()
	for _, r := range ga.Grammar().Rules() {
		pterm.Println(fmt.Sprintf("%2d: %s", r.Serial, r))
	}
	pterm.Println()
	pterm.DefaultTable.WithHasHeader().WithData(setsTable(ga)).Render()
	if htmlFile == "" {
		return nil
	}
	if err := writeHTML(ga, htmlFile); err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Println("predict table written to " + htmlFile)
	return nil
}

func setsTable(ga *grammar.Analysis) pterm.TableData {
	data := pterm.TableData{{"", "Nullable", "FIRST", "FOLLOW"}}
	for _, nt := range grammar.NonTerms {
		data = append(data, []string{
			nt.String(),
			fmt.Sprintf("%v", ga.Nullable(nt)),
			ga.First(nt).String(),
			ga.Follow(nt).String(),
		})
	}
	return data
}

func writeHTML(ga *grammar.Analysis, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grammar: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("grammar: %w", cerr)
		}
	}()
	if err = ga.Table().AsHTML(f); err != nil {
		return fmt.Errorf("grammar: %w", err)
	}
	return nil
}
