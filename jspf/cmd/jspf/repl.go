package main

import (
	"strings"

	"github.com/SmileWuji/ImTiredOfJQ/jspf/compiler"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compiles programs interactively",
	Long: `repl reads programs line by line and shows their parse trees.

A line starting with ":tokens " shows the token stream of the rest of the
line instead. Quit with ":quit" or <ctrl>D.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
}

func runREPL(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("jspf> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to the JSPF REPL")
	tracer().Infof("Quit with <ctrl>D")
	intp := &Intp{repl: repl}
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval compiles a program given on a line by itself, or executes a command.
func (intp *Intp) Eval(line string) bool {
	switch {
	case line == ":quit":
		return true
	case strings.HasPrefix(line, ":tokens "):
		program := strings.TrimPrefix(line, ":tokens ")
		tokens, err := compiler.Tokenize(program, settings.options()...)
		if err != nil {
			showError(program, err)
			return false
		}
		showTokens(tokens)
	default:
		tree, err := compiler.Compile(line, settings.options()...)
		if err != nil {
			showError(line, err)
			return false
		}
		showTree(tree)
	}
	return false
}
