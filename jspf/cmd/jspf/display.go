package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/grammar"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/syntax"
	"github.com/pterm/pterm"
)

// caretDisplay returns the program with a caret under the byte an error
// points to, followed by the error message.
func caretDisplay(program string, err error) string {
	var serr *jspf.SyntaxError
	if !errors.As(err, &serr) {
		return err.Error()
	}
	off := serr.Offset
	if off > len(program) {
		off = len(program)
	}
	col := utf8.RuneCountInString(program[:off])
	return fmt.Sprintf("%s\n%s^\n%s error %d: %s", program, strings.Repeat(" ", col),
		serr.Origin, serr.Code, serr.Msg)
}

func showError(program string, err error) {
	pterm.Error.Println(caretDisplay(program, err))
}

// --- Parse tree display ----------------------------------------------------

// treeLister collects a leveled list from a parse tree walk.
type treeLister struct {
	ll pterm.LeveledList
}

var _ syntax.Listener = (*treeLister)(nil)

func (tl *treeLister) EnterRule(tree *syntax.Tree, ctxt syntax.RuleCtxt) bool {
	text := tree.Symbol.String() + " " + tree.Symbol.Describe()
	if tree.IsEmpty() {
		text += " ε"
	} else {
		text += " " + ctxt.Span.String()
	}
	tl.ll = append(tl.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: text})
	return true
}

func (tl *treeLister) ExitRule(*syntax.Tree, []interface{}, syntax.RuleCtxt) interface{} {
	return nil
}

func (tl *treeLister) Terminal(tok jspf.Token, ctxt syntax.RuleCtxt) interface{} {
	tl.ll = append(tl.ll, pterm.LeveledListItem{Level: ctxt.Level, Text: tok.String()})
	return nil
}

func (tl *treeLister) MakeAttrs(grammar.NonTerm) interface{} {
	return nil
}

func leveledTree(tree *syntax.Tree) pterm.LeveledList {
	tl := &treeLister{}
	syntax.Walk(tree, tl, syntax.LtoR)
	tracer().Debugf("|ll| = %d", len(tl.ll))
	return tl.ll
}

func showTree(tree *syntax.Tree) {
	root := pterm.NewTreeFromLeveledList(leveledTree(tree))
	pterm.DefaultTree.WithRoot(root).Render()
	if digest, err := tree.Digest(); err == nil {
		pterm.Info.Println("digest " + digest)
	} else {
		tracer().Errorf("cannot compute digest: %v", err)
	}
}

// --- Token display ---------------------------------------------------------

func tokenTable(tokens []jspf.Token) pterm.TableData {
	data := pterm.TableData{{"#", "Kind", "Lexeme", "Span"}}
	for i, tok := range tokens {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			tok.Kind().String(),
			tok.Lexeme(),
			tok.Span().String(),
		})
	}
	return data
}

func showTokens(tokens []jspf.Token) {
	pterm.DefaultTable.WithHasHeader().WithData(tokenTable(tokens)).Render()
}
