package grammar

import (
	"fmt"
	"io"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
)

// PredictTable is the LL(1) parse table of a grammar. Rows are non-terminals,
// columns are token kinds, and each cell names the rule to apply when the
// non-terminal is expanded with the token kind as lookahead.
//
// Package syntax does not look up productions in the table; its procedures
// test FIRST and FOLLOW sets directly. The table serves to prove the grammar
// LL(1) (see Conflicts) and for display (see AsHTML). Its cells agree with
// the choices of the parser.
type PredictTable struct {
	ga        *Analysis
	matrix    *intMatrix
	conflicts []Conflict
}

// Conflict is a table cell holding two rules. An LL(1) grammar has none.
type Conflict struct {
	NonTerm NonTerm
	Kind    jspf.TokKind
	Rules   [2]int // serial numbers of the competing rules
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at (%s, %s) between rules %d and %d", c.NonTerm, c.Kind,
		c.Rules[0], c.Rules[1])
}

func buildPredictTable(ga *Analysis) *PredictTable {
	t := &PredictTable{
		ga:     ga,
		matrix: newIntMatrix(len(NonTerms), int(jspf.EOF)+1, nullValue),
	}
	for _, r := range ga.g.rules {
		for _, k := range ga.Predict(r).Kinds() {
			row, col := int(r.LHS), int(k)
			if a := t.matrix.Value(row, col); a != nullValue {
				c := Conflict{NonTerm: r.LHS, Kind: k, Rules: [2]int{int(a), r.Serial}}
				tracer().Infof("%s", c)
				t.conflicts = append(t.conflicts, c)
			}
			t.matrix.Add(row, col, int32(r.Serial))
		}
	}
	tracer().Infof("predict table with %d entries, %d conflicts", t.matrix.ValueCount(), len(t.conflicts))
	return t
}

// Rule returns the rule to apply for nt with lookahead kind, or false if
// kind cannot start nt. For a conflicting cell the first rule wins.
func (t *PredictTable) Rule(nt NonTerm, kind jspf.TokKind) (*Rule, bool) {
	if kind < 0 || kind > jspf.EOF {
		return nil, false
	}
	v := t.matrix.Value(int(nt), int(kind))
	if v == nullValue {
		return nil, false
	}
	return t.ga.g.Rule(int(v)), true
}

// Conflicts returns all conflicts found while building the table.
func (t *PredictTable) Conflicts() []Conflict {
	return t.conflicts
}

// HasConflicts is true if the grammar is not LL(1).
func (t *PredictTable) HasConflicts() bool {
	return len(t.conflicts) > 0
}

// Size returns the number of non-empty cells.
func (t *PredictTable) Size() int {
	return t.matrix.ValueCount()
}

// AsHTML exports the predict table in HTML-format. Columns are restricted to
// the token kinds of the grammar, plus EOF.
func (t *PredictTable) AsHTML(w io.Writer) error {
	cols := append(t.ga.g.Terminals(), jspf.EOF)
	ew := &errWriter{w: w}
	ew.printf("<html><body>\n")
	ew.printf("<p>%s predict table of size = %d</p>\n", t.ga.g.Name, t.Size())
	ew.printf("<table border=1 cellspacing=0 cellpadding=5>\n")
	ew.printf("<tr bgcolor=#cccccc><td></td>\n")
	for _, k := range cols {
		ew.printf("<td>%s</td>", k)
	}
	ew.printf("</tr>\n")
	var td string // table cell
	for _, nt := range NonTerms {
		ew.printf("<tr><td>%s</td>\n", nt)
		for _, k := range cols {
			v1, v2 := t.matrix.Values(int(nt), int(k))
			if v1 == nullValue {
				td = "&nbsp;"
			} else if v2 == nullValue {
				td = fmt.Sprintf("%d", v1)
			} else {
				td = fmt.Sprintf("<font color=red>%d/%d</font>", v1, v2)
			}
			ew.printf("<td>%s</td>\n", td)
		}
		ew.printf("</tr>\n")
	}
	ew.printf("</table></body></html>\n")
	return ew.err
}

// errWriter remembers the first write error and skips all further writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
