package syntax

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type printer struct {
	b      strings.Builder
	skipQ  bool
	enters int
}

func (p *printer) EnterRule(tree *Tree, ctxt RuleCtxt) bool {
	p.enters++
	p.b.WriteString(fmt.Sprintf("%s%s\n", strings.Repeat("  ", ctxt.Level), tree.Symbol))
	return !(p.skipQ && tree.Symbol == grammar.Q)
}

func (p *printer) ExitRule(tree *Tree, values []interface{}, ctxt RuleCtxt) interface{} {
	n := 1
	for _, v := range values {
		if v != nil {
			n += v.(int)
		}
	}
	return n
}

func (p *printer) Terminal(tok jspf.Token, ctxt RuleCtxt) interface{} {
	p.b.WriteString(fmt.Sprintf("%s%s\n", strings.Repeat("  ", ctxt.Level), tok.Kind()))
	return 1
}

func (p *printer) MakeAttrs(grammar.NonTerm) interface{} {
	return nil
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.syntax")
	defer teardown()
	//
	tree, err := parse(t, "$/a/*")
	if err != nil {
		t.Fatal(err)
	}
	p := &printer{}
	count := Walk(tree, p, LtoR)
	expected := "S\n  A\n    T\n      VAL\n    C\n      REGEX\n  Q\n    DEFAULT_ANY\n  E\n"
	if p.b.String() != expected {
		t.Errorf("expected walk\n%s\nhave\n%s", expected, p.b.String())
	}
	if count.(int) != 9 {
		t.Errorf("expected 9 nodes, counted %v", count)
	}
	p = &printer{skipQ: true}
	Walk(tree, p, RtoL)
	expected = "S\n  E\n  Q\n  A\n    C\n      REGEX\n    T\n      VAL\n"
	if p.b.String() != expected {
		t.Errorf("expected right-to-left walk\n%s\nhave\n%s", expected, p.b.String())
	}
}

func TestDigest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.syntax")
	defer teardown()
	//
	t1, _ := parse(t, comprehensive)
	t2, _ := parse(t, comprehensive)
	t3, _ := parse(t, "^..")
	d1, err := t1.Digest()
	if err != nil {
		t.Fatal(err)
	}
	d2, _ := t2.Digest()
	d3, _ := t3.Digest()
	if d1 != d2 {
		t.Errorf("expected equal trees to have equal digests")
	}
	if d1 == d3 {
		t.Errorf("expected different trees to have different digests")
	}
	if !Equal(t1, t2) || Equal(t1, t3) {
		t.Errorf("tree equality is broken")
	}
	t4, _ := parse(t, " ^ . . ")
	if Equal(t3, t4) {
		t.Errorf("expected trees with tokens at different offsets to differ")
	}
}

func TestEmptyNodes(t *testing.T) {
	tree, _ := parse(t, ".")
	var empty int
	for _, ch := range tree.Children {
		if sub, ok := ch.(*Tree); ok && sub.IsEmpty() {
			empty++
			if !sub.Span().IsNull() {
				t.Errorf("expected empty node to have a null span")
			}
		}
	}
	if empty != 2 { // Q and E
		t.Errorf("expected 2 empty children of S, have %d", empty)
	}
}
