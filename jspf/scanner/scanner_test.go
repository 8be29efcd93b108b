package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const comprehensive = `  ^.[foo]./bar\d+/(?!./baz/).(.{7, ..., 15}|.{100, 105, 110})` +
	`(?=./qux/+).*?<.$/^[h-y]+-\d\d$/>`

func TestAdvanceComprehensive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	steps := []struct {
		top    LexContext
		kind   jspf.TokKind
		lexeme string
	}{
		{None, jspf.Whitespace, "  "},
		{None, jspf.Root, "^"},
		{None, jspf.Nav, "."},
		{None, jspf.StrMatch, "[foo]"},
		{None, jspf.Nav, "."},
		{None, jspf.Regex, `/bar\d+/`},
		{None, jspf.NoncapNegBegin, "(?!"},
		{LookaheadNegativeOpen, jspf.Nav, "."},
		{LookaheadNegativeOpen, jspf.Regex, "/baz/"},
		{LookaheadNegativeOpen, jspf.NoncapNegEnd, ")"},
		{None, jspf.Nav, "."},
		{None, jspf.CapBegin, "("},
		{CaptureOpen, jspf.Nav, "."},
		{CaptureOpen, jspf.SetMatch, "{7, ..., 15}"},
		{CaptureOpen, jspf.Union, "|"},
		{CaptureOpen, jspf.Nav, "."},
		{CaptureOpen, jspf.SetMatch, "{100, 105, 110}"},
		{CaptureOpen, jspf.CapEnd, ")"},
		{None, jspf.NoncapPosBegin, "(?="},
		{LookaheadPositiveOpen, jspf.Nav, "."},
		{LookaheadPositiveOpen, jspf.Regex, "/qux/"},
		{LookaheadPositiveOpen, jspf.DefaultExist, "+"},
		{LookaheadPositiveOpen, jspf.NoncapPosEnd, ")"},
		{None, jspf.Nav, "."},
		{None, jspf.LazyAny, "*?"},
		{None, jspf.SelectBegin, "<"},
		{None, jspf.Nav, "."},
		{None, jspf.Val, "$"},
		{None, jspf.Regex, `/^[h-y]+-\d\d$/`},
		{None, jspf.SelectEnd, ">"},
	}
	offset := 0
	for i, step := range steps {
		kind, lexeme, next := Advance(comprehensive, offset, step.top)
		if kind != step.kind || lexeme != step.lexeme {
			t.Fatalf("step %d: expected %s %q, have %s %q", i, step.kind, step.lexeme, kind, lexeme)
		}
		if next != offset+len(lexeme) {
			t.Fatalf("step %d: expected next offset %d, have %d", i, offset+len(lexeme), next)
		}
		offset = next
	}
	if offset != len(comprehensive) {
		t.Errorf("expected whole program to be consumed, stopped at %d", offset)
	}
}

func TestAdvanceRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	cases := []struct {
		src    string
		offset int
		top    LexContext
		kind   jspf.TokKind
		lexeme string
	}{
		{"(?=", 0, None, jspf.NoncapPosBegin, "(?="},
		{"(?!", 0, None, jspf.NoncapNegBegin, "(?!"},
		{"(?", 0, None, jspf.CapBegin, "("},
		{"(?x", 0, None, jspf.CapBegin, "("},
		{"(", 0, None, jspf.CapBegin, "("},
		{")", 0, CaptureOpen, jspf.CapEnd, ")"},
		{")", 0, LookaheadPositiveOpen, jspf.NoncapPosEnd, ")"},
		{")", 0, LookaheadNegativeOpen, jspf.NoncapNegEnd, ")"},
		{")", 0, None, jspf.Invalid, ""},
		{"?", 0, None, jspf.DefaultOptional, "?"},
		{"??", 0, None, jspf.LazyOptional, "??"},
		{"?+", 0, None, jspf.GreedyOptional, "?+"},
		{"?*", 0, None, jspf.DefaultOptional, "?"},
		{"*", 0, None, jspf.DefaultAny, "*"},
		{"*?", 0, None, jspf.LazyAny, "*?"},
		{"*+", 0, None, jspf.GreedyAny, "*+"},
		{".*+", 1, None, jspf.GreedyAny, "*+"},
		{"+", 0, None, jspf.DefaultExist, "+"},
		{"+?", 0, None, jspf.LazyExist, "+?"},
		{"++", 0, None, jspf.GreedyExist, "++"},
		{"<>", 0, CaptureOpen, jspf.SelectBegin, "<"},
		{"<>", 1, CaptureOpen, jspf.SelectEnd, ">"},
		{`/a\/b/c`, 0, None, jspf.Regex, `/a\/b/`},
		{`[a\]b]`, 0, None, jspf.StrMatch, `[a\]b]`},
		{`[a\\]b]`, 0, None, jspf.StrMatch, `[a\\]`},
		{`{1, 2}`, 0, None, jspf.SetMatch, `{1, 2}`},
		{`[a\]`, 0, None, jspf.Invalid, ""},
		{`/abc`, 0, None, jspf.Invalid, ""},
		{" \t\r\n\v\f.", 0, None, jspf.Whitespace, " \t\r\n\v\f"},
		{"a", 0, None, jspf.Invalid, ""},
		{"", 0, None, jspf.Invalid, ""},
	}
	for _, c := range cases {
		kind, lexeme, next := Advance(c.src, c.offset, c.top)
		if kind != c.kind || lexeme != c.lexeme {
			t.Errorf("%q@%d in %s: expected %s %q, have %s %q", c.src, c.offset, c.top,
				c.kind, c.lexeme, kind, lexeme)
			continue
		}
		if next != c.offset+len(lexeme) {
			t.Errorf("%q@%d: expected next offset %d, have %d", c.src, c.offset, c.offset+len(lexeme), next)
		}
	}
}

func TestProse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	prose := "Lorem ipsum dolor sit amet, consectetur adipiscing eli"
	if kind, _, next := Advance(prose, 0, None); kind != jspf.Invalid || next != 0 {
		t.Errorf("expected prose to be invalid at offset 0, have %s, next=%d", kind, next)
	}
	_, err := Tokenize(prose)
	serr := asSyntaxError(t, err)
	if serr == nil {
		return
	}
	if serr.Code != jspf.ErrUnrecognizedChar || serr.Offset != 0 || serr.Excerpt != "Lorem" {
		t.Errorf("unexpected error %+v", serr)
	}
	if serr.Origin != jspf.Lexical {
		t.Errorf("expected a lexical error, have %s", serr.Origin)
	}
}

func TestTokenizeExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	cases := []struct {
		src   string
		kinds []jspf.TokKind
		lex   []string
	}{
		{".[foo]", []jspf.TokKind{jspf.Nav, jspf.StrMatch}, []string{".", "[foo]"}},
		{"(?!./baz/)", []jspf.TokKind{jspf.NoncapNegBegin, jspf.Nav, jspf.Regex, jspf.NoncapNegEnd},
			[]string{"(?!", ".", "/baz/", ")"}},
		{".*+", []jspf.TokKind{jspf.Nav, jspf.GreedyAny}, []string{".", "*+"}},
		{`<.$/^[h-y]+-\d\d$/>`,
			[]jspf.TokKind{jspf.SelectBegin, jspf.Nav, jspf.Val, jspf.Regex, jspf.SelectEnd},
			[]string{"<", ".", "$", `/^[h-y]+-\d\d$/`, ">"}},
		{" ^ . . ", []jspf.TokKind{jspf.Root, jspf.Nav, jspf.Nav}, []string{"^", ".", "."}},
		{"", nil, nil},
	}
	for _, c := range cases {
		tokens, err := Tokenize(c.src)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", c.src, err)
			continue
		}
		if len(tokens) != len(c.kinds) {
			t.Errorf("%q: expected %d tokens, have %d: %v", c.src, len(c.kinds), len(tokens), tokens)
			continue
		}
		for i, tok := range tokens {
			if tok.Kind() != c.kinds[i] || tok.Lexeme() != c.lex[i] {
				t.Errorf("%q: token #%d expected %s %q, have %s", c.src, i, c.kinds[i], c.lex[i], tok)
			}
		}
	}
}

func TestContextTransitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	var snapshots [][]LexContext
	tz := NewTokenizer(Observer(func(tok jspf.Token, ctxs []LexContext) {
		snapshots = append(snapshots, ctxs)
	}))
	if _, err := tz.Tokenize("(?!./baz/)"); err != nil {
		t.Fatal(err)
	}
	if len(snapshots) != 4 {
		t.Fatalf("expected 4 observed tokens, have %d", len(snapshots))
	}
	if !sameContexts(snapshots[0], []LexContext{None, LookaheadNegativeOpen}) {
		t.Errorf("after open expected [None LookaheadNegativeOpen], have %v", snapshots[0])
	}
	if !sameContexts(snapshots[3], []LexContext{None}) {
		t.Errorf("after close expected [None], have %v", snapshots[3])
	}
}

func TestContextBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	src := "((?=.(?!.)|(.))<(.)>)(?!(?=(.)))"
	var opens []jspf.TokKind
	closes := 0
	tz := NewTokenizer(Observer(func(tok jspf.Token, ctxs []LexContext) {
		if c := OpenedBy(tok.Kind()); c != None {
			opens = append(opens, tok.Kind())
			if ctxs[len(ctxs)-1] != c {
				t.Errorf("%s did not push %s", tok, c)
			}
			return
		}
		if k := tok.Kind(); k == jspf.CapEnd || k == jspf.NoncapPosEnd || k == jspf.NoncapNegEnd {
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			if ClosingKind(OpenedBy(open)) != k {
				t.Errorf("%s closes a group opened by %s", tok, open)
			}
			closes++
		}
	}))
	if _, err := tz.Tokenize(src); err != nil {
		t.Fatal(err)
	}
	if len(opens) != 0 || closes != 8 {
		t.Errorf("expected 8 balanced groups, have %d closes and %d left open", closes, len(opens))
	}
}

func TestLexemesRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	tokens, err := Tokenize(comprehensive)
	if err != nil {
		t.Fatal(err)
	}
	pos := 0
	for _, tok := range tokens {
		if tok.Offset() < pos {
			t.Fatalf("offsets not increasing at %s", tok)
		}
		if gap := comprehensive[pos:tok.Offset()]; strings.TrimSpace(gap) != "" {
			t.Fatalf("non-whitespace %q skipped before %s", gap, tok)
		}
		if comprehensive[tok.Offset():tok.Offset()+len(tok.Lexeme())] != tok.Lexeme() {
			t.Fatalf("lexeme of %s does not match the program text", tok)
		}
		pos = tok.Offset() + len(tok.Lexeme())
	}
	if pos != len(comprehensive) {
		t.Errorf("tokens end at %d, program at %d", pos, len(comprehensive))
	}
	again, _ := Tokenize(comprehensive)
	for i := range tokens {
		if tokens[i] != again[i] {
			t.Errorf("tokenizing twice differs at #%d: %s vs %s", i, tokens[i], again[i])
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	cases := []struct {
		src    string
		code   int
		offset int
	}{
		{"(", jspf.ErrUnclosedGroup, 0},
		{"(.(?=.", jspf.ErrUnclosedGroup, 2},
		{"(.(?=.)", jspf.ErrUnclosedGroup, 0},
		{".)", jspf.ErrUnmatchedClose, 1},
		{"(.))", jspf.ErrUnmatchedClose, 3},
		{"./ab", jspf.ErrUnterminatedLiteral, 1},
		{".[a\\]", jspf.ErrUnterminatedLiteral, 1},
		{"{", jspf.ErrUnterminatedLiteral, 0},
		{"^.foo", jspf.ErrUnrecognizedChar, 2},
		{". é", jspf.ErrUnrecognizedChar, 2},
	}
	for _, c := range cases {
		tokens, err := Tokenize(c.src)
		if tokens != nil {
			t.Errorf("%q: expected no partial output", c.src)
		}
		serr := asSyntaxError(t, err)
		if serr == nil {
			continue
		}
		if serr.Code != c.code || serr.Offset != c.offset {
			t.Errorf("%q: expected code %d at %d, have %d at %d (%v)", c.src, c.code, c.offset,
				serr.Code, serr.Offset, serr)
		}
	}
}

func TestContextStack(t *testing.T) {
	cs := NewContextStack()
	if cs.Top() != None || cs.Depth() != 0 || cs.TopOffset() != -1 {
		t.Fatalf("unexpected fresh stack %s", cs)
	}
	if _, ok := cs.Pop(); ok {
		t.Errorf("expected sentinel not to be popped")
	}
	cs.Push(CaptureOpen, 3)
	cs.Push(LookaheadNegativeOpen, 7)
	if cs.String() != "[None, CaptureOpen, LookaheadNegativeOpen]" {
		t.Errorf("unexpected stack %s", cs)
	}
	if c, ok := cs.Pop(); !ok || c != LookaheadNegativeOpen {
		t.Errorf("expected to pop LookaheadNegativeOpen, have %s", c)
	}
	if cs.TopOffset() != 3 {
		t.Errorf("expected open offset 3, have %d", cs.TopOffset())
	}
}

func asSyntaxError(t *testing.T, err error) *jspf.SyntaxError {
	t.Helper()
	var serr *jspf.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("expected a syntax error, have %v", err)
		return nil
	}
	return serr
}

func sameContexts(a, b []LexContext) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
