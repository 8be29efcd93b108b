package lexmach

import (
	"errors"
	"testing"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"",
	".[foo]",
	"(?!./baz/)",
	".*+",
	`<.$/^[h-y]+-\d\d$/>`,
	`  ^.[foo]./bar\d+/(?!./baz/).(.{7, ..., 15}|.{100, 105, 110})(?=./qux/+).*?<.$/^[h-y]+-\d\d$/>`,
	"((?=.(?!.)|(.))<(.)>)(?!(?=(.)))",
	`./a\/b/ .[x\]y] .{\}}`,
	"(?.)",
	". ?? ?+ ? *? *+ * +? ++ +",
	"\t.\n.\r\n",
}

var errorStrings = []string{
	"(",
	"(.(?=.",
	".)",
	"(.))",
	"./ab",
	".[a\\]",
	"{",
	"^.foo",
	"Lorem ipsum",
	". é",
}

func TestLMSameTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	tz, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		expected, err := scanner.Tokenize(input)
		if err != nil {
			t.Fatalf("default tokenizer failed on %q: %v", input, err)
		}
		tokens, err := tz.Tokenize(input)
		if err != nil {
			t.Errorf("lexmachine tokenizer failed on %q: %v", input, err)
			continue
		}
		if len(tokens) != len(expected) {
			t.Errorf("%q: expected %d tokens, have %d", input, len(expected), len(tokens))
			continue
		}
		for i, tok := range tokens {
			t.Logf(" %16s | %15s | @%5d", tok.Kind(), tok.Lexeme(), tok.Offset())
			if tok != expected[i] {
				t.Errorf("%q: token #%d expected %s, have %s", input, i, expected[i], tok)
			}
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSameErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jspf.scanner")
	defer teardown()
	//
	tz, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range errorStrings {
		_, err1 := scanner.Tokenize(input)
		_, err2 := tz.Tokenize(input)
		var e1, e2 *jspf.SyntaxError
		if !errors.As(err1, &e1) || !errors.As(err2, &e2) {
			t.Errorf("%q: expected both tokenizers to fail, have %v and %v", input, err1, err2)
			continue
		}
		if e1.Code != e2.Code || e1.Offset != e2.Offset || e1.Excerpt != e2.Excerpt {
			t.Errorf("%q: errors differ: %v vs %v", input, e1, e2)
		}
	}
}

func TestLMCompiledOnce(t *testing.T) {
	tz1, err := NewTokenizer()
	if err != nil {
		t.Fatal(err)
	}
	tz2, _ := NewTokenizer()
	if tz1.lm != tz2.lm {
		t.Errorf("expected tokenizers to share one DFA")
	}
}
