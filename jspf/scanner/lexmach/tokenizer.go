package lexmach

import (
	"fmt"
	"sync"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// closeParen is the token type the DFA reports for ")". Its token kind is
// decided by the lexical context stack.
const closeParen = -1

// The operator lexemes
var literals = []string{
	".", "$", "^", "|", "<", ">",
	"(", "(?=", "(?!", ")",
	"?", "??", "?+",
	"*", "*?", "*+",
	"+", "+?", "++",
}

// tokenIds maps operator lexemes to token kinds.
var tokenIds = map[string]int{
	".":   int(jspf.Nav),
	"$":   int(jspf.Val),
	"^":   int(jspf.Root),
	"|":   int(jspf.Union),
	"<":   int(jspf.SelectBegin),
	">":   int(jspf.SelectEnd),
	"(":   int(jspf.CapBegin),
	"(?=": int(jspf.NoncapPosBegin),
	"(?!": int(jspf.NoncapNegBegin),
	")":   closeParen,
	"?":   int(jspf.DefaultOptional),
	"??":  int(jspf.LazyOptional),
	"?+":  int(jspf.GreedyOptional),
	"*":   int(jspf.DefaultAny),
	"*?":  int(jspf.LazyAny),
	"*+":  int(jspf.GreedyAny),
	"+":   int(jspf.DefaultExist),
	"+?":  int(jspf.LazyExist),
	"++":  int(jspf.GreedyExist),
}

func initLexer(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`/([^\\/]|\\([^\\]|\\))*/`), MakeToken("REGEX", int(jspf.Regex)))
	lexer.Add([]byte(`\[([^\\\]]|\\([^\\]|\\))*\]`), MakeToken("STR_MATCH", int(jspf.StrMatch)))
	lexer.Add([]byte(`\{([^\\\}]|\\([^\\]|\\))*\}`), MakeToken("SET_MATCH", int(jspf.SetMatch)))
	lexer.Add([]byte("[ \t\n\r\f\v]+"), Skip)
}

var adapter *LMAdapter
var adapterErr error

var compileOnce sync.Once // monitors one-time compilation of the DFA

func lexerAdapter() (*LMAdapter, error) {
	compileOnce.Do(func() {
		tracer().Infof("Compiling JSPF DFA")
		adapter, adapterErr = NewLMAdapter(initLexer, literals, tokenIds)
	})
	return adapter, adapterErr
}

// Tokenizer is a JSPF tokenizer driven by a lexmachine DFA. It implements
// scanner.Tokenizer.
type Tokenizer struct {
	lm *LMAdapter
}

var _ scanner.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer returns a tokenizer sharing the process-wide DFA. It fails only
// if the DFA cannot be compiled.
func NewTokenizer() (*Tokenizer, error) {
	lm, err := lexerAdapter()
	if err != nil {
		return nil, fmt.Errorf("lexmachine tokenizer: %w", err)
	}
	return &Tokenizer{lm: lm}, nil
}

// Tokenize is part of interface scanner.Tokenizer.
func (t *Tokenizer) Tokenize(src string) ([]jspf.Token, error) {
	s, err := t.lm.Scanner(src)
	if err != nil {
		return nil, err
	}
	cs := scanner.NewContextStack()
	var tokens []jspf.Token
	tok, err, eos := s.Next()
	for ; !eos; tok, err, eos = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				serr := jspf.LexicalError(scanner.InvalidCode(src, ui.StartTC), src, ui.StartTC)
				tracer().Errorf("lexmachine tokenizer: %v", serr)
				return nil, serr
			}
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		kind := jspf.TokKind(token.Type)
		if token.Type == closeParen {
			if kind = scanner.ClosingKind(cs.Top()); kind == jspf.Invalid {
				serr := jspf.LexicalError(jspf.ErrUnmatchedClose, src, token.TC)
				tracer().Errorf("lexmachine tokenizer: %v", serr)
				return nil, serr
			}
		}
		cs.Track(kind, token.TC)
		jt := jspf.MakeToken(kind, string(token.Lexeme), token.TC)
		tracer().Debugf("token %s, contexts %s", jt, cs)
		tokens = append(tokens, jt)
	}
	if serr := cs.Unclosed(src); serr != nil {
		tracer().Errorf("lexmachine tokenizer: %v", serr)
		return nil, serr
	}
	return tokens, nil
}
