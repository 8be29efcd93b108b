package scanner

import (
	"fmt"
	"strings"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// LexContext tells which kind of parenthesized group is open.
type LexContext int8

// Lexical contexts. None is the bottom of every context stack.
const (
	None LexContext = iota
	CaptureOpen
	LookaheadPositiveOpen
	LookaheadNegativeOpen
)

func (c LexContext) String() string {
	switch c {
	case None:
		return "None"
	case CaptureOpen:
		return "CaptureOpen"
	case LookaheadPositiveOpen:
		return "LookaheadPositiveOpen"
	case LookaheadNegativeOpen:
		return "LookaheadNegativeOpen"
	}
	return fmt.Sprintf("LexContext(%d)", int(c))
}

type openGroup struct {
	ctx    LexContext
	offset int // byte position of the opening token, -1 for the sentinel
}

// ContextStack is a stack of lexical contexts. It starts with the sentinel
// None, which is never popped.
//
// A ContextStack is not safe for concurrent use. Every tokenizer run owns its
// own stack.
type ContextStack struct {
	stack *arraystack.Stack
}

// NewContextStack creates a stack holding just the sentinel.
func NewContextStack() *ContextStack {
	cs := &ContextStack{stack: arraystack.New()}
	cs.stack.Push(openGroup{ctx: None, offset: -1})
	return cs
}

// Top returns the innermost context.
func (cs *ContextStack) Top() LexContext {
	return cs.top().ctx
}

// TopOffset returns the byte position of the innermost open group, or -1 if no
// group is open.
func (cs *ContextStack) TopOffset() int {
	return cs.top().offset
}

func (cs *ContextStack) top() openGroup {
	g, ok := cs.stack.Peek()
	if !ok {
		panic("lexical context stack lost its sentinel")
	}
	return g.(openGroup)
}

// Depth is the number of open groups, not counting the sentinel.
func (cs *ContextStack) Depth() int {
	return cs.stack.Size() - 1
}

// Push opens a group of kind ctx at byte position offset.
func (cs *ContextStack) Push(ctx LexContext, offset int) {
	if ctx == None {
		panic("cannot push sentinel context None")
	}
	cs.stack.Push(openGroup{ctx: ctx, offset: offset})
}

// Pop closes the innermost group and returns its context. Pop refuses to
// remove the sentinel and returns false instead.
func (cs *ContextStack) Pop() (LexContext, bool) {
	if cs.Depth() == 0 {
		return None, false
	}
	g, _ := cs.stack.Pop()
	return g.(openGroup).ctx, true
}

// Contexts returns a snapshot of the stack, bottom first. The first element is
// always None.
func (cs *ContextStack) Contexts() []LexContext {
	values := cs.stack.Values() // top first
	ctxs := make([]LexContext, len(values))
	for i, v := range values {
		ctxs[len(values)-1-i] = v.(openGroup).ctx
	}
	return ctxs
}

func (cs *ContextStack) String() string {
	ctxs := cs.Contexts()
	s := make([]string, len(ctxs))
	for i, c := range ctxs {
		s[i] = c.String()
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// OpenedBy returns the context a group-opening token kind pushes, or None for
// all other token kinds.
func OpenedBy(kind jspf.TokKind) LexContext {
	switch kind {
	case jspf.CapBegin:
		return CaptureOpen
	case jspf.NoncapPosBegin:
		return LookaheadPositiveOpen
	case jspf.NoncapNegBegin:
		return LookaheadNegativeOpen
	}
	return None
}

// ClosingKind returns the token kind a closing parenthesis has in context ctx.
// Outside of any group this is INVALID.
func ClosingKind(ctx LexContext) jspf.TokKind {
	switch ctx {
	case CaptureOpen:
		return jspf.CapEnd
	case LookaheadPositiveOpen:
		return jspf.NoncapPosEnd
	case LookaheadNegativeOpen:
		return jspf.NoncapNegEnd
	}
	return jspf.Invalid
}

// Track updates the stack for a token just emitted: opening tokens push their
// context, closing tokens pop one.
func (cs *ContextStack) Track(kind jspf.TokKind, offset int) {
	switch kind {
	case jspf.CapBegin, jspf.NoncapPosBegin, jspf.NoncapNegBegin:
		cs.Push(OpenedBy(kind), offset)
	case jspf.CapEnd, jspf.NoncapPosEnd, jspf.NoncapNegEnd:
		if _, ok := cs.Pop(); !ok {
			panic("closing token emitted outside of any group")
		}
	}
}

// Unclosed returns an error for the innermost group still open, or nil if
// every group has been closed.
func (cs *ContextStack) Unclosed(src string) *jspf.SyntaxError {
	if cs.Depth() == 0 {
		return nil
	}
	return jspf.LexicalError(jspf.ErrUnclosedGroup, src, cs.TopOffset())
}
