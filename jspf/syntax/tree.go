package syntax

import (
	"bytes"
	"strconv"

	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/grammar"
)

// Node is a node of a parse tree: either a *Tree or a Leaf.
type Node interface {
	Span() jspf.Span
	String() string
	isNode()
}

// Tree is an inner node of a parse tree, tagged with the non-terminal it
// derives. Trees are not modified after the parser returns them.
//
// A parse tree is as deep as its longest chain of atoms. Operations on trees
// therefore keep their own stacks instead of recursing.
type Tree struct {
	Symbol   grammar.NonTerm
	Children []Node
	span     jspf.Span // maintained by add
}

// Leaf is a parse tree node holding a token.
type Leaf struct {
	jspf.Token
}

var _ Node = (*Tree)(nil)
var _ Node = Leaf{}

func (*Tree) isNode() {}
func (Leaf) isNode()  {}

func newTree(nt grammar.NonTerm) *Tree {
	return &Tree{Symbol: nt}
}

func (t *Tree) add(child Node) {
	t.Children = append(t.Children, child)
	t.span = t.span.Extend(child.Span())
}

// IsEmpty is true for a node derived by an ε-production.
func (t *Tree) IsEmpty() bool {
	return len(t.Children) == 0
}

// Tokens returns the tokens covered by t, in order.
func (t *Tree) Tokens() []jspf.Token {
	var tokens []jspf.Token
	stack := []Node{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := n.(type) {
		case Leaf:
			tokens = append(tokens, n.Token)
		case *Tree:
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, n.Children[i])
			}
		}
	}
	return tokens
}

// Span returns the range of program bytes covered by t. Trees without tokens
// have a null span.
func (t *Tree) Span() jspf.Span {
	return t.span
}

// String returns t as an S-expression, e.g.
//
//     S(A(T(ROOT) C()) Q() E())
//
// Tokens of delimited literals are shown together with their lexeme.
func (t *Tree) String() string {
	var b bytes.Buffer
	// an item is either a node to print or literal text
	type item struct {
		node Node
		text string
	}
	stack := []item{{node: t}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := it.node.(type) {
		case nil:
			b.WriteString(it.text)
		case Leaf:
			b.WriteString(n.String())
		case *Tree:
			b.WriteString(n.Symbol.String())
			b.WriteByte('(')
			stack = append(stack, item{text: ")"})
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, item{node: n.Children[i]})
				if i > 0 {
					stack = append(stack, item{text: " "})
				}
			}
		}
	}
	return b.String()
}

func (l Leaf) String() string {
	switch l.Kind() {
	case jspf.Regex, jspf.StrMatch, jspf.SetMatch:
		return l.Kind().String() + " " + strconv.Quote(l.Lexeme())
	}
	return l.Kind().String()
}

// Equal reports whether two parse trees have the same shape and the same
// tokens.
func Equal(a, b Node) bool {
	type pair struct{ a, b Node }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !equalNode(p.a, p.b) {
			return false
		}
		if ta, ok := p.a.(*Tree); ok && ta != nil {
			tb := p.b.(*Tree)
			for i := range ta.Children {
				stack = append(stack, pair{ta.Children[i], tb.Children[i]})
			}
		}
	}
	return true
}

// equalNode compares two nodes without looking at their children, except
// for their number.
func equalNode(a, b Node) bool {
	switch a := a.(type) {
	case Leaf:
		bl, ok := b.(Leaf)
		return ok && a.Token == bl.Token
	case *Tree:
		bt, ok := b.(*Tree)
		if !ok || a == nil || bt == nil {
			return ok && a == bt
		}
		return a.Symbol == bt.Symbol && len(a.Children) == len(bt.Children)
	}
	return false
}
