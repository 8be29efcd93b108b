package syntax

import (
	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/grammar"
)

// Listener is a type for walking a parse tree.
//
// EnterRule returns a boolean value indicating if the walk should continue to
// the children of this node. ExitRule receives the values returned for the
// children (nil for children not visited) and may return a user-defined value
// to be propagated upwards of the tree, as may Terminal.
//
// MakeAttrs is called before EnterRule and lets clients attach attributes
// local to a node; they are handed to EnterRule and ExitRule in the context.
type Listener interface {
	EnterRule(*Tree, RuleCtxt) bool
	ExitRule(*Tree, []interface{}, RuleCtxt) interface{}
	Terminal(jspf.Token, RuleCtxt) interface{}
	MakeAttrs(grammar.NonTerm) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span  jspf.Span   // span of input bytes covered by this node
	Level int         // nesting level, 0 for the root
	Index int         // position among the siblings
	Attrs interface{} // client-defined attributes local to node
}

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Walk traverses a tree top-down, applying Listener-methods for all nodes
// encountered. It returns the value ExitRule returned for the root.
//
// Walk keeps its own stack of open nodes, so the depth of a tree is limited
// by memory only.
func Walk(tree *Tree, listener Listener, dir Direction) interface{} {
	if tree == nil {
		return nil
	}
	var result interface{}
	stack := []*walkFrame{enter(tree, listener, 0, 0)}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if n := len(f.tree.Children); f.descend && f.visited < n {
			i := f.visited
			if dir == RtoL {
				i = n - 1 - f.visited
			}
			f.visited++
			switch ch := f.tree.Children[i].(type) {
			case Leaf:
				ctxt := RuleCtxt{Span: ch.Span(), Level: f.ctxt.Level + 1, Index: i}
				f.values[i] = listener.Terminal(ch.Token, ctxt)
			case *Tree:
				stack = append(stack, enter(ch, listener, f.ctxt.Level+1, i))
			}
			continue
		}
		value := listener.ExitRule(f.tree, f.values, f.ctxt)
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			result = value
		} else {
			stack[len(stack)-1].values[f.ctxt.Index] = value
		}
	}
	return result
}

// walkFrame is a tree node the walk has entered but not yet exited.
type walkFrame struct {
	tree    *Tree
	ctxt    RuleCtxt
	values  []interface{} // values of the children
	visited int           // number of children visited
	descend bool          // listener signalled us to traverse children nodes
}

func enter(tree *Tree, listener Listener, level, index int) *walkFrame {
	f := &walkFrame{
		tree: tree,
		ctxt: RuleCtxt{
			Span:  tree.Span(),
			Level: level,
			Index: index,
			Attrs: listener.MakeAttrs(tree.Symbol),
		},
		values: make([]interface{}, len(tree.Children)),
	}
	f.descend = listener.EnterRule(tree, f.ctxt)
	return f
}
