package syntax

import (
	"github.com/cnf/structhash"
)

// digestNode is the hashed form of a parse tree node. A tree is hashed as the
// list of its nodes in pre-order; Arity restores the shape.
type digestNode struct {
	Symbol string
	Kind   string
	Lexeme string
	Offset int
	Arity  int
}

type digestTree struct {
	Nodes []digestNode
}

func snapshot(t *Tree) digestTree {
	var d digestTree
	stack := []Node{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := n.(type) {
		case Leaf:
			d.Nodes = append(d.Nodes, digestNode{Kind: n.Kind().String(), Lexeme: n.Lexeme(), Offset: n.Offset()})
		case *Tree:
			d.Nodes = append(d.Nodes, digestNode{Symbol: n.Symbol.String(), Offset: -1, Arity: len(n.Children)})
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, n.Children[i])
			}
		}
	}
	return d
}

// Digest returns a structural hash of t. Trees which are Equal have the same
// digest.
func (t *Tree) Digest() (string, error) {
	return structhash.Hash(snapshot(t), 1)
}
