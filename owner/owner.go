// Package owner gives lowering passes a read-only view of the lexical
// ancestors of the node they are rewriting.
//
// An Owner bundles a node with the Owner of its immediately enclosing node.
// The chain is built fresh at every traversal step, is never mutated and
// never owns the nodes it points at.
package owner

import (
	"strings"

	"github.com/teranos/declower/ir"
)

// Owner is one entry in an ancestor chain.
type Owner struct {
	node   ir.Node
	parent *Owner
}

// Wrap bundles node with an optional parent entry.
func Wrap(node ir.Node, parent *Owner) *Owner {
	return &Owner{node: node, parent: parent}
}

// Wrap returns the entry for child, enclosed by o.
func (o *Owner) Wrap(child ir.Node) *Owner {
	return Wrap(child, o)
}

// Node returns the wrapped node.
func (o *Owner) Node() ir.Node {
	if o == nil {
		return nil
	}
	return o.node
}

// Parent returns the enclosing entry, or nil at the top of the chain.
func (o *Owner) Parent() *Owner {
	if o == nil {
		return nil
	}
	return o.parent
}

// FindAncestor walks from o itself upward and returns the first node that
// satisfies pred.
func (o *Owner) FindAncestor(pred func(ir.Node) bool) (ir.Node, bool) {
	for e := o; e != nil; e = e.parent {
		if pred(e.node) {
			return e.node, true
		}
	}
	return nil, false
}

// Nearest returns the innermost ancestor (inclusive) of type T.
func Nearest[T ir.Node](o *Owner) (T, bool) {
	var zero T
	found, ok := o.FindAncestor(func(n ir.Node) bool {
		_, is := n.(T)
		return is
	})
	if !ok {
		return zero, false
	}
	return found.(T), true
}

// Module returns the innermost enclosing module.
func (o *Owner) Module() (*ir.Module, bool) {
	return Nearest[*ir.Module](o)
}

// Depth counts the entries from o to the top of the chain.
func (o *Owner) Depth() int {
	depth := 0
	for e := o; e != nil; e = e.parent {
		depth++
	}
	return depth
}

// Path renders the chain from the outermost entry down to o, e.g.
// `module <ROOT> > class Album > method play`.
func (o *Owner) Path() string {
	var parts []string
	for e := o; e != nil; e = e.parent {
		parts = append(parts, ir.Describe(e.node))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " > ")
}
