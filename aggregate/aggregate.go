// Package aggregate flattens nested module trees into a flat list of
// modules, the shape code generators consume.
package aggregate

import (
	"github.com/teranos/declower/ir"
)

// Flatten returns root and its descendant modules in pre-order. Each
// result has its submodules removed. Modules with no declarations are
// dropped. Declaration order within a module is preserved and root is not
// modified.
func Flatten(root *ir.Module) []*ir.Module {
	var out []*ir.Module
	var visit func(m *ir.Module)
	visit = func(m *ir.Module) {
		if m == nil {
			return
		}
		if len(m.Declarations) > 0 {
			flat := m.Copy()
			flat.Submodules = nil
			out = append(out, flat)
		}
		for _, sub := range m.Submodules {
			visit(sub)
		}
	}
	visit(root)
	return out
}

// FlattenSourceSet flattens every source root in order.
func FlattenSourceSet(set *ir.SourceSet) []*ir.Module {
	if set == nil {
		return nil
	}
	var out []*ir.Module
	for _, src := range set.Sources {
		out = append(out, Flatten(src.Root)...)
	}
	return out
}

// CountDeclarations sums the declarations held directly by each module and,
// recursively, by its submodules.
func CountDeclarations(modules ...*ir.Module) int {
	n := 0
	for _, m := range modules {
		if m == nil {
			continue
		}
		n += len(m.Declarations)
		n += CountDeclarations(m.Submodules...)
	}
	return n
}
