package lowering

import (
	"go.uber.org/zap"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/logger"
	"github.com/teranos/declower/name"
	"github.com/teranos/declower/owner"
)

// Lowerer carries one pass's rules through a traversal. It holds no state
// between nodes.
type Lowerer struct {
	rules *Rules
	// trace is nil below -vvv.
	trace *zap.SugaredLogger
}

// Pass returns the name of the active pass.
func (l *Lowerer) Pass() string {
	return l.rules.name
}

// Identifier applies the pass's identifier rewrite, if any.
func (l *Lowerer) Identifier(s string) string {
	if l.rules.identifier == nil {
		return s
	}
	return l.rules.identifier(s)
}

// Name applies Identifier to every segment of entity. A nil name stays nil.
func (l *Lowerer) Name(entity name.Entity) name.Entity {
	if entity == nil || l.rules.identifier == nil {
		return entity
	}
	return name.Map(entity, l.rules.identifier)
}

// Names applies Name to each entity.
func (l *Lowerer) Names(entities []name.Entity) []name.Entity {
	if entities == nil {
		return nil
	}
	out := make([]name.Entity, len(entities))
	for i, e := range entities {
		out[i] = l.Name(e)
	}
	return out
}

// Lower dispatches o.Node() to its registered rule, the fallback or
// Default, in that order.
func (l *Lowerer) Lower(o *owner.Owner) (ir.Node, error) {
	node := o.Node()
	if node == nil {
		return nil, l.unsupported(o, "nil node")
	}
	if l.trace != nil {
		l.trace.Debugw("Lowering node",
			logger.FieldNode, ir.Describe(node),
			logger.FieldKind, node.Kind().String(),
			logger.FieldOwner, o.Path())
	}
	if rule, ok := l.rules.rules[node.Kind()]; ok {
		return rule(l, o)
	}
	if l.rules.fallback != nil {
		return l.rules.fallback(l, o)
	}
	return l.Default(o)
}

// LowerRoot is the top-level driver. It lowers root (and everything under
// it) with parent as the enclosing owner, usually nil.
func (l *Lowerer) LowerRoot(root *ir.Module, parent *owner.Owner) (*ir.Module, error) {
	if root == nil {
		return nil, errors.Wrapf(errors.ErrInvalidTree, "pass %s: nil root module", l.Pass())
	}
	return l.LowerModule(root, parent)
}

// LowerModule lowers a module as a child of parent.
func (l *Lowerer) LowerModule(m *ir.Module, parent *owner.Owner) (*ir.Module, error) {
	decl, err := l.LowerDeclaration(m, parent)
	if err != nil {
		return nil, err
	}
	return decl.(*ir.Module), nil
}

// LowerDeclaration lowers decl as a child of parent. The result has the
// same kind as decl.
func (l *Lowerer) LowerDeclaration(decl ir.Declaration, parent *owner.Owner) (ir.Declaration, error) {
	o := parent.Wrap(decl)
	res, err := l.Lower(o)
	if err != nil {
		return nil, err
	}
	out, ok := res.(ir.Declaration)
	if !ok || out.Kind() != decl.Kind() {
		return nil, l.variantMismatch(o, res)
	}
	return out, nil
}

// LowerMember lowers m as a child of parent. The result has the same kind.
func (l *Lowerer) LowerMember(m ir.Member, parent *owner.Owner) (ir.Member, error) {
	o := parent.Wrap(m)
	res, err := l.Lower(o)
	if err != nil {
		return nil, err
	}
	out, ok := res.(ir.Member)
	if !ok || out.Kind() != m.Kind() {
		return nil, l.variantMismatch(o, res)
	}
	return out, nil
}

// LowerType lowers the type in a slot owned by parent. Type rules may
// return any type variant. A nil slot stays nil.
func (l *Lowerer) LowerType(t ir.Type, parent *owner.Owner) (ir.Type, error) {
	if t == nil {
		return nil, nil
	}
	o := parent.Wrap(t)
	res, err := l.Lower(o)
	if err != nil {
		return nil, err
	}
	out, ok := res.(ir.Type)
	if !ok {
		return nil, l.variantMismatch(o, res)
	}
	return out, nil
}

// LowerTypes lowers each type in order.
func (l *Lowerer) LowerTypes(ts []ir.Type, parent *owner.Owner) ([]ir.Type, error) {
	if ts == nil {
		return nil, nil
	}
	out := make([]ir.Type, len(ts))
	for i, t := range ts {
		lowered, err := l.LowerType(t, parent)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

// LowerParameter lowers a parameter owned by parent.
func (l *Lowerer) LowerParameter(p *ir.Parameter, parent *owner.Owner) (*ir.Parameter, error) {
	return lowerAs[*ir.Parameter](l, p, parent)
}

// LowerTypeParameter lowers a type parameter owned by parent.
func (l *Lowerer) LowerTypeParameter(tp *ir.TypeParameter, parent *owner.Owner) (*ir.TypeParameter, error) {
	return lowerAs[*ir.TypeParameter](l, tp, parent)
}

// LowerHeritage lowers a parent-list entry owned by parent.
func (l *Lowerer) LowerHeritage(h *ir.Heritage, parent *owner.Owner) (*ir.Heritage, error) {
	return lowerAs[*ir.Heritage](l, h, parent)
}

func lowerAs[T ir.Node](l *Lowerer, node T, parent *owner.Owner) (T, error) {
	var zero T
	o := parent.Wrap(node)
	res, err := l.Lower(o)
	if err != nil {
		return zero, err
	}
	out, ok := res.(T)
	if !ok {
		return zero, l.variantMismatch(o, res)
	}
	return out, nil
}

func lowerAll[T ir.Node](l *Lowerer, nodes []T, parent *owner.Owner, fn func(T, *owner.Owner) (T, error)) ([]T, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]T, len(nodes))
	for i, n := range nodes {
		lowered, err := fn(n, parent)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

func (l *Lowerer) unsupported(o *owner.Owner, reason string) error {
	err := errors.Wrapf(errors.ErrUnsupportedNode, "pass %s cannot lower %s (%T): %s", l.Pass(), ir.Describe(o.Node()), o.Node(), reason)
	err = errors.WithDetailf(err, "owner path: %s", o.Path())
	return errors.WithHint(err, "register a rule for this node with Rules.On or add it to the default traversal")
}

func (l *Lowerer) variantMismatch(o *owner.Owner, got ir.Node) error {
	err := errors.Wrapf(errors.ErrUnsupportedNode, "pass %s lowered %s into %s", l.Pass(), ir.Describe(o.Node()), ir.Describe(got))
	return errors.WithDetailf(err, "owner path: %s", o.Path())
}
