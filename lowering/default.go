package lowering

import (
	"golang.org/x/sync/errgroup"

	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/owner"
)

// Default is the structural fallback: it copies o.Node(), lowering every
// child through the dispatcher and every identifier through the pass's
// identifier rewrite. With no rules registered it is an identity copy.
// Nodes of a kind the traversal does not know are fatal.
func (l *Lowerer) Default(o *owner.Owner) (ir.Node, error) {
	switch n := o.Node().(type) {
	case *ir.Module:
		return l.defaultModule(n, o)
	case *ir.Class:
		return l.defaultClass(n, o)
	case *ir.Interface:
		return l.defaultInterface(n, o)
	case *ir.Object:
		return l.defaultObject(n, o)
	case *ir.Function:
		return l.defaultFunction(n, o)
	case *ir.Variable:
		return l.defaultVariable(n, o)
	case *ir.TypeAlias:
		return l.defaultTypeAlias(n, o)
	case *ir.Enum:
		out := n.Copy()
		out.Name = l.Name(n.Name)
		return out, nil
	case *ir.Method:
		return l.defaultMethod(n, o)
	case *ir.Property:
		return l.defaultProperty(n, o)
	case *ir.Constructor:
		return l.defaultConstructor(n, o)
	case *ir.Parameter:
		return l.defaultParameter(n, o)
	case *ir.TypeParameter:
		return l.defaultTypeParameter(n, o)
	case *ir.Heritage:
		return l.defaultHeritage(n, o)
	case *ir.TypeValue:
		return l.defaultTypeValue(n, o)
	case *ir.FunctionType:
		return l.defaultFunctionType(n, o)
	case *ir.UnionType:
		out := n.Copy()
		params, err := l.LowerTypes(n.Params, o)
		if err != nil {
			return nil, err
		}
		out.Params = params
		return out, nil
	case *ir.ThisType:
		return n.Copy(), nil
	case *ir.GeneratedInterfaceReference:
		out := n.Copy()
		out.Name = l.Name(n.Name)
		tps, err := lowerAll(l, n.TypeParameters, o, l.LowerTypeParameter)
		if err != nil {
			return nil, err
		}
		out.TypeParameters = tps
		return out, nil
	default:
		return nil, l.unsupported(o, "no default traversal")
	}
}

func (l *Lowerer) defaultModule(m *ir.Module, o *owner.Owner) (*ir.Module, error) {
	out := m.Copy()
	out.Name = l.Name(m.Name)
	out.ShortName = l.Name(m.ShortName)
	out.Imports = l.Names(m.Imports)

	decls, err := l.lowerDeclarations(m.Declarations, o)
	if err != nil {
		return nil, err
	}
	out.Declarations = decls

	subs, err := lowerAll(l, m.Submodules, o, l.LowerModule)
	if err != nil {
		return nil, err
	}
	out.Submodules = subs
	return out, nil
}

// lowerDeclarations lowers a module's declarations in order. With more than
// one worker configured, declarations are lowered concurrently and written
// back by index so the result keeps source order.
func (l *Lowerer) lowerDeclarations(decls []ir.Declaration, parent *owner.Owner) ([]ir.Declaration, error) {
	if decls == nil {
		return nil, nil
	}
	out := make([]ir.Declaration, len(decls))

	if l.rules.workers <= 1 || len(decls) < 2 {
		for i, d := range decls {
			lowered, err := l.LowerDeclaration(d, parent)
			if err != nil {
				return nil, err
			}
			out[i] = lowered
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(l.rules.workers)
	for i, d := range decls {
		g.Go(func() error {
			lowered, err := l.LowerDeclaration(d, parent)
			if err != nil {
				return err
			}
			out[i] = lowered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) lowerMembers(members []ir.Member, parent *owner.Owner) ([]ir.Member, error) {
	return lowerAll(l, members, parent, l.LowerMember)
}

func (l *Lowerer) defaultClass(c *ir.Class, o *owner.Owner) (*ir.Class, error) {
	out := c.Copy()
	out.Name = l.Name(c.Name)
	var err error
	if out.TypeParameters, err = lowerAll(l, c.TypeParameters, o, l.LowerTypeParameter); err != nil {
		return nil, err
	}
	if out.Parents, err = lowerAll(l, c.Parents, o, l.LowerHeritage); err != nil {
		return nil, err
	}
	if out.Members, err = l.lowerMembers(c.Members, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultInterface(i *ir.Interface, o *owner.Owner) (*ir.Interface, error) {
	out := i.Copy()
	out.Name = l.Name(i.Name)
	var err error
	if out.TypeParameters, err = lowerAll(l, i.TypeParameters, o, l.LowerTypeParameter); err != nil {
		return nil, err
	}
	if out.Parents, err = lowerAll(l, i.Parents, o, l.LowerHeritage); err != nil {
		return nil, err
	}
	if out.Members, err = l.lowerMembers(i.Members, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultObject(obj *ir.Object, o *owner.Owner) (*ir.Object, error) {
	out := obj.Copy()
	out.Name = l.Name(obj.Name)
	var err error
	if out.Parents, err = lowerAll(l, obj.Parents, o, l.LowerHeritage); err != nil {
		return nil, err
	}
	if out.Members, err = l.lowerMembers(obj.Members, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) classReference(ref *ir.ClassReference) *ir.ClassReference {
	if ref == nil {
		return nil
	}
	out := ref.Copy()
	out.Name = l.Name(ref.Name)
	out.TypeParameters = l.Names(ref.TypeParameters)
	return out
}

func (l *Lowerer) defaultFunction(f *ir.Function, o *owner.Owner) (*ir.Function, error) {
	out := f.Copy()
	out.Name = l.Name(f.Name)
	out.Extend = l.classReference(f.Extend)
	var err error
	if out.TypeParameters, err = lowerAll(l, f.TypeParameters, o, l.LowerTypeParameter); err != nil {
		return nil, err
	}
	if out.Parameters, err = lowerAll(l, f.Parameters, o, l.LowerParameter); err != nil {
		return nil, err
	}
	if out.Type, err = l.LowerType(f.Type, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultVariable(v *ir.Variable, o *owner.Owner) (*ir.Variable, error) {
	out := v.Copy()
	out.Name = l.Name(v.Name)
	out.Extend = l.classReference(v.Extend)
	var err error
	if out.Type, err = l.LowerType(v.Type, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultTypeAlias(a *ir.TypeAlias, o *owner.Owner) (*ir.TypeAlias, error) {
	out := a.Copy()
	out.Name = l.Name(a.Name)
	var err error
	if out.TypeParameters, err = lowerAll(l, a.TypeParameters, o, l.LowerTypeParameter); err != nil {
		return nil, err
	}
	if out.TypeReference, err = l.LowerType(a.TypeReference, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultMethod(m *ir.Method, o *owner.Owner) (*ir.Method, error) {
	out := m.Copy()
	out.Name = l.Identifier(m.Name)
	var err error
	if out.TypeParameters, err = lowerAll(l, m.TypeParameters, o, l.LowerTypeParameter); err != nil {
		return nil, err
	}
	if out.Parameters, err = lowerAll(l, m.Parameters, o, l.LowerParameter); err != nil {
		return nil, err
	}
	if out.Type, err = l.LowerType(m.Type, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultProperty(p *ir.Property, o *owner.Owner) (*ir.Property, error) {
	out := p.Copy()
	out.Name = l.Identifier(p.Name)
	var err error
	if out.TypeParameters, err = lowerAll(l, p.TypeParameters, o, l.LowerTypeParameter); err != nil {
		return nil, err
	}
	if out.Type, err = l.LowerType(p.Type, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultConstructor(c *ir.Constructor, o *owner.Owner) (*ir.Constructor, error) {
	out := c.Copy()
	var err error
	if out.TypeParameters, err = lowerAll(l, c.TypeParameters, o, l.LowerTypeParameter); err != nil {
		return nil, err
	}
	if out.Parameters, err = lowerAll(l, c.Parameters, o, l.LowerParameter); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultParameter(p *ir.Parameter, o *owner.Owner) (*ir.Parameter, error) {
	out := p.Copy()
	out.Name = l.Identifier(p.Name)
	var err error
	if out.Type, err = l.LowerType(p.Type, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultTypeParameter(tp *ir.TypeParameter, o *owner.Owner) (*ir.TypeParameter, error) {
	out := tp.Copy()
	out.Name = l.Name(tp.Name)
	var err error
	if out.Constraints, err = l.LowerTypes(tp.Constraints, o); err != nil {
		return nil, err
	}
	if out.Default, err = l.LowerType(tp.Default, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultHeritage(h *ir.Heritage, o *owner.Owner) (*ir.Heritage, error) {
	out := h.Copy()
	out.Name = l.Name(h.Name)
	var err error
	if out.TypeArguments, err = l.LowerTypes(h.TypeArguments, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultTypeValue(t *ir.TypeValue, o *owner.Owner) (*ir.TypeValue, error) {
	out := t.Copy()
	out.Value = l.Name(t.Value)
	var err error
	if out.Params, err = l.LowerTypes(t.Params, o); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lowerer) defaultFunctionType(t *ir.FunctionType, o *owner.Owner) (*ir.FunctionType, error) {
	out := t.Copy()
	var err error
	if out.Parameters, err = lowerAll(l, t.Parameters, o, l.LowerParameter); err != nil {
		return nil, err
	}
	if out.Type, err = l.LowerType(t.Type, o); err != nil {
		return nil, err
	}
	return out, nil
}
