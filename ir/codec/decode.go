package codec

import (
	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/name"
)

func invalid(path, format string, args ...interface{}) error {
	err := errors.Wrapf(errors.ErrInvalidTree, format, args...)
	return errors.WithDetailf(err, "at %s", path)
}

func decodeNode(doc *node, path string, opts decodeOptions) (ir.Node, error) {
	if doc == nil {
		return nil, invalid(path, "null node")
	}
	kind, ok := ir.ParseKind(doc.Kind)
	if !ok {
		err := errors.Wrapf(errors.ErrUnsupportedNode, "unknown kind %q", doc.Kind)
		return nil, errors.WithDetailf(err, "at %s", path)
	}

	d := decoder{doc: doc, path: path, opts: opts}
	switch kind {
	case ir.KindModule:
		return decodeModule(doc, path, opts)
	case ir.KindClass:
		c := &ir.Class{Abstract: doc.Abstract, Exported: doc.Exported, Meta: d.meta()}
		c.Name = d.requiredName()
		c.UID = d.uid()
		c.TypeParameters = d.typeParameters()
		c.Parents = d.parents()
		c.Members = d.members()
		return c, d.err
	case ir.KindInterface:
		i := &ir.Interface{Generated: doc.Generated, Exported: doc.Exported, Meta: d.meta()}
		i.Name = d.requiredName()
		i.UID = d.uid()
		i.TypeParameters = d.typeParameters()
		i.Parents = d.parents()
		i.Members = d.members()
		return i, d.err
	case ir.KindObject:
		o := &ir.Object{Exported: doc.Exported, Meta: d.meta()}
		o.Name = d.requiredName()
		o.UID = d.uid()
		o.Parents = d.parents()
		o.Members = d.members()
		return o, d.err
	case ir.KindFunction:
		f := &ir.Function{Inline: doc.Inline, Operator: doc.Operator, Exported: doc.Exported, Meta: d.meta()}
		f.Name = d.requiredName()
		f.UID = d.uid()
		f.TypeParameters = d.typeParameters()
		f.Parameters = d.parameters()
		f.Type = d.typ(doc.Type, "type")
		f.Extend = d.receiver()
		return f, d.err
	case ir.KindVariable:
		v := &ir.Variable{Immutable: doc.Immutable, Inline: doc.Inline, Exported: doc.Exported, Meta: d.meta()}
		v.Name = d.requiredName()
		v.Type = d.typ(doc.Type, "type")
		v.Extend = d.receiver()
		return v, d.err
	case ir.KindTypeAlias:
		a := &ir.TypeAlias{Meta: d.meta()}
		a.Name = d.requiredName()
		a.UID = d.uid()
		a.TypeParameters = d.typeParameters()
		a.TypeReference = d.typ(doc.Type, "type")
		return a, d.err
	case ir.KindEnum:
		e := &ir.Enum{}
		e.Name = d.requiredName()
		e.UID = d.uid()
		for _, t := range doc.Values {
			e.Values = append(e.Values, &ir.EnumToken{Value: t.Value, Meta: t.Meta})
		}
		return e, d.err
	case ir.KindMethod:
		m := &ir.Method{Name: doc.Name, Static: doc.Static, Override: doc.Override, Operator: doc.Operator}
		d.requireText("name", doc.Name)
		m.TypeParameters = d.typeParameters()
		m.Parameters = d.parameters()
		m.Type = d.typ(doc.Type, "type")
		return m, d.err
	case ir.KindProperty:
		p := &ir.Property{Name: doc.Name, Static: doc.Static, Override: doc.Override, Getter: doc.Getter, Setter: doc.Setter, Open: doc.Open}
		d.requireText("name", doc.Name)
		p.TypeParameters = d.typeParameters()
		p.Type = d.typ(doc.Type, "type")
		return p, d.err
	case ir.KindConstructor:
		c := &ir.Constructor{}
		c.TypeParameters = d.typeParameters()
		c.Parameters = d.parameters()
		return c, d.err
	case ir.KindParameter:
		p := &ir.Parameter{Name: doc.Name, Optional: doc.Optional, Vararg: doc.Vararg}
		d.requireText("name", doc.Name)
		p.Type = d.typ(doc.Type, "type")
		return p, d.err
	case ir.KindTypeParameter:
		tp := &ir.TypeParameter{}
		tp.Name = d.requiredName()
		tp.Constraints = d.types(doc.Constraints, "constraints")
		tp.Default = d.typ(doc.Default, "default")
		return tp, d.err
	case ir.KindHeritage:
		h := &ir.Heritage{TypeReference: ir.RefTo(ir.UID(doc.Reference))}
		h.Name = d.requiredName()
		h.TypeArguments = d.types(doc.Params, "params")
		return h, d.err
	case ir.KindTypeValue:
		t := &ir.TypeValue{Nullable: doc.Nullable, Meta: d.meta(), TypeReference: ir.RefTo(ir.UID(doc.Reference))}
		t.Value = d.requiredName()
		t.Params = d.types(doc.Params, "params")
		return t, d.err
	case ir.KindFunctionType:
		t := &ir.FunctionType{Nullable: doc.Nullable, Meta: d.meta()}
		t.Parameters = d.parameters()
		t.Type = d.typ(doc.Type, "type")
		return t, d.err
	case ir.KindUnionType:
		t := &ir.UnionType{Nullable: doc.Nullable, Meta: d.meta()}
		t.Params = d.types(doc.Params, "params")
		return t, d.err
	case ir.KindThisType:
		return &ir.ThisType{Nullable: doc.Nullable, Meta: d.meta()}, nil
	case ir.KindGeneratedInterfaceReference:
		t := &ir.GeneratedInterfaceReference{Nullable: doc.Nullable, Meta: d.meta(), Reference: ir.RefTo(ir.UID(doc.Reference))}
		t.Name = d.requiredName()
		t.TypeParameters = d.typeParameters()
		return t, d.err
	}
	err := errors.Wrapf(errors.ErrUnsupportedNode, "cannot decode kind %s", kind)
	return nil, errors.WithDetailf(err, "at %s", path)
}

func decodeModule(doc *node, path string, opts decodeOptions) (*ir.Module, error) {
	if doc == nil {
		return nil, invalid(path, "null module")
	}
	if doc.Kind != ir.KindModule.String() {
		if _, ok := ir.ParseKind(doc.Kind); !ok {
			err := errors.Wrapf(errors.ErrUnsupportedNode, "unknown kind %q", doc.Kind)
			return nil, errors.WithDetailf(err, "at %s", path)
		}
		return nil, invalid(path, "expected module, got %s", doc.Kind)
	}

	d := decoder{doc: doc, path: path, opts: opts}
	m := &ir.Module{UID: ir.UID(doc.UID)}
	m.Name = d.optionalName(doc.Name, "name")
	m.ShortName = d.optionalName(doc.ShortName, "short_name")
	for i, imp := range doc.Imports {
		m.Imports = append(m.Imports, d.parseName(imp, indexPath(fieldPath(path, "imports"), i)))
	}
	for _, a := range doc.Annotations {
		ann := &ir.Annotation{Name: a.Name}
		for _, p := range a.Params {
			ann.Params = append(ann.Params, name.Ident(p))
		}
		m.Annotations = append(m.Annotations, ann)
	}
	for i, child := range doc.Declarations {
		n, err := decodeNode(child, indexPath(fieldPath(path, "declarations"), i), opts)
		if err != nil {
			return nil, err
		}
		decl, ok := n.(ir.Declaration)
		if !ok {
			return nil, invalid(indexPath(fieldPath(path, "declarations"), i), "%s is not a declaration", n.Kind())
		}
		m.Declarations = append(m.Declarations, decl)
	}
	for i, child := range doc.Submodules {
		sub, err := decodeModule(child, indexPath(fieldPath(path, "submodules"), i), opts)
		if err != nil {
			return nil, err
		}
		m.Submodules = append(m.Submodules, sub)
	}
	if d.err != nil {
		return nil, d.err
	}
	return m, nil
}

// decoder accumulates the first error while one node's fields are read.
type decoder struct {
	doc  *node
	path string
	opts decodeOptions
	err  error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) meta() ir.Provenance {
	ts := make([]ir.Tag, len(d.doc.Meta))
	for i, t := range d.doc.Meta {
		ts[i] = ir.Tag(t)
	}
	return ir.NewProvenance(ts...)
}

func (d *decoder) uid() ir.UID {
	if d.doc.UID != "" {
		return ir.UID(d.doc.UID)
	}
	if d.opts.mintUIDs {
		return ir.NewUID()
	}
	d.fail(errors.WithHint(
		invalid(d.path, "%s %q has no uid", d.doc.Kind, d.doc.Name),
		"set uid on every class, interface, object, function, type alias and enum, or decode with GenerateMissingUIDs"))
	return ir.NoUID
}

func (d *decoder) requireText(field, value string) {
	if value == "" {
		d.fail(invalid(d.path, "%s has no %s", d.doc.Kind, field))
	}
}

func (d *decoder) parseName(s, path string) name.Entity {
	entity, err := name.Parse(s)
	if err != nil {
		d.fail(errors.WithDetailf(errors.Mark(err, errors.ErrInvalidTree), "at %s", path))
		return nil
	}
	return entity
}

func (d *decoder) requiredName() name.Entity {
	if d.doc.Name == "" {
		d.fail(invalid(d.path, "%s has no name", d.doc.Kind))
		return nil
	}
	return d.parseName(d.doc.Name, fieldPath(d.path, "name"))
}

func (d *decoder) optionalName(s, field string) name.Entity {
	if s == "" {
		return nil
	}
	return d.parseName(s, fieldPath(d.path, field))
}

func (d *decoder) receiver() *ir.ClassReference {
	r := d.doc.Extend
	if r == nil {
		return nil
	}
	path := fieldPath(d.path, "extend")
	ref := &ir.ClassReference{Name: d.parseName(r.Name, path)}
	for _, tp := range r.TypeParameters {
		ref.TypeParameters = append(ref.TypeParameters, d.parseName(tp, path))
	}
	return ref
}

func (d *decoder) child(doc *node, path string) ir.Node {
	if d.err != nil {
		return nil
	}
	n, err := decodeNode(doc, path, d.opts)
	if err != nil {
		d.fail(err)
		return nil
	}
	return n
}

func (d *decoder) typ(doc *node, field string) ir.Type {
	if doc == nil {
		return nil
	}
	path := fieldPath(d.path, field)
	n := d.child(doc, path)
	if n == nil {
		return nil
	}
	t, ok := n.(ir.Type)
	if !ok {
		d.fail(invalid(path, "%s is not a type", n.Kind()))
		return nil
	}
	return t
}

func (d *decoder) types(docs []*node, field string) []ir.Type {
	if len(docs) == 0 {
		return nil
	}
	out := make([]ir.Type, len(docs))
	for i, doc := range docs {
		path := indexPath(fieldPath(d.path, field), i)
		if doc == nil {
			d.fail(invalid(path, "null type"))
			return nil
		}
		n := d.child(doc, path)
		t, ok := n.(ir.Type)
		if !ok {
			if n != nil {
				d.fail(invalid(path, "%s is not a type", n.Kind()))
			}
			return nil
		}
		out[i] = t
	}
	return out
}

func (d *decoder) members() []ir.Member {
	if len(d.doc.Members) == 0 {
		return nil
	}
	out := make([]ir.Member, len(d.doc.Members))
	for i, doc := range d.doc.Members {
		path := indexPath(fieldPath(d.path, "members"), i)
		n := d.child(doc, path)
		m, ok := n.(ir.Member)
		if !ok {
			if n != nil {
				d.fail(invalid(path, "%s is not a member", n.Kind()))
			}
			return nil
		}
		out[i] = m
	}
	return out
}

func (d *decoder) typeParameters() []*ir.TypeParameter {
	return decodeAs[*ir.TypeParameter](d, d.doc.TypeParameters, "type_parameters")
}

func (d *decoder) parameters() []*ir.Parameter {
	return decodeAs[*ir.Parameter](d, d.doc.Parameters, "parameters")
}

func (d *decoder) parents() []*ir.Heritage {
	return decodeAs[*ir.Heritage](d, d.doc.Parents, "parents")
}

func decodeAs[T ir.Node](d *decoder, docs []*node, field string) []T {
	if len(docs) == 0 {
		return nil
	}
	out := make([]T, len(docs))
	for i, doc := range docs {
		path := indexPath(fieldPath(d.path, field), i)
		n := d.child(doc, path)
		v, ok := n.(T)
		if !ok {
			if n != nil {
				d.fail(invalid(path, "unexpected %s", n.Kind()))
			}
			return nil
		}
		out[i] = v
	}
	return out
}
