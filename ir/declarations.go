package ir

import (
	"slices"

	"github.com/teranos/declower/name"
)

// Class is a class declaration. It may also sit in another class-like's
// Members as a nested class.
type Class struct {
	Name           name.Entity
	TypeParameters []*TypeParameter
	Parents        []*Heritage
	Members        []Member
	Abstract       bool
	Exported       bool
	UID            UID
	Meta           Provenance
}

// Interface is an interface declaration. Generated interfaces are
// synthesized by an earlier stage and have no identity of their own in the
// target language.
type Interface struct {
	Name           name.Entity
	TypeParameters []*TypeParameter
	Parents        []*Heritage
	Members        []Member
	Generated      bool
	Exported       bool
	UID            UID
	Meta           Provenance
}

// Object is a singleton declaration.
type Object struct {
	Name     name.Entity
	Parents  []*Heritage
	Members  []Member
	Exported bool
	UID      UID
	Meta     Provenance
}

// ClassReference names the receiver of an extension function or property.
type ClassReference struct {
	Name           name.Entity
	TypeParameters []name.Entity
}

// Function is a top-level or nested function declaration.
type Function struct {
	Name           name.Entity
	Parameters     []*Parameter
	Type           Type
	TypeParameters []*TypeParameter
	Extend         *ClassReference
	Inline         bool
	Operator       bool
	Exported       bool
	UID            UID
	Meta           Provenance
}

// Variable is a top-level val or var.
type Variable struct {
	Name      name.Entity
	Type      Type
	Immutable bool
	Inline    bool
	Extend    *ClassReference
	Exported  bool
	Meta      Provenance
}

// TypeAlias binds a name to a type.
type TypeAlias struct {
	Name           name.Entity
	TypeParameters []*TypeParameter
	TypeReference  Type
	UID            UID
	Meta           Provenance
}

// EnumToken is one enum member. Value is the member identifier and Meta
// carries the source-side literal, if any.
type EnumToken struct {
	Value string
	Meta  string
}

// Enum is an enum declaration.
type Enum struct {
	Name   name.Entity
	Values []*EnumToken
	UID    UID
}

func (*Class) Kind() Kind     { return KindClass }
func (*Interface) Kind() Kind { return KindInterface }
func (*Object) Kind() Kind    { return KindObject }
func (*Function) Kind() Kind  { return KindFunction }
func (*Variable) Kind() Kind  { return KindVariable }
func (*TypeAlias) Kind() Kind { return KindTypeAlias }
func (*Enum) Kind() Kind      { return KindEnum }

func (*Class) declarationNode()     {}
func (*Interface) declarationNode() {}
func (*Object) declarationNode()    {}
func (*Function) declarationNode()  {}
func (*Variable) declarationNode()  {}
func (*TypeAlias) declarationNode() {}
func (*Enum) declarationNode()      {}

// Class-likes and functions may be nested in class-likes.
func (*Class) memberNode()     {}
func (*Interface) memberNode() {}
func (*Object) memberNode()    {}
func (*Function) memberNode()  {}

// Copy returns a shallow copy with its own slices.
func (c *Class) Copy() *Class {
	cp := *c
	cp.TypeParameters = slices.Clone(c.TypeParameters)
	cp.Parents = slices.Clone(c.Parents)
	cp.Members = slices.Clone(c.Members)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (i *Interface) Copy() *Interface {
	cp := *i
	cp.TypeParameters = slices.Clone(i.TypeParameters)
	cp.Parents = slices.Clone(i.Parents)
	cp.Members = slices.Clone(i.Members)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (o *Object) Copy() *Object {
	cp := *o
	cp.Parents = slices.Clone(o.Parents)
	cp.Members = slices.Clone(o.Members)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (f *Function) Copy() *Function {
	cp := *f
	cp.Parameters = slices.Clone(f.Parameters)
	cp.TypeParameters = slices.Clone(f.TypeParameters)
	cp.Extend = f.Extend.Copy()
	return &cp
}

// Copy returns a shallow copy.
func (v *Variable) Copy() *Variable {
	cp := *v
	cp.Extend = v.Extend.Copy()
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (a *TypeAlias) Copy() *TypeAlias {
	cp := *a
	cp.TypeParameters = slices.Clone(a.TypeParameters)
	return &cp
}

// Copy returns a copy with its own tokens.
func (e *Enum) Copy() *Enum {
	cp := *e
	if e.Values == nil {
		return &cp
	}
	cp.Values = make([]*EnumToken, len(e.Values))
	for i, v := range e.Values {
		tok := *v
		cp.Values[i] = &tok
	}
	return &cp
}

// Copy returns a copy, or nil for a nil receiver.
func (r *ClassReference) Copy() *ClassReference {
	if r == nil {
		return nil
	}
	cp := *r
	cp.TypeParameters = slices.Clone(r.TypeParameters)
	return &cp
}
