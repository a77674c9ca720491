package ir

import (
	"slices"

	"github.com/teranos/declower/name"
)

// TypeValue applies a named type to arguments, e.g. Array<String>.
type TypeValue struct {
	Value         name.Entity
	Params        []Type
	TypeReference *Reference
	Nullable      bool
	Meta          Provenance
}

// FunctionType is a function signature used as a type.
type FunctionType struct {
	Parameters []*Parameter
	Type       Type
	Nullable   bool
	Meta       Provenance
}

// UnionType is one of several alternatives.
type UnionType struct {
	Params   []Type
	Nullable bool
	Meta     Provenance
}

// ThisType is the self-type placeholder: the type of the declaration that
// lexically encloses this use. It has no target spelling and must be
// resolved before rendering.
type ThisType struct {
	Nullable bool
	Meta     Provenance
}

// GeneratedInterfaceReference points at an interface an earlier stage
// synthesized, e.g. from an object literal type.
type GeneratedInterfaceReference struct {
	Name           name.Entity
	TypeParameters []*TypeParameter
	Reference      *Reference
	Nullable       bool
	Meta           Provenance
}

func (*TypeValue) Kind() Kind                   { return KindTypeValue }
func (*FunctionType) Kind() Kind                { return KindFunctionType }
func (*UnionType) Kind() Kind                   { return KindUnionType }
func (*ThisType) Kind() Kind                    { return KindThisType }
func (*GeneratedInterfaceReference) Kind() Kind { return KindGeneratedInterfaceReference }

func (*TypeValue) typeNode()                   {}
func (*FunctionType) typeNode()                {}
func (*UnionType) typeNode()                   {}
func (*ThisType) typeNode()                    {}
func (*GeneratedInterfaceReference) typeNode() {}

func (t *TypeValue) IsNullable() bool                   { return t.Nullable }
func (t *FunctionType) IsNullable() bool                { return t.Nullable }
func (t *UnionType) IsNullable() bool                   { return t.Nullable }
func (t *ThisType) IsNullable() bool                    { return t.Nullable }
func (t *GeneratedInterfaceReference) IsNullable() bool { return t.Nullable }

func (t *TypeValue) Provenance() Provenance                   { return t.Meta }
func (t *FunctionType) Provenance() Provenance                { return t.Meta }
func (t *UnionType) Provenance() Provenance                   { return t.Meta }
func (t *ThisType) Provenance() Provenance                    { return t.Meta }
func (t *GeneratedInterfaceReference) Provenance() Provenance { return t.Meta }

// Copy returns a shallow copy with its own slices.
func (t *TypeValue) Copy() *TypeValue {
	cp := *t
	cp.Params = slices.Clone(t.Params)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (t *FunctionType) Copy() *FunctionType {
	cp := *t
	cp.Parameters = slices.Clone(t.Parameters)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (t *UnionType) Copy() *UnionType {
	cp := *t
	cp.Params = slices.Clone(t.Params)
	return &cp
}

// Copy returns a copy.
func (t *ThisType) Copy() *ThisType {
	cp := *t
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (t *GeneratedInterfaceReference) Copy() *GeneratedInterfaceReference {
	cp := *t
	cp.TypeParameters = slices.Clone(t.TypeParameters)
	return &cp
}

// Named builds a TypeValue for value applied to params.
func Named(value name.Entity, params ...Type) *TypeValue {
	return &TypeValue{Value: value, Params: params}
}

// TopType returns the top type named top, or TopTypeName when top is nil,
// tagged with meta.
func TopType(top name.Entity, nullable bool, meta Provenance) *TypeValue {
	if top == nil {
		top = name.Ident(TopTypeName)
	}
	return &TypeValue{Value: top, Nullable: nullable, Meta: meta}
}
