package ir

import (
	"slices"

	"github.com/teranos/declower/name"
)

// Method is a function member of a class-like.
type Method struct {
	Name           string
	Parameters     []*Parameter
	Type           Type
	TypeParameters []*TypeParameter
	Static         bool
	Override       bool
	Operator       bool
}

// Property is a field member of a class-like.
type Property struct {
	Name           string
	Type           Type
	TypeParameters []*TypeParameter
	Static         bool
	Override       bool
	Getter         bool
	Setter         bool
	Open           bool
}

// Constructor is a secondary constructor.
type Constructor struct {
	Parameters     []*Parameter
	TypeParameters []*TypeParameter
}

// Parameter is a function, method or function-type parameter.
type Parameter struct {
	Name     string
	Type     Type
	Optional bool
	Vararg   bool
}

// TypeParameter declares a generic parameter with optional bounds and default.
type TypeParameter struct {
	Name        name.Entity
	Constraints []Type
	Default     Type
}

// Heritage is a supertype in a class-like's parent list.
type Heritage struct {
	Name          name.Entity
	TypeArguments []Type
	TypeReference *Reference
}

func (*Method) Kind() Kind        { return KindMethod }
func (*Property) Kind() Kind      { return KindProperty }
func (*Constructor) Kind() Kind   { return KindConstructor }
func (*Parameter) Kind() Kind     { return KindParameter }
func (*TypeParameter) Kind() Kind { return KindTypeParameter }
func (*Heritage) Kind() Kind      { return KindHeritage }

func (*Method) memberNode()      {}
func (*Property) memberNode()    {}
func (*Constructor) memberNode() {}

// Copy returns a shallow copy with its own slices.
func (m *Method) Copy() *Method {
	cp := *m
	cp.Parameters = slices.Clone(m.Parameters)
	cp.TypeParameters = slices.Clone(m.TypeParameters)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (p *Property) Copy() *Property {
	cp := *p
	cp.TypeParameters = slices.Clone(p.TypeParameters)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (c *Constructor) Copy() *Constructor {
	cp := *c
	cp.Parameters = slices.Clone(c.Parameters)
	cp.TypeParameters = slices.Clone(c.TypeParameters)
	return &cp
}

// Copy returns a shallow copy.
func (p *Parameter) Copy() *Parameter {
	cp := *p
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (p *TypeParameter) Copy() *TypeParameter {
	cp := *p
	cp.Constraints = slices.Clone(p.Constraints)
	return &cp
}

// Copy returns a shallow copy with its own slices.
func (h *Heritage) Copy() *Heritage {
	cp := *h
	cp.TypeArguments = slices.Clone(h.TypeArguments)
	return &cp
}
