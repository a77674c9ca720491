// Package ir is the declaration tree handed between lowering passes.
//
// Nodes are plain structs behind three closed interfaces: Declaration for
// anything that may sit in a module, Member for class-like bodies and Type
// for type slots. Every node reports its Kind so dispatchers can switch on
// a single enumeration.
//
// Nodes reachable from a tree a pass has returned are never mutated. A pass
// that wants a change builds a new node, usually starting from Copy().
package ir

import (
	"fmt"

	"github.com/teranos/declower/name"
)

// TopTypeName is the target language's top type, used when a self-type has
// no concrete spelling.
const TopTypeName = "Any"

// Node is implemented by every IR node.
type Node interface {
	Kind() Kind
}

// Declaration is a node that may appear in Module.Declarations.
type Declaration interface {
	Node
	declarationNode()
}

// Member is a node that may appear in a class-like body.
type Member interface {
	Node
	memberNode()
}

// Type is a node that may fill a type slot.
type Type interface {
	Node
	typeNode()
	IsNullable() bool
	Provenance() Provenance
}

// NameOf returns the name a node declares, if it has one.
func NameOf(n Node) (name.Entity, bool) {
	switch v := n.(type) {
	case *Module:
		return v.Name, v.Name != nil
	case *Class:
		return v.Name, true
	case *Interface:
		return v.Name, true
	case *Object:
		return v.Name, true
	case *Function:
		return v.Name, true
	case *Variable:
		return v.Name, true
	case *TypeAlias:
		return v.Name, true
	case *Enum:
		return v.Name, true
	case *Method:
		return name.Ident(v.Name), true
	case *Property:
		return name.Ident(v.Name), true
	case *Parameter:
		return name.Ident(v.Name), true
	case *TypeParameter:
		return v.Name, true
	case *Heritage:
		return v.Name, true
	case *TypeValue:
		return v.Value, true
	case *GeneratedInterfaceReference:
		return v.Name, true
	default:
		return nil, false
	}
}

// UIDOf returns the identity of class-likes, functions, aliases, enums and modules.
func UIDOf(n Node) (UID, bool) {
	switch v := n.(type) {
	case *Module:
		return v.UID, v.UID.IsValid()
	case *Class:
		return v.UID, v.UID.IsValid()
	case *Interface:
		return v.UID, v.UID.IsValid()
	case *Object:
		return v.UID, v.UID.IsValid()
	case *Function:
		return v.UID, v.UID.IsValid()
	case *TypeAlias:
		return v.UID, v.UID.IsValid()
	case *Enum:
		return v.UID, v.UID.IsValid()
	default:
		return NoUID, false
	}
}

// Describe renders a node for diagnostics, e.g. `class Album [uid 1f0c…]`.
func Describe(n Node) string {
	if n == nil {
		return "<nil>"
	}
	s := n.Kind().String()
	if nm, ok := NameOf(n); ok && nm != nil {
		s = fmt.Sprintf("%s %s", s, nm)
	}
	if uid, ok := UIDOf(n); ok {
		s = fmt.Sprintf("%s [uid %s]", s, uid)
	}
	return s
}
