package ir

import "fmt"

// Kind tags every node variant. Dispatchers switch on it and tests use the
// Kinds lists below to prove every variant has a case.
type Kind int

const (
	KindInvalid Kind = iota

	// Declarations
	KindModule
	KindClass
	KindInterface
	KindObject
	KindFunction
	KindVariable
	KindTypeAlias
	KindEnum

	// Members
	KindMethod
	KindProperty
	KindConstructor

	// Types
	KindTypeValue
	KindFunctionType
	KindUnionType
	KindThisType
	KindGeneratedInterfaceReference

	// Auxiliary nodes
	KindParameter
	KindTypeParameter
	KindHeritage
)

var kindNames = map[Kind]string{
	KindInvalid:                     "invalid",
	KindModule:                      "module",
	KindClass:                       "class",
	KindInterface:                   "interface",
	KindObject:                      "object",
	KindFunction:                    "function",
	KindVariable:                    "variable",
	KindTypeAlias:                   "type_alias",
	KindEnum:                        "enum",
	KindMethod:                      "method",
	KindProperty:                    "property",
	KindConstructor:                 "constructor",
	KindTypeValue:                   "type_value",
	KindFunctionType:                "function_type",
	KindUnionType:                   "union_type",
	KindThisType:                    "this_type",
	KindGeneratedInterfaceReference: "generated_interface_reference",
	KindParameter:                   "parameter",
	KindTypeParameter:               "type_parameter",
	KindHeritage:                    "heritage",
}

// DeclarationKinds lists the variants that may appear in Module.Declarations.
var DeclarationKinds = []Kind{
	KindModule, KindClass, KindInterface, KindObject,
	KindFunction, KindVariable, KindTypeAlias, KindEnum,
}

// MemberKinds lists the variants that may appear in a class-like body.
var MemberKinds = []Kind{
	KindMethod, KindProperty, KindConstructor,
	KindClass, KindInterface, KindObject, KindFunction,
}

// TypeKinds lists the variants that may fill a type slot.
var TypeKinds = []Kind{
	KindTypeValue, KindFunctionType, KindUnionType,
	KindThisType, KindGeneratedInterfaceReference,
}

// AuxiliaryKinds lists nodes that are neither declarations nor types.
var AuxiliaryKinds = []Kind{
	KindParameter, KindTypeParameter, KindHeritage,
}

// AllKinds returns every valid kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindModule; k <= KindHeritage; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves the name produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s && k != KindInvalid {
			return k, true
		}
	}
	return KindInvalid, false
}
