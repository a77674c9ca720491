// Package name holds the identifier values shared by every IR node.
//
// A name is either a simple Identifier or a Qualifier that joins a left
// name with a right Identifier, forming a right-leaning chain:
//
//	a.b.c == Qualifier{Left: Qualifier{Left: Identifier{"a"}, Right: Identifier{"b"}}, Right: Identifier{"c"}}
//
// Names are immutable values and compare structurally with ==.
package name

import (
	"strings"

	"github.com/teranos/declower/errors"
)

// Entity is a simple or qualified name.
type Entity interface {
	String() string
	isEntity()
}

// Identifier is a single name segment.
type Identifier struct {
	Value string
}

// Qualifier is a dotted name. Right is never empty.
type Qualifier struct {
	Left  Entity
	Right Identifier
}

func (Identifier) isEntity() {}
func (Qualifier) isEntity()  {}

func (i Identifier) String() string { return i.Value }

func (q Qualifier) String() string {
	return q.Left.String() + "." + q.Right.Value
}

// Ident builds an Identifier.
func Ident(value string) Identifier {
	return Identifier{Value: value}
}

// Qualify joins left and right into a Qualifier.
func Qualify(left Entity, right string) (Qualifier, error) {
	if left == nil {
		return Qualifier{}, errors.Wrap(errors.ErrInvalidName, "qualifier has no left segment")
	}
	if right == "" {
		return Qualifier{}, errors.Wrapf(errors.ErrInvalidName, "qualifier %s has an empty right segment", left)
	}
	return Qualifier{Left: left, Right: Identifier{Value: right}}, nil
}

// Parse splits a dotted string into a right-leaning chain.
// Empty segments are rejected.
func Parse(dotted string) (Entity, error) {
	if dotted == "" {
		return nil, errors.Wrap(errors.ErrInvalidName, "empty name")
	}
	parts := strings.Split(dotted, ".")
	if parts[0] == "" {
		return nil, errors.Wrapf(errors.ErrInvalidName, "name %q starts with an empty segment", dotted)
	}

	var entity Entity = Identifier{Value: parts[0]}
	for _, part := range parts[1:] {
		q, err := Qualify(entity, part)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", dotted)
		}
		entity = q
	}
	return entity, nil
}

// MustParse is Parse for names known to be well formed. It panics otherwise.
func MustParse(dotted string) Entity {
	entity, err := Parse(dotted)
	if err != nil {
		panic(err)
	}
	return entity
}

// Equal reports whether two names are structurally equal.
func Equal(a, b Entity) bool {
	return a == b
}

// Map rewrites every simple segment with fn and keeps the chain shape.
// The left prefix and the right segment are handled independently.
func Map(entity Entity, fn func(string) string) Entity {
	switch e := entity.(type) {
	case Identifier:
		return Identifier{Value: fn(e.Value)}
	case Qualifier:
		return Qualifier{Left: Map(e.Left, fn), Right: Identifier{Value: fn(e.Right.Value)}}
	default:
		return entity
	}
}

// Segments returns the simple segments from left to right.
func Segments(entity Entity) []string {
	switch e := entity.(type) {
	case Identifier:
		return []string{e.Value}
	case Qualifier:
		return append(Segments(e.Left), e.Right.Value)
	default:
		return nil
	}
}

// Last returns the rightmost segment.
func Last(entity Entity) Identifier {
	switch e := entity.(type) {
	case Identifier:
		return e
	case Qualifier:
		return e.Right
	default:
		return Identifier{}
	}
}
