package escape

import (
	"fmt"
	"slices"
	"strings"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
)

// Collision records sibling names that differ in the input and become
// equal after escaping.
type Collision struct {
	// Scope describes the module or class-like whose children collide.
	Scope   string
	Escaped string
	Names   []string
}

func (c Collision) String() string {
	return fmt.Sprintf("%s: %s <- %s", c.Scope, c.Escaped, strings.Join(c.Names, ", "))
}

// FindCollisions reports collisions under root with the default profile.
func FindCollisions(root ir.Node) []Collision {
	return defaultEscaper.FindCollisions(root)
}

// FindCollisions checks every module's declarations and submodules and
// every class-like's members. Names are never changed.
func (e *Escaper) FindCollisions(root ir.Node) []Collision {
	var found []Collision
	ir.Walk(root, func(n ir.Node) bool {
		switch v := n.(type) {
		case *ir.Module:
			children := make([]ir.Node, 0, len(v.Declarations)+len(v.Submodules))
			for _, d := range v.Declarations {
				children = append(children, d)
			}
			for _, sub := range v.Submodules {
				children = append(children, sub)
			}
			found = append(found, e.scope(ir.Describe(v), children)...)
		case *ir.Class:
			found = append(found, e.scope(ir.Describe(v), members(v.Members))...)
		case *ir.Interface:
			found = append(found, e.scope(ir.Describe(v), members(v.Members))...)
		case *ir.Object:
			found = append(found, e.scope(ir.Describe(v), members(v.Members))...)
		case *ir.Enum:
			found = append(found, e.enumScope(v)...)
		}
		return true
	})
	return found
}

func members(ms []ir.Member) []ir.Node {
	out := make([]ir.Node, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}

func (e *Escaper) scope(scope string, children []ir.Node) []Collision {
	var raw []string
	for _, c := range children {
		nm, ok := ir.NameOf(c)
		if !ok || nm == nil {
			continue
		}
		raw = append(raw, nm.String())
	}
	return e.collide(scope, raw, func(s string) string {
		// Qualified names escape segment-wise.
		parts := strings.Split(s, ".")
		for i, p := range parts {
			parts[i] = e.Identifier(p)
		}
		return strings.Join(parts, ".")
	})
}

func (e *Escaper) enumScope(en *ir.Enum) []Collision {
	raw := make([]string, 0, len(en.Values))
	for _, tok := range en.Values {
		raw = append(raw, tok.Value)
	}
	return e.collide(ir.Describe(en), raw, e.Identifier)
}

func (e *Escaper) collide(scope string, raw []string, esc func(string) string) []Collision {
	groups := make(map[string][]string)
	var order []string
	for _, r := range raw {
		out := esc(r)
		if _, seen := groups[out]; !seen {
			order = append(order, out)
		}
		if !slices.Contains(groups[out], r) {
			groups[out] = append(groups[out], r)
		}
	}
	var found []Collision
	for _, out := range order {
		if names := groups[out]; len(names) > 1 {
			slices.Sort(names)
			found = append(found, Collision{Scope: scope, Escaped: out, Names: names})
		}
	}
	return found
}

func collisionError(found []Collision) error {
	lines := make([]string, len(found))
	for i, c := range found {
		lines[i] = c.String()
	}
	err := errors.Wrapf(errors.ErrIdentifierCollision, "%d escaped name(s) collide", len(found))
	return errors.WithDetail(err, strings.Join(lines, "\n"))
}
