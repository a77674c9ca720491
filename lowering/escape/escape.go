// Package escape quotes identifiers that are reserved or invalid in the
// target language.
//
// An identifier is wrapped in verbatim quotes (`fun`) when it is a reserved
// word, contains a disallowed character or is made only of underscores.
// Identifiers already quoted are left alone, so the pass is idempotent.
package escape

import (
	"strings"

	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/lowering"
	"github.com/teranos/declower/name"
	"github.com/teranos/declower/owner"
)

// PassName is the registry name of the escaping pass.
const PassName = "escape-identifiers"

// Target-language words that cannot be used as bare identifiers.
var DefaultReservedWords = []string{
	"as", "fun", "in", "interface", "is", "object", "package",
	"typealias", "typeof", "val", "var", "when",
}

// DefaultSpecialCharacters may not appear in a bare identifier.
const DefaultSpecialCharacters = "$"

// DefaultQuote is the verbatim-identifier delimiter.
const DefaultQuote = "`"

// Profile describes what the target language rejects.
type Profile struct {
	ReservedWords     []string
	SpecialCharacters string
	Quote             string
}

// DefaultProfile returns the Kotlin profile.
func DefaultProfile() Profile {
	return Profile{
		ReservedWords:     append([]string(nil), DefaultReservedWords...),
		SpecialCharacters: DefaultSpecialCharacters,
		Quote:             DefaultQuote,
	}
}

// Escaper applies a Profile.
type Escaper struct {
	reserved map[string]bool
	special  string
	quote    string
}

// NewEscaper compiles p. An empty quote falls back to DefaultQuote.
func NewEscaper(p Profile) *Escaper {
	e := &Escaper{
		reserved: make(map[string]bool, len(p.ReservedWords)),
		special:  p.SpecialCharacters,
		quote:    p.Quote,
	}
	if e.quote == "" {
		e.quote = DefaultQuote
	}
	for _, w := range p.ReservedWords {
		e.reserved[w] = true
	}
	return e
}

var defaultEscaper = NewEscaper(DefaultProfile())

// Identifier escapes s with the default profile.
func Identifier(s string) string {
	return defaultEscaper.Identifier(s)
}

// Name escapes every segment of entity with the default profile.
func Name(entity name.Entity) name.Entity {
	return defaultEscaper.Name(entity)
}

// Identifier escapes a single raw identifier.
func (e *Escaper) Identifier(s string) string {
	if e.IsQuoted(s) {
		return s
	}
	if e.reserved[s] || e.hasSpecial(s) || onlyUnderscores(s) {
		return e.quote + s + e.quote
	}
	return s
}

// Name escapes the left prefix and the right segment of a qualified name
// independently and recombines them.
func (e *Escaper) Name(entity name.Entity) name.Entity {
	if entity == nil {
		return nil
	}
	return name.Map(entity, e.Identifier)
}

// IsQuoted reports whether s is already wrapped in verbatim quotes.
func (e *Escaper) IsQuoted(s string) bool {
	return len(s) >= 2*len(e.quote) && strings.HasPrefix(s, e.quote) && strings.HasSuffix(s, e.quote)
}

func (e *Escaper) hasSpecial(s string) bool {
	return e.special != "" && strings.ContainsAny(s, e.special)
}

func onlyUnderscores(s string) bool {
	return s != "" && strings.Trim(s, "_") == ""
}

// Rules builds the escaping pass over e. Enum token values are escaped in
// addition to every name the default traversal reaches.
func (e *Escaper) Rules(opts ...lowering.Option) *lowering.Rules {
	return lowering.NewRules(PassName, opts...).
		OnIdentifier(e.Identifier).
		On(ir.KindEnum, func(l *lowering.Lowerer, o *owner.Owner) (ir.Node, error) {
			res, err := l.Default(o)
			if err != nil {
				return nil, err
			}
			enum := res.(*ir.Enum)
			for _, tok := range enum.Values {
				tok.Value = e.Identifier(tok.Value)
			}
			return enum, nil
		})
}
