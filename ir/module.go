package ir

import (
	"slices"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/name"
)

// Annotation is a target-language annotation attached to a module,
// e.g. @file:JsModule("lib").
type Annotation struct {
	Name   string
	Params []name.Identifier
}

// Module is a package or namespace. Name is the qualified package name and
// ShortName the display name. Submodules are owned exclusively by their
// parent: the module graph is a tree.
type Module struct {
	Name         name.Entity
	ShortName    name.Entity
	Declarations []Declaration
	Annotations  []*Annotation
	Submodules   []*Module
	Imports      []name.Entity
	UID          UID
}

func (*Module) Kind() Kind       { return KindModule }
func (*Module) declarationNode() {}

// Copy returns a shallow copy with its own slices.
func (m *Module) Copy() *Module {
	cp := *m
	cp.Declarations = slices.Clone(m.Declarations)
	cp.Annotations = slices.Clone(m.Annotations)
	cp.Submodules = slices.Clone(m.Submodules)
	cp.Imports = slices.Clone(m.Imports)
	return &cp
}

// Source is one input file's root module.
type Source struct {
	FileName string
	Root     *Module
}

// SourceSet groups the roots translated together.
type SourceSet struct {
	Name    string
	Sources []*Source
}

// Transform applies fn to every root and returns a new set. The first error
// stops the walk and no set is returned.
func (s *SourceSet) Transform(fn func(*Module) (*Module, error)) (*SourceSet, error) {
	out := &SourceSet{Name: s.Name, Sources: make([]*Source, 0, len(s.Sources))}
	for _, src := range s.Sources {
		root, err := fn(src.Root)
		if err != nil {
			return nil, errors.Wrapf(err, "source %s", src.FileName)
		}
		out.Sources = append(out.Sources, &Source{FileName: src.FileName, Root: root})
	}
	return out, nil
}
