// Package irtest provides declaration trees shared by tests across packages.
package irtest

import (
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/name"
)

// T builds a type value from a dotted name.
func T(dotted string, params ...ir.Type) *ir.TypeValue {
	return ir.Named(name.MustParse(dotted), params...)
}

// N parses a dotted name.
func N(dotted string) name.Entity {
	return name.MustParse(dotted)
}

// TP builds an unconstrained type parameter.
func TP(id string) *ir.TypeParameter {
	return &ir.TypeParameter{Name: name.Ident(id)}
}

// P builds a parameter.
func P(id string, t ir.Type) *ir.Parameter {
	return &ir.Parameter{Name: id, Type: t}
}

// This returns a fresh self-type placeholder.
func This() *ir.ThisType {
	return &ir.ThisType{}
}

// Module builds a module whose name and short name are both dotted.
func Module(dotted string, decls ...ir.Declaration) *ir.Module {
	return &ir.Module{
		Name:         N(dotted),
		ShortName:    name.Last(N(dotted)),
		Declarations: decls,
		UID:          ir.UID("module:" + dotted),
	}
}

// Samples returns one node per kind. Every valid ir.Kind is present.
func Samples() map[ir.Kind]ir.Node {
	return map[ir.Kind]ir.Node{
		ir.KindModule: Module("lib"),
		ir.KindClass: &ir.Class{
			Name:           N("Foo"),
			TypeParameters: []*ir.TypeParameter{TP("T")},
			UID:            "class:Foo",
		},
		ir.KindInterface: &ir.Interface{Name: N("Bar"), UID: "interface:Bar"},
		ir.KindObject:    &ir.Object{Name: N("Baz"), UID: "object:Baz"},
		ir.KindFunction: &ir.Function{
			Name:       N("play"),
			Parameters: []*ir.Parameter{P("album", T("Album"))},
			Type:       T("Unit"),
			UID:        "function:play",
		},
		ir.KindVariable:  &ir.Variable{Name: N("defaultLabel"), Type: T("AlbumLabel")},
		ir.KindTypeAlias: &ir.TypeAlias{Name: N("Playlist"), TypeReference: T("String"), UID: "alias:Playlist"},
		ir.KindEnum: &ir.Enum{
			Name:   N("Color"),
			Values: []*ir.EnumToken{{Value: "Red"}, {Value: "Green"}},
			UID:    "enum:Color",
		},
		ir.KindMethod:      &ir.Method{Name: "songsCount", Type: T("Number")},
		ir.KindProperty:    &ir.Property{Name: "label", Type: T("AlbumLabel")},
		ir.KindConstructor: &ir.Constructor{Parameters: []*ir.Parameter{P("id", T("String"))}},
		ir.KindTypeValue:   T("Array", T("String")),
		ir.KindFunctionType: &ir.FunctionType{
			Parameters: []*ir.Parameter{P("options", T("O"))},
			Type:       T("Unit"),
		},
		ir.KindUnionType: &ir.UnionType{Params: []ir.Type{T("String"), T("Number")}},
		ir.KindThisType:  This(),
		ir.KindGeneratedInterfaceReference: &ir.GeneratedInterfaceReference{
			Name:      N("`T$0`"),
			Reference: ir.RefTo("interface:T$0"),
		},
		ir.KindParameter:     P("hook", T("BeforeHook", T("Any"))),
		ir.KindTypeParameter: &ir.TypeParameter{Name: name.Ident("O"), Constraints: []ir.Type{T("Any")}},
		ir.KindHeritage:      &ir.Heritage{Name: N("Base"), TypeArguments: []ir.Type{T("T")}},
	}
}

// AlbumModule mirrors a TypeScript class merged with a namespace:
//
//	declare class Album { label: Album.AlbumLabel; static play(album: Album, playlist?: Playlist): void }
//	declare namespace Album { class AlbumLabel { songsCount(): number; static defaultLabel: AlbumLabel } }
//	type Playlist = (id: string, data: any) => void
func AlbumModule() *ir.Module {
	albumLabel := &ir.Class{
		Name: N("AlbumLabel"),
		Members: []ir.Member{
			&ir.Method{Name: "songsCount", Type: T("Number")},
			&ir.Property{Name: "defaultLabel", Type: T("AlbumLabel"), Static: true},
		},
		UID: "class:AlbumLabel",
	}
	album := &ir.Class{
		Name: N("Album"),
		Members: []ir.Member{
			&ir.Property{Name: "label", Type: T("AlbumLabel")},
			albumLabel,
			&ir.Method{
				Name:   "play",
				Static: true,
				Parameters: []*ir.Parameter{
					P("album", T("Album")),
					{Name: "playlist", Type: &ir.TypeValue{Value: N("Playlist"), Nullable: true}, Optional: true},
				},
				Type: T("Unit"),
			},
		},
		UID: "class:Album",
	}
	playlist := &ir.TypeAlias{
		Name: N("Playlist"),
		TypeReference: &ir.FunctionType{
			Parameters: []*ir.Parameter{P("id", T("String")), P("data", &ir.TypeValue{Value: N("Any"), Nullable: true})},
			Type:       T("Unit"),
		},
		UID: "alias:Playlist",
	}

	return &ir.Module{
		Name:         name.Ident("<ROOT>"),
		ShortName:    name.Ident("<ROOT>"),
		Declarations: []ir.Declaration{playlist, album},
		Imports:      []name.Entity{N("Album.AlbumLabel")},
		UID:          "module:<ROOT>",
	}
}

// NestedModules builds a four-level module tree where root and a.b are empty.
//
//	root (0 decls)
//	├── a (1 decl)
//	│   └── a.b (0 decls)
//	│       └── a.b.c (2 decls)
//	└── d (1 decl)
func NestedModules() *ir.Module {
	abc := Module("a.b.c",
		&ir.Variable{Name: N("x"), Type: T("String")},
		&ir.Variable{Name: N("y"), Type: T("Number")},
	)
	ab := Module("a.b")
	ab.Submodules = []*ir.Module{abc}
	a := Module("a", &ir.Function{Name: N("f"), Type: T("Unit"), UID: "function:f"})
	a.Submodules = []*ir.Module{ab}
	d := Module("d", &ir.Class{Name: N("D"), UID: "class:D"})

	root := Module("root")
	root.Submodules = []*ir.Module{a, d}
	return root
}
