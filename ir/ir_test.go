package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/ir/irtest"
	"github.com/teranos/declower/name"
)

func TestEveryKindHasASample(t *testing.T) {
	samples := irtest.Samples()
	for _, kind := range ir.AllKinds() {
		node, ok := samples[kind]
		require.True(t, ok, "no sample for kind %s", kind)
		assert.Equal(t, kind, node.Kind())
	}
	assert.Len(t, samples, len(ir.AllKinds()))
}

func TestKindCategoriesCoverEveryKind(t *testing.T) {
	covered := map[ir.Kind]bool{}
	for _, list := range [][]ir.Kind{ir.DeclarationKinds, ir.MemberKinds, ir.TypeKinds, ir.AuxiliaryKinds} {
		for _, k := range list {
			covered[k] = true
		}
	}
	for _, kind := range ir.AllKinds() {
		assert.True(t, covered[kind], "kind %s belongs to no category", kind)
	}
}

func TestKindCategoriesMatchInterfaces(t *testing.T) {
	samples := irtest.Samples()
	for _, k := range ir.DeclarationKinds {
		_, ok := samples[k].(ir.Declaration)
		assert.True(t, ok, "%s should be a Declaration", k)
	}
	for _, k := range ir.MemberKinds {
		_, ok := samples[k].(ir.Member)
		assert.True(t, ok, "%s should be a Member", k)
	}
	for _, k := range ir.TypeKinds {
		_, ok := samples[k].(ir.Type)
		assert.True(t, ok, "%s should be a Type", k)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range ir.AllKinds() {
		got, ok := ir.ParseKind(kind.String())
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, got)
	}

	_, ok := ir.ParseKind("invalid")
	assert.False(t, ok)
	_, ok = ir.ParseKind("struct")
	assert.False(t, ok)
}

func TestProvenance(t *testing.T) {
	p := ir.NewProvenance(ir.TagThisType, "custom", ir.TagThisType)
	assert.Equal(t, []ir.Tag{ir.TagThisType, "custom"}, p.Tags())
	assert.True(t, p.Has("custom"))
	assert.False(t, p.IsZero())

	// Tags returns a copy
	tags := p.Tags()
	tags[0] = "mutated"
	assert.True(t, p.Has(ir.TagThisType))

	empty := ir.NewProvenance()
	assert.True(t, empty.IsZero())
	with := empty.With(ir.TagThisType)
	assert.True(t, with.Has(ir.TagThisType))
	assert.True(t, empty.IsZero(), "With must not change the receiver")
}

func TestCopyDoesNotAliasSlices(t *testing.T) {
	class := &ir.Class{
		Name:    irtest.N("Foo"),
		Members: []ir.Member{&ir.Method{Name: "a"}},
	}
	cp := class.Copy()
	cp.Members[0] = &ir.Method{Name: "b"}

	assert.Equal(t, "a", class.Members[0].(*ir.Method).Name)
	assert.Equal(t, "b", cp.Members[0].(*ir.Method).Name)
}

func TestCopyKeepsNilSlices(t *testing.T) {
	enum := &ir.Enum{Name: irtest.N("Empty")}
	assert.Equal(t, enum, enum.Copy())

	mod := &ir.Module{Name: irtest.N("m")}
	assert.Equal(t, mod, mod.Copy())
}

func TestEnumCopyDuplicatesTokens(t *testing.T) {
	enum := irtest.Samples()[ir.KindEnum].(*ir.Enum)
	cp := enum.Copy()
	cp.Values[0].Value = "Blue"

	assert.Equal(t, "Red", enum.Values[0].Value)
}

func TestNewUIDIsUnique(t *testing.T) {
	seen := map[ir.UID]bool{}
	for i := 0; i < 100; i++ {
		uid := ir.NewUID()
		require.True(t, uid.IsValid())
		require.False(t, seen[uid])
		seen[uid] = true
	}
	assert.Nil(t, ir.RefTo(ir.NoUID))
	assert.Equal(t, &ir.Reference{UID: "x"}, ir.RefTo("x"))
}

func TestTopType(t *testing.T) {
	meta := ir.NewProvenance(ir.TagThisType)

	top := ir.TopType(nil, true, meta)
	assert.Equal(t, name.Ident(ir.TopTypeName), top.Value)
	assert.True(t, top.Nullable)
	assert.True(t, top.Meta.Has(ir.TagThisType))

	custom := ir.TopType(name.MustParse("kotlin.Any"), false, ir.Provenance{})
	assert.Equal(t, "kotlin.Any", custom.Value.String())
	assert.False(t, custom.Nullable)
}

func TestDescribe(t *testing.T) {
	samples := irtest.Samples()
	assert.Equal(t, "class Foo [uid class:Foo]", ir.Describe(samples[ir.KindClass]))
	assert.Equal(t, "method songsCount", ir.Describe(samples[ir.KindMethod]))
	assert.Equal(t, "this_type", ir.Describe(samples[ir.KindThisType]))
	assert.Equal(t, "<nil>", ir.Describe(nil))
}

func TestWalkIsPreOrder(t *testing.T) {
	root := irtest.NestedModules()

	var modules []string
	ir.Walk(root, func(n ir.Node) bool {
		if m, ok := n.(*ir.Module); ok {
			modules = append(modules, m.Name.String())
		}
		return true
	})
	assert.Equal(t, []string{"root", "a", "a.b", "a.b.c", "d"}, modules)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := irtest.AlbumModule()

	visited := ir.Count(root, func(n ir.Node) bool { return n.Kind() == ir.KindMethod })
	assert.Equal(t, 2, visited)

	var seen int
	ir.Walk(root, func(n ir.Node) bool {
		if n.Kind() == ir.KindMethod {
			seen++
		}
		return n.Kind() != ir.KindClass
	})
	assert.Zero(t, seen)
}

func TestChildrenCoversTypeSlots(t *testing.T) {
	fn := &ir.Function{
		Name:           irtest.N("f"),
		TypeParameters: []*ir.TypeParameter{irtest.TP("T")},
		Parameters:     []*ir.Parameter{irtest.P("a", irtest.This())},
		Type:           irtest.This(),
	}
	assert.Equal(t, 2, ir.Count(fn, func(n ir.Node) bool { return n.Kind() == ir.KindThisType }))
	assert.Len(t, ir.Children(fn), 3)
}

func TestNameOf(t *testing.T) {
	n, ok := ir.NameOf(&ir.Property{Name: "label"})
	require.True(t, ok)
	assert.Equal(t, name.Ident("label"), n)

	_, ok = ir.NameOf(&ir.UnionType{})
	assert.False(t, ok)
}

func TestSourceSetTransform(t *testing.T) {
	set := &ir.SourceSet{
		Name: "lib",
		Sources: []*ir.Source{
			{FileName: "a.d.ts", Root: irtest.Module("a")},
			{FileName: "b.d.ts", Root: irtest.Module("b")},
		},
	}

	out, err := set.Transform(func(m *ir.Module) (*ir.Module, error) {
		cp := m.Copy()
		cp.ShortName = name.Ident("x")
		return cp, nil
	})
	require.NoError(t, err)
	require.Len(t, out.Sources, 2)
	assert.Equal(t, "a.d.ts", out.Sources[0].FileName)
	assert.Equal(t, name.Ident("x"), out.Sources[1].Root.ShortName)
	assert.Equal(t, name.Ident("b"), set.Sources[1].Root.ShortName)
}
