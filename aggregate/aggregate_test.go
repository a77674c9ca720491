package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/declower/aggregate"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/ir/irtest"
)

func names(modules []*ir.Module) []string {
	out := make([]string, len(modules))
	for i, m := range modules {
		out[i] = m.Name.String()
	}
	return out
}

func TestFlattenNestedModules(t *testing.T) {
	root := irtest.NestedModules()
	flat := aggregate.Flatten(root)

	assert.Equal(t, []string{"a", "a.b.c", "d"}, names(flat))
	for _, m := range flat {
		assert.Empty(t, m.Submodules, m.Name.String())
		assert.NotEmpty(t, m.Declarations, m.Name.String())
	}
}

func TestFlattenKeepsDeclarationOrder(t *testing.T) {
	flat := aggregate.Flatten(irtest.NestedModules())
	require.Len(t, flat, 3)

	abc := flat[1]
	require.Len(t, abc.Declarations, 2)
	assert.Equal(t, "x", abc.Declarations[0].(*ir.Variable).Name.String())
	assert.Equal(t, "y", abc.Declarations[1].(*ir.Variable).Name.String())
}

func TestFlattenConservesDeclarations(t *testing.T) {
	root := irtest.NestedModules()
	flat := aggregate.Flatten(root)

	assert.Equal(t, aggregate.CountDeclarations(root), aggregate.CountDeclarations(flat...))
	assert.Equal(t, 4, aggregate.CountDeclarations(flat...))
}

func TestFlattenEmptyRootWithOneSubmodule(t *testing.T) {
	sub := irtest.Module("lib.sub", &ir.Variable{Name: irtest.N("v"), Type: irtest.T("String")})
	root := irtest.Module("lib")
	root.Submodules = []*ir.Module{sub}

	flat := aggregate.Flatten(root)
	require.Len(t, flat, 1)
	assert.Equal(t, "lib.sub", flat[0].Name.String())
}

func TestFlattenRootWithDeclarationsComesFirst(t *testing.T) {
	root := irtest.AlbumModule()
	root.Submodules = []*ir.Module{irtest.Module("Album", &ir.Variable{Name: irtest.N("v"), Type: irtest.T("String")})}

	flat := aggregate.Flatten(root)
	assert.Equal(t, []string{"<ROOT>", "Album"}, names(flat))
	assert.Nil(t, flat[0].Submodules)
}

func TestFlattenDoesNotModifyInput(t *testing.T) {
	root := irtest.NestedModules()
	aggregate.Flatten(root)
	assert.Equal(t, irtest.NestedModules(), root)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, aggregate.Flatten(nil))
	assert.Empty(t, aggregate.Flatten(irtest.Module("empty")))
}

func TestFlattenSourceSet(t *testing.T) {
	set := &ir.SourceSet{
		Name: "lib",
		Sources: []*ir.Source{
			{FileName: "nested.d.ts", Root: irtest.NestedModules()},
			{FileName: "album.d.ts", Root: irtest.AlbumModule()},
		},
	}

	assert.Equal(t, []string{"a", "a.b.c", "d", "<ROOT>"}, names(aggregate.FlattenSourceSet(set)))
	assert.Nil(t, aggregate.FlattenSourceSet(nil))
}
