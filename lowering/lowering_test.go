package lowering

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/ir/irtest"
	"github.com/teranos/declower/name"
	"github.com/teranos/declower/owner"
)

func TestIdentityPassCopiesTree(t *testing.T) {
	root := irtest.AlbumModule()

	got, err := NewRules("identity").Lower(root)
	require.NoError(t, err)

	assert.Equal(t, root, got)
	assert.NotSame(t, root, got)
	assert.NotSame(t, root.Declarations[1], got.Declarations[1])
}

func TestDefaultHandlesEveryKind(t *testing.T) {
	l := NewRules("identity").NewLowerer()
	for kind, node := range irtest.Samples() {
		t.Run(kind.String(), func(t *testing.T) {
			got, err := l.Default(owner.Wrap(node, nil))
			require.NoError(t, err)
			assert.Equal(t, node, got)
			assert.Equal(t, kind, got.Kind())
		})
	}
}

func TestIdentifierRewriteReachesEveryName(t *testing.T) {
	root := irtest.AlbumModule()
	rules := NewRules("upper").OnIdentifier(strings.ToUpper)

	got, err := rules.Lower(root)
	require.NoError(t, err)

	assert.Equal(t, "<ROOT>", got.Name.String())
	assert.Equal(t, "ALBUM.ALBUMLABEL", got.Imports[0].String())

	alias := got.Declarations[0].(*ir.TypeAlias)
	assert.Equal(t, "PLAYLIST", alias.Name.String())
	fnType := alias.TypeReference.(*ir.FunctionType)
	assert.Equal(t, "ID", fnType.Parameters[0].Name)
	assert.Equal(t, "STRING", fnType.Parameters[0].Type.(*ir.TypeValue).Value.String())

	album := got.Declarations[1].(*ir.Class)
	assert.Equal(t, "ALBUM", album.Name.String())
	assert.Equal(t, "LABEL", album.Members[0].(*ir.Property).Name)
	nested := album.Members[1].(*ir.Class)
	assert.Equal(t, "SONGSCOUNT", nested.Members[0].(*ir.Method).Name)
	play := album.Members[2].(*ir.Method)
	assert.Equal(t, "PLAYLIST", play.Parameters[1].Name)
	assert.True(t, play.Parameters[1].Type.IsNullable())

	// input untouched
	assert.Equal(t, "Album", root.Declarations[1].(*ir.Class).Name.String())
}

func TestRuleTakesPrecedenceOverFallback(t *testing.T) {
	var fallbackKinds []ir.Kind
	rules := NewRules("rename-classes").
		On(ir.KindClass, func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
			res, err := l.Default(o)
			if err != nil {
				return nil, err
			}
			c := res.(*ir.Class)
			c.Name = name.Ident(c.Name.String() + "Impl")
			return c, nil
		}).
		Fallback(func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
			fallbackKinds = append(fallbackKinds, o.Node().Kind())
			return l.Default(o)
		})

	root := irtest.Module("lib", &ir.Class{Name: irtest.N("D")}, &ir.Variable{Name: irtest.N("v")})
	got, err := rules.Lower(root)
	require.NoError(t, err)

	assert.Equal(t, "DImpl", got.Declarations[0].(*ir.Class).Name.String())
	assert.Equal(t, []ir.Kind{ir.KindModule, ir.KindVariable}, fallbackKinds)
	assert.True(t, rules.Handles(ir.KindClass))
	assert.False(t, rules.Handles(ir.KindVariable))
}

func TestTypeRuleMayChangeVariant(t *testing.T) {
	rules := NewRules("this-to-any").
		On(ir.KindThisType, func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
			return irtest.T("Any"), nil
		})

	root := irtest.Module("lib", &ir.Variable{Name: irtest.N("self"), Type: irtest.This()})
	got, err := rules.Lower(root)
	require.NoError(t, err)

	assert.Equal(t, irtest.T("Any"), got.Declarations[0].(*ir.Variable).Type)
}

func TestDeclarationRuleMustKeepVariant(t *testing.T) {
	rules := NewRules("broken").
		On(ir.KindClass, func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
			return &ir.Interface{Name: irtest.N("Nope")}, nil
		})

	root := irtest.Module("lib", &ir.Class{Name: irtest.N("D"), UID: "class:D"})
	got, err := rules.Lower(root)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.IsUnsupportedNode(err))
	assert.Contains(t, err.Error(), "pass broken lowered class D [uid class:D] into interface Nope")
}

// foreignDeclaration satisfies ir.Declaration through embedding but is not
// one of the variants the traversal knows.
type foreignDeclaration struct {
	*ir.Variable
}

func TestUnknownVariantIsFatal(t *testing.T) {
	root := irtest.Module("lib",
		&ir.Variable{Name: irtest.N("ok")},
		foreignDeclaration{&ir.Variable{Name: irtest.N("mystery")}},
	)

	got, err := Lower(root, NewRules("identity"))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedNode))
	assert.Contains(t, err.Error(), "lowering pass identity")
	assert.Contains(t, err.Error(), "cannot lower variable (lowering.foreignDeclaration)")

	details := errors.GetAllDetails(err)
	require.NotEmpty(t, details)
	assert.Contains(t, details[0], "module lib [uid module:lib] > variable")
}

func TestOwnerChainIsThreaded(t *testing.T) {
	var paths []string
	rules := NewRules("record").
		On(ir.KindProperty, func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
			mod, ok := o.Module()
			require.True(t, ok)
			class, ok := owner.Nearest[*ir.Class](o)
			require.True(t, ok)
			paths = append(paths, fmt.Sprintf("%s/%s/%s", mod.Name, class.Name, o.Node().(*ir.Property).Name))
			return l.Default(o)
		})

	root := irtest.AlbumModule()
	sub := irtest.Module("sub", &ir.Class{Name: irtest.N("S"), Members: []ir.Member{&ir.Property{Name: "p"}}})
	root.Submodules = []*ir.Module{sub}

	_, err := rules.Lower(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"<ROOT>/Album/label",
		"<ROOT>/AlbumLabel/defaultLabel",
		"sub/S/p",
	}, paths)
}

func TestModulesInDeclarationsAreLoweredInPlace(t *testing.T) {
	var order []string
	rules := NewRules("order").
		On(ir.KindVariable, func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
			order = append(order, o.Node().(*ir.Variable).Name.String())
			return l.Default(o)
		})

	inner := irtest.Module("ns", &ir.Variable{Name: irtest.N("b")})
	root := irtest.Module("lib",
		&ir.Variable{Name: irtest.N("a")},
		inner,
		&ir.Variable{Name: irtest.N("c")},
	)
	root.Submodules = []*ir.Module{irtest.Module("tail", &ir.Variable{Name: irtest.N("d")})}

	got, err := rules.Lower(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
	assert.Equal(t, root, got)
}

func TestWorkersKeepDeclarationOrder(t *testing.T) {
	var decls []ir.Declaration
	for i := 0; i < 64; i++ {
		decls = append(decls, &ir.Variable{Name: irtest.N(fmt.Sprintf("v%d", i)), Type: irtest.This()})
	}
	root := irtest.Module("lib", decls...)

	var calls atomic.Int64
	build := func(opts ...Option) *Rules {
		return NewRules("this-to-any", opts...).
			On(ir.KindThisType, func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
				calls.Add(1)
				return irtest.T("Any"), nil
			})
	}

	sequential, err := build().Lower(root)
	require.NoError(t, err)
	concurrent, err := build(WithWorkers(8)).Lower(root)
	require.NoError(t, err)

	assert.Equal(t, sequential, concurrent)
	assert.EqualValues(t, 128, calls.Load())
	for i, d := range concurrent.Declarations {
		assert.Equal(t, fmt.Sprintf("v%d", i), d.(*ir.Variable).Name.String())
	}
}

func TestWorkersPropagateErrors(t *testing.T) {
	root := irtest.Module("lib",
		&ir.Variable{Name: irtest.N("a")},
		foreignDeclaration{&ir.Variable{Name: irtest.N("bad")}},
		&ir.Variable{Name: irtest.N("c")},
	)

	got, err := NewRules("identity", WithWorkers(4)).Lower(root)
	assert.Nil(t, got)
	assert.True(t, errors.IsUnsupportedNode(err))
}

func TestLowerRootRejectsNil(t *testing.T) {
	_, err := NewRules("identity").Lower(nil)
	assert.True(t, errors.IsInvalidTree(err))
}
