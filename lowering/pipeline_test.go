package lowering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/ir/irtest"
	"github.com/teranos/declower/logger"
	"github.com/teranos/declower/name"
	"github.com/teranos/declower/owner"
)

func suffixPass(suffix string) *Rules {
	return NewRules("suffix" + suffix).OnIdentifier(func(s string) string { return s + suffix })
}

func TestPipelineMatchesManualComposition(t *testing.T) {
	root := irtest.AlbumModule()
	a, b := suffixPass("A"), suffixPass("B")

	piped, err := Lower(root, a, b)
	require.NoError(t, err)

	first, err := a.Lower(root)
	require.NoError(t, err)
	manual, err := b.Lower(first)
	require.NoError(t, err)

	assert.Equal(t, manual, piped)
	assert.Equal(t, "PlaylistAB", piped.Declarations[0].(*ir.TypeAlias).Name.String())
}

func TestPipelineNeverReordersPasses(t *testing.T) {
	root := irtest.Module("lib", &ir.Variable{Name: irtest.N("v")})

	ab, err := Lower(root, suffixPass("A"), suffixPass("B"))
	require.NoError(t, err)
	ba, err := Lower(root, suffixPass("B"), suffixPass("A"))
	require.NoError(t, err)

	assert.Equal(t, "vAB", ab.Declarations[0].(*ir.Variable).Name.String())
	assert.Equal(t, "vBA", ba.Declarations[0].(*ir.Variable).Name.String())
	assert.Equal(t, []string{"suffixA", "suffixB"}, NewPipeline(suffixPass("A"), suffixPass("B")).Passes())
}

func TestPipelineAbortsOnFirstFailure(t *testing.T) {
	var ran []string
	record := func(id string, fail bool) Pass {
		return PassFunc(id, func(root *ir.Module) (*ir.Module, error) {
			ran = append(ran, id)
			if fail {
				return nil, errors.NewUnsupportedNodeError("kind mystery")
			}
			return root.Copy(), nil
		})
	}

	got, err := Lower(irtest.Module("lib"), record("one", false), record("two", true), record("three", false))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, []string{"one", "two"}, ran)
	assert.Contains(t, err.Error(), "lowering pass two")
	assert.True(t, errors.IsUnsupportedNode(err))
}

func TestPipelineRejectsMissingTree(t *testing.T) {
	_, err := Lower(nil)
	assert.True(t, errors.IsInvalidTree(err))

	empty := PassFunc("empty", func(*ir.Module) (*ir.Module, error) { return nil, nil })
	_, err = Lower(irtest.Module("lib"), empty)
	assert.True(t, errors.IsInvalidTree(err))
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	root := irtest.AlbumModule()
	snapshot := irtest.AlbumModule()

	mutating := NewRules("rename").On(ir.KindProperty, func(l *Lowerer, o *owner.Owner) (ir.Node, error) {
		res, err := l.Default(o)
		if err != nil {
			return nil, err
		}
		p := res.(*ir.Property)
		p.Name = strings.ToUpper(p.Name)
		p.Type = irtest.T("Changed")
		return p, nil
	})

	_, err := Lower(root, mutating, suffixPass("X"))
	require.NoError(t, err)
	assert.Equal(t, snapshot, root)
}

func TestPipelineLogsEachPass(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	p := NewPipeline(suffixPass("A"), suffixPass("B")).WithLogger(zap.New(core).Sugar())
	_, err := p.Lower(irtest.Module("lib", &ir.Variable{Name: irtest.N("v")}))
	require.NoError(t, err)

	entries := logs.FilterMessage("Lowering pass finished").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "suffixA", entries[0].ContextMap()[logger.FieldPass])
	assert.Equal(t, "suffixB", entries[1].ContextMap()[logger.FieldPass])
	assert.Equal(t, int64(2), entries[0].ContextMap()[logger.FieldCount])
}

func TestLowerSourceSet(t *testing.T) {
	set := &ir.SourceSet{
		Name: "lib",
		Sources: []*ir.Source{
			{FileName: "a.d.ts", Root: irtest.Module("a", &ir.Variable{Name: irtest.N("x")})},
			{FileName: "b.d.ts", Root: irtest.Module("b", foreignDeclaration{&ir.Variable{Name: irtest.N("y")}})},
		},
	}

	_, err := LowerSourceSet(set, suffixPass("A"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source b.d.ts")

	set.Sources = set.Sources[:1]
	out, err := LowerSourceSet(set, suffixPass("A"))
	require.NoError(t, err)
	assert.Equal(t, name.Ident("aA"), out.Sources[0].Root.Name)
}

func TestTraceLogsEveryDispatchedNode(t *testing.T) {
	root := irtest.Module("lib", &ir.Variable{Name: irtest.N("v")})

	for _, tt := range []struct {
		verbosity int
		want      int
	}{
		{logger.VerbosityDebug, 0},
		{logger.VerbosityTrace, 2},
	} {
		core, logs := observer.New(zapcore.DebugLevel)
		rules := NewRules("trace", WithVerbosity(tt.verbosity), WithLogger(zap.New(core).Sugar()))

		_, err := rules.Lower(root)
		require.NoError(t, err)

		entries := logs.FilterMessage("Lowering node").All()
		require.Len(t, entries, tt.want, "verbosity %d", tt.verbosity)
		if tt.want == 0 {
			continue
		}
		assert.Equal(t, "module", entries[0].ContextMap()[logger.FieldKind])
		fields := entries[1].ContextMap()
		assert.Equal(t, "trace", fields[logger.FieldPass])
		assert.Equal(t, "variable", fields[logger.FieldKind])
		assert.Equal(t, "variable v", fields[logger.FieldNode])
	}
}

func TestPipelineDumpsTreeAtHighestVerbosity(t *testing.T) {
	root := irtest.Module("lib", &ir.Variable{Name: irtest.N("v")})

	core, logs := observer.New(zapcore.DebugLevel)
	p := NewPipeline(suffixPass("A"), suffixPass("B")).WithLogger(zap.New(core).Sugar())
	_, err := p.Lower(root)
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("Lowered tree").Len())

	core, logs = observer.New(zapcore.DebugLevel)
	p = NewPipeline(suffixPass("A"), suffixPass("B")).
		WithLogger(zap.New(core).Sugar()).
		WithVerbosity(logger.VerbosityAll)
	_, err = p.Lower(root)
	require.NoError(t, err)

	dumps := logs.FilterMessage("Lowered tree").All()
	require.Len(t, dumps, 2)
	assert.Equal(t, "suffixA", dumps[0].ContextMap()[logger.FieldPass])
	assert.Contains(t, dumps[0].ContextMap()[logger.FieldTree], "vA")
	assert.NotContains(t, dumps[0].ContextMap()[logger.FieldTree], "vAB")
	assert.Contains(t, dumps[1].ContextMap()[logger.FieldTree], "vAB")
}
