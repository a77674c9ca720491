package lowering

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/ir/codec"
	"github.com/teranos/declower/logger"
)

// Pass is one tree-to-tree rewrite. Lower must not mutate root and must
// return a complete new tree.
type Pass interface {
	Name() string
	Lower(root *ir.Module) (*ir.Module, error)
}

type funcPass struct {
	name string
	fn   func(*ir.Module) (*ir.Module, error)
}

func (p funcPass) Name() string                              { return p.name }
func (p funcPass) Lower(root *ir.Module) (*ir.Module, error) { return p.fn(root) }

// PassFunc adapts a plain function to Pass.
func PassFunc(name string, fn func(*ir.Module) (*ir.Module, error)) Pass {
	return funcPass{name: name, fn: fn}
}

// Pipeline runs passes strictly in the order given. A later pass sees only
// the complete output of the earlier ones.
type Pipeline struct {
	passes    []Pass
	logger    *zap.SugaredLogger
	verbosity int
}

// NewPipeline builds a pipeline over passes.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{
		passes: passes,
		logger: logger.ComponentLogger("lowering"),
	}
}

// WithLogger replaces the pipeline's logger.
func (p *Pipeline) WithLogger(l *zap.SugaredLogger) *Pipeline {
	p.logger = l
	return p
}

// WithVerbosity sets the CLI verbosity. At -vvvv the tree is dumped as YAML
// after every pass.
func (p *Pipeline) WithVerbosity(v int) *Pipeline {
	p.verbosity = v
	return p
}

// Passes returns the pass names in execution order.
func (p *Pipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name()
	}
	return names
}

// Lower applies every pass in order. The first failure aborts the run and
// no partial tree is returned.
func (p *Pipeline) Lower(root *ir.Module) (*ir.Module, error) {
	if root == nil {
		return nil, errors.Wrap(errors.ErrInvalidTree, "nil root module")
	}

	current := root
	for _, pass := range p.passes {
		start := time.Now()
		next, err := pass.Lower(current)
		if err != nil {
			p.logger.Errorw("Lowering pass failed",
				logger.FieldPass, pass.Name(),
				logger.FieldModule, moduleName(root),
				logger.FieldError, err)
			return nil, errors.Wrapf(err, "lowering pass %s", pass.Name())
		}
		if next == nil {
			return nil, errors.Wrapf(errors.ErrInvalidTree, "lowering pass %s returned no tree", pass.Name())
		}

		if p.logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
			p.logger.Debugw("Lowering pass finished",
				logger.FieldPass, pass.Name(),
				logger.FieldModule, moduleName(root),
				logger.FieldCount, ir.Count(next, func(ir.Node) bool { return true }),
				logger.FieldDurationMS, time.Since(start).Milliseconds())
		}
		if logger.ShouldLogAll(p.verbosity) {
			p.dump(pass.Name(), next)
		}
		current = next
	}
	return current, nil
}

func (p *Pipeline) dump(passName string, tree *ir.Module) {
	var buf strings.Builder
	if err := codec.EncodeModule(&buf, tree, codec.FormatYAML); err != nil {
		p.logger.Warnw("Could not dump lowered tree",
			logger.FieldPass, passName,
			logger.FieldError, err)
		return
	}
	p.logger.Debugw("Lowered tree",
		logger.FieldPass, passName,
		logger.FieldModule, moduleName(tree),
		logger.FieldTree, buf.String())
}

// LowerSourceSet runs the pipeline over every root in set.
func (p *Pipeline) LowerSourceSet(set *ir.SourceSet) (*ir.SourceSet, error) {
	if set == nil {
		return nil, errors.Wrap(errors.ErrInvalidTree, "nil source set")
	}
	return set.Transform(func(root *ir.Module) (*ir.Module, error) {
		return p.Lower(root)
	})
}

// Lower applies passes to root in order.
func Lower(root *ir.Module, passes ...Pass) (*ir.Module, error) {
	return NewPipeline(passes...).Lower(root)
}

// LowerSourceSet applies passes to every root in set.
func LowerSourceSet(set *ir.SourceSet, passes ...Pass) (*ir.SourceSet, error) {
	return NewPipeline(passes...).LowerSourceSet(set)
}

func moduleName(m *ir.Module) string {
	if m == nil || m.Name == nil {
		return ""
	}
	return m.Name.String()
}
