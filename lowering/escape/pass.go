package escape

import (
	"go.uber.org/zap"

	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/logger"
	"github.com/teranos/declower/lowering"
)

// Option configures the escaping pass.
type Option func(*Pass)

// WithProfile replaces the default profile.
func WithProfile(p Profile) Option {
	return func(ps *Pass) {
		ps.escaper = NewEscaper(p)
	}
}

// FailOnCollision makes Lower return an error wrapping
// errors.ErrIdentifierCollision instead of only logging collisions.
func FailOnCollision() Option {
	return func(ps *Pass) {
		ps.failOnCollision = true
	}
}

// WithLoweringOptions forwards options (e.g. lowering.WithWorkers) to the
// underlying rule registry.
func WithLoweringOptions(opts ...lowering.Option) Option {
	return func(ps *Pass) {
		ps.lowering = append(ps.lowering, opts...)
	}
}

// WithLogger sets the logger used for collision warnings.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(ps *Pass) {
		ps.logger = l
	}
}

// Pass escapes identifiers across a whole module tree.
type Pass struct {
	escaper         *Escaper
	failOnCollision bool
	lowering        []lowering.Option
	logger          *zap.SugaredLogger
	rules           *lowering.Rules
}

// New builds the escaping pass.
func New(opts ...Option) *Pass {
	p := &Pass{
		escaper: defaultEscaper,
		logger:  logger.ComponentLogger("escape"),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.rules = p.escaper.Rules(p.lowering...)
	return p
}

// Name implements lowering.Pass.
func (p *Pass) Name() string {
	return PassName
}

// Lower implements lowering.Pass.
func (p *Pass) Lower(root *ir.Module) (*ir.Module, error) {
	if root != nil {
		if found := p.escaper.FindCollisions(root); len(found) > 0 {
			for _, c := range found {
				p.logger.Warnw("Escaped identifiers collide",
					logger.FieldOwner, c.Scope,
					logger.FieldEscaped, c.Escaped,
					logger.FieldIdentifier, c.Names)
			}
			if p.failOnCollision {
				return nil, collisionError(found)
			}
		}
	}
	return p.rules.Lower(root)
}
