// Package lowering runs tree-to-tree rewrites ("passes") over the IR.
//
// A pass is usually a Rules registry: a map from ir.Kind to a Rule, an
// optional identifier rewrite and a fallback. The Lowerer walks the tree
// depth-first, wraps every node in an owner.Owner so rules can query their
// lexical ancestors, dispatches each node to its rule and falls back to a
// structural copy (Lowerer.Default) for kinds the pass does not handle.
//
//	rules := lowering.NewRules("lower-this-type").
//	    On(ir.KindThisType, resolveThisType)
//	lowered, err := lowering.Lower(root, rules, escape.New())
package lowering

import (
	"go.uber.org/zap"

	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/logger"
	"github.com/teranos/declower/owner"
)

// Rule rewrites the node at o.Node(). It must not mutate its input. For
// declarations, members and auxiliary nodes it must return the same kind;
// for types it may return any ir.Type. A rule that wants the default
// behaviour for part of its work calls l.Default(o).
type Rule func(l *Lowerer, o *owner.Owner) (ir.Node, error)

// Rules is a rewrite-rule registry keyed by node kind. Configure it before
// the first Lower call; it is read-only afterwards and safe to share
// between goroutines.
type Rules struct {
	name       string
	rules      map[ir.Kind]Rule
	identifier func(string) string
	fallback   Rule
	workers    int
	verbosity  int
	logger     *zap.SugaredLogger
}

// Option configures a Rules registry.
type Option func(*Rules)

// WithWorkers lowers the declarations of each module on up to n goroutines.
// Results are merged back in source order. n <= 1 is sequential.
func WithWorkers(n int) Option {
	return func(r *Rules) {
		r.workers = n
	}
}

// WithVerbosity sets the CLI verbosity the pass runs under. At -vvv and
// above every dispatched node is logged at debug level.
func WithVerbosity(v int) Option {
	return func(r *Rules) {
		r.verbosity = v
	}
}

// WithLogger replaces the logger used for per-node tracing.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Rules) {
		r.logger = l
	}
}

// NewRules creates an empty registry. With no rules registered the pass is
// a structural identity copy.
func NewRules(name string, opts ...Option) *Rules {
	r := &Rules{
		name:    name,
		rules:   make(map[ir.Kind]Rule),
		workers: 1,
		logger:  logger.ComponentLogger("lowering"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// On registers rule for kind, replacing any earlier rule.
func (r *Rules) On(kind ir.Kind, rule Rule) *Rules {
	r.rules[kind] = rule
	return r
}

// OnIdentifier sets the rewrite applied to every simple identifier the
// default traversal meets: declaration, member, parameter and type names,
// module names and imports.
func (r *Rules) OnIdentifier(fn func(string) string) *Rules {
	r.identifier = fn
	return r
}

// Fallback replaces Lowerer.Default for kinds with no registered rule.
func (r *Rules) Fallback(rule Rule) *Rules {
	r.fallback = rule
	return r
}

// Handles reports whether a rule is registered for kind.
func (r *Rules) Handles(kind ir.Kind) bool {
	_, ok := r.rules[kind]
	return ok
}

// Name implements Pass.
func (r *Rules) Name() string {
	return r.name
}

// Lower implements Pass: it lowers root with a fresh Lowerer.
func (r *Rules) Lower(root *ir.Module) (*ir.Module, error) {
	return r.NewLowerer().LowerRoot(root, nil)
}

// NewLowerer returns a Lowerer bound to this registry.
func (r *Rules) NewLowerer() *Lowerer {
	l := &Lowerer{rules: r}
	if logger.ShouldLogTrace(r.verbosity) && r.logger != nil {
		l.trace = logger.ChildLogger(r.logger, logger.FieldPass, r.name)
	}
	return l
}
