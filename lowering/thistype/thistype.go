// Package thistype replaces self-type placeholders with a concrete type.
//
// The placeholder resolves against the innermost enclosing class,
// interface or function:
//
//   - class, or interface not generated by the front-end: a reference to
//     it, applied to its own type parameters
//   - generated interface: the top type
//   - extension function: a reference to its receiver
//   - anything else, including no enclosing declaration: the top type
//
// Every type the pass synthesizes carries ir.TagThisType and the
// placeholder's nullability.
package thistype

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/logger"
	"github.com/teranos/declower/lowering"
	"github.com/teranos/declower/name"
	"github.com/teranos/declower/owner"
)

// PassName is the registry name of the self-type pass.
const PassName = "lower-this-type"

type resolver struct {
	top    name.Entity
	logger *zap.SugaredLogger
	opts   []lowering.Option
}

// Option configures the pass.
type Option func(*resolver)

// WithTopType sets the name used when the self-type cannot be named.
func WithTopType(top name.Entity) Option {
	return func(r *resolver) {
		if top != nil {
			r.top = top
		}
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *resolver) {
		r.logger = l
	}
}

// WithLoweringOptions forwards options to the underlying rule registry.
func WithLoweringOptions(opts ...lowering.Option) Option {
	return func(r *resolver) {
		r.opts = append(r.opts, opts...)
	}
}

// New builds the self-type resolution pass.
func New(opts ...Option) *lowering.Rules {
	r := &resolver{
		top:    name.Ident(ir.TopTypeName),
		logger: logger.ComponentLogger("thistype"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return lowering.NewRules(PassName, r.opts...).On(ir.KindThisType, r.lower)
}

func (r *resolver) lower(_ *lowering.Lowerer, o *owner.Owner) (ir.Node, error) {
	placeholder := o.Node().(*ir.ThisType)
	meta := placeholder.Meta.With(ir.TagThisType)

	scope, ok := o.FindAncestor(func(n ir.Node) bool {
		switch n.(type) {
		case *ir.Class, *ir.Interface, *ir.Function:
			return true
		}
		return false
	})
	if !ok {
		return r.topType(o, placeholder, meta, "no enclosing declaration"), nil
	}

	switch s := scope.(type) {
	case *ir.Class:
		return reference(s.Name, s.TypeParameters, s.UID, placeholder.Nullable, meta), nil
	case *ir.Interface:
		if s.Generated {
			return r.topType(o, placeholder, meta, "generated interface"), nil
		}
		return reference(s.Name, s.TypeParameters, s.UID, placeholder.Nullable, meta), nil
	case *ir.Function:
		if s.Extend == nil {
			return r.topType(o, placeholder, meta, "function without receiver"), nil
		}
		return &ir.TypeValue{
			Value:         s.Extend.Name,
			Params:        bare(s.Extend.TypeParameters),
			TypeReference: ir.RefTo(s.UID),
			Nullable:      placeholder.Nullable,
			Meta:          meta,
		}, nil
	}
	return r.topType(o, placeholder, meta, "unreachable"), nil
}

func (r *resolver) topType(o *owner.Owner, t *ir.ThisType, meta ir.Provenance, reason string) *ir.TypeValue {
	if r.logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		r.logger.Debugw("Self-type resolved to top type",
			logger.FieldOwner, o.Path(),
			logger.FieldFallback, reason)
	}
	return ir.TopType(r.top, t.Nullable, meta)
}

func reference(n name.Entity, tps []*ir.TypeParameter, uid ir.UID, nullable bool, meta ir.Provenance) *ir.TypeValue {
	names := make([]name.Entity, len(tps))
	for i, tp := range tps {
		names[i] = tp.Name
	}
	return &ir.TypeValue{
		Value:         n,
		Params:        bare(names),
		TypeReference: ir.RefTo(uid),
		Nullable:      nullable,
		Meta:          meta,
	}
}

// bare applies no constraints or arguments: a type parameter T becomes the
// type T.
func bare(names []name.Entity) []ir.Type {
	if len(names) == 0 {
		return nil
	}
	out := make([]ir.Type, len(names))
	for i, n := range names {
		out[i] = &ir.TypeValue{Value: n}
	}
	return out
}

// Remaining counts self-type placeholders left under root.
func Remaining(root ir.Node) int {
	return ir.Count(root, func(n ir.Node) bool {
		_, ok := n.(*ir.ThisType)
		return ok
	})
}
