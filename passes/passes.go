// Package passes maps pass names to constructors so pipelines can be
// assembled from configuration.
package passes

import (
	"slices"
	"strings"

	"github.com/teranos/declower/config"
	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/lowering"
	"github.com/teranos/declower/lowering/escape"
	"github.com/teranos/declower/lowering/thistype"
	"github.com/teranos/declower/name"
)

// Factory builds a configured pass.
type Factory func(cfg *config.Config) (lowering.Pass, error)

var registry = map[string]Factory{
	escape.PassName:   buildEscape,
	thistype.PassName: buildThisType,
}

// Names returns the registered pass names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Build constructs the named pass. A nil cfg means defaults.
func Build(passName string, cfg *config.Config) (lowering.Pass, error) {
	factory, ok := registry[strings.TrimSpace(passName)]
	if !ok {
		err := errors.Wrapf(errors.ErrUnknownPass, "%q", passName)
		return nil, errors.WithHintf(err, "registered passes: %s", strings.Join(Names(), ", "))
	}
	if cfg == nil {
		cfg = config.Default()
	}
	pass, err := factory(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "build pass %s", passName)
	}
	return pass, nil
}

// Pipeline builds cfg.Pipeline.Passes in order.
func Pipeline(cfg *config.Config) ([]lowering.Pass, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	out := make([]lowering.Pass, 0, len(cfg.Pipeline.Passes))
	for _, n := range cfg.Pipeline.Passes {
		pass, err := Build(n, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, pass)
	}
	return out, nil
}

func buildEscape(cfg *config.Config) (lowering.Pass, error) {
	opts := []escape.Option{
		escape.WithProfile(escape.Profile{
			ReservedWords:     cfg.Escape.ReservedWords,
			SpecialCharacters: cfg.Escape.SpecialCharacters,
			Quote:             cfg.Escape.Quote,
		}),
		escape.WithLoweringOptions(loweringOptions(cfg)...),
	}
	if cfg.Escape.FailOnCollision {
		opts = append(opts, escape.FailOnCollision())
	}
	return escape.New(opts...), nil
}

func buildThisType(cfg *config.Config) (lowering.Pass, error) {
	top, err := name.Parse(cfg.ThisType.TopType)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "this_type.top_type"), errors.ErrInvalidConfig)
	}
	return thistype.New(
		thistype.WithTopType(top),
		thistype.WithLoweringOptions(loweringOptions(cfg)...),
	), nil
}

func loweringOptions(cfg *config.Config) []lowering.Option {
	return []lowering.Option{
		lowering.WithWorkers(cfg.Pipeline.Workers),
		lowering.WithVerbosity(cfg.Log.Verbosity),
	}
}
