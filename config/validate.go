package config

import (
	"strings"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/name"
)

// Validate checks value ranges. Pass names are checked when the pipeline
// is built.
func (c *Config) Validate() error {
	if len(c.Pipeline.Passes) == 0 {
		return invalid("pipeline.passes cannot be empty")
	}
	for i, p := range c.Pipeline.Passes {
		if strings.TrimSpace(p) == "" {
			return invalid("pipeline.passes[%d] is empty", i)
		}
	}
	if c.Pipeline.Workers < 0 {
		return invalid("pipeline.workers must be >= 0, got %d", c.Pipeline.Workers)
	}

	if c.Escape.Quote == "" {
		return invalid("escape.quote cannot be empty")
	}
	if strings.ContainsAny(c.Escape.SpecialCharacters, c.Escape.Quote) {
		return invalid("escape.special_characters %q overlaps escape.quote %q", c.Escape.SpecialCharacters, c.Escape.Quote)
	}
	for i, w := range c.Escape.ReservedWords {
		if w == "" {
			return invalid("escape.reserved_words[%d] is empty", i)
		}
	}

	if _, err := name.Parse(c.ThisType.TopType); err != nil {
		return errors.Mark(errors.Wrap(err, "this_type.top_type"), errors.ErrInvalidConfig)
	}

	if c.Log.Verbosity < 0 {
		return invalid("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidConfig, format, args...)
}
