package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/lowering/escape"
	"github.com/teranos/declower/lowering/thistype"
)

// DefaultPasses is the pass order used when none is configured.
var DefaultPasses = []string{escape.PassName, thistype.PassName}

// SetDefaults configures default values for every option.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.passes", DefaultPasses)
	v.SetDefault("pipeline.workers", 1)
	v.SetDefault("pipeline.flatten", false)

	v.SetDefault("escape.reserved_words", escape.DefaultReservedWords)
	v.SetDefault("escape.special_characters", escape.DefaultSpecialCharacters)
	v.SetDefault("escape.quote", escape.DefaultQuote)
	v.SetDefault("escape.fail_on_collision", false)

	v.SetDefault("this_type.top_type", ir.TopTypeName)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}
