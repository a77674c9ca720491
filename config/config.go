// Package config loads declower settings from TOML files and the
// environment.
//
// Sources, lowest precedence first: built-in defaults, ~/.declower.toml,
// the nearest declower.toml found by walking up from the working
// directory, then DECLOWER_* environment variables
// (DECLOWER_PIPELINE_WORKERS=4, DECLOWER_THIS_TYPE_TOP_TYPE=kotlin.Any).
package config

// Config is the complete declower configuration.
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline" toml:"pipeline" json:"pipeline" yaml:"pipeline"`
	Escape   EscapeConfig   `mapstructure:"escape" toml:"escape" json:"escape" yaml:"escape"`
	ThisType ThisTypeConfig `mapstructure:"this_type" toml:"this_type" json:"this_type" yaml:"this_type"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// PipelineConfig selects and schedules passes.
type PipelineConfig struct {
	Passes  []string `mapstructure:"passes" toml:"passes" json:"passes" yaml:"passes"`     // run in order
	Workers int      `mapstructure:"workers" toml:"workers" json:"workers" yaml:"workers"` // per-module declaration workers; 0 or 1 = sequential
	Flatten bool     `mapstructure:"flatten" toml:"flatten" json:"flatten" yaml:"flatten"` // flatten the lowered tree into a module list
}

// EscapeConfig is the identifier escaping profile.
type EscapeConfig struct {
	ReservedWords     []string `mapstructure:"reserved_words" toml:"reserved_words" json:"reserved_words" yaml:"reserved_words"`
	SpecialCharacters string   `mapstructure:"special_characters" toml:"special_characters" json:"special_characters" yaml:"special_characters"`
	Quote             string   `mapstructure:"quote" toml:"quote" json:"quote" yaml:"quote"`
	FailOnCollision   bool     `mapstructure:"fail_on_collision" toml:"fail_on_collision" json:"fail_on_collision" yaml:"fail_on_collision"`
}

// ThisTypeConfig configures self-type resolution.
type ThisTypeConfig struct {
	TopType string `mapstructure:"top_type" toml:"top_type" json:"top_type" yaml:"top_type"` // dotted name
}

// LogConfig configures the global logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // same scale as -v flags
}

// File names searched for configuration.
const (
	ProjectFileName = "declower.toml"
	UserFileName    = ".declower.toml"
	EnvPrefix       = "DECLOWER"
)
