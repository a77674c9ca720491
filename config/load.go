package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/logger"
)

// Load reads configuration from every source. The result is validated.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v, configPaths())

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithViper decodes configuration from a prepared viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile reads one TOML file over the defaults. Environment variables
// are not consulted.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

// FindProjectConfig walks up from dir looking for declower.toml and returns
// its path, or "" if none exists.
func FindProjectConfig(dir string) string {
	for {
		candidate := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func configPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, UserFileName))
	}
	if wd, err := os.Getwd(); err == nil {
		if project := FindProjectConfig(wd); project != "" {
			paths = append(paths, project)
		}
	}
	return paths
}

// mergeConfigFiles applies each existing file in order, later files winning.
func mergeConfigFiles(v *viper.Viper, paths []string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		file := viper.New()
		file.SetConfigFile(path)
		file.SetConfigType("toml")
		if err := file.ReadInConfig(); err != nil {
			logger.Warnw("Skipping unreadable config file",
				logger.FieldFile, path,
				logger.FieldError, err)
			continue
		}
		if err := v.MergeConfigMap(file.AllSettings()); err != nil {
			logger.Warnw("Skipping config file",
				logger.FieldFile, path,
				logger.FieldError, err)
		}
	}
}
