package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/lowering/escape"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"escape-identifiers", "lower-this-type"}, cfg.Pipeline.Passes)
	assert.Equal(t, 1, cfg.Pipeline.Workers)
	assert.False(t, cfg.Pipeline.Flatten)
	assert.Equal(t, escape.DefaultReservedWords, cfg.Escape.ReservedWords)
	assert.Equal(t, "$", cfg.Escape.SpecialCharacters)
	assert.Equal(t, "`", cfg.Escape.Quote)
	assert.False(t, cfg.Escape.FailOnCollision)
	assert.Equal(t, "Any", cfg.ThisType.TopType)
	assert.Zero(t, cfg.Log.Verbosity)
	assert.NoError(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultPasses, cfg.Pipeline.Passes)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero workers is sequential", func(c *Config) { c.Pipeline.Workers = 0 }, false},
		{"negative workers", func(c *Config) { c.Pipeline.Workers = -1 }, true},
		{"no passes", func(c *Config) { c.Pipeline.Passes = nil }, true},
		{"blank pass name", func(c *Config) { c.Pipeline.Passes = []string{"escape-identifiers", " "} }, true},
		{"empty quote", func(c *Config) { c.Escape.Quote = "" }, true},
		{"quote is special", func(c *Config) { c.Escape.SpecialCharacters = "$`" }, true},
		{"empty reserved word", func(c *Config) { c.Escape.ReservedWords = []string{"fun", ""} }, true},
		{"no reserved words", func(c *Config) { c.Escape.ReservedWords = nil }, false},
		{"qualified top type", func(c *Config) { c.ThisType.TopType = "kotlin.Any" }, false},
		{"empty top type", func(c *Config) { c.ThisType.TopType = "" }, true},
		{"malformed top type", func(c *Config) { c.ThisType.TopType = "kotlin..Any" }, true},
		{"negative verbosity", func(c *Config) { c.Log.Verbosity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidConfig), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFileName)
	writeFile(t, path, `
[pipeline]
passes = ["lower-this-type"]
workers = 4

[escape]
reserved_words = ["fun", "val"]
fail_on_collision = true

[this_type]
top_type = "kotlin.Any"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"lower-this-type"}, cfg.Pipeline.Passes)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, []string{"fun", "val"}, cfg.Escape.ReservedWords)
	assert.True(t, cfg.Escape.FailOnCollision)
	assert.Equal(t, "`", cfg.Escape.Quote, "unset keys keep their defaults")
	assert.Equal(t, "kotlin.Any", cfg.ThisType.TopType)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[pipeline]\nworkers = -2\n")
	_, err = LoadFromFile(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0750))

	assert.Empty(t, FindProjectConfig(nested))

	path := filepath.Join(root, "a", ProjectFileName)
	writeFile(t, path, "[pipeline]\nworkers = 2\n")
	assert.Equal(t, path, FindProjectConfig(nested))
	assert.Equal(t, path, FindProjectConfig(filepath.Join(root, "a")))
}

func TestLoad_Precedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(project)

	writeFile(t, filepath.Join(home, UserFileName), `
[pipeline]
workers = 2
flatten = true
`)
	writeFile(t, filepath.Join(project, ProjectFileName), `
[pipeline]
workers = 3
`)
	t.Setenv("DECLOWER_THIS_TYPE_TOP_TYPE", "kotlin.Any")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Pipeline.Workers, "project file overrides user file")
	assert.True(t, cfg.Pipeline.Flatten, "user file applies where the project is silent")
	assert.Equal(t, "kotlin.Any", cfg.ThisType.TopType, "environment overrides files")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", ProjectFileName)

	cfg := Default()
	cfg.Pipeline.Workers = 8
	cfg.ThisType.TopType = "kotlin.Any"
	require.NoError(t, Save(path, cfg))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RotatesBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFileName)

	for workers := 1; workers <= 5; workers++ {
		cfg := Default()
		cfg.Pipeline.Workers = workers
		require.NoError(t, Save(path, cfg))
	}

	for n, want := range map[int]int{1: 4, 2: 3, 3: 2} {
		cfg, err := LoadFromFile(backupPath(path, n))
		require.NoError(t, err)
		assert.Equal(t, want, cfg.Pipeline.Workers, "backup %d", n)
	}
	_, err := os.Stat(backupPath(path, 4))
	assert.True(t, os.IsNotExist(err))
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectFileName)
	cfg := Default()
	cfg.Pipeline.Workers = -1

	err := Save(path, cfg)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
