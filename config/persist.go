package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/declower/errors"
)

// backupCount is how many rotated copies Save keeps (.back1 newest).
const backupCount = 3

// Save writes cfg to path as TOML, rotating any existing file into
// path.back1 .. path.back3 first.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func backupPath(path string, n int) string {
	return fmt.Sprintf("%s.back%d", path, n)
}

func createBackup(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(backupPath(path, backupCount)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete %s", backupPath(path, backupCount))
	}
	for n := backupCount - 1; n >= 1; n-- {
		from := backupPath(path, n)
		if _, err := os.Stat(from); err != nil {
			continue
		}
		if err := os.Rename(from, backupPath(path, n+1)); err != nil {
			return errors.Wrapf(err, "failed to rotate %s", from)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(backupPath(path, 1), content, 0644); err != nil {
		return errors.Wrapf(err, "failed to create %s", backupPath(path, 1))
	}
	return nil
}
