package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type toolManifest struct {
	Path   string
	Root   string
	Config toolConfig
}

type toolConfig struct {
	Output outputConfig `toml:"output"`
	Batch  batchConfig  `toml:"batch"`
}

type outputConfig struct {
	Format string `toml:"format"`
}

type batchConfig struct {
	Jobs int    `toml:"jobs"`
	UI   string `toml:"ui"`
}

// findSpvliftToml walks from startDir to the filesystem root looking for the
// nearest spvlift.toml.
func findSpvliftToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "spvlift.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadToolManifest(startDir string) (*toolManifest, bool, error) {
	path, ok, err := findSpvliftToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg toolConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &toolManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
