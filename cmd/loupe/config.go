package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"loupe/internal/pipeline"
)

const configFileName = "loupe.toml"

// fileConfig is the on-disk shape of loupe.toml: a [run] table whose keys
// match the pipeline options.
type fileConfig struct {
	Run pipeline.Config `toml:"run"`
}

// loadConfig resolves the run configuration: documented defaults, then
// loupe.toml from the working directory if present. Flags are applied on top
// by the command itself.
func loadConfig() (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	data, err := os.ReadFile(configFileName)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	fc := fileConfig{Run: cfg}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, err
	}
	return fc.Run, nil
}
