package owners

import (
	"errors"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DialectSectioned selects the sectioned ownership-file dialect.
const DialectSectioned = "sectioned"

type Config struct {
	// Paths overrides the conventional ownership-file search order.
	Paths []string `toml:"paths"`
	// Ignore lists directories excluded from changed-file enumeration.
	Ignore []string `toml:"ignore"`
	// Dialect selects the ownership-file dialect; empty means the plain
	// (default) dialect.
	Dialect string `toml:"dialect"`
	// BaseRef is the ref changed files are diffed against.
	BaseRef string `toml:"base_ref"`
}

func (c *Config) Sectioned() bool {
	return c.Dialect == DialectSectioned
}

// ReadConfig reads ownership.toml from the repo root. A missing file yields
// the default config with no error; an unreadable or invalid file yields
// the default config and the underlying error.
func ReadConfig(path string) (*Config, error) {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	defaultConfig := &Config{
		Paths:   []string{},
		Ignore:  []string{},
		Dialect: "",
		BaseRef: "main",
	}

	fileName := path + "ownership.toml"
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig, err
	}
	config := defaultConfig
	err = toml.Unmarshal(file, &config)
	if err != nil {
		return defaultConfig, err
	}
	if config.BaseRef == "" {
		config.BaseRef = "main"
	}
	return config, nil
}
