package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/SmileWuji/ImTiredOfJQ/jspf/compiler"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the command.
type Config struct {
	MaxDepth   int    `toml:"max_depth" yaml:"max_depth"`
	Lexmachine bool   `toml:"lexmachine" yaml:"lexmachine"`
	Trace      string `toml:"trace" yaml:"trace"`
}

func defaultConfig() Config {
	return Config{Trace: "Error"}
}

// Format is the format of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

func loadConfig(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig(), fmt.Errorf("config: %w", err)
	}
	return parseConfig(content, detectFormat(path))
}

func parseConfig(content []byte, format Format) (Config, error) {
	c := defaultConfig()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &c); err != nil {
			return defaultConfig(), fmt.Errorf("config: YAML parse error: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), &c); err != nil {
			return defaultConfig(), fmt.Errorf("config: TOML parse error: %w", err)
		}
	}
	if c.MaxDepth < 0 {
		return defaultConfig(), fmt.Errorf("config: max_depth must not be negative, is %d", c.MaxDepth)
	}
	return c, nil
}

// options translates the settings into compiler options. A zero max depth
// leaves the compiler default in place.
func (c Config) options() []compiler.Option {
	opts := []compiler.Option{compiler.UseLexmachine(c.Lexmachine)}
	if c.MaxDepth > 0 {
		opts = append(opts, compiler.MaxDepth(c.MaxDepth))
	}
	return opts
}
