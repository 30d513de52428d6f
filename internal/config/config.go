// Package config handles configuration for tb-blkdev.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinkerbelle-io/tb-blkdev/internal/logging"
	"github.com/tinkerbelle-io/tb-blkdev/internal/report"
	"github.com/tinkerbelle-io/tb-blkdev/internal/scanner"
)

// DefaultConfigFile is read when no path is given. It may be absent.
const DefaultConfigFile = "/etc/tb-blkdev/config.yaml"

// Config holds all tb-blkdev configuration.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Platform string      `yaml:"platform"` // "auto", "linux", "windows", "darwin", "hosted"
	Output   string      `yaml:"output"`   // "text", "json", "yaml"
	Tools    ToolsConfig `yaml:"tools"`
}

// ToolsConfig overrides native tool executables.
type ToolsConfig struct {
	Lsblk    string `yaml:"lsblk"`
	Diskpart string `yaml:"diskpart"`
	Diskutil string `yaml:"diskutil"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Platform: "auto",
		Output:   "text",
	}
}

// Load reads the YAML config at path and applies environment overrides.
// An empty path falls back to TB_BLKDEV_CONFIG, then DefaultConfigFile;
// only the default file may be missing.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv("TB_BLKDEV_CONFIG")
	}
	if path == "" {
		path = DefaultConfigFile
		explicit = false
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TB_BLKDEV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TB_BLKDEV_PLATFORM"); v != "" {
		cfg.Platform = v
	}
	if v := os.Getenv("TB_BLKDEV_OUTPUT"); v != "" {
		cfg.Output = v
	}
}

// Validate checks every value by name. Platform detection is left to the
// caller, so "auto" is accepted on any host.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !isAuto(c.Platform) {
		if _, err := scanner.ParsePlatform(c.Platform); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if _, err := report.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func isAuto(platform string) bool {
	p := strings.ToLower(strings.TrimSpace(platform))
	return p == "" || p == "auto"
}
