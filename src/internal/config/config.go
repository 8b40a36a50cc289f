// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zhiweicoding/devtoolbox/src/internal/x509/certinfo"
	"github.com/zhiweicoding/devtoolbox/src/logger"
)

// EnvConfigFile names the environment variable consulted when no config path is given.
const EnvConfigFile = "CERT_DECODER_CONFIG_FILE"

// DefaultMaxBatch caps the number of certificates decoded in one batch request.
const DefaultMaxBatch = 32

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config is the shared configuration of the CLI and the MCP server.
//
// It is loaded from a JSON or YAML file named by --config or by the
// CERT_DECODER_CONFIG_FILE environment variable, with defaults applied for any
// missing or invalid values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: rendering settings used when a command or tool call does not override them
	Defaults struct {
		// WarnDays: remaining days at or below which a certificate is "expiring soon"
		WarnDays int `json:"warnDays" yaml:"warnDays"`
		// Format: output format, one of text, json, yaml, table
		Format string `json:"format" yaml:"format"`
		// TimeFormat: Go time layout for validity dates in text and table output
		TimeFormat string `json:"timeFormat" yaml:"timeFormat"`
	} `json:"defaults" yaml:"defaults"`

	// Logging: diagnostic output settings
	Logging struct {
		// Format: text for human-readable lines, json for structured lines
		Format string `json:"format" yaml:"format"`
		// Silent: drop all diagnostics
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"logging" yaml:"logging"`

	// MCP: server settings
	MCP struct {
		// MaxBatch: maximum certificates accepted by batch_decode_certificates
		MaxBatch int `json:"maxBatch" yaml:"maxBatch"`
	} `json:"mcp" yaml:"mcp"`
}

// Default returns a Config holding only default values.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Defaults.WarnDays <= 0 {
		c.Defaults.WarnDays = certinfo.DefaultWarnDays
	}
	if f, err := certinfo.ParseFormat(c.Defaults.Format); err != nil {
		c.Defaults.Format = string(certinfo.FormatText)
	} else {
		c.Defaults.Format = string(f)
	}
	if c.Defaults.TimeFormat == "" {
		c.Defaults.TimeFormat = certinfo.DefaultTimeFormat
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json":
		c.Logging.Format = "json"
	default:
		c.Logging.Format = "text"
	}
	if c.MCP.MaxBatch <= 0 {
		c.MCP.MaxBatch = DefaultMaxBatch
	}
}

// detectFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything other than .yaml or .yml is read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into c using the parser for f.
func unmarshal(data []byte, c *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads the configuration from a JSON or YAML file or returns defaults.
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//
// Returns:
//   - *Config: the loaded configuration with defaults applied
//   - error: if the file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. CERT_DECODER_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults (if a path is known)
//  4. Invalid values fall back to their defaults
func Load(path string) (*Config, error) {
	c := &Config{}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshal(data, c, detectFormat(path)); err != nil {
			return nil, err
		}
	}

	c.applyDefaults()
	return c, nil
}

// OutputFormat returns the configured default output format.
func (c *Config) OutputFormat() certinfo.Format {
	f, err := certinfo.ParseFormat(c.Defaults.Format)
	if err != nil {
		return certinfo.FormatText
	}
	return f
}

// RenderOptions returns the rendering options derived from Defaults.
func (c *Config) RenderOptions() certinfo.RenderOptions {
	return certinfo.RenderOptions{
		WarnDays:   c.Defaults.WarnDays,
		TimeFormat: c.Defaults.TimeFormat,
	}
}

// NewLogger returns the logger selected by Logging, writing to w.
func (c *Config) NewLogger(w io.Writer) logger.Logger {
	if c.Logging.Format == "json" {
		return logger.NewJSONLogger(w, c.Logging.Silent)
	}

	l := logger.NewCLILogger()
	if c.Logging.Silent || w == nil {
		l.SetOutput(io.Discard)
	} else {
		l.SetOutput(w)
	}
	return l
}
