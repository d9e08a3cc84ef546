// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInputFile is scanned when no path is given on the command line.
const DefaultInputFile = "curriculo_exemplo.txt"

// Config represents the application configuration. It only covers how the
// report is presented; the pattern table is fixed.
type Config struct {
	Defaults struct {
		Format      string `yaml:"format"`
		NoColor     bool   `yaml:"no_color"`
		Debug       bool   `yaml:"debug"`
		DefaultFile string `yaml:"default_file"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Empty or comment-only documents decode to io.EOF and keep the defaults.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Defaults.DefaultFile == "" {
		config.Defaults.DefaultFile = DefaultInputFile
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	config := &Config{}
	config.Defaults.Format = "text"
	config.Defaults.NoColor = false
	config.Defaults.Debug = false
	config.Defaults.DefaultFile = DefaultInputFile
	return config
}

// ValidateConfig checks values that yaml decoding cannot.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if !strings.EqualFold(config.Defaults.Format, "text") {
		return fmt.Errorf("unsupported format %q: only text reports are available", config.Defaults.Format)
	}
	config.Defaults.Format = "text"
	return nil
}

// LoadConfigWithFallback loads configFile, or the first file FindConfigFile
// locates. On any error it returns the defaults together with the error so
// callers can warn and carry on.
func LoadConfigWithFallback(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

// FindConfigFile looks for a configuration file in the working directory and
// then in the user's home directory. It returns "" when none exists.
func FindConfigFile() string {
	home, _ := os.UserHomeDir()
	return findConfigIn(".", home)
}

func findConfigIn(workDir, homeDir string) string {
	for _, name := range []string{"lgpd-scan.yaml", "lgpd-scan.yml", ".lgpd-scan.yaml", ".lgpd-scan.yml"} {
		candidate := filepath.Join(workDir, name)
		if fileExists(candidate) {
			return candidate
		}
	}

	if homeDir != "" {
		for _, name := range []string{"config.yaml", "config.yml"} {
			candidate := filepath.Join(homeDir, ".lgpd-scan", name)
			if fileExists(candidate) {
				return candidate
			}
		}
	}

	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
