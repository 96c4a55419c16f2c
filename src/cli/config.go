// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/devca/src/internal/helper/gc"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds defaults read from a --config file. Every field is optional;
// a value only applies when the matching flag was not given on the command line.
//
// Example (YAML):
//
//	ca:
//	  ttl: 10y
//	  organization: Example Dev
//	  commonName: Example Dev CA
//	cert:
//	  ttl: 90d
//	  sans: [app.test]
//	  noHostname: true
type Config struct {
	// CA: Defaults for the ca command
	CA struct {
		TTL          string `json:"ttl,omitempty" yaml:"ttl,omitempty"`
		Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
		CommonName   string `json:"commonName,omitempty" yaml:"commonName,omitempty"`
		Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	} `json:"ca" yaml:"ca"`

	// Cert: Defaults for the cert command
	Cert struct {
		TTL          string   `json:"ttl,omitempty" yaml:"ttl,omitempty"`
		Organization string   `json:"organization,omitempty" yaml:"organization,omitempty"`
		CommonName   string   `json:"commonName,omitempty" yaml:"commonName,omitempty"`
		CA           string   `json:"ca,omitempty" yaml:"ca,omitempty"`
		Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
		SANs         []string `json:"sans,omitempty" yaml:"sans,omitempty"`
		NoLocalhost  *bool    `json:"noLocalhost,omitempty" yaml:"noLocalhost,omitempty"`
		NoHostname   *bool    `json:"noHostname,omitempty" yaml:"noHostname,omitempty"`
	} `json:"cert" yaml:"cert"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything that is not .yaml or .yml is read as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads defaults from a JSON or YAML file. An empty configPath
// yields an empty Config, leaving the built-in defaults in place.
//
// TTL values are validated here so a bad file is reported as a configuration
// problem before any key is generated.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}
	if configPath == "" {
		return config, nil
	}

	data, err := gc.ReadFile(configPath)
	if err != nil {
		return nil, &configError{fmt.Errorf("failed to read config file: %w", err)}
	}

	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, &configError{err}
	}

	for field, ttl := range map[string]string{"ca.ttl": config.CA.TTL, "cert.ttl": config.Cert.TTL} {
		if ttl == "" {
			continue
		}
		if _, err := ParseTTL(ttl); err != nil {
			return nil, &configError{fmt.Errorf("config file %s: %s: %w", configPath, field, err)}
		}
	}

	return config, nil
}
