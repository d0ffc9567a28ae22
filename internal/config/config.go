// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads typemap settings from typemap.yaml, TYPEMAP_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the typemap configuration file.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Lob struct {
		// StreamBinding overrides the dialect's LOB binding when set.
		StreamBinding *bool `mapstructure:"stream_binding" yaml:"stream_binding,omitempty"`
	} `mapstructure:"lob" yaml:"lob"`
	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`
	Language string `mapstructure:"language" yaml:"language"`
}

// Defaults are the values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "file:typemap?mode=memory&cache=shared",
		"log.level":     "info",
		"language":      "en",
	}
}

// envOnlyKeys have no default because unset must stay distinguishable from
// false, so the environment has to be bound to them explicitly.
var envOnlyKeys = []string{"lob.stream_binding"}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Typemap")
		default:
			configDir = "/etc/typemap"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "typemap")
	}

	return filepath.Join(configDir, "typemap.yaml"), nil
}

// LoadConfig merges defaults, the first typemap.yaml found (or the explicit
// file), TYPEMAP_* environment variables and the command's flags into T.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("typemap")
	v.SetConfigType("yaml")

	// An explicit --config file takes precedence over the search paths.
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("typemap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envOnlyKeys {
		if err := v.BindEnv(key); err != nil {
			return c, err
		}
	}

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile writes c to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// The DSN may carry credentials.
	return os.WriteFile(path, data, 0600)
}
