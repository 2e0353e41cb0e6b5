// Copyright 2025 Christopher O'Connell
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads modal's settings and named dialogs
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/paths"
)

// ErrDialogNotFound is returned when a named dialog is not configured
var ErrDialogNotFound = errors.New("dialog not found")

// Config is the decoded config.yml
type Config struct {
	Dialog  DialogConfig                 `mapstructure:"dialog"`
	Labels  dialog.Labels                `mapstructure:"labels"`
	Log     LogConfig                    `mapstructure:"log"`
	Dialogs map[string]dialog.Descriptor `mapstructure:"dialogs"`
}

// DialogConfig controls how dialogs are drawn and share the page
type DialogConfig struct {
	Width      int    `mapstructure:"width"`       // Dialog box width in cells
	ScrollLock string `mapstructure:"scroll_lock"` // refcount or shared
	AltScreen  bool   `mapstructure:"alt_screen"`  // Run in the alternate screen buffer
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dialog.width", 60)
	v.SetDefault("dialog.scroll_lock", string(dialog.ScrollRefCounted))
	v.SetDefault("dialog.alt_screen", true)
	v.SetDefault("labels.confirm", dialog.DefaultLabels.Confirm)
	v.SetDefault("labels.cancel", dialog.DefaultLabels.Cancel)
	v.SetDefault("labels.close", dialog.DefaultLabels.Close)
	v.SetDefault("log.file", paths.LogFile())
	v.SetDefault("log.level", "info")
}

// Init points v at path (or the default config file), wires MODAL_* env
// overrides and reads the file. A missing file is not an error.
func Init(v *viper.Viper, path string) error {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(paths.ConfigFile())
	}
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MODAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load decodes v into a Config and checks the values it cannot carry as types
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := cfg.ScrollPolicy(); err != nil {
		return nil, err
	}
	for name, d := range cfg.Dialogs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("dialog %q: %w", name, err)
		}
	}
	return &cfg, nil
}

// ScrollPolicy parses Dialog.ScrollLock
func (c *Config) ScrollPolicy() (dialog.ScrollPolicy, error) {
	return dialog.ParseScrollPolicy(c.Dialog.ScrollLock)
}

// DialogNames returns the configured dialog names, sorted
func (c *Config) DialogNames() []string {
	names := make([]string, 0, len(c.Dialogs))
	for name := range c.Dialogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named dialog
func (c *Config) Lookup(name string) (dialog.Descriptor, error) {
	d, ok := c.Dialogs[strings.ToLower(name)]
	if !ok {
		return dialog.Descriptor{}, fmt.Errorf("%q: %w", name, ErrDialogNotFound)
	}
	return d, nil
}

// ReadDescriptor loads a single dialog description from a YAML file
func ReadDescriptor(path string) (dialog.Descriptor, error) {
	var d dialog.Descriptor
	content, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("failed to read dialog file: %w", err)
	}
	if err := yaml.Unmarshal(content, &d); err != nil {
		return d, fmt.Errorf("failed to parse dialog file %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("dialog file %s: %w", path, err)
	}
	return d, nil
}

// SaveDialog adds or replaces a named dialog in the config file at path,
// keeping every other setting in the file as it is.
func SaveDialog(path, name string, d dialog.Descriptor) error {
	var configData map[string]interface{}

	if _, err := os.Stat(path); err == nil {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(content, &configData); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if configData == nil {
		configData = make(map[string]interface{})
	}

	dialogs, _ := configData["dialogs"].(map[string]interface{})
	if dialogs == nil {
		dialogs = make(map[string]interface{})
	}
	dialogs[strings.ToLower(name)] = d
	configData["dialogs"] = dialogs

	output, err := yaml.Marshal(configData)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, output, 0644)
}

