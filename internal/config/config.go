// Package config loads the screen reader's YAML configuration: default
// shell, initial symbol level, speech driver selection, and keybinding
// overrides layered on top of internal/keymap's defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lector/internal/commands"
	"lector/internal/keymap"
	"lector/internal/symbols"
)

// Config is the top-level shape of ~/.lector/config.yaml.
type Config struct {
	Shell        string            `yaml:"shell,omitempty"`
	SymbolLevel  string            `yaml:"symbol_level,omitempty"`
	SpeechDriver string            `yaml:"speech_driver,omitempty"`
	Keybindings  map[string]string `yaml:"keybindings,omitempty"`
	Schedule     []ReminderConfig  `yaml:"schedule,omitempty"`
}

// ReminderConfig is one entry of the config's recurring-announcement list,
// fed to internal/schedule.
type ReminderConfig struct {
	Message string `yaml:"message"`
	RRule   string `yaml:"rrule"`
}

// ConfigDir returns the lector configuration directory (~/.lector/).
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".lector")
	}
	return filepath.Join(home, ".lector")
}

// Load reads the config from ~/.lector/config.yaml.
// If the file does not exist, it returns an empty Config with no error.
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(ConfigDir(), "config.yaml"))
}

// LoadFrom reads the config from the given path.
// If the file does not exist, it returns an empty Config with no error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.SymbolLevel != "" {
		if _, ok := ParseSymbolLevel(c.SymbolLevel); !ok {
			return fmt.Errorf("symbol_level: invalid value %q", c.SymbolLevel)
		}
	}
	for key, name := range c.Keybindings {
		if key == "" {
			return fmt.Errorf("keybindings: empty key sequence not permitted")
		}
		if _, ok := commands.ByName[name]; !ok {
			return fmt.Errorf("keybindings: key %q: unknown action %q", key, name)
		}
	}
	for i, r := range c.Schedule {
		if r.Message == "" {
			return fmt.Errorf("schedule[%d]: message is required", i)
		}
		if r.RRule == "" {
			return fmt.Errorf("schedule[%d]: rrule is required", i)
		}
	}
	return nil
}

// ParseSymbolLevel maps a config-file level name to a symbols.Level.
// "default" and "all" both resolve to symbols.LevelAll, per spec's
// CLI default of "all".
func ParseSymbolLevel(name string) (symbols.Level, bool) {
	switch name {
	case "none":
		return symbols.LevelNone, true
	case "some":
		return symbols.LevelSome, true
	case "most":
		return symbols.LevelMost, true
	case "all", "default":
		return symbols.LevelAll, true
	case "character":
		return symbols.LevelCharacter, true
	default:
		return 0, false
	}
}

// SymbolLevelOrDefault returns the configured symbol level, or
// symbols.LevelAll if unset or invalid.
func (c *Config) SymbolLevelOrDefault() symbols.Level {
	level, ok := ParseSymbolLevel(c.SymbolLevel)
	if !ok {
		return symbols.LevelAll
	}
	return level
}

// ApplyKeybindings overrides b with every key -> action-name override in
// the config, in addition to the defaults keymap.New already populated.
func (c *Config) ApplyKeybindings(b *keymap.Bindings) error {
	for key, name := range c.Keybindings {
		action, ok := commands.ByName[name]
		if !ok {
			return fmt.Errorf("keybindings: key %q: unknown action %q", key, name)
		}
		b.SetBuiltinBinding(key, action)
	}
	return nil
}
