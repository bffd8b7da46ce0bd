// Package config persists the engine's user-facing settings as TOML,
// grounded on original_source/core/src/config.rs's Config/load/save shape
// and on the pack's github.com/LeonardoTrapani/hyprvoice config package,
// which resolves its path the same way (os.UserConfigDir, a dedicated
// subdirectory, BurntSushi/toml for (de)serialisation).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ToneRule selects between the modern and traditional diacritic
// placement conventions (spec.md §4.4).
type ToneRule string

const (
	ToneRuleModern      ToneRule = "modern"
	ToneRuleTraditional ToneRule = "traditional"
)

// Method selects the active input method by name, as persisted (spec.md §6).
type Method string

const (
	MethodTelex Method = "telex"
	MethodVNI   Method = "vni"
)

// Config is the full persisted configuration surface (spec.md §6
// "Persisted configuration schema").
type Config struct {
	Enabled               bool     `toml:"enabled"`
	Method                Method   `toml:"method"`
	ToneRule              ToneRule `toml:"tone_rule"`
	EnableValidation      bool     `toml:"enable_validation"`
	EnableDoubleKeyRevert bool     `toml:"enable_double_key_revert"`
	EnableWAsVowel        bool     `toml:"enable_w_as_vowel"`
	EnableAutoCapitalize  bool     `toml:"enable_auto_capitalize"`
	EnableAutoRestore     bool     `toml:"enable_auto_restore"`
}

// Default returns the engine's out-of-the-box configuration, matching
// spec.md §6's persisted defaults exactly: auto-capitalisation and
// English auto-restore both start disabled, everything else on.
func Default() Config {
	return Config{
		Enabled:               true,
		Method:                MethodTelex,
		ToneRule:              ToneRuleModern,
		EnableValidation:      true,
		EnableDoubleKeyRevert: true,
		EnableWAsVowel:        true,
		EnableAutoCapitalize:  false,
		EnableAutoRestore:     false,
	}
}

// Path returns the platform configuration file path: an XDG-style
// "gonhanh/config.toml" under os.UserConfigDir(), matching the
// subdirectory naming convention used by config.rs's config_path().
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gonhanh", "config.toml"), nil
}

// Load reads the configuration file, falling back to Default() if it is
// missing, unreadable, or malformed - a persisted engine should never
// fail to start over a bad config file.
func Load() Config {
	path, err := Path()
	if err != nil {
		return Default()
	}
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes cfg to the platform configuration path, creating its parent
// directory if necessary.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
