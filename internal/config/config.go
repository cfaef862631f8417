// Package config holds the engine's own TOML-backed configuration:
// default profile-id, preferred presets, log level, and hub-port
// override. It mirrors the teacher's config.Load/Save/Default/Path
// shape, retargeted to this engine's fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"rocinante-hid/internal/capability"
	"rocinante-hid/internal/preset"
)

// Engine holds rocinante-hid's own settings.
type Engine struct {
	DefaultProfileID  string `toml:"default_profile_id"`
	PreferredMouse    string `toml:"preferred_mouse"`    // empty = random
	PreferredKeyboard string `toml:"preferred_keyboard"` // empty = random
	LogLevel          string `toml:"log_level"`
	HubPort           int    `toml:"hub_port"` // 0 = no hub
}

// Default returns the engine's default configuration.
func Default() *Engine {
	return &Engine{
		DefaultProfileID: "default",
		LogLevel:         "info",
		HubPort:          0,
	}
}

// Path returns the XDG-compliant config file path.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "rocinante-hid", "config.toml")
}

// Load reads the config from Path(). If the file doesn't exist, it
// writes and returns the default configuration rather than failing.
func Load() (*Engine, error) {
	path := Path()
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks the engine-specific invariants a hand-edited config
// file can violate: a non-empty preferred preset must both exist in
// the registry and match the slot it's assigned to, and hub_port must
// be a non-negative value (0 disables the hub-topology variant).
func validate(cfg *Engine) error {
	if cfg.PreferredMouse != "" {
		p, ok := preset.ByName(cfg.PreferredMouse)
		if !ok {
			return fmt.Errorf("preferred_mouse %q is not a known preset", cfg.PreferredMouse)
		}
		if p.Kind != capability.KindMouse {
			return fmt.Errorf("preferred_mouse %q is a keyboard preset", cfg.PreferredMouse)
		}
	}

	if cfg.PreferredKeyboard != "" {
		p, ok := preset.ByName(cfg.PreferredKeyboard)
		if !ok {
			return fmt.Errorf("preferred_keyboard %q is not a known preset", cfg.PreferredKeyboard)
		}
		if p.Kind != capability.KindKeyboard {
			return fmt.Errorf("preferred_keyboard %q is a mouse preset", cfg.PreferredKeyboard)
		}
	}

	if cfg.HubPort < 0 {
		return fmt.Errorf("hub_port %d must be non-negative", cfg.HubPort)
	}

	return nil
}

// Save writes cfg to Path(), creating the containing directory if
// necessary.
func Save(cfg *Engine) error {
	path := Path()

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
