package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file (if present), then
// overlays environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// FOLIO_FADE_MS -> fade_ms, etc.
	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values. Durations
// are millisecond counts; zero is allowed only where a zero delay is
// meaningful (none of the choreography delays may be negative).
func (c *Config) Validate() error {
	for _, d := range []struct {
		name string
		ms   int
	}{
		{"fade_ms", c.FadeMS},
		{"paint_delay_ms", c.PaintDelayMS},
		{"menu_close_delay_ms", c.MenuCloseDelayMS},
		{"section_reset_ms", c.SectionResetMS},
		{"outside_tap_arm_ms", c.OutsideTapArmMS},
		{"intro_hold_ms", c.IntroHoldMS},
		{"arrow_decay_ms", c.ArrowDecayMS},
		{"resize_debounce_ms", c.ResizeDebounceMS},
		{"slide_cooldown_ms", c.SlideCooldownMS},
	} {
		if d.ms < 0 {
			return fmt.Errorf("%s must be non-negative", d.name)
		}
	}
	if c.IntroHoldMS == 0 {
		return fmt.Errorf("intro_hold_ms must be positive")
	}
	if c.SafeZoneInsetPct < 0 || c.SafeZoneInsetPct >= 50 {
		return fmt.Errorf("safe_zone_inset_pct must be in [0, 50)")
	}
	if c.MediaHeightPct <= 0 || c.MediaHeightPct > 100 {
		return fmt.Errorf("media_height_pct must be in (0, 100]")
	}
	if c.BeltBreakpointCols <= 0 {
		return fmt.Errorf("belt_breakpoint_cols must be positive")
	}
	if c.GridPriorityCount < 0 {
		return fmt.Errorf("grid_priority_count must be non-negative")
	}
	if c.SwipeMinDistance <= 0 || c.SwipeMinVelocity <= 0 {
		return fmt.Errorf("swipe thresholds must be positive")
	}
	return nil
}
