package config

import "time"

// Config is the top-level folio configuration, corresponding to .folio.yml.
// All *MS fields are choreography delays in milliseconds; the defaults match
// the site's CSS transition timings, so changing them changes how the UI
// feels, not what it does.
type Config struct {
	// FadeMS is the page fade-out duration the transition controller waits
	// for before performing a navigation.
	FadeMS int `yaml:"fade_ms" koanf:"fade_ms"`
	// PaintDelayMS guarantees the hidden state is painted before a fade-in
	// starts, so the transition is not skipped.
	PaintDelayMS int `yaml:"paint_delay_ms" koanf:"paint_delay_ms"`

	MenuCloseDelayMS int `yaml:"menu_close_delay_ms" koanf:"menu_close_delay_ms"`
	SectionResetMS   int `yaml:"section_reset_ms" koanf:"section_reset_ms"`
	OutsideTapArmMS  int `yaml:"outside_tap_arm_ms" koanf:"outside_tap_arm_ms"`

	IntroHoldMS      int `yaml:"intro_hold_ms" koanf:"intro_hold_ms"`
	ArrowDecayMS     int `yaml:"arrow_decay_ms" koanf:"arrow_decay_ms"`
	ResizeDebounceMS int `yaml:"resize_debounce_ms" koanf:"resize_debounce_ms"`
	SlideCooldownMS  int `yaml:"slide_cooldown_ms" koanf:"slide_cooldown_ms"`

	// SafeZoneInsetPct is the per-side viewport inset (percent) scattered
	// media must stay inside.
	SafeZoneInsetPct float64 `yaml:"safe_zone_inset_pct" koanf:"safe_zone_inset_pct"`
	// MediaHeightPct is the scattered media height as a percent of the
	// viewport height.
	MediaHeightPct float64 `yaml:"media_height_pct" koanf:"media_height_pct"`

	// BeltBreakpointCols switches the menu belt to its compact (tap/swipe)
	// input model when the terminal is at most this many columns wide.
	BeltBreakpointCols int `yaml:"belt_breakpoint_cols" koanf:"belt_breakpoint_cols"`

	// GridPriorityCount flags the first N grid thumbnails for eager rendering.
	GridPriorityCount int `yaml:"grid_priority_count" koanf:"grid_priority_count"`

	// Swipe classification thresholds (row units / row units per ms).
	SwipeMinDistance float64 `yaml:"swipe_min_distance" koanf:"swipe_min_distance"`
	SwipeMinVelocity float64 `yaml:"swipe_min_velocity" koanf:"swipe_min_velocity"`

	// Loop wraps slideshows around; when false, advancing past the last
	// slide requests the next project instead.
	Loop bool `yaml:"loop" koanf:"loop"`
	// AutoAdvance makes the intro sequencer navigate to the next project
	// after the hold elapses (wrapping to the first at the end).
	AutoAdvance bool `yaml:"auto_advance" koanf:"auto_advance"`
}

func (c *Config) Fade() time.Duration       { return time.Duration(c.FadeMS) * time.Millisecond }
func (c *Config) PaintDelay() time.Duration { return time.Duration(c.PaintDelayMS) * time.Millisecond }
func (c *Config) MenuCloseDelay() time.Duration {
	return time.Duration(c.MenuCloseDelayMS) * time.Millisecond
}
func (c *Config) SectionReset() time.Duration {
	return time.Duration(c.SectionResetMS) * time.Millisecond
}
func (c *Config) OutsideTapArm() time.Duration {
	return time.Duration(c.OutsideTapArmMS) * time.Millisecond
}
func (c *Config) IntroHold() time.Duration  { return time.Duration(c.IntroHoldMS) * time.Millisecond }
func (c *Config) ArrowDecay() time.Duration { return time.Duration(c.ArrowDecayMS) * time.Millisecond }
func (c *Config) ResizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMS) * time.Millisecond
}
func (c *Config) SlideCooldown() time.Duration {
	return time.Duration(c.SlideCooldownMS) * time.Millisecond
}
