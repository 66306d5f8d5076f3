package config

// Default returns the configuration matching the site's observed timings.
func Default() *Config {
	return &Config{
		FadeMS:       800,
		PaintDelayMS: 50,

		MenuCloseDelayMS: 250,
		SectionResetMS:   300,
		OutsideTapArmMS:  100,

		IntroHoldMS:      3000,
		ArrowDecayMS:     1000,
		ResizeDebounceMS: 200,
		SlideCooldownMS:  300,

		SafeZoneInsetPct: 12,
		MediaHeightPct:   40,

		BeltBreakpointCols: 80,
		GridPriorityCount:  8,

		SwipeMinDistance: 50,
		SwipeMinVelocity: 0.5,

		Loop:        true,
		AutoAdvance: false,
	}
}
