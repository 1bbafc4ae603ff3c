// Package config provides YAML-based configuration for the host
// platform surface: frame rate, storage location, and presentation
// options. Simulation tunables (gravity, impulse, pipe geometry,
// difficulty tiers) are compile-time constants in internal/game and are
// deliberately not configurable here.
package config

// Config is the platform configuration.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Countdown CountdownConfig `yaml:"countdown"`
	Storage   StorageConfig   `yaml:"storage"`
}

// DisplayConfig controls the simulator's presentation loop.
type DisplayConfig struct {
	FPS     int  `yaml:"fps"`      // Target frame rate (default 60)
	ShowFPS bool `yaml:"show_fps"` // Show a frame counter in the footer
}

// CountdownConfig controls pre-game countdown behavior.
type CountdownConfig struct {
	// SkipOnTap lets a tap end the countdown early. Off by default.
	SkipOnTap bool `yaml:"skip_on_tap"`
}

// StorageConfig controls score persistence.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}
