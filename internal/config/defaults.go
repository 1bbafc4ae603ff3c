package config

import (
	_ "embed"
)

//go:embed defaults/flappad.yaml
var defaultYAML []byte

// Default returns the hardcoded platform configuration, used as the
// last-resort fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:     60,
			ShowFPS: false,
		},
		Countdown: CountdownConfig{
			SkipOnTap: false,
		},
		Storage: StorageConfig{
			DBPath: "~/.flappad/scores.db",
		},
	}
}
