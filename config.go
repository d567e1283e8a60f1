package pinchpad

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls the app shell and window. Zero values fall back to
// DefaultConfig fields at Run time.
type Config struct {
	Title   string  `toml:"title"`
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Posture string  `toml:"posture"` // "desktop" or "touch"
	Verbose bool    `toml:"verbose"`
	ResetMs float64 `toml:"reset_ms"` // view reset animation duration
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Title:   "pinchpad",
		Width:   1280,
		Height:  720,
		Posture: "desktop",
		ResetMs: 250,
	}
}

// LoadConfig reads a TOML config file, layered over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Width, c.Height)
	}
	switch c.Posture {
	case "desktop", "touch":
	default:
		return fmt.Errorf("unknown posture %q (want desktop or touch)", c.Posture)
	}
	return nil
}

// posture maps the config string to a Posture.
func (c Config) posture() Posture {
	if c.Posture == "touch" {
		return PostureTouch
	}
	return PostureDesktop
}
