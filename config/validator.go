package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphplay/playback"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks ranges and names that defaults cannot repair.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Playback.IntervalMs < 0 || cfg.Playback.IntervalMs > MaxIntervalMs {
		errs = append(errs, fmt.Sprintf("playback.interval_ms must be within (0,%d], got %d",
			MaxIntervalMs, cfg.Playback.IntervalMs))
	}
	if _, err := playback.Lookup(cfg.Playback.Algorithm); err != nil {
		errs = append(errs, fmt.Sprintf("playback.algorithm %q is not one of %s",
			cfg.Playback.Algorithm, strings.Join(playback.Algorithms(), ", ")))
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		errs = append(errs, err.Error())
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", cfg.Log.Format))
	}
	if cfg.Layout.Width < 0 || cfg.Layout.Height < 0 {
		errs = append(errs, "layout.width and layout.height must be positive")
	}
	if cfg.Layout.Damping < 0 || cfg.Layout.Damping > 1 {
		errs = append(errs, fmt.Sprintf("layout.damping must be within [0,1], got %g", cfg.Layout.Damping))
	}
	if cfg.Layout.Repulsion < 0 || cfg.Layout.Spring < 0 || cfg.Layout.Gravity < 0 || cfg.Layout.Noise < 0 {
		errs = append(errs, "layout forces must not be negative")
	}
	if cfg.Layout.TickMs < 0 {
		errs = append(errs, fmt.Sprintf("layout.tick_ms must be positive, got %d", cfg.Layout.TickMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
