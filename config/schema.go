// Package config loads graphplay's YAML configuration and hot-reloads it.
package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Config is the top-level YAML structure.
type Config struct {
	Playback PlaybackConf `yaml:"playback"`
	Log      LogConf      `yaml:"log"`
	Server   ServerConf   `yaml:"server"`
	Layout   LayoutConf   `yaml:"layout"`
	Graph    GraphConf    `yaml:"graph"`
}

// PlaybackConf drives the controller. Both fields are applied live on reload.
type PlaybackConf struct {
	IntervalMs int    `yaml:"interval_ms"`
	Algorithm  string `yaml:"algorithm"`
}

// Interval returns IntervalMs as a duration.
func (p PlaybackConf) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

// LogConf selects the slog handler.
type LogConf struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SlogLevel parses Level.
func (l LogConf) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}

	return lvl, nil
}

// ServerConf configures the HTTP surface.
type ServerConf struct {
	Addr    string `yaml:"addr"`
	Metrics bool   `yaml:"metrics"`
}

// LayoutConf holds the force layout parameters.
type LayoutConf struct {
	Enabled   bool    `yaml:"enabled"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Repulsion float64 `yaml:"repulsion"`
	Spring    float64 `yaml:"spring"`
	Damping   float64 `yaml:"damping"`
	Gravity   float64 `yaml:"gravity"`
	Noise     float64 `yaml:"noise"`
	TickMs    int     `yaml:"tick_ms"`
	Seed      int64   `yaml:"seed"`
}

// Tick returns TickMs as a duration.
func (l LayoutConf) Tick() time.Duration {
	return time.Duration(l.TickMs) * time.Millisecond
}

// GraphConf names the starting graph: a YAML graph file, or a generator
// spec such as "cycle:6" when File is empty.
type GraphConf struct {
	File      string `yaml:"file"`
	Generator string `yaml:"generator"`
	Directed  bool   `yaml:"directed"`
}
