package config

// Default values applied to fields left empty in the file.
const (
	DefaultIntervalMs = 500
	MaxIntervalMs     = 3_600_000
	DefaultAlgorithm  = "kruskal"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultAddr       = ":8080"
	DefaultGenerator  = "grid:3x3"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{Server: ServerConf{Metrics: true}, Layout: LayoutConf{Enabled: true}}
	applyDefaults(cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Playback.IntervalMs == 0 {
		cfg.Playback.IntervalMs = DefaultIntervalMs
	}
	if cfg.Playback.Algorithm == "" {
		cfg.Playback.Algorithm = DefaultAlgorithm
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Layout.Width == 0 {
		cfg.Layout.Width = 800
	}
	if cfg.Layout.Height == 0 {
		cfg.Layout.Height = 600
	}
	if cfg.Layout.Repulsion == 0 {
		cfg.Layout.Repulsion = 100
	}
	if cfg.Layout.Spring == 0 {
		cfg.Layout.Spring = 0.04
	}
	if cfg.Layout.Damping == 0 {
		cfg.Layout.Damping = 0.9
	}
	if cfg.Layout.Gravity == 0 {
		cfg.Layout.Gravity = 0.05
	}
	if cfg.Layout.TickMs == 0 {
		cfg.Layout.TickMs = 16
	}
	if cfg.Layout.Seed == 0 {
		cfg.Layout.Seed = 1
	}
	if cfg.Graph.File == "" && cfg.Graph.Generator == "" {
		cfg.Graph.Generator = DefaultGenerator
	}
}
