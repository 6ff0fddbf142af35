package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Factory defaults: Mk.5 belts, Mk.1 pipes, and the machine batch
	// sizes the planner's blueprints are laid out in
	if cfg.Factory.BeltItemsPerMinute == 0 {
		cfg.Factory.BeltItemsPerMinute = 480
	}
	if cfg.Factory.PipeItemsPerMinute == 0 {
		cfg.Factory.PipeItemsPerMinute = 600
	}
	if len(cfg.Factory.PreferredMultiples) == 0 {
		cfg.Factory.PreferredMultiples = map[string]float64{
			"Constructor":  2,
			"Assembler":    3,
			"Manufacturer": 2,
			"Refinery":     4,
			"Foundry":      3,
			"Packager":     4,
		}
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "satisplan"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "satisplan"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "catalog.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
