package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "postgres" {
		if cfg.Database.Host == "" {
			cfg.Database.Host = "localhost"
		}
		if cfg.Database.Port == 0 {
			cfg.Database.Port = 5432
		}
		if cfg.Database.User == "" {
			cfg.Database.User = "starlane"
		}
		if cfg.Database.Name == "" {
			cfg.Database.Name = "starlane"
		}
		if cfg.Database.SSLMode == "" {
			cfg.Database.SSLMode = "disable"
		}
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "starlane.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
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

	// Metrics defaults
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	setCampaignDefaults(&cfg.Campaign)
}

func setCampaignDefaults(c *CampaignConfig) {
	if c.Access.OutlawThreshold == 0 {
		c.Access.OutlawThreshold = -4
	}
	if c.Access.CommandCircuitThreshold == 0 {
		c.Access.CommandCircuitThreshold = 0.5
	}

	if c.Transit.Unit == "" {
		c.Transit.Unit = "month"
	}

	a := &c.Acquisition
	if a.Skill == "" {
		a.Skill = "Administration"
	}
	if a.TechLevel == "" {
		a.TechLevel = "experimental"
	}
	if a.TaskXP == 0 {
		a.TaskXP = 1
	}
	if a.NTasksXP == 0 {
		a.NTasksXP = 25
	}

	if c.Procurement.Mode == "" {
		c.Procurement.Mode = "standard"
	}
	if c.Procurement.WaitingPeriod == 0 {
		c.Procurement.WaitingPeriod = 7
	}
	if c.Procurement.MaxJumpsPlanetary == 0 {
		c.Procurement.MaxJumpsPlanetary = 2
	}
}
