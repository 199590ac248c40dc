package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for storage driver %q", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, c.Storage.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Planner.validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	return nil
}

func (p *PlannerConfig) validate() error {
	if p.RetentionWeeks < 1 {
		return fmt.Errorf("retention_weeks must be >= 1 (got %d)", p.RetentionWeeks)
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	p.Location = loc

	if strings.TrimSpace(p.HouseholdName) == "" {
		p.HouseholdName = "My Household"
	}

	return nil
}
