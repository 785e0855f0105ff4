package config

import (
	"errors"
	"fmt"
)

// kindStripCounts maps VoiceMeeter editions to their strip counts; indexes
// must stay below the hardware strip total for the edition.
var kindStripCounts = map[string]int{
	"basic":  3,
	"banana": 5,
	"potato": 8,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateVoiceMeeter(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateVoiceMeeter() error {
	strips, ok := kindStripCounts[c.VoiceMeeter.Kind]
	if !ok {
		return fmt.Errorf("voicemeeter.kind must be one of basic, banana, or potato (got %q)", c.VoiceMeeter.Kind)
	}
	if c.VoiceMeeter.StripIndex < 0 || c.VoiceMeeter.StripIndex >= strips {
		return fmt.Errorf("voicemeeter.strip_index must be between 0 and %d for kind %q", strips-1, c.VoiceMeeter.Kind)
	}
	return nil
}

func (c *Config) validateUI() error {
	if c.UI.RefreshIntervalMS < 100 {
		return errors.New("ui.refresh_interval_ms must be at least 100")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
