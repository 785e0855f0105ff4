package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeVoiceMeeter()
	c.normalizeUI()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.SettingsPath) == "" {
		c.Paths.SettingsPath = defaultSettingsPath
	}
	if c.Paths.SettingsPath, err = expandPath(c.Paths.SettingsPath); err != nil {
		return fmt.Errorf("paths.settings_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeVoiceMeeter() {
	c.VoiceMeeter.Kind = strings.ToLower(strings.TrimSpace(c.VoiceMeeter.Kind))
	if c.VoiceMeeter.Kind == "" {
		c.VoiceMeeter.Kind = defaultKind
	}
	c.VoiceMeeter.DLLPath = strings.TrimSpace(c.VoiceMeeter.DLLPath)
}

func (c *Config) normalizeUI() {
	if c.UI.RefreshIntervalMS <= 0 {
		c.UI.RefreshIntervalMS = defaultRefreshIntervalMS
	}
	c.UI.StripLabel = strings.TrimSpace(c.UI.StripLabel)
	if c.UI.StripLabel == "" {
		c.UI.StripLabel = fmt.Sprintf("Strip %d", c.VoiceMeeter.StripIndex)
	}
}

func (c *Config) normalizeHistory() error {
	if !c.History.Enabled {
		return nil
	}
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	if c.History.MaxEntries <= 0 {
		c.History.MaxEntries = defaultHistoryMaxEntries
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
