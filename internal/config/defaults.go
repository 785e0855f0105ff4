package config

const (
	defaultLogDir            = "~/.local/share/vmstrip/logs"
	defaultSettingsPath      = "~/.config/vmstrip/settings.json"
	defaultHistoryPath       = "~/.local/share/vmstrip/history.db"
	defaultHistoryMaxEntries = 1000
	defaultKind              = "banana"
	defaultStripIndex        = 3
	defaultRefreshIntervalMS = 500
	defaultStripLabel        = "Strip 3"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:       defaultLogDir,
			SettingsPath: defaultSettingsPath,
		},
		VoiceMeeter: VoiceMeeter{
			Kind:       defaultKind,
			StripIndex: defaultStripIndex,
		},
		Hotkeys: Hotkeys{
			Enabled: true,
		},
		UI: UI{
			RefreshIntervalMS: defaultRefreshIntervalMS,
			StripLabel:        defaultStripLabel,
		},
		Notifications: Notifications{
			Enabled: false,
		},
		History: History{
			Enabled:    true,
			Path:       defaultHistoryPath,
			MaxEntries: defaultHistoryMaxEntries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
