package main

import (
	"fmt"
	"log/slog"

	"vmstrip/internal/config"
	"vmstrip/internal/daemon"
	"vmstrip/internal/history"
	"vmstrip/internal/logging"
	"vmstrip/internal/notify"
	"vmstrip/internal/settings"
	"vmstrip/internal/strip"
	"vmstrip/internal/tray"
	"vmstrip/internal/voicemeeter"
)

// bootstrap wires the backend, controller, settings, journal, notifier, tray,
// and daemon together. The returned cleanup releases the backend connection
// and the history store.
func bootstrap(cfg *config.Config, logger *slog.Logger) (*tray.App, *daemon.Daemon, func(), error) {
	remote, err := voicemeeter.Connect(voicemeeter.Options{
		Kind:       cfg.VoiceMeeter.Kind,
		StripIndex: cfg.VoiceMeeter.StripIndex,
		DLLPath:    cfg.VoiceMeeter.DLLPath,
	}, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect voicemeeter: %w", err)
	}

	var historyStore *history.Store
	var journal *history.Journal
	if cfg.History.Enabled {
		historyStore, err = history.Open(cfg.History.Path, cfg.History.MaxEntries)
		if err != nil {
			logger.Warn("history store unavailable, journaling disabled", logging.Error(err))
		} else {
			journal = history.NewJournal(historyStore, logger)
		}
	}

	opts := []strip.Option{}
	if journal != nil {
		opts = append(opts, strip.WithJournal(journal))
	}
	controller := strip.New(remote, logger, opts...)

	settingsStore := settings.NewStore(cfg.Paths.SettingsPath, logger)
	notifier := notify.NewService(cfg)

	d, err := daemon.New(cfg, controller, settingsStore, journal, historyStore, notifier, logger)
	if err != nil {
		remote.Close()
		if historyStore != nil {
			historyStore.Close()
		}
		return nil, nil, nil, err
	}

	app := tray.New(cfg, controller, settingsStore, notifier, logger, func() {
		d.Stop()
	})
	d.AttachDisplay(app)

	cleanup := func() {
		// The daemon owns the history store; Close handles both.
		if err := d.Close(); err != nil {
			logger.Warn("close daemon", logging.Error(err))
		}
		if err := remote.Close(); err != nil {
			logger.Warn("close voicemeeter connection", logging.Error(err))
		}
	}
	return app, d, cleanup, nil
}
