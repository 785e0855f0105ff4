package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"vmstrip/internal/config"
	"vmstrip/internal/history"
	"vmstrip/internal/hotkeys"
	"vmstrip/internal/logging"
	"vmstrip/internal/notify"
	"vmstrip/internal/settings"
	"vmstrip/internal/strip"
)

// hotkeyListener abstracts the platform hotkey implementations.
type hotkeyListener interface {
	Start() error
	Stop()
}

// Daemon coordinates the background services and enforces single-instance
// execution.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	controller *strip.Controller
	settings   *settings.Store
	journal    *history.Journal
	store      *history.Store
	notifier   notify.Service
	listener   hotkeyListener
	refresher  *Refresher

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	BackendOK    bool
	Snapshot     strip.Snapshot
	Theme        settings.Theme
	SessionID    string
	HistoryPath  string
	LockFilePath string
}

// New constructs a daemon with initialized dependencies. The history store
// may be nil when the journal is disabled.
func New(cfg *config.Config, controller *strip.Controller, store *settings.Store, journal *history.Journal, historyStore *history.Store, notifier notify.Service, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || controller == nil || store == nil {
		return nil, errors.New("daemon requires config, controller, and settings store")
	}
	if notifier == nil {
		notifier = notify.NewService(nil)
	}
	logger = logging.NewComponentLogger(logger, "daemon")

	lockPath := filepath.Join(cfg.Paths.LogDir, "vmstripd.lock")
	d := &Daemon{
		cfg:        cfg,
		logger:     logger,
		controller: controller,
		settings:   store,
		journal:    journal,
		store:      historyStore,
		notifier:   notifier,
		lockPath:   lockPath,
		lock:       flock.New(lockPath),
	}
	d.listener = hotkeys.NewListener(hotkeys.DefaultBindings(), d.handleHotkey, logger)
	d.refresher = NewRefresher(controller, time.Duration(cfg.UI.RefreshIntervalMS)*time.Millisecond, logger)
	return d, nil
}

// Start acquires the daemon lock and launches the hotkey listener and the
// refresh task.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another vmstrip daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)

	if d.cfg.Hotkeys.Enabled {
		if err := d.listener.Start(); err != nil {
			d.logger.Warn("hotkey registration failed, continuing without hotkeys", logging.Error(err))
		}
	}
	d.refresher.Start(d.ctx)

	d.running.Store(true)
	d.logger.Info("vmstrip daemon started",
		logging.String("lock", d.lockPath),
		logging.String("strip", d.cfg.UI.StripLabel))
	return nil
}

// Stop stops background tasks and releases the daemon lock. The tray quit
// path and the IPC stop handler can both land here; only the first call
// tears the daemon down.
func (d *Daemon) Stop() {
	if !d.running.CompareAndSwap(true, false) {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.refresher.Stop()
	d.listener.Stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.logger.Info("vmstrip daemon stopped")
}

// Close stops the daemon and releases owned resources.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// AttachDisplay connects the tray (or any display) to the refresh task.
func (d *Daemon) AttachDisplay(sink DisplaySink) {
	d.refresher.SetSink(sink)
}

// Status reports current runtime information.
func (d *Daemon) Status() Status {
	status := Status{
		Running:      d.running.Load(),
		BackendOK:    d.refresher.BackendHealthy(),
		Snapshot:     d.controller.Snapshot(),
		Theme:        d.settings.Theme(),
		LockFilePath: d.lockPath,
	}
	if d.journal != nil {
		status.SessionID = d.journal.SessionID()
	}
	if d.store != nil {
		status.HistoryPath = d.store.Path()
	}
	return status
}

// ToggleMute flips the strip mute flag and raises a notification on success.
func (d *Daemon) ToggleMute() strip.BoolResult {
	result := d.controller.ToggleMute()
	if result.OK {
		d.notifyErr(d.notifier.NotifyMuteChanged(d.cfg.UI.StripLabel, result.Value))
	}
	return result
}

// ToggleRoute flips one output route and raises a notification on success.
func (d *Daemon) ToggleRoute(bus strip.Bus) strip.BoolResult {
	result := d.controller.ToggleRoute(bus)
	if result.OK {
		d.notifyErr(d.notifier.NotifyRouteChanged(d.cfg.UI.StripLabel, bus, result.Value))
	}
	return result
}

// AdjustGain applies a relative gain change.
func (d *Daemon) AdjustGain(deltaDB float64) strip.GainResult {
	result := d.controller.AdjustGain(deltaDB)
	if result.OK {
		d.notifyErr(d.notifier.NotifyGainChanged(d.cfg.UI.StripLabel, result.Value))
	}
	return result
}

// SetGain applies an absolute gain target.
func (d *Daemon) SetGain(gainDB float64) strip.GainResult {
	result := d.controller.SetGain(gainDB)
	if result.OK {
		d.notifyErr(d.notifier.NotifyGainChanged(d.cfg.UI.StripLabel, result.Value))
	}
	return result
}

// SetTheme persists a new icon theme.
func (d *Daemon) SetTheme(theme settings.Theme) error {
	return d.settings.SetTheme(theme)
}

// HistoryList returns journal entries, newest first.
func (d *Daemon) HistoryList(ctx context.Context, limit int) ([]history.Entry, error) {
	if d.store == nil {
		return nil, errors.New("history journal disabled")
	}
	return d.store.List(ctx, limit)
}

// HistoryClear removes all journal entries.
func (d *Daemon) HistoryClear(ctx context.Context) (int64, error) {
	if d.store == nil {
		return 0, errors.New("history journal disabled")
	}
	return d.store.Clear(ctx)
}

// TestNotification sends a test desktop notification.
func (d *Daemon) TestNotification() error {
	return d.notifier.TestNotification()
}

func (d *Daemon) handleHotkey(action hotkeys.Action) {
	switch action {
	case hotkeys.ActionToggleMute:
		d.ToggleMute()
	case hotkeys.ActionToggleRouteA1:
		d.ToggleRoute(strip.BusA1)
	case hotkeys.ActionToggleRouteA2:
		d.ToggleRoute(strip.BusA2)
	case hotkeys.ActionGainDown:
		d.AdjustGain(-hotkeys.GainStepDB)
	case hotkeys.ActionGainUp:
		d.AdjustGain(hotkeys.GainStepDB)
	}
	d.refresher.Publish()
}

func (d *Daemon) notifyErr(err error) {
	if err != nil {
		d.logger.Debug("notification failed", logging.Error(err))
	}
}
