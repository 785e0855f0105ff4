package tray

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/getlantern/systray"

	"vmstrip/internal/config"
	"vmstrip/internal/logging"
	"vmstrip/internal/notify"
	"vmstrip/internal/settings"
	"vmstrip/internal/strip"
)

// gainPresetsDB are the fixed absolute targets offered in the gain submenu.
var gainPresetsDB = []float64{0, -6, -12, -20}

// gainStepsDB are the fixed relative steps offered in the gain submenu.
var gainStepsDB = []float64{2, 4, -2, -4}

// App owns the systray loop and menu state.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	controller *strip.Controller
	settings   *settings.Store
	notifier   notify.Service
	onQuit     func()

	mu       sync.Mutex
	muteItem *systray.MenuItem
	a1Item   *systray.MenuItem
	a2Item   *systray.MenuItem
	themeDef *systray.MenuItem
	themeAlt *systray.MenuItem
	last     strip.Snapshot
	started  bool
}

// New constructs the tray application. onQuit runs when the user picks the
// quit item, before the tray loop ends.
func New(cfg *config.Config, controller *strip.Controller, store *settings.Store, notifier notify.Service, logger *slog.Logger, onQuit func()) *App {
	return &App{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "tray"),
		controller: controller,
		settings:   store,
		notifier:   notifier,
		onQuit:     onQuit,
	}
}

// Run enters the systray loop and blocks until the user quits.
func (a *App) Run() {
	systray.Run(a.onReady, a.onExit)
}

// Quit ends the systray loop from outside the menu, unblocking Run.
func (a *App) Quit() {
	systray.Quit()
}

func (a *App) onReady() {
	snap, _ := a.controller.Refresh()

	a.mu.Lock()
	a.last = snap
	a.mu.Unlock()

	systray.SetIcon(iconBytes(a.settings.Theme(), snap.Muted))
	systray.SetTitle("")
	systray.SetTooltip(a.tooltip(snap))

	a.muteItem = systray.AddMenuItemCheckbox("Muted", "Toggle strip mute", snap.Muted)
	a.a1Item = systray.AddMenuItemCheckbox("Route A1", "Toggle the A1 output route", snap.RouteA1)
	a.a2Item = systray.AddMenuItemCheckbox("Route A2", "Toggle the A2 output route", snap.RouteA2)
	systray.AddSeparator()

	gainMenu := systray.AddMenuItem("Gain", "Gain presets and steps")
	for _, preset := range gainPresetsDB {
		target := preset
		item := gainMenu.AddSubMenuItem(fmt.Sprintf("%.0f dB", target), "Set gain")
		go a.clickLoop(item, func() {
			if result := a.controller.SetGain(target); result.OK {
				a.notifyGain(result.Value)
			}
		})
	}
	for _, step := range gainStepsDB {
		delta := step
		item := gainMenu.AddSubMenuItem(fmt.Sprintf("%+.0f dB", delta), "Adjust gain")
		go a.clickLoop(item, func() {
			if result := a.controller.AdjustGain(delta); result.OK {
				a.notifyGain(result.Value)
			}
		})
	}

	themeMenu := systray.AddMenuItem("Icon theme", "Pick the tray icon theme")
	theme := a.settings.Theme()
	a.themeDef = themeMenu.AddSubMenuItemCheckbox("Default", "Use the default icons", theme == settings.ThemeDefault)
	a.themeAlt = themeMenu.AddSubMenuItemCheckbox("Alternate", "Use the alternate icons", theme == settings.ThemeAlternate)
	go a.clickLoop(a.themeDef, func() { a.applyTheme(settings.ThemeDefault) })
	go a.clickLoop(a.themeAlt, func() { a.applyTheme(settings.ThemeAlternate) })

	systray.AddSeparator()
	quitItem := systray.AddMenuItem("Quit", "Stop vmstrip")

	go a.clickLoop(a.muteItem, a.handleMute)
	go a.clickLoop(a.a1Item, func() { a.handleRoute(strip.BusA1) })
	go a.clickLoop(a.a2Item, func() { a.handleRoute(strip.BusA2) })
	go a.clickLoop(quitItem, func() {
		a.logger.Info("quit requested from tray")
		systray.Quit()
	})

	a.mu.Lock()
	a.started = true
	a.mu.Unlock()

	a.logger.Info("tray ready", logging.String("strip", a.cfg.UI.StripLabel))
}

func (a *App) onExit() {
	if a.onQuit != nil {
		a.onQuit()
	}
}

func (a *App) clickLoop(item *systray.MenuItem, handle func()) {
	for range item.ClickedCh {
		handle()
	}
}

func (a *App) handleMute() {
	result := a.controller.ToggleMute()
	if !result.OK {
		a.logger.Warn("mute toggle skipped, backend unavailable")
		return
	}
	if err := a.notifier.NotifyMuteChanged(a.cfg.UI.StripLabel, result.Value); err != nil {
		a.logger.Debug("notify failed", logging.Error(err))
	}
	a.Apply(a.controller.Snapshot())
}

func (a *App) handleRoute(bus strip.Bus) {
	result := a.controller.ToggleRoute(bus)
	if !result.OK {
		a.logger.Warn("route toggle skipped, backend unavailable",
			logging.String(logging.FieldBus, bus.String()))
		return
	}
	if err := a.notifier.NotifyRouteChanged(a.cfg.UI.StripLabel, bus, result.Value); err != nil {
		a.logger.Debug("notify failed", logging.Error(err))
	}
	a.Apply(a.controller.Snapshot())
}

func (a *App) notifyGain(gainDB float64) {
	if err := a.notifier.NotifyGainChanged(a.cfg.UI.StripLabel, gainDB); err != nil {
		a.logger.Debug("notify failed", logging.Error(err))
	}
	a.Apply(a.controller.Snapshot())
}

func (a *App) applyTheme(theme settings.Theme) {
	if err := a.settings.SetTheme(theme); err != nil {
		a.logger.Warn("failed to persist theme", logging.Error(err))
	}

	a.mu.Lock()
	snap := a.last
	a.mu.Unlock()

	systray.SetIcon(iconBytes(theme, snap.Muted))
	a.themeDef.Uncheck()
	a.themeAlt.Uncheck()
	if theme == settings.ThemeAlternate {
		a.themeAlt.Check()
	} else {
		a.themeDef.Check()
	}
	a.logger.Info("icon theme changed", logging.String("theme", string(theme)))
}

// Apply refreshes the icon, tooltip, and check marks from a snapshot. The
// daemon's poller calls this on every refresh tick.
func (a *App) Apply(snap strip.Snapshot) {
	a.mu.Lock()
	if !a.started {
		a.last = snap
		a.mu.Unlock()
		return
	}
	changedMute := a.last.Muted != snap.Muted
	a.last = snap
	a.mu.Unlock()

	if changedMute {
		systray.SetIcon(iconBytes(a.settings.Theme(), snap.Muted))
	}
	systray.SetTooltip(a.tooltip(snap))
	setChecked(a.muteItem, snap.Muted)
	setChecked(a.a1Item, snap.RouteA1)
	setChecked(a.a2Item, snap.RouteA2)
}

func (a *App) tooltip(snap strip.Snapshot) string {
	state := "live"
	if snap.Muted {
		state = "muted"
	}
	return fmt.Sprintf("%s: %.1f dB, %s", a.cfg.UI.StripLabel, snap.GainDB, state)
}

func setChecked(item *systray.MenuItem, checked bool) {
	if item == nil {
		return
	}
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}
