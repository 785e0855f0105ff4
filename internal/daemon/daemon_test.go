package daemon

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"vmstrip/internal/config"
	"vmstrip/internal/logging"
	"vmstrip/internal/settings"
	"vmstrip/internal/strip"
)

type fakeBackend struct {
	mu    sync.Mutex
	muted bool
	a1    bool
	a2    bool
	gain  float64
	fail  bool
}

func (b *fakeBackend) Mute() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return false, errors.New("backend offline")
	}
	return b.muted, nil
}

func (b *fakeBackend) SetMute(muted bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return errors.New("backend offline")
	}
	b.muted = muted
	return nil
}

func (b *fakeBackend) Route(bus strip.Bus) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return false, errors.New("backend offline")
	}
	if bus == strip.BusA1 {
		return b.a1, nil
	}
	return b.a2, nil
}

func (b *fakeBackend) SetRoute(bus strip.Bus, active bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return errors.New("backend offline")
	}
	if bus == strip.BusA1 {
		b.a1 = active
	} else {
		b.a2 = active
	}
	return nil
}

func (b *fakeBackend) Gain() (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return 0, errors.New("backend offline")
	}
	return b.gain, nil
}

func (b *fakeBackend) SetGain(gainDB float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return errors.New("backend offline")
	}
	b.gain = gainDB
	return nil
}

func (b *fakeBackend) setFail(fail bool) {
	b.mu.Lock()
	b.fail = fail
	b.mu.Unlock()
}

type countingNotifier struct {
	mu     sync.Mutex
	mutes  int
	routes int
	gains  int
}

func (n *countingNotifier) NotifyMuteChanged(string, bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mutes++
	return nil
}

func (n *countingNotifier) NotifyRouteChanged(string, strip.Bus, bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes++
	return nil
}

func (n *countingNotifier) NotifyGainChanged(string, float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gains++
	return nil
}

func (n *countingNotifier) TestNotification() error { return nil }

func (n *countingNotifier) counts() (int, int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mutes, n.routes, n.gains
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.LogDir = dir
	cfg.Paths.SettingsPath = filepath.Join(dir, "settings.json")
	cfg.History.Enabled = false
	cfg.Hotkeys.Enabled = false
	cfg.Notifications.Enabled = false
	return &cfg
}

func testDaemon(t *testing.T, backend *fakeBackend, notifier *countingNotifier) *Daemon {
	t.Helper()
	cfg := testConfig(t)
	logger := logging.NewNop()
	controller := strip.New(backend, logger)
	store := settings.NewStore(cfg.Paths.SettingsPath, logger)
	d, err := New(cfg, controller, store, nil, nil, notifier, logger)
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	return d
}

func TestDaemonStartStop(t *testing.T) {
	backend := &fakeBackend{gain: -12}
	d := testDaemon(t, backend, nil)

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !d.Status().Running {
		t.Fatal("expected running status after start")
	}
	if err := d.Start(context.Background()); err == nil {
		t.Fatal("expected error starting an already running daemon")
	}

	d.Stop()
	if d.Status().Running {
		t.Fatal("expected stopped status after stop")
	}
}

func TestDaemonConcurrentStop(t *testing.T) {
	// The tray quit handler and the IPC stop handler can both call Stop;
	// the teardown must run exactly once without blocking either caller.
	d := testDaemon(t, &fakeBackend{}, nil)
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Stop()
		}()
	}
	wg.Wait()

	if d.Status().Running {
		t.Fatal("expected stopped status after concurrent stops")
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("restart after stop: %v", err)
	}
	d.Stop()
}

func TestDaemonSingleInstance(t *testing.T) {
	backend := &fakeBackend{}
	cfg := testConfig(t)
	logger := logging.NewNop()
	controller := strip.New(backend, logger)
	store := settings.NewStore(cfg.Paths.SettingsPath, logger)

	first, err := New(cfg, controller, store, nil, nil, nil, logger)
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("start first: %v", err)
	}
	defer first.Stop()

	second, err := New(cfg, controller, store, nil, nil, nil, logger)
	if err != nil {
		t.Fatalf("new second daemon: %v", err)
	}
	if err := second.Start(context.Background()); err == nil {
		second.Stop()
		t.Fatal("expected second instance to fail acquiring the lock")
	}
}

func TestDaemonOperationsNotify(t *testing.T) {
	backend := &fakeBackend{gain: -10}
	notifier := &countingNotifier{}
	d := testDaemon(t, backend, notifier)

	if result := d.ToggleMute(); !result.OK || !result.Value {
		t.Fatalf("toggle mute = %+v, want muted", result)
	}
	if result := d.ToggleRoute(strip.BusA1); !result.OK || !result.Value {
		t.Fatalf("toggle route = %+v, want active", result)
	}
	if result := d.AdjustGain(-4); !result.OK || result.Value != -14 {
		t.Fatalf("adjust gain = %+v, want -14", result)
	}
	if result := d.SetGain(-6); !result.OK || result.Value != -6 {
		t.Fatalf("set gain = %+v, want -6", result)
	}

	mutes, routes, gains := notifier.counts()
	if mutes != 1 || routes != 1 || gains != 2 {
		t.Fatalf("notification counts = %d/%d/%d, want 1/1/2", mutes, routes, gains)
	}
}

func TestDaemonOperationsSkipNotifyOnFailure(t *testing.T) {
	backend := &fakeBackend{}
	backend.setFail(true)
	notifier := &countingNotifier{}
	d := testDaemon(t, backend, notifier)

	if result := d.ToggleMute(); result.OK {
		t.Fatal("expected toggle mute to fail with dead backend")
	}
	if result := d.AdjustGain(2); result.OK {
		t.Fatal("expected gain adjust to fail with dead backend")
	}

	mutes, _, gains := notifier.counts()
	if mutes != 0 || gains != 0 {
		t.Fatalf("expected no notifications after failures, got %d/%d", mutes, gains)
	}
}

func TestDaemonSetTheme(t *testing.T) {
	d := testDaemon(t, &fakeBackend{}, nil)

	if err := d.SetTheme(settings.ThemeAlternate); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if got := d.Status().Theme; got != settings.ThemeAlternate {
		t.Fatalf("status theme = %q, want alternate", got)
	}
}

func TestDaemonHistoryDisabled(t *testing.T) {
	d := testDaemon(t, &fakeBackend{}, nil)

	if _, err := d.HistoryList(context.Background(), 10); err == nil {
		t.Fatal("expected history list to fail when journal disabled")
	}
	if _, err := d.HistoryClear(context.Background()); err == nil {
		t.Fatal("expected history clear to fail when journal disabled")
	}
}
