package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"vmstrip/internal/config"
	"vmstrip/internal/daemon"
	"vmstrip/internal/history"
	"vmstrip/internal/ipc"
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
}

func (b *fakeBackend) Mute() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted, nil
}

func (b *fakeBackend) SetMute(muted bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = muted
	return nil
}

func (b *fakeBackend) Route(bus strip.Bus) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if bus == strip.BusA1 {
		return b.a1, nil
	}
	return b.a2, nil
}

func (b *fakeBackend) SetRoute(bus strip.Bus, active bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
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
	return b.gain, nil
}

func (b *fakeBackend) SetGain(gainDB float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gain = gainDB
	return nil
}

type cliTestEnv struct {
	cfg        *config.Config
	backend    *fakeBackend
	daemon     *daemon.Daemon
	server     *ipc.Server
	socketPath string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.SettingsPath = filepath.Join(base, "settings.json")
	cfgVal.History.Path = filepath.Join(base, "history.db")
	cfgVal.Hotkeys.Enabled = false
	cfgVal.Notifications.Enabled = false
	cfg := &cfgVal

	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatalf("create log dir: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	logger := logging.NewNop()
	backend := &fakeBackend{gain: -18}

	historyStore, err := history.Open(cfg.History.Path, cfg.History.MaxEntries)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	journal := history.NewJournal(historyStore, logger)
	controller := strip.New(backend, logger, strip.WithJournal(journal))
	store := settings.NewStore(cfg.Paths.SettingsPath, logger)

	d, err := daemon.New(cfg, controller, store, journal, historyStore, nil, logger)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := d.Start(ctx); err != nil {
		t.Fatalf("daemon.Start: %v", err)
	}

	socketPath := filepath.Join(cfg.Paths.LogDir, "cli.sock")
	srv, err := ipc.NewServer(ctx, socketPath, d, logger, nil)
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			cancel()
			d.Close()
			t.Skipf("skipping CLI test: %v", err)
		}
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()

	time.Sleep(50 * time.Millisecond)

	env := &cliTestEnv{
		cfg:        cfg,
		backend:    backend,
		daemon:     d,
		server:     srv,
		socketPath: socketPath,
		configPath: configPath,
	}

	t.Cleanup(func() {
		cancel()
		srv.Close()
		d.Close()
	})

	return env
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, socket, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--socket", socket}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing %q", output, want)
	}
}

func TestCLIMuteAndRouteCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"mute"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("mute: %v", err)
	}
	requireContains(t, out, "Strip muted")

	out, _, err = runCLI(t, []string{"mute"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("mute again: %v", err)
	}
	requireContains(t, out, "Strip unmuted")

	out, _, err = runCLI(t, []string{"route", "a1"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("route a1: %v", err)
	}
	requireContains(t, out, "Route A1 on")

	if _, _, err := runCLI(t, []string{"route", "b2"}, env.socketPath, env.configPath); err == nil {
		t.Fatal("expected error for unknown bus")
	}
}

func TestCLIGainCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"gain", "set", "-12"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("gain set: %v", err)
	}
	requireContains(t, out, "Gain -12.0 dB")

	out, _, err = runCLI(t, []string{"gain", "down", "4"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("gain down: %v", err)
	}
	requireContains(t, out, "Gain -16.0 dB")

	out, _, err = runCLI(t, []string{"gain", "up"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("gain up: %v", err)
	}
	requireContains(t, out, "Gain -14.0 dB")

	out, _, err = runCLI(t, []string{"gain", "set", "20"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("gain set above ceiling: %v", err)
	}
	requireContains(t, out, "Gain 0.0 dB")

	if _, _, err := runCLI(t, []string{"gain", "set", "loud"}, env.socketPath, env.configPath); err == nil {
		t.Fatal("expected error for non-numeric gain")
	}
	if _, _, err := runCLI(t, []string{"gain", "up", "-3"}, env.socketPath, env.configPath); err == nil {
		t.Fatal("expected error for negative step")
	}
}

func TestCLIThemeAndStatus(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"theme", "alternate"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	requireContains(t, out, "Icon theme set to alternate")

	out, _, err = runCLI(t, []string{"status"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Running")
	requireContains(t, out, "alternate")
	requireContains(t, out, "-18.0 dB")
}

func TestCLIHistoryCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"mute"}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("mute: %v", err)
	}
	if _, _, err := runCLI(t, []string{"gain", "set", "-6"}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("gain set: %v", err)
	}

	out, _, err := runCLI(t, []string{"history", "list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "toggle_mute")
	requireContains(t, out, "set_gain")

	out, _, err = runCLI(t, []string{"history", "clear"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed")

	out, _, err = runCLI(t, []string{"history", "list"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history list after clear: %v", err)
	}
	requireContains(t, out, "No recorded actions")
}

func TestCLIStopCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"stop"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	requireContains(t, out, "Daemon stopped")
	if env.daemon.Status().Running {
		t.Fatal("expected daemon to be stopped")
	}
}

func TestCLIFailsWithoutDaemon(t *testing.T) {
	base := t.TempDir()
	socket := filepath.Join(base, "missing.sock")

	_, _, err := runCLI(t, []string{"mute"}, socket, "")
	if err == nil {
		t.Fatal("expected connection error without daemon")
	}
	if !strings.Contains(err.Error(), "connect to daemon") && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected error: %v", err)
	}
}
