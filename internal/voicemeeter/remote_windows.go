//go:build windows

package voicemeeter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"vmstrip/internal/logging"
	"vmstrip/internal/strip"
)

// Remote is the Windows implementation of strip.Backend over
// VoicemeeterRemote64.dll. The mutex serializes DLL calls so concurrent
// callers (hotkey thread, refresh poller, IPC handlers) never interleave a
// dirty-poll with another call's read.
type Remote struct {
	mu sync.Mutex

	dll       *windows.LazyDLL
	login     *windows.LazyProc
	logout    *windows.LazyProc
	run       *windows.LazyProc
	getFloat  *windows.LazyProc
	setParams *windows.LazyProc
	dirty     *windows.LazyProc

	params Params
	logger *slog.Logger
}

var _ strip.Backend = (*Remote)(nil)

// Connect loads the VoicemeeterRemote library and logs in. When the login
// reports that no VoiceMeeter instance is running, the configured edition is
// launched and the login retried once.
func Connect(opts Options, logger *slog.Logger) (*Remote, error) {
	logger = logging.NewComponentLogger(logger, "voicemeeter")

	path := opts.DLLPath
	if path == "" {
		path = defaultDLLPath()
	}

	dll := windows.NewLazyDLL(path)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrUnavailable, path, err)
	}

	r := &Remote{
		dll:       dll,
		login:     dll.NewProc("VBVMR_Login"),
		logout:    dll.NewProc("VBVMR_Logout"),
		run:       dll.NewProc("VBVMR_RunVoicemeeter"),
		getFloat:  dll.NewProc("VBVMR_GetParameterFloat"),
		setParams: dll.NewProc("VBVMR_SetParameters"),
		dirty:     dll.NewProc("VBVMR_IsParametersDirty"),
		params:    NewParams(opts.StripIndex),
		logger:    logger,
	}

	ret, _, _ := r.login.Call()
	switch int32(ret) {
	case 0:
	case 1:
		// Logged in, but VoiceMeeter itself is not running yet.
		logger.Info("voicemeeter not running, launching", logging.String("kind", opts.Kind))
		r.run.Call(uintptr(kindValue(opts.Kind)))
		time.Sleep(2 * time.Second)
	default:
		return nil, fmt.Errorf("%w: login returned %d", ErrUnavailable, int32(ret))
	}

	// Drain the initial dirty flag so the first reads see settled values.
	r.mu.Lock()
	r.dirty.Call()
	r.mu.Unlock()

	logger.Info("connected", logging.String("dll", path))
	return r, nil
}

// Close logs out of the remote interface.
func (r *Remote) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret, _, _ := r.logout.Call()
	if int32(ret) != 0 {
		return fmt.Errorf("%w: logout returned %d", ErrUnavailable, int32(ret))
	}
	return nil
}

// Mute reads the strip's mute flag.
func (r *Remote) Mute() (bool, error) {
	value, err := r.get(r.params.Mute())
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

// SetMute writes the strip's mute flag.
func (r *Remote) SetMute(muted bool) error {
	return r.set(formatBoolScript(r.params.Mute(), muted))
}

// Route reads the strip's route flag for the bus.
func (r *Remote) Route(bus strip.Bus) (bool, error) {
	value, err := r.get(r.params.Route(bus))
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

// SetRoute writes the strip's route flag for the bus.
func (r *Remote) SetRoute(bus strip.Bus, active bool) error {
	return r.set(formatBoolScript(r.params.Route(bus), active))
}

// Gain reads the strip's gain in decibels.
func (r *Remote) Gain() (float64, error) {
	value, err := r.get(r.params.Gain())
	if err != nil {
		return 0, err
	}
	return float64(value), nil
}

// SetGain writes the strip's gain in decibels.
func (r *Remote) SetGain(gainDB float64) error {
	return r.set(formatFloatScript(r.params.Gain(), gainDB))
}

func (r *Remote) get(name string) (float32, error) {
	namePtr, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0, fmt.Errorf("%w: parameter name %q: %v", ErrUnavailable, name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// The remote interface caches parameters; polling the dirty flag makes
	// the next read observe current values.
	if ret, _, _ := r.dirty.Call(); int32(ret) < 0 {
		return 0, fmt.Errorf("%w: dirty poll returned %d", ErrUnavailable, int32(ret))
	}

	var out float32
	ret, _, _ := r.getFloat.Call(
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(unsafe.Pointer(&out)),
	)
	if int32(ret) != 0 {
		return 0, fmt.Errorf("%w: get %s returned %d", ErrUnavailable, name, int32(ret))
	}
	return out, nil
}

func (r *Remote) set(script string) error {
	scriptPtr, err := windows.BytePtrFromString(script)
	if err != nil {
		return fmt.Errorf("%w: script %q: %v", ErrUnavailable, script, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ret, _, _ := r.setParams.Call(uintptr(unsafe.Pointer(scriptPtr)))
	if int32(ret) != 0 {
		return fmt.Errorf("%w: set %q returned %d", ErrUnavailable, script, int32(ret))
	}
	return nil
}

func defaultDLLPath() string {
	base := os.Getenv("ProgramFiles(x86)")
	if base == "" {
		base = `C:\Program Files (x86)`
	}
	return filepath.Join(base, "VB", "Voicemeeter", "VoicemeeterRemote64.dll")
}
