//go:build windows

package hotkeys

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"vmstrip/internal/logging"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procGetMessageW      = user32.NewProc("GetMessageW")
	procPostThreadMsgW   = user32.NewProc("PostThreadMessageW")
)

const (
	wmHotkey = 0x0312
	wmQuit   = 0x0012
)

type msg struct {
	HWND    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// Listener registers the binding table with the OS and dispatches hotkey
// presses to the handler. Registration and the message loop share one locked
// OS thread; the handler runs on that thread, so a hung backend call stalls
// hotkey delivery rather than crashing it.
type Listener struct {
	bindings []Binding
	handler  func(Action)
	logger   *slog.Logger

	// threadID is written by the pump goroutine before registration and read
	// by Stop; it bypasses the loop mutex, which Start holds while waiting
	// for registration to complete.
	threadID atomic.Uint32
	loop     pumpLoop
}

// NewListener builds a listener over the binding table.
func NewListener(bindings []Binding, handler func(Action), logger *slog.Logger) *Listener {
	l := &Listener{
		bindings: bindings,
		handler:  handler,
		logger:   logging.NewComponentLogger(logger, "hotkeys"),
	}
	l.loop.setup = l.register
	l.loop.run = l.pumpUntilQuit
	l.loop.wake = l.postQuit
	return l
}

// Start registers the hotkeys and begins pumping messages. Registration
// errors are returned; a duplicate Start is an error.
func (l *Listener) Start() error {
	if err := l.loop.start(); err != nil {
		return err
	}
	l.logger.Info("hotkeys registered", logging.Int("count", len(l.bindings)))
	return nil
}

// Stop unregisters the hotkeys and ends the message loop.
func (l *Listener) Stop() {
	if l.loop.stop() {
		l.logger.Info("hotkeys unregistered")
	}
}

func (l *Listener) register() error {
	l.threadID.Store(windows.GetCurrentThreadId())

	for i, binding := range l.bindings {
		ret, _, callErr := procRegisterHotKey.Call(
			0,
			uintptr(i+1),
			uintptr(binding.Modifiers()),
			uintptr(binding.Key()),
		)
		if ret == 0 {
			for j := 0; j < i; j++ {
				procUnregisterHotKey.Call(0, uintptr(j+1))
			}
			return fmt.Errorf("register hotkey %s: %v", binding.Label(), callErr)
		}
	}
	return nil
}

func (l *Listener) pumpUntilQuit() {
	l.pump()
	for i := range l.bindings {
		procUnregisterHotKey.Call(0, uintptr(i+1))
	}
}

func (l *Listener) postQuit() {
	procPostThreadMsgW.Call(uintptr(l.threadID.Load()), wmQuit, 0, 0)
}

func (l *Listener) pump() {
	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		if m.Message != wmHotkey {
			continue
		}
		id := int(m.WParam)
		if id < 1 || id > len(l.bindings) {
			continue
		}
		binding := l.bindings[id-1]
		l.logger.Debug("hotkey pressed",
			logging.String("binding", binding.Label()),
			logging.String(logging.FieldAction, binding.Action().String()))
		if l.handler != nil {
			l.handler(binding.Action())
		}
	}
}
