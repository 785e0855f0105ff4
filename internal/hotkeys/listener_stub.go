//go:build !windows

package hotkeys

import (
	"log/slog"

	"vmstrip/internal/logging"
)

// Listener is a no-op on non-Windows platforms; the tray menu and CLI remain
// the control surfaces.
type Listener struct {
	logger *slog.Logger
}

// NewListener builds the no-op listener.
func NewListener(bindings []Binding, handler func(Action), logger *slog.Logger) *Listener {
	return &Listener{logger: logging.NewComponentLogger(logger, "hotkeys")}
}

// Start logs that global hotkeys are unsupported here and succeeds.
func (l *Listener) Start() error {
	l.logger.Warn("global hotkeys are only available on windows")
	return nil
}

// Stop is a no-op.
func (l *Listener) Stop() {}
