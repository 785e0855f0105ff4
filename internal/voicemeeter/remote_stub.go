//go:build !windows

package voicemeeter

import (
	"log/slog"

	"vmstrip/internal/logging"
	"vmstrip/internal/strip"
)

// Remote is a no-op backend on non-Windows platforms. Every call reports
// ErrUnavailable, which the controller absorbs into its usual fallback
// behaviour.
type Remote struct {
	logger *slog.Logger
}

var _ strip.Backend = (*Remote)(nil)

// Connect returns the stub backend. It never fails so the daemon can start
// (and be exercised in tests) on any platform.
func Connect(opts Options, logger *slog.Logger) (*Remote, error) {
	logger = logging.NewComponentLogger(logger, "voicemeeter")
	logger.Warn("voicemeeter remote is only available on windows; backend reports unavailable")
	return &Remote{logger: logger}, nil
}

// Close releases nothing.
func (r *Remote) Close() error { return nil }

// Mute reports the backend as unavailable.
func (r *Remote) Mute() (bool, error) { return false, ErrUnavailable }

// SetMute reports the backend as unavailable.
func (r *Remote) SetMute(bool) error { return ErrUnavailable }

// Route reports the backend as unavailable.
func (r *Remote) Route(strip.Bus) (bool, error) { return false, ErrUnavailable }

// SetRoute reports the backend as unavailable.
func (r *Remote) SetRoute(strip.Bus, bool) error { return ErrUnavailable }

// Gain reports the backend as unavailable.
func (r *Remote) Gain() (float64, error) { return 0, ErrUnavailable }

// SetGain reports the backend as unavailable.
func (r *Remote) SetGain(float64) error { return ErrUnavailable }
