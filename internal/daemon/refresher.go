package daemon

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"vmstrip/internal/logging"
	"vmstrip/internal/strip"
)

// DisplaySink receives fresh strip snapshots. The tray implements this.
type DisplaySink interface {
	Apply(snapshot strip.Snapshot)
}

// Refresher polls the controller at a fixed interval and pushes snapshots to
// the attached display sink. It only reads strip state.
type Refresher struct {
	controller *strip.Controller
	interval   time.Duration
	logger     *slog.Logger

	mu   sync.RWMutex
	sink DisplaySink

	healthy atomic.Bool
	kick    chan struct{}
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRefresher builds a refresher around the controller.
func NewRefresher(controller *strip.Controller, interval time.Duration, logger *slog.Logger) *Refresher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Refresher{
		controller: controller,
		interval:   interval,
		logger:     logging.NewComponentLogger(logger, "refresher"),
		kick:       make(chan struct{}, 1),
	}
}

// SetSink attaches the display that receives snapshots.
func (r *Refresher) SetSink(sink DisplaySink) {
	r.mu.Lock()
	r.sink = sink
	r.mu.Unlock()
}

// BackendHealthy reports whether the most recent poll read the backend
// successfully.
func (r *Refresher) BackendHealthy() bool {
	return r.healthy.Load()
}

// Start launches the polling loop. It returns immediately.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	r.done = done

	r.logger.Debug("refresh loop started", logging.Duration("interval", r.interval))
	go r.run(ctx, done)
}

// Stop halts the polling loop and waits for it to exit. Concurrent and
// repeated calls are safe; only the first waits on a running loop.
func (r *Refresher) Stop() {
	r.mu.Lock()
	done := r.done
	cancel := r.cancel
	r.done = nil
	r.cancel = nil
	r.mu.Unlock()

	if done == nil {
		return
	}
	cancel()
	<-done
}

// Publish requests an immediate poll outside the regular interval. Used after
// hotkey actions so the display catches up without waiting a full tick.
func (r *Refresher) Publish() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

func (r *Refresher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.poll()
		case <-r.kick:
			r.poll()
		}
	}
}

func (r *Refresher) poll() {
	snapshot, ok := r.controller.Refresh()
	wasHealthy := r.healthy.Swap(ok)
	if ok != wasHealthy {
		if ok {
			r.logger.Info("strip backend reachable")
		} else {
			r.logger.Warn("strip backend unreachable, showing last known state")
		}
	}

	r.mu.RLock()
	sink := r.sink
	r.mu.RUnlock()
	if sink != nil {
		sink.Apply(snapshot)
	}
}
