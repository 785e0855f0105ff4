package strip

import (
	"fmt"
	"log/slog"
	"sync"

	"vmstrip/internal/logging"
)

// Journal receives a record of every successful controller write. Journal
// failures never affect the operation outcome.
type Journal interface {
	Record(action, detail string)
}

// Controller exposes the strip operations invoked by hotkeys, the tray menu,
// and the IPC surface. It is safe for concurrent use; the internal mutex only
// guards the display snapshot, each backend call remains a single round trip.
type Controller struct {
	backend Backend
	logger  *slog.Logger
	journal Journal

	mu   sync.RWMutex
	last Snapshot
}

// Option configures optional Controller behavior.
type Option func(*Controller)

// WithJournal attaches an action journal recording successful writes.
func WithJournal(journal Journal) Option {
	return func(c *Controller) {
		c.journal = journal
	}
}

// New constructs a controller bound to the given backend.
func New(backend Backend, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		logger:  logging.NewComponentLogger(logger, "controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToggleMute reads the current mute flag and writes its negation.
func (c *Controller) ToggleMute() BoolResult {
	current, err := c.backend.Mute()
	if err != nil {
		c.unavailable("toggle_mute", err)
		return BoolResult{}
	}
	next := !current
	if err := c.backend.SetMute(next); err != nil {
		c.unavailable("toggle_mute", err)
		return BoolResult{}
	}

	c.mu.Lock()
	c.last.Muted = next
	c.mu.Unlock()

	c.record("toggle_mute", fmt.Sprintf("%t", next))
	c.logger.Info("toggled mute", logging.Bool("muted", next))
	return BoolResult{Value: next, OK: true}
}

// ToggleRoute reads the current route flag for the bus and writes its negation.
func (c *Controller) ToggleRoute(bus Bus) BoolResult {
	action := routeAction(bus)
	current, err := c.backend.Route(bus)
	if err != nil {
		c.unavailable(action, err)
		return BoolResult{}
	}
	next := !current
	if err := c.backend.SetRoute(bus, next); err != nil {
		c.unavailable(action, err)
		return BoolResult{}
	}

	c.mu.Lock()
	if bus == BusA2 {
		c.last.RouteA2 = next
	} else {
		c.last.RouteA1 = next
	}
	c.mu.Unlock()

	c.record(action, fmt.Sprintf("%t", next))
	c.logger.Info("toggled route", logging.String(logging.FieldBus, bus.String()), logging.Bool("active", next))
	return BoolResult{Value: next, OK: true}
}

// AdjustGain adds deltaDB to the current gain and writes the clamped result.
func (c *Controller) AdjustGain(deltaDB float64) GainResult {
	current, err := c.backend.Gain()
	if err != nil {
		c.unavailable("adjust_gain", err)
		return GainResult{}
	}
	return c.writeGain("adjust_gain", ClampGain(current+deltaDB))
}

// SetGain writes an absolute gain target under the same clamp policy.
func (c *Controller) SetGain(gainDB float64) GainResult {
	return c.writeGain("set_gain", ClampGain(gainDB))
}

func (c *Controller) writeGain(action string, clamped float64) GainResult {
	if err := c.backend.SetGain(clamped); err != nil {
		c.unavailable(action, err)
		return GainResult{}
	}

	c.mu.Lock()
	c.last.GainDB = clamped
	c.mu.Unlock()

	c.record(action, fmt.Sprintf("%.1f", clamped))
	c.logger.Info("set gain", logging.Float64("gain_db", clamped))
	return GainResult{Value: clamped, OK: true}
}

// IsMuted reads the live mute flag.
func (c *Controller) IsMuted() BoolResult {
	value, err := c.backend.Mute()
	if err != nil {
		c.unavailable("is_muted", err)
		return BoolResult{}
	}
	c.mu.Lock()
	c.last.Muted = value
	c.mu.Unlock()
	return BoolResult{Value: value, OK: true}
}

// IsRouteActive reads the live route flag for the bus.
func (c *Controller) IsRouteActive(bus Bus) BoolResult {
	value, err := c.backend.Route(bus)
	if err != nil {
		c.unavailable(routeAction(bus), err)
		return BoolResult{}
	}
	c.mu.Lock()
	if bus == BusA2 {
		c.last.RouteA2 = value
	} else {
		c.last.RouteA1 = value
	}
	c.mu.Unlock()
	return BoolResult{Value: value, OK: true}
}

// CurrentGain reads the live gain value.
func (c *Controller) CurrentGain() GainResult {
	value, err := c.backend.Gain()
	if err != nil {
		c.unavailable("current_gain", err)
		return GainResult{}
	}
	c.mu.Lock()
	c.last.GainDB = value
	c.mu.Unlock()
	return GainResult{Value: value, OK: true}
}

// Snapshot returns the last-known displayable state without touching the
// backend.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// Refresh re-reads every strip field, folding successful reads into the
// snapshot. Fields whose read fails keep their last-known value. The boolean
// reports whether all four reads succeeded.
func (c *Controller) Refresh() (Snapshot, bool) {
	ok := true
	if r := c.IsMuted(); !r.OK {
		ok = false
	}
	if r := c.IsRouteActive(BusA1); !r.OK {
		ok = false
	}
	if r := c.IsRouteActive(BusA2); !r.OK {
		ok = false
	}
	if r := c.CurrentGain(); !r.OK {
		ok = false
	}
	return c.Snapshot(), ok
}

func (c *Controller) record(action, detail string) {
	if c.journal == nil {
		return
	}
	c.journal.Record(action, detail)
}

func (c *Controller) unavailable(action string, err error) {
	c.logger.Debug("backend unavailable",
		logging.String(logging.FieldAction, action),
		logging.Error(err))
}

func routeAction(bus Bus) string {
	if bus == BusA2 {
		return "route_a2"
	}
	return "route_a1"
}
