package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"vmstrip/internal/config"
	"vmstrip/internal/strip"
)

const appTitle = "vmstrip"

// Service defines the notification surface exposed to the daemon.
type Service interface {
	NotifyMuteChanged(stripLabel string, muted bool) error
	NotifyRouteChanged(stripLabel string, bus strip.Bus, active bool) error
	NotifyGainChanged(stripLabel string, gainDB float64) error
	TestNotification() error
}

// NewService builds a notification service. When notifications are disabled
// in config, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	if cfg == nil || !cfg.Notifications.Enabled {
		return noopService{}
	}
	return beeepService{}
}

type beeepService struct{}

func (beeepService) NotifyMuteChanged(stripLabel string, muted bool) error {
	state := "unmuted"
	if muted {
		state = "muted"
	}
	return beeep.Notify(appTitle, fmt.Sprintf("%s %s", stripLabel, state), "")
}

func (beeepService) NotifyRouteChanged(stripLabel string, bus strip.Bus, active bool) error {
	state := "off"
	if active {
		state = "on"
	}
	return beeep.Notify(appTitle, fmt.Sprintf("%s route %s %s", stripLabel, bus, state), "")
}

func (beeepService) NotifyGainChanged(stripLabel string, gainDB float64) error {
	return beeep.Notify(appTitle, fmt.Sprintf("%s gain %.1f dB", stripLabel, gainDB), "")
}

func (beeepService) TestNotification() error {
	return beeep.Notify(appTitle, "Test notification", "")
}

type noopService struct{}

func (noopService) NotifyMuteChanged(string, bool) error             { return nil }
func (noopService) NotifyRouteChanged(string, strip.Bus, bool) error { return nil }
func (noopService) NotifyGainChanged(string, float64) error          { return nil }
func (noopService) TestNotification() error                          { return nil }
