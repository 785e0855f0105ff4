package notify

import (
	"testing"

	"vmstrip/internal/config"
	"vmstrip/internal/strip"
)

func TestNewServiceReturnsNoopWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.Enabled = false

	service := NewService(&cfg)
	if _, ok := service.(noopService); !ok {
		t.Fatalf("expected noop service, got %T", service)
	}
}

func TestNewServiceNilConfigIsNoop(t *testing.T) {
	if _, ok := NewService(nil).(noopService); !ok {
		t.Fatal("expected noop service for nil config")
	}
}

func TestNoopServiceNeverFails(t *testing.T) {
	service := noopService{}
	if err := service.NotifyMuteChanged("Strip 3", true); err != nil {
		t.Fatalf("NotifyMuteChanged: %v", err)
	}
	if err := service.NotifyRouteChanged("Strip 3", strip.BusA1, false); err != nil {
		t.Fatalf("NotifyRouteChanged: %v", err)
	}
	if err := service.NotifyGainChanged("Strip 3", -12); err != nil {
		t.Fatalf("NotifyGainChanged: %v", err)
	}
	if err := service.TestNotification(); err != nil {
		t.Fatalf("TestNotification: %v", err)
	}
}

func TestNewServiceReturnsBeeepWhenEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.Enabled = true

	if _, ok := NewService(&cfg).(beeepService); !ok {
		t.Fatal("expected beeep-backed service when enabled")
	}
}
