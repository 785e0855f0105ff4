package strip

import (
	"fmt"
	"strings"
)

// Gain bounds in decibels. Controller-initiated writes never leave this range.
const (
	MinGainDB = -60.0
	MaxGainDB = 0.0
)

// Bus identifies one of the strip's output routes.
type Bus int

const (
	// BusA1 is the first hardware output route.
	BusA1 Bus = iota
	// BusA2 is the second hardware output route.
	BusA2
)

func (b Bus) String() string {
	switch b {
	case BusA1:
		return "A1"
	case BusA2:
		return "A2"
	default:
		return fmt.Sprintf("Bus(%d)", int(b))
	}
}

// ParseBus converts a user-supplied bus label into a Bus.
func ParseBus(value string) (Bus, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "A1", "1":
		return BusA1, nil
	case "A2", "2":
		return BusA2, nil
	default:
		return 0, fmt.Errorf("unknown bus %q (expected A1 or A2)", value)
	}
}

// Backend is the live connection to the audio engine's parameter store. Every
// call is a synchronous round trip; implementations report unreachability
// through the error return and are assumed to serialize concurrent requests.
type Backend interface {
	Mute() (bool, error)
	SetMute(muted bool) error
	Route(bus Bus) (bool, error)
	SetRoute(bus Bus, active bool) error
	Gain() (float64, error)
	SetGain(gainDB float64) error
}

// ClampGain saturates a gain value to the [MinGainDB, MaxGainDB] range.
func ClampGain(gainDB float64) float64 {
	if gainDB < MinGainDB {
		return MinGainDB
	}
	if gainDB > MaxGainDB {
		return MaxGainDB
	}
	return gainDB
}
