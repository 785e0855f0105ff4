package voicemeeter

import (
	"errors"
	"fmt"
	"strings"

	"vmstrip/internal/strip"
)

// ErrUnavailable marks every failure mode of the backend connection: library
// missing, login rejected, or a parameter call returning an error code.
var ErrUnavailable = errors.New("voicemeeter unavailable")

// Options describes the backend connection parameters.
type Options struct {
	// Kind is the VoiceMeeter edition: basic, banana, or potato.
	Kind string
	// StripIndex addresses the controlled channel strip.
	StripIndex int
	// DLLPath optionally overrides the VoicemeeterRemote library location.
	DLLPath string
}

// kindValue maps editions to the launch argument VBVMR_RunVoicemeeter expects.
func kindValue(kind string) int {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "basic":
		return 1
	case "potato":
		return 3
	default:
		return 2
	}
}

// Params builds the dotted parameter names for one strip.
type Params struct {
	stripIndex int
}

// NewParams returns a parameter-name builder for the given strip index.
func NewParams(stripIndex int) Params {
	return Params{stripIndex: stripIndex}
}

// Mute returns the strip's mute parameter name.
func (p Params) Mute() string {
	return fmt.Sprintf("Strip[%d].Mute", p.stripIndex)
}

// Route returns the strip's route parameter name for the bus.
func (p Params) Route(bus strip.Bus) string {
	return fmt.Sprintf("Strip[%d].%s", p.stripIndex, bus)
}

// Gain returns the strip's gain parameter name.
func (p Params) Gain() string {
	return fmt.Sprintf("Strip[%d].Gain", p.stripIndex)
}

func formatBoolScript(name string, value bool) string {
	v := 0
	if value {
		v = 1
	}
	return fmt.Sprintf("%s=%d", name, v)
}

func formatFloatScript(name string, value float64) string {
	return fmt.Sprintf("%s=%.2f", name, value)
}
