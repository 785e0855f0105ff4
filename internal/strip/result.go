package strip

// BoolResult reports the outcome of a boolean operation. OK is false when the
// backend was unavailable or the call failed; Value is meaningless in that
// case.
type BoolResult struct {
	Value bool
	OK    bool
}

// GainResult reports the outcome of a gain operation. OK is false when the
// backend was unavailable or the call failed.
type GainResult struct {
	Value float64
	OK    bool
}

// Snapshot is the last-known displayable state of the strip. Fields default
// to unmuted/off/zero gain until a read succeeds.
type Snapshot struct {
	Muted   bool
	RouteA1 bool
	RouteA2 bool
	GainDB  float64
}

// Route returns the snapshot flag for the given bus.
func (s Snapshot) Route(bus Bus) bool {
	if bus == BusA2 {
		return s.RouteA2
	}
	return s.RouteA1
}
