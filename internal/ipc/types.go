package ipc

import "time"

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse reports daemon and strip state.
type StatusResponse struct {
	Running     bool    `json:"running"`
	BackendOK   bool    `json:"backend_ok"`
	Muted       bool    `json:"muted"`
	RouteA1     bool    `json:"route_a1"`
	RouteA2     bool    `json:"route_a2"`
	GainDB      float64 `json:"gain_db"`
	Theme       string  `json:"theme"`
	SessionID   string  `json:"session_id"`
	HistoryPath string  `json:"history_path"`
	LockPath    string  `json:"lock_path"`
	PID         int     `json:"pid"`
}

// StopRequest asks the daemon to shut down.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// ToggleMuteRequest flips the strip mute flag.
type ToggleMuteRequest struct{}

// ToggleMuteResponse carries the post-toggle state. Applied is false when the
// audio engine could not be reached and Muted holds the last known value.
type ToggleMuteResponse struct {
	Muted   bool `json:"muted"`
	Applied bool `json:"applied"`
}

// ToggleRouteRequest flips one output route. Bus is "A1" or "A2".
type ToggleRouteRequest struct {
	Bus string `json:"bus"`
}

// ToggleRouteResponse carries the post-toggle route state.
type ToggleRouteResponse struct {
	Bus     string `json:"bus"`
	Active  bool   `json:"active"`
	Applied bool   `json:"applied"`
}

// AdjustGainRequest applies a relative gain change in decibels.
type AdjustGainRequest struct {
	DeltaDB float64 `json:"delta_db"`
}

// SetGainRequest applies an absolute gain target in decibels.
type SetGainRequest struct {
	GainDB float64 `json:"gain_db"`
}

// GainResponse carries the effective gain after clamping. Applied is false
// when the audio engine could not be reached.
type GainResponse struct {
	GainDB  float64 `json:"gain_db"`
	Applied bool    `json:"applied"`
}

// SetThemeRequest switches the tray icon theme.
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// SetThemeResponse echoes the persisted theme.
type SetThemeResponse struct {
	Theme string `json:"theme"`
}

// HistoryEntry is the wire form of one journal record.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryListRequest fetches journal entries, newest first.
type HistoryListRequest struct {
	Limit int `json:"limit"`
}

// HistoryListResponse contains journal entries.
type HistoryListResponse struct {
	Entries []HistoryEntry `json:"entries"`
}

// HistoryClearRequest removes all journal entries.
type HistoryClearRequest struct{}

// HistoryClearResponse reports how many entries were removed.
type HistoryClearResponse struct {
	Removed int64 `json:"removed"`
}

// TestNotificationRequest triggers a desktop notification test.
type TestNotificationRequest struct{}

// TestNotificationResponse reports the notification outcome.
type TestNotificationResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}
