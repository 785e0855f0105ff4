// Package strip implements the channel-strip controller at the heart of
// vmstrip.
//
// The Controller translates named intents (toggle mute, toggle an output
// route, adjust or set gain) into live round trips against the audio backend,
// enforcing the one numeric invariant in the system: gain stays within
// [-60.0, 0.0] dB under a saturating clamp. It owns no strip state of its own
// beyond a last-known snapshot kept for display fallback.
//
// Every operation returns an explicit result carrying an availability marker
// instead of swallowing backend failures, so callers decide whether to log,
// surface, or ignore an unreachable backend. Failed writes are skipped, never
// retried.
package strip
