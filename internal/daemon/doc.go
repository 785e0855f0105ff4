// Package daemon coordinates the long-running vmstrip process.
//
// It wires the strip controller, settings store, action journal, desktop
// notifier, global hotkey listener, and the read-only refresh task into a
// single lifecycle with flock-based locking to prevent multiple instances.
// The daemon exposes the operations the IPC server forwards from the CLI and
// owns the notifications raised for hotkey-driven changes.
//
// Keep orchestration logic here: the tray and hotkey packages render and
// capture, the controller talks to the backend, and the daemon focuses on
// startup, shutdown, and dispatch.
package daemon
