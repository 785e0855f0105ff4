// Package logging builds the slog loggers used by the vmstrip daemon and CLI.
//
// It supports console and JSON output, optional log-file destinations, and
// level parsing from configuration. Component loggers attach a standardized
// "component" attribute so daemon subsystems (controller, tray, hotkeys, ipc)
// remain distinguishable in shared output.
//
// Obtain loggers through NewFromConfig so every binary honours the same
// format and level knobs.
package logging
