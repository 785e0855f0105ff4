// Package config loads, normalizes, and validates vmstrip configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// daemon and CLI need: the VoiceMeeter kind and strip index, hotkey and tray
// behaviour, refresh cadence, history storage, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
