// Package settings persists the one user preference vmstrip owns: the tray
// icon theme.
//
// The store keeps a single JSON record on disk, read once at startup and
// rewritten atomically on every change. A missing or unreadable file is not
// an error; defaults apply and the next successful save recreates the file.
package settings
