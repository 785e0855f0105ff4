// Package tray renders the system-tray surface: a themed status icon,
// checkable mute/route items, fixed gain presets and steps, a theme submenu,
// and the quit action.
//
// The App drives github.com/getlantern/systray and is display-only between
// clicks: the daemon's refresh task pushes snapshots in through Apply, and
// menu clicks call back into the strip controller. Icon assets are embedded
// per theme and muted state, with a generic built-in fallback when an asset
// cannot be loaded.
package tray
