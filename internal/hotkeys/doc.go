// Package hotkeys owns the fixed global hotkey surface: one modifier plus
// five numeric-pad keys, each bound to exactly one strip operation.
//
// Bindings are a static table, not user-remappable. The Windows listener
// registers them with the OS and pumps a message loop on a locked thread;
// every other platform gets a no-op listener so the rest of the daemon keeps
// working without global hotkey capture.
package hotkeys
