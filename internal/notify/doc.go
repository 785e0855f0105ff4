// Package notify raises optional desktop notifications for strip changes.
//
// The Service interface mirrors the controller's write operations; the beeep
// implementation is returned only when notifications are enabled, otherwise a
// noop service keeps call sites unconditional. Notification failures are
// returned to the caller for logging and never affect the control path.
package notify
