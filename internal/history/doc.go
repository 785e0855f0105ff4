// Package history persists a journal of successful strip control actions in
// SQLite.
//
// Each daemon run gets a fresh session identifier so `vmstrip history` can
// distinguish actions from the current run. The journal is advisory: recording
// failures are logged and never affect the control operation that produced
// them, and the table is trimmed to a configured row cap on insert.
package history
