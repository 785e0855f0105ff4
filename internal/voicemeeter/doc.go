// Package voicemeeter binds the strip controller to a running VoiceMeeter
// instance through the VoicemeeterRemote library.
//
// On Windows the Remote type loads the DLL lazily, logs in on construction,
// reads parameters with VBVMR_GetParameterFloat, and writes through the
// script form of VBVMR_SetParameters. On every other platform a build-tagged
// stub reports the backend as unavailable so the daemon, CLI, and tests build
// and run everywhere.
//
// All state lives inside VoiceMeeter; Remote caches nothing and treats every
// call as a live round trip.
package voicemeeter
