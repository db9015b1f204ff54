// Package testutil provides helpers for catalogpromo tests.
//
// Isolate points the XDG config and state directories at temporary
// directories so tests never read the user's configuration or write the
// real log file. Tests using it must not run in parallel because the
// environment is process-wide.
package testutil
