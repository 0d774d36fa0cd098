// Package updater implements the daily-cached new-version check that powers
// the startup banner. It queries GitHub Releases in the background and never
// blocks or fails a command invocation.
package updater
