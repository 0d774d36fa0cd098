// Package cli defines the Cobra command tree. The root command runs project
// generation; version and config are the supporting commands. Command
// implementations delegate to internal packages for business logic and only
// handle flag parsing, I/O formatting, and user interaction.
package cli
