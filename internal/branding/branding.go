// Package branding provides compile-time identity values for the CLI.
package branding

import "strings"

const (
	cliName     = "create-onchain-agent"
	displayName = "Create Onchain Agent"
	description = "Scaffold an AgentKit-powered onchain agent project"
	homeDir     = ".create-onchain-agent"
	envPrefix   = "CREATE_ONCHAIN_AGENT"
	githubRepo  = "agentkit-labs/create-onchain-agent"
)

// CLIName returns the root command name.
func CLIName() string { return cliName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return displayName }

// Description returns the short product description.
func Description() string { return description }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { return homeDir }

// EnvPrefix returns the environment variable prefix.
func EnvPrefix() string { return envPrefix }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { return githubRepo }

// EnvVar returns a fully qualified env var name, e.g. EnvVar("HOME")
// becomes "CREATE_ONCHAIN_AGENT_HOME".
func EnvVar(suffix string) string {
	return envPrefix + "_" + strings.ToUpper(suffix)
}
