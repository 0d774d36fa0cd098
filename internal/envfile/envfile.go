// Package envfile renders the .env.local file for generated projects from a
// route's declared environment variables plus the model provider block.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentkit-labs/create-onchain-agent/internal/platform"
	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
)

// FileName is the environment file written at the project root.
const FileName = ".env.local"

// Render builds the environment file content. Construction order is fixed:
// model provider block, route comments, required section, optional section.
// Values are always empty except NETWORK_ID, RPC_URL, and CHAIN_ID, which
// carry the selection. RPC_URL and CHAIN_ID lines appear only when supplied.
func Render(env registry.EnvSpec, network registry.Network, chainID, rpcURL string, provider registry.ModelProvider) string {
	lines := []string{
		fmt.Sprintf("# %s configuration", provider.Name),
		provider.KeyEnvVar + "=",
		provider.ModelEnvVar + "=" + provider.DefaultModel,
		"",
	}

	for _, comment := range env.TopComments {
		lines = append(lines, "# "+comment)
	}

	lines = append(lines, "# Required")
	for _, key := range env.Required {
		lines = append(lines, key+"=")
	}

	lines = append(lines, "# Optional")
	lines = append(lines, "NETWORK_ID="+string(network))
	if rpcURL != "" {
		lines = append(lines, "RPC_URL="+rpcURL)
	}
	if chainID != "" {
		lines = append(lines, "CHAIN_ID="+chainID)
	}
	for _, key := range env.Optional {
		lines = append(lines, key+"=")
	}

	return strings.Join(lines, "\n") + "\n"
}

// Write renders the environment file into the project root, overwriting any
// existing file. This is a full replacement, not a merge.
func Write(projectRoot string, env registry.EnvSpec, network registry.Network, chainID, rpcURL string, provider registry.ModelProvider) (string, error) {
	path := filepath.Join(projectRoot, FileName)
	content := Render(env, network, chainID, rpcURL, provider)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	// The file holds credentials once the user fills it in.
	if err := platform.Chmod(path, 0600); err != nil {
		return "", fmt.Errorf("restricting %s: %w", path, err)
	}
	return path, nil
}
