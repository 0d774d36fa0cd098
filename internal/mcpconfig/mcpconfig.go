// Package mcpconfig patches the Claude Desktop runtime config template that
// ships with the tool-server template: it substitutes the destination path
// into the launch arguments and injects model-provider and network keys into
// the server's environment mapping. Fields it does not address survive the
// parse/serialize round trip unchanged, modulo 2-space JSON formatting.
package mcpconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
)

// FileName is the patched config written at the project root.
const FileName = "claude_desktop_config.json"

// PathPlaceholder is the literal token the template uses where the
// destination absolute path belongs.
const PathPlaceholder = "/absolute/path/to/your/project"

const serverKey = "agentkit"

// Patch rewrites the template JSON for a concrete destination. provider may
// be nil (no provider keys injected). network mutates NETWORK_ID and a
// translated CHAIN_ID only where the template already carries those keys;
// an explicit chainID overwrites CHAIN_ID unconditionally.
//
// A placeholder miss in the launch arguments is reported as a warning, not
// an error. The returned bytes end in a newline.
func Patch(templateJSON []byte, destAbs string, provider *registry.ModelProvider, network registry.Network, chainID string) ([]byte, []string, error) {
	if err := validateTemplate(templateJSON); err != nil {
		return nil, nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(templateJSON, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing runtime config template: %w", err)
	}

	server, env, err := addressServer(doc)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string

	// Substitute the destination path into the first launch argument. The
	// substitution is plain text replacement; a miss leaves the argument
	// untouched.
	args, _ := server["args"].([]any)
	if len(args) > 0 {
		if first, ok := args[0].(string); ok {
			if !strings.Contains(first, PathPlaceholder) {
				warnings = append(warnings, fmt.Sprintf("launch argument %q does not contain the path placeholder %q", first, PathPlaceholder))
			}
			args[0] = strings.Replace(first, PathPlaceholder, destAbs, 1)
		}
	}

	if provider != nil {
		env[provider.KeyEnvVar] = ""
		env[provider.ModelEnvVar] = provider.DefaultModel
	}

	if network != "" {
		// Some provider templates address chains by id instead of name, so
		// both keys are conditional on already existing in the template.
		if _, ok := env["NETWORK_ID"]; ok {
			env["NETWORK_ID"] = string(network)
		}
		if _, ok := env["CHAIN_ID"]; ok {
			if id, found := registry.ChainID(network); found {
				env["CHAIN_ID"] = strconv.FormatInt(id, 10)
			}
		}
	}
	if chainID != "" {
		// Custom-network case takes precedence over the derived translation.
		env["CHAIN_ID"] = chainID
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("serializing runtime config: %w", err)
	}
	return append(out, '\n'), warnings, nil
}

// PatchFile reads the template inside the project, patches it in place, and
// returns the written path plus any warnings.
func PatchFile(projectRoot string, provider *registry.ModelProvider, network registry.Network, chainID string) (string, []string, error) {
	path := filepath.Join(projectRoot, FileName)
	templateJSON, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading runtime config template: %w", err)
	}

	destAbs, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", nil, fmt.Errorf("resolving destination path: %w", err)
	}

	patched, warnings, err := Patch(templateJSON, destAbs, provider, network, chainID)
	if err != nil {
		return "", nil, err
	}

	if err := os.WriteFile(path, patched, 0644); err != nil {
		return "", nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return path, warnings, nil
}

// addressServer digs out the named server entry and its env mapping. The
// schema validation above guarantees the shape, so failures here indicate a
// template edited after validation.
func addressServer(doc map[string]any) (server, env map[string]any, err error) {
	servers, ok := doc["mcpServers"].(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("runtime config template has no mcpServers object")
	}
	server, ok = servers[serverKey].(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("runtime config template has no %q server entry", serverKey)
	}
	env, ok = server["env"].(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("server entry %q has no env mapping", serverKey)
	}
	return server, env, nil
}
