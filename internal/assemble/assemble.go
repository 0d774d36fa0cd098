// Package assemble orchestrates project generation: it copies the selected
// template tree, resolves routes against the compatibility registry, writes
// the environment and runtime-config artifacts, promotes the selected
// variant files to their canonical paths, rewrites the agent source for the
// selected model provider, mutates the dependency manifest, and removes the
// unused per-option directories.
//
// Assembly is sequential and non-transactional: each step fails
// independently and there is no rollback, so a failed invocation can leave a
// partial tree at the destination.
package assemble

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/agentkit-labs/create-onchain-agent/internal/envfile"
	"github.com/agentkit-labs/create-onchain-agent/internal/mcpconfig"
	"github.com/agentkit-labs/create-onchain-agent/internal/npm"
	"github.com/agentkit-labs/create-onchain-agent/internal/platform"
	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
	"github.com/agentkit-labs/create-onchain-agent/internal/rewrite"
	"github.com/agentkit-labs/create-onchain-agent/internal/selection"
	"github.com/agentkit-labs/create-onchain-agent/internal/templates"
)

// Canonical destinations for promoted variant files, per template kind.
const (
	nextAgentDir        = "app/api/agent"
	nextPrepareAgentkit = nextAgentDir + "/prepare-agentkit.ts"
	nextCreateAgent     = nextAgentDir + "/create-agent.ts"
	nextAPIRoute        = nextAgentDir + "/route.ts"

	mcpGetAgentKit = "src/getAgentKit.ts"

	preparePrepareAgentkit = "prepare-agentkit.ts"
)

// optionDirs are the per-option variant directories removed after promotion.
var optionDirs = []string{"agentkit", "framework", "api"}

// Result reports where the project was assembled and any non-fatal issues
// encountered along the way.
type Result struct {
	Root     string
	Warnings []string
}

// Assemble generates the project for a validated selection at dest. dest
// must not already contain files.
func Assemble(sel selection.Selection, dest string) (*Result, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 {
		return nil, fmt.Errorf("destination %s is not empty; remove existing files first", dest)
	}

	family, ok := registry.ClassifyNetwork(sel.Network, sel.ChainID)
	if !ok {
		return nil, fmt.Errorf("unsupported network selection (network=%q, chainId=%q)", sel.Network, sel.ChainID)
	}

	if err := platform.CopyTree(templates.FS, string(sel.Template), dest); err != nil {
		return nil, fmt.Errorf("copying %s template: %w", sel.Template, err)
	}

	result := &Result{Root: dest}
	provider := registry.ResolveModelProvider(sel.ModelProvider)

	var err error
	switch sel.Template {
	case registry.TemplateNext:
		err = assembleNext(sel, dest, family, provider, result)
	case registry.TemplateMCP:
		err = assembleMCP(sel, dest, family, provider, result)
	case registry.TemplatePrepare:
		err = assemblePrepare(sel, dest, family, provider, result)
	default:
		err = fmt.Errorf("unknown template %q", sel.Template)
	}
	if err != nil {
		return nil, err
	}

	if err := cleanupOptionDirs(dest); err != nil {
		return nil, err
	}

	if err := writeRecord(dest, sel); err != nil {
		return nil, err
	}

	return result, nil
}

func assembleNext(sel selection.Selection, dest string, family registry.NetworkFamily, provider registry.ModelProvider, result *Result) error {
	route, err := registry.AgentRoute(family, sel.WalletProvider)
	if err != nil {
		return err
	}
	frameworkRoute, err := registry.FrameworkRoute(sel.Framework)
	if err != nil {
		return err
	}

	if err := writeEnvFile(dest, route.Env, sel, provider); err != nil {
		return err
	}

	promotions := map[string]string{
		route.PrepareAgentkit:      nextPrepareAgentkit,
		frameworkRoute.CreateAgent: nextCreateAgent,
		frameworkRoute.APIRoute:    nextAPIRoute,
	}
	if err := promote(dest, promotions); err != nil {
		return err
	}

	if err := rewriteCreateAgent(dest, nextCreateAgent, provider, result); err != nil {
		return err
	}

	return npm.Mutate(dest, sel.PackageName, provider.Dependencies[sel.Framework])
}

func assembleMCP(sel selection.Selection, dest string, family registry.NetworkFamily, provider registry.ModelProvider, result *Result) error {
	route, err := registry.ToolServerRoute(family, sel.WalletProvider)
	if err != nil {
		return err
	}

	_, warnings, err := mcpconfig.PatchFile(dest, &provider, sel.Network, sel.ChainID)
	if err != nil {
		return err
	}
	result.Warnings = append(result.Warnings, warnings...)

	if err := promote(dest, map[string]string{route.GetAgentKit: mcpGetAgentKit}); err != nil {
		return err
	}

	return npm.Mutate(dest, sel.PackageName, provider.Dependencies[sel.Framework])
}

func assemblePrepare(sel selection.Selection, dest string, family registry.NetworkFamily, provider registry.ModelProvider, result *Result) error {
	route, err := registry.PreparationRoute(family, sel.WalletProvider)
	if err != nil {
		return err
	}

	if err := writeEnvFile(dest, route.Env, sel, provider); err != nil {
		return err
	}

	if err := promote(dest, map[string]string{route.PrepareAgentkit: preparePrepareAgentkit}); err != nil {
		return err
	}

	return npm.Mutate(dest, sel.PackageName, nil)
}

// writeEnvFile renders .env.local and re-parses it as a cheap guard against
// rendering bugs: the generated file must be valid dotenv syntax.
func writeEnvFile(dest string, env registry.EnvSpec, sel selection.Selection, provider registry.ModelProvider) error {
	path, err := envfile.Write(dest, env, sel.Network, sel.ChainID, sel.RPCURL, provider)
	if err != nil {
		return err
	}
	if _, err := godotenv.Read(path); err != nil {
		return fmt.Errorf("generated %s does not parse: %w", envfile.FileName, err)
	}
	return nil
}

// promote moves each selected variant file to its canonical path. A missing
// variant means the route table references a file the template does not
// carry, which is fatal.
func promote(dest string, promotions map[string]string) error {
	for variant, canonical := range promotions {
		src := filepath.Join(dest, filepath.FromSlash(variant))
		dst := filepath.Join(dest, filepath.FromSlash(canonical))

		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("promoting %s to %s: %w", variant, canonical, err)
		}
	}
	return nil
}

// rewriteCreateAgent runs the model-provider rewrite against the promoted
// create-agent source. Pattern misses are surfaced as warnings on the
// result; the assembled project is still usable with its default provider.
func rewriteCreateAgent(dest, rel string, provider registry.ModelProvider, result *Result) error {
	path := filepath.Join(dest, filepath.FromSlash(rel))
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rel, err)
	}

	rewritten, warnings := rewrite.ModelProvider(string(data), provider)
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", rel, w))
	}

	if rewritten == string(data) {
		return nil
	}
	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// cleanupOptionDirs removes every per-option variant directory left behind
// after promotion.
func cleanupOptionDirs(dest string) error {
	for _, dir := range optionDirs {
		path := filepath.Join(dest, dir)
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing variant directory %s: %w", dir, err)
		}
	}
	return nil
}
