// Package prompt collects a project selection interactively. Fields already
// set on the seed selection (from CLI flags) are kept; everything else is
// asked for, with defaults matching the non-interactive path.
package prompt

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
	"github.com/agentkit-labs/create-onchain-agent/internal/selection"
)

const customNetworkChoice = "custom"

// Run fills the missing fields of seed by prompting and returns the
// completed, validated selection.
func Run(seed selection.Selection) (selection.Selection, error) {
	sel := seed

	if err := promptNames(&sel); err != nil {
		return selection.Selection{}, err
	}
	if err := promptTemplate(&sel); err != nil {
		return selection.Selection{}, err
	}
	if err := promptNetwork(&sel); err != nil {
		return selection.Selection{}, err
	}
	if err := promptWallet(&sel); err != nil {
		return selection.Selection{}, err
	}
	if err := promptModelProvider(&sel); err != nil {
		return selection.Selection{}, err
	}

	if err := sel.Validate(); err != nil {
		return selection.Selection{}, err
	}
	return sel, nil
}

func promptNames(sel *selection.Selection) error {
	if sel.ProjectName == "" {
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Used as the directory name").
				Value(&sel.ProjectName).
				Validate(selection.ValidateProjectName),
		)).Run(); err != nil {
			return err
		}
	}

	if sel.PackageName == "" {
		sel.PackageName = sel.ProjectName
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Package name").
				Description("package.json name field").
				Value(&sel.PackageName).
				Validate(selection.ValidatePackageName),
		)).Run(); err != nil {
			return err
		}
	}
	return nil
}

func promptTemplate(sel *selection.Selection) error {
	if sel.Template == "" {
		if err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[registry.Template]().
				Title("Project type").
				Options(
					huh.NewOption("Next.js agent app", registry.TemplateNext),
					huh.NewOption("MCP tool server", registry.TemplateMCP),
					huh.NewOption("Wallet preparation only", registry.TemplatePrepare),
				).
				Value(&sel.Template),
		)).Run(); err != nil {
			return err
		}
	}

	switch sel.Template {
	case registry.TemplatePrepare:
		// No framework code ships with this template.
		return nil
	case registry.TemplateMCP:
		if sel.Framework == "" {
			sel.Framework = registry.MCP
		}
		return nil
	}

	if sel.Framework == "" {
		opts := make([]huh.Option[registry.Framework], 0, 2)
		for _, f := range registry.Frameworks() {
			for _, t := range mustTemplatesFor(f) {
				if t == sel.Template {
					opts = append(opts, huh.NewOption(registry.DisplayName(f), f))
				}
			}
		}
		if err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[registry.Framework]().
				Title("Agent framework").
				Options(opts...).
				Value(&sel.Framework),
		)).Run(); err != nil {
			return err
		}
	}
	return nil
}

func promptNetwork(sel *selection.Selection) error {
	if sel.Network != "" || sel.ChainID != "" {
		return nil
	}

	opts := make([]huh.Option[string], 0, 16)
	for _, n := range registry.EVMNetworks() {
		opts = append(opts, huh.NewOption(registry.DisplayName(n), string(n)))
	}
	for _, n := range registry.SVMNetworks() {
		opts = append(opts, huh.NewOption(registry.DisplayName(n), string(n)))
	}
	opts = append(opts, huh.NewOption("Custom EVM chain (by chain id)", customNetworkChoice))

	var choice string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Network").
			Options(opts...).
			Value(&choice),
	)).Run(); err != nil {
		return err
	}

	if choice != customNetworkChoice {
		sel.Network = registry.Network(choice)
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Chain id").
			Value(&sel.ChainID).
			Validate(validateChainID),
		huh.NewInput().
			Title("RPC URL (optional)").
			Value(&sel.RPCURL),
	)).Run(); err != nil {
		return err
	}
	return nil
}

func promptWallet(sel *selection.Selection) error {
	if sel.WalletProvider != "" {
		return nil
	}

	family, ok := registry.ClassifyNetwork(sel.Network, sel.ChainID)
	if !ok {
		return fmt.Errorf("unsupported network selection (network=%q, chainId=%q)", sel.Network, sel.ChainID)
	}

	providers := registry.WalletProvidersFor(family)
	opts := make([]huh.Option[registry.WalletProvider], len(providers))
	for i, p := range providers {
		label := registry.DisplayName(p)
		if i == 0 {
			label += " (recommended)"
		}
		opts[i] = huh.NewOption(label, p)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[registry.WalletProvider]().
			Title("Wallet provider").
			Options(opts...).
			Value(&sel.WalletProvider),
	)).Run()
}

func promptModelProvider(sel *selection.Selection) error {
	if sel.ModelProvider != "" || sel.Template == registry.TemplatePrepare {
		return nil
	}

	providers := registry.ModelProviders()
	opts := make([]huh.Option[string], len(providers))
	for i, p := range providers {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.DefaultModel), p.Name)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Model provider").
			Options(opts...).
			Value(&sel.ModelProvider),
	)).Run()
}

func validateChainID(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("chain id must be a decimal integer")
	}
	return nil
}

func mustTemplatesFor(f registry.Framework) []registry.Template {
	templates, _ := registry.TemplatesFor(f)
	return templates
}
