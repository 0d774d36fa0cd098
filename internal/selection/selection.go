// Package selection defines the validated user selection tuple consumed by
// the assembly engine. A Selection is constructed once, by the prompt layer
// or from CLI flags, and is immutable input from then on.
package selection

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
)

var (
	namePattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	packagePattern = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
)

// Selection is the fully validated input tuple for one generator invocation.
type Selection struct {
	ProjectName string
	PackageName string

	// Exactly one of Network and ChainID is set. ChainID selects the
	// custom-EVM path.
	Network Network
	ChainID string

	RPCURL string

	WalletProvider registry.WalletProvider
	Framework      registry.Framework
	Template       registry.Template
	ModelProvider  string
}

// Network aliases registry.Network so callers importing only this package
// can build a Selection.
type Network = registry.Network

// ValidateProjectName checks a directory-safe project name.
func ValidateProjectName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must be lowercase letters, digits, and hyphens", name)
	}
	return nil
}

// ValidatePackageName checks an npm-safe package name, scoped or not.
func ValidatePackageName(name string) error {
	if !packagePattern.MatchString(name) {
		return fmt.Errorf("invalid package name %q", name)
	}
	return nil
}

// Validate checks the tuple for internal consistency against the
// compatibility registry. The assembly driver assumes a validated Selection
// and performs no defaulting of its own.
func (s Selection) Validate() error {
	if err := ValidateProjectName(s.ProjectName); err != nil {
		return err
	}
	if err := ValidatePackageName(s.PackageName); err != nil {
		return err
	}

	if s.Network != "" && s.ChainID != "" {
		return fmt.Errorf("network %q and chain id %q are mutually exclusive", s.Network, s.ChainID)
	}
	if s.ChainID != "" {
		if _, err := strconv.ParseInt(s.ChainID, 10, 64); err != nil {
			return fmt.Errorf("invalid chain id %q: %w", s.ChainID, err)
		}
	}

	family, ok := registry.ClassifyNetwork(s.Network, s.ChainID)
	if !ok {
		return fmt.Errorf("unsupported network selection (network=%q, chainId=%q)", s.Network, s.ChainID)
	}

	if err := s.validateWallet(family); err != nil {
		return err
	}
	return s.validateTemplate()
}

func (s Selection) validateWallet(family registry.NetworkFamily) error {
	for _, p := range registry.WalletProvidersFor(family) {
		if p == s.WalletProvider {
			return nil
		}
	}
	return fmt.Errorf("wallet provider %q is not valid for %s networks", s.WalletProvider, family)
}

func (s Selection) validateTemplate() error {
	switch s.Template {
	case registry.TemplatePrepare:
		// The bare-preparation template carries no framework code.
		if s.Framework != "" {
			return fmt.Errorf("template %q does not take a framework", s.Template)
		}
		return nil
	case registry.TemplateNext, registry.TemplateMCP:
		templates, ok := registry.TemplatesFor(s.Framework)
		if !ok {
			return fmt.Errorf("unknown framework %q", s.Framework)
		}
		for _, t := range templates {
			if t == s.Template {
				return nil
			}
		}
		return fmt.Errorf("framework %q cannot generate the %q template", s.Framework, s.Template)
	case "":
		return fmt.Errorf("no template selected")
	default:
		return fmt.Errorf("unknown template %q", s.Template)
	}
}
