package selection

import (
	"strings"
	"testing"

	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
)

func validSelection() Selection {
	return Selection{
		ProjectName:    "my-agent",
		PackageName:    "my-agent",
		Network:        "base-sepolia",
		WalletProvider: registry.CDPEvmWallet,
		Framework:      registry.Langchain,
		Template:       registry.TemplateNext,
		ModelProvider:  "OpenAI",
	}
}

func TestValidateAcceptsWellFormedSelection(t *testing.T) {
	if err := validSelection().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Selection)
		wantErr string
	}{
		{
			name:    "uppercase project name",
			mutate:  func(s *Selection) { s.ProjectName = "MyAgent" },
			wantErr: "invalid project name",
		},
		{
			name:    "bad package name",
			mutate:  func(s *Selection) { s.PackageName = "My Package!" },
			wantErr: "invalid package name",
		},
		{
			name: "network and chain id together",
			mutate: func(s *Selection) {
				s.ChainID = "84532"
			},
			wantErr: "mutually exclusive",
		},
		{
			name: "non-numeric chain id",
			mutate: func(s *Selection) {
				s.Network = ""
				s.ChainID = "base"
				s.WalletProvider = registry.ViemWallet
			},
			wantErr: "invalid chain id",
		},
		{
			name: "unknown network and no chain id",
			mutate: func(s *Selection) {
				s.Network = "near-mainnet"
			},
			wantErr: "unsupported network selection",
		},
		{
			name: "wallet provider from the wrong family",
			mutate: func(s *Selection) {
				s.WalletProvider = registry.SolanaKeypairWallet
			},
			wantErr: "not valid for EVM",
		},
		{
			name: "cdp wallet on a custom chain",
			mutate: func(s *Selection) {
				s.Network = ""
				s.ChainID = "10143"
			},
			wantErr: "not valid for CUSTOM_EVM",
		},
		{
			name: "framework and template mismatch",
			mutate: func(s *Selection) {
				s.Framework = registry.MCP
			},
			wantErr: "cannot generate",
		},
		{
			name: "prepare template with a framework",
			mutate: func(s *Selection) {
				s.Template = registry.TemplatePrepare
			},
			wantErr: "does not take a framework",
		},
		{
			name: "missing template",
			mutate: func(s *Selection) {
				s.Template = ""
			},
			wantErr: "no template selected",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSelection()
			tc.mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("Validate accepted an invalid selection")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCustomChainSelection(t *testing.T) {
	s := Selection{
		ProjectName:    "custom-agent",
		PackageName:    "@acme/custom-agent",
		ChainID:        "10143",
		RPCURL:         "https://rpc.example.com",
		WalletProvider: registry.ViemWallet,
		Framework:      registry.VercelAISDK,
		Template:       registry.TemplateNext,
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidatePrepareTemplate(t *testing.T) {
	s := Selection{
		ProjectName:    "wallet-only",
		PackageName:    "wallet-only",
		Network:        "solana-devnet",
		WalletProvider: registry.SolanaKeypairWallet,
		Template:       registry.TemplatePrepare,
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
