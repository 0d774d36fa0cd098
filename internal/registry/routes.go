package registry

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection marks a lookup against a (family, provider) or
// framework key that was never offered to the user. Callers must treat it as
// fatal and never substitute a default.
var ErrInvalidSelection = errors.New("invalid selection")

// EnvSpec declares the environment variables a route needs: comment lines
// rendered at the top of the generated .env file, required variable names,
// and optional variable names.
type EnvSpec struct {
	TopComments []string
	Required    []string
	Optional    []string
}

// AgentRouteConfig is the full-app (next template) route: the
// prepare-agentkit variant to promote plus its env metadata.
type AgentRouteConfig struct {
	PrepareAgentkit string
	Env             EnvSpec
}

// ToolServerRouteConfig is the tool-server (mcp template) route.
type ToolServerRouteConfig struct {
	GetAgentKit string
	Env         EnvSpec
}

// PreparationRouteConfig is the bare-preparation template route.
type PreparationRouteConfig struct {
	PrepareAgentkit string
	Env             EnvSpec
}

// Shared env specs. Wallet credentials are the same regardless of which
// template kind consumes them.
var (
	cdpEnv = EnvSpec{
		TopComments: []string{
			"Get your CDP API credentials from https://portal.cdp.coinbase.com/",
		},
		Required: []string{"CDP_API_KEY_ID", "CDP_API_KEY_SECRET", "CDP_WALLET_SECRET"},
	}

	viemEnv = EnvSpec{
		TopComments: []string{
			"Export a private key from your wallet and fund it before running.",
		},
		Required: []string{"PRIVATE_KEY"},
	}

	privyEnv = EnvSpec{
		TopComments: []string{
			"Get your Privy credentials from https://dashboard.privy.io/",
		},
		Required: []string{"PRIVY_APP_ID", "PRIVY_APP_SECRET"},
		Optional: []string{"PRIVY_WALLET_ID", "PRIVY_WALLET_AUTHORIZATION_PRIVATE_KEY"},
	}

	solanaKeypairEnv = EnvSpec{
		TopComments: []string{
			"Provide a base58-encoded Solana private key.",
		},
		Required: []string{"SOLANA_PRIVATE_KEY"},
	}
)

// agentRoutes keys the full-app routes by (family, provider). An entry
// exists if and only if that combination is offered to the user.
var agentRoutes = map[NetworkFamily]map[WalletProvider]AgentRouteConfig{
	FamilyEVM: {
		CDPEvmWallet:   {PrepareAgentkit: "agentkit/cdp-evm.ts", Env: cdpEnv},
		CDPSmartWallet: {PrepareAgentkit: "agentkit/cdp-smart.ts", Env: cdpEnv},
		ViemWallet:     {PrepareAgentkit: "agentkit/viem.ts", Env: viemEnv},
		PrivyEvmWallet: {PrepareAgentkit: "agentkit/privy-evm.ts", Env: privyEnv},
	},
	FamilyCustomEVM: {
		ViemWallet:     {PrepareAgentkit: "agentkit/viem.ts", Env: viemEnv},
		PrivyEvmWallet: {PrepareAgentkit: "agentkit/privy-evm.ts", Env: privyEnv},
	},
	FamilySVM: {
		CDPSvmWallet:        {PrepareAgentkit: "agentkit/cdp-svm.ts", Env: cdpEnv},
		SolanaKeypairWallet: {PrepareAgentkit: "agentkit/solana-keypair.ts", Env: solanaKeypairEnv},
		PrivySvmWallet:      {PrepareAgentkit: "agentkit/privy-svm.ts", Env: privyEnv},
	},
}

// toolServerRoutes keys the tool-server routes by (family, provider),
// parallel to agentRoutes.
var toolServerRoutes = map[NetworkFamily]map[WalletProvider]ToolServerRouteConfig{
	FamilyEVM: {
		CDPEvmWallet:   {GetAgentKit: "agentkit/cdp-evm.ts", Env: cdpEnv},
		CDPSmartWallet: {GetAgentKit: "agentkit/cdp-smart.ts", Env: cdpEnv},
		ViemWallet:     {GetAgentKit: "agentkit/viem.ts", Env: viemEnv},
		PrivyEvmWallet: {GetAgentKit: "agentkit/privy-evm.ts", Env: privyEnv},
	},
	FamilyCustomEVM: {
		ViemWallet:     {GetAgentKit: "agentkit/viem.ts", Env: viemEnv},
		PrivyEvmWallet: {GetAgentKit: "agentkit/privy-evm.ts", Env: privyEnv},
	},
	FamilySVM: {
		CDPSvmWallet:        {GetAgentKit: "agentkit/cdp-svm.ts", Env: cdpEnv},
		SolanaKeypairWallet: {GetAgentKit: "agentkit/solana-keypair.ts", Env: solanaKeypairEnv},
		PrivySvmWallet:      {GetAgentKit: "agentkit/privy-svm.ts", Env: privyEnv},
	},
}

// preparationRoutes keys the bare-preparation routes by (family, provider),
// parallel to agentRoutes.
var preparationRoutes = map[NetworkFamily]map[WalletProvider]PreparationRouteConfig{
	FamilyEVM: {
		CDPEvmWallet:   {PrepareAgentkit: "agentkit/cdp-evm.ts", Env: cdpEnv},
		CDPSmartWallet: {PrepareAgentkit: "agentkit/cdp-smart.ts", Env: cdpEnv},
		ViemWallet:     {PrepareAgentkit: "agentkit/viem.ts", Env: viemEnv},
		PrivyEvmWallet: {PrepareAgentkit: "agentkit/privy-evm.ts", Env: privyEnv},
	},
	FamilyCustomEVM: {
		ViemWallet:     {PrepareAgentkit: "agentkit/viem.ts", Env: viemEnv},
		PrivyEvmWallet: {PrepareAgentkit: "agentkit/privy-evm.ts", Env: privyEnv},
	},
	FamilySVM: {
		CDPSvmWallet:        {PrepareAgentkit: "agentkit/cdp-svm.ts", Env: cdpEnv},
		SolanaKeypairWallet: {PrepareAgentkit: "agentkit/solana-keypair.ts", Env: solanaKeypairEnv},
		PrivySvmWallet:      {PrepareAgentkit: "agentkit/privy-svm.ts", Env: privyEnv},
	},
}

func invalidCombination(family NetworkFamily, provider WalletProvider) error {
	return fmt.Errorf("%w: invalid network & wallet provider combination (%s, %s)", ErrInvalidSelection, family, provider)
}

// AgentRoute returns the full-app route for a (family, provider) pair.
func AgentRoute(family NetworkFamily, provider WalletProvider) (AgentRouteConfig, error) {
	cfg, ok := agentRoutes[family][provider]
	if !ok {
		return AgentRouteConfig{}, invalidCombination(family, provider)
	}
	return cfg, nil
}

// ToolServerRoute returns the tool-server route for a (family, provider) pair.
func ToolServerRoute(family NetworkFamily, provider WalletProvider) (ToolServerRouteConfig, error) {
	cfg, ok := toolServerRoutes[family][provider]
	if !ok {
		return ToolServerRouteConfig{}, invalidCombination(family, provider)
	}
	return cfg, nil
}

// PreparationRoute returns the bare-preparation route for a (family,
// provider) pair.
func PreparationRoute(family NetworkFamily, provider WalletProvider) (PreparationRouteConfig, error) {
	cfg, ok := preparationRoutes[family][provider]
	if !ok {
		return PreparationRouteConfig{}, invalidCombination(family, provider)
	}
	return cfg, nil
}
