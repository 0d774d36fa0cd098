package registry

// Network identifies a supported blockchain network.
type Network string

// NetworkFamily is the coarse partition that governs which wallet providers
// and route tables apply to a selection.
type NetworkFamily string

const (
	FamilyEVM       NetworkFamily = "EVM"
	FamilyCustomEVM NetworkFamily = "CUSTOM_EVM"
	FamilySVM       NetworkFamily = "SVM"
)

// EVM networks, in prompt display order. The chain id table below must have
// an entry for every member.
var evmNetworks = []Network{
	"base-mainnet",
	"base-sepolia",
	"ethereum-mainnet",
	"ethereum-sepolia",
	"arbitrum-mainnet",
	"arbitrum-sepolia",
	"optimism-mainnet",
	"optimism-sepolia",
	"polygon-mainnet",
	"polygon-mumbai",
}

// SVM networks, in prompt display order.
var svmNetworks = []Network{
	"solana-mainnet",
	"solana-devnet",
}

// chainIDs is the static reverse table from an EVM network to its numeric
// chain id, used when a runtime-config template addresses networks by
// CHAIN_ID instead of NETWORK_ID.
var chainIDs = map[Network]int64{
	"base-mainnet":     8453,
	"base-sepolia":     84532,
	"ethereum-mainnet": 1,
	"ethereum-sepolia": 11155111,
	"arbitrum-mainnet": 42161,
	"arbitrum-sepolia": 421614,
	"optimism-mainnet": 10,
	"optimism-sepolia": 11155420,
	"polygon-mainnet":  137,
	"polygon-mumbai":   80001,
}

var evmSet = toSet(evmNetworks)
var svmSet = toSet(svmNetworks)

func toSet(networks []Network) map[Network]bool {
	set := make(map[Network]bool, len(networks))
	for _, n := range networks {
		set[n] = true
	}
	return set
}

// EVMNetworks returns the EVM network members in display order.
func EVMNetworks() []Network {
	return append([]Network(nil), evmNetworks...)
}

// SVMNetworks returns the SVM network members in display order.
func SVMNetworks() []Network {
	return append([]Network(nil), svmNetworks...)
}

// ChainID returns the numeric chain id for a recognized EVM network.
func ChainID(n Network) (int64, bool) {
	id, ok := chainIDs[n]
	return id, ok
}

// ClassifyNetwork derives the network family for a selection. A recognized
// network wins over a supplied chain id; a chain id alone synthesizes
// CUSTOM_EVM. The second return is false when the selection is ambiguous or
// unsupported, and callers must fail the invocation rather than guess.
func ClassifyNetwork(network Network, chainID string) (NetworkFamily, bool) {
	switch {
	case evmSet[network]:
		return FamilyEVM, true
	case svmSet[network]:
		return FamilySVM, true
	case chainID != "":
		return FamilyCustomEVM, true
	default:
		return "", false
	}
}
