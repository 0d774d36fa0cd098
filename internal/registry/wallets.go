package registry

// WalletProvider identifies a wallet integration strategy.
type WalletProvider string

const (
	CDPEvmWallet        WalletProvider = "CDPEvmWallet"
	CDPSmartWallet      WalletProvider = "CDPSmartWallet"
	ViemWallet          WalletProvider = "ViemWallet"
	PrivyEvmWallet      WalletProvider = "PrivyEvmWallet"
	CDPSvmWallet        WalletProvider = "CDPSvmWallet"
	SolanaKeypairWallet WalletProvider = "SolanaKeypairWallet"
	PrivySvmWallet      WalletProvider = "PrivySvmWallet"
)

// walletProvidersByFamily lists the valid providers per network family.
// The first element of each slice is the default offered to the user.
var walletProvidersByFamily = map[NetworkFamily][]WalletProvider{
	FamilyEVM:       {CDPEvmWallet, CDPSmartWallet, ViemWallet, PrivyEvmWallet},
	FamilyCustomEVM: {ViemWallet, PrivyEvmWallet},
	FamilySVM:       {CDPSvmWallet, SolanaKeypairWallet, PrivySvmWallet},
}

// WalletProvidersFor returns the valid wallet providers for a family, in
// display order. The slice is a copy and always non-empty for a known family.
func WalletProvidersFor(family NetworkFamily) []WalletProvider {
	return append([]WalletProvider(nil), walletProvidersByFamily[family]...)
}

// DefaultWalletProvider returns the first (default) provider for a family.
func DefaultWalletProvider(family NetworkFamily) (WalletProvider, bool) {
	providers, ok := walletProvidersByFamily[family]
	if !ok || len(providers) == 0 {
		return "", false
	}
	return providers[0], true
}

// ParseWalletProvider converts a string to a WalletProvider, returning false
// if it names no known provider.
func ParseWalletProvider(s string) (WalletProvider, bool) {
	for _, providers := range walletProvidersByFamily {
		for _, p := range providers {
			if string(p) == s {
				return p, true
			}
		}
	}
	return "", false
}
