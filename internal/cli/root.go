package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentkit-labs/create-onchain-agent/internal/assemble"
	"github.com/agentkit-labs/create-onchain-agent/internal/branding"
	"github.com/agentkit-labs/create-onchain-agent/internal/config"
	"github.com/agentkit-labs/create-onchain-agent/internal/prompt"
	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
	"github.com/agentkit-labs/create-onchain-agent/internal/selection"
	"github.com/agentkit-labs/create-onchain-agent/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var createFlags struct {
	packageName    string
	network        string
	chainID        string
	rpcURL         string
	walletProvider string
	framework      string
	template       string
	modelProvider  string
	nonInteractive bool
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&createFlags.packageName, "package", "", "package.json name (defaults to the project name)")
	f.StringVar(&createFlags.network, "network", "", "target network id (e.g. base-sepolia)")
	f.StringVar(&createFlags.chainID, "chain-id", "", "custom EVM chain id (mutually exclusive with --network)")
	f.StringVar(&createFlags.rpcURL, "rpc-url", "", "RPC endpoint for a custom EVM chain")
	f.StringVar(&createFlags.walletProvider, "wallet", "", "wallet provider (e.g. CDPEvmWallet)")
	f.StringVar(&createFlags.framework, "framework", "", "agent framework (Langchain, VercelAISDK, MCP)")
	f.StringVar(&createFlags.template, "template", "", "project template (next, mcp, prepare)")
	f.StringVar(&createFlags.modelProvider, "provider", "", "model provider (OpenAI, Anthropic, Google)")
	f.BoolVar(&createFlags.nonInteractive, "yes", false, "fail instead of prompting for missing options")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [project-name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds an onchain agent project: it copies a
template, wires the selected wallet provider, framework, and model provider,
and writes the environment and runtime configuration the project needs.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		seed, err := seedSelection(args)
		if err != nil {
			return err
		}

		sel := seed
		if createFlags.nonInteractive {
			if sel.PackageName == "" {
				sel.PackageName = sel.ProjectName
			}
			if err := sel.Validate(); err != nil {
				return err
			}
		} else {
			sel, err = prompt.Run(seed)
			if err != nil {
				return err
			}
		}

		dest := filepath.Join(".", sel.ProjectName)
		result, err := assemble.Assemble(sel, dest)
		if err != nil {
			return err
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		printNextSteps(cmd.OutOrStdout(), sel, result.Root)
		return nil
	},
}

// seedSelection builds the pre-prompt selection from positional args, flags,
// and user-level defaults. Flag values must parse; unknown enum values are
// errors here rather than prompt fallbacks.
func seedSelection(args []string) (selection.Selection, error) {
	var sel selection.Selection

	if len(args) > 0 {
		sel.ProjectName = args[0]
	}
	sel.PackageName = createFlags.packageName
	sel.ChainID = createFlags.chainID
	sel.RPCURL = createFlags.rpcURL

	network := createFlags.network
	if network == "" && sel.ChainID == "" {
		network = config.Get("defaults.network")
	}
	sel.Network = registry.Network(network)

	wallet := createFlags.walletProvider
	if wallet == "" {
		wallet = config.Get("defaults.wallet")
	}
	if wallet != "" {
		p, ok := registry.ParseWalletProvider(wallet)
		if !ok {
			return selection.Selection{}, fmt.Errorf("unknown wallet provider %q", wallet)
		}
		sel.WalletProvider = p
	}

	if createFlags.framework != "" {
		f, ok := registry.ParseFramework(createFlags.framework)
		if !ok {
			return selection.Selection{}, fmt.Errorf("unknown framework %q", createFlags.framework)
		}
		sel.Framework = f
	}

	if createFlags.template != "" {
		t, ok := registry.ParseTemplate(createFlags.template)
		if !ok {
			return selection.Selection{}, fmt.Errorf("unknown template %q", createFlags.template)
		}
		sel.Template = t
	}

	provider := createFlags.modelProvider
	if provider == "" {
		provider = config.Get("defaults.provider")
	}
	if provider != "" {
		p, ok := registry.LookupModelProvider(provider)
		if !ok {
			return selection.Selection{}, fmt.Errorf("unknown model provider %q", provider)
		}
		sel.ModelProvider = p.Name
	}

	return sel, nil
}

func printNextSteps(w io.Writer, sel selection.Selection, root string) {
	fmt.Fprintf(w, "\nCreated %s at %s\n\n", sel.ProjectName, root)
	fmt.Fprintf(w, "Next steps:\n")
	fmt.Fprintf(w, "  cd %s\n", sel.ProjectName)
	fmt.Fprintf(w, "  npm install\n")
	switch sel.Template {
	case registry.TemplateNext:
		fmt.Fprintf(w, "  # fill in the credentials in .env.local\n")
		fmt.Fprintf(w, "  npm run dev\n")
	case registry.TemplateMCP:
		fmt.Fprintf(w, "  npm run build\n")
		fmt.Fprintf(w, "  # merge claude_desktop_config.json into your Claude Desktop config\n")
	case registry.TemplatePrepare:
		fmt.Fprintf(w, "  # fill in the credentials in .env.local\n")
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
