package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/agentkit-labs/create-onchain-agent/internal/selection"
)

const (
	recordDir  = ".agentkit"
	recordFile = "project.yaml"
)

// Record captures how a project was generated. It is written into the
// generated tree so later tooling can see the selection without re-deriving
// it from the source.
type Record struct {
	GeneratedAt    string `yaml:"generated_at"`
	ProjectName    string `yaml:"project_name"`
	PackageName    string `yaml:"package_name"`
	Network        string `yaml:"network,omitempty"`
	ChainID        string `yaml:"chain_id,omitempty"`
	RPCURL         string `yaml:"rpc_url,omitempty"`
	WalletProvider string `yaml:"wallet_provider"`
	Framework      string `yaml:"framework,omitempty"`
	Template       string `yaml:"template"`
	ModelProvider  string `yaml:"model_provider,omitempty"`
}

// RecordPath returns the record location inside a generated project.
func RecordPath(projectRoot string) string {
	return filepath.Join(projectRoot, recordDir, recordFile)
}

// LoadRecord reads the generation record from a project tree.
func LoadRecord(projectRoot string) (*Record, error) {
	data, err := os.ReadFile(RecordPath(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("reading generation record: %w", err)
	}

	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing generation record: %w", err)
	}
	return &r, nil
}

func writeRecord(projectRoot string, sel selection.Selection) error {
	r := Record{
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		ProjectName:    sel.ProjectName,
		PackageName:    sel.PackageName,
		Network:        string(sel.Network),
		ChainID:        sel.ChainID,
		RPCURL:         sel.RPCURL,
		WalletProvider: string(sel.WalletProvider),
		Framework:      string(sel.Framework),
		Template:       string(sel.Template),
		ModelProvider:  sel.ModelProvider,
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling generation record: %w", err)
	}

	dir := filepath.Join(projectRoot, recordDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(RecordPath(projectRoot), data, 0644); err != nil {
		return fmt.Errorf("writing generation record: %w", err)
	}
	return nil
}
