package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joho/godotenv"

	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
)

func TestRenderSectionOrdering(t *testing.T) {
	env := registry.EnvSpec{
		TopComments: []string{"Get keys from the portal."},
		Required:    []string{"CDP_API_KEY_ID"},
	}
	out := Render(env, "base-sepolia", "", "", registry.ResolveModelProvider("OpenAI"))

	required := strings.Index(out, "# Required")
	optional := strings.Index(out, "# Optional")
	if required == -1 || optional == -1 || required > optional {
		t.Fatalf("section ordering broken:\n%s", out)
	}

	requiredSection := out[required:optional]
	if !strings.Contains(requiredSection, "CDP_API_KEY_ID=") {
		t.Errorf("required section missing CDP_API_KEY_ID:\n%s", requiredSection)
	}

	optionalSection := out[optional:]
	if !strings.Contains(optionalSection, "NETWORK_ID=base-sepolia") {
		t.Errorf("optional section missing NETWORK_ID=base-sepolia:\n%s", optionalSection)
	}
	if strings.Contains(out, "RPC_URL=") {
		t.Error("RPC_URL rendered without an rpc url in the selection")
	}
	if strings.Contains(out, "CHAIN_ID=") {
		t.Error("CHAIN_ID rendered without a chain id in the selection")
	}
}

func TestRenderExactlyOneProviderBlock(t *testing.T) {
	env := registry.EnvSpec{Required: []string{"PRIVATE_KEY"}}

	out := Render(env, "base-sepolia", "", "", registry.ResolveModelProvider("Anthropic"))
	if !strings.Contains(out, "# Anthropic configuration") {
		t.Errorf("missing Anthropic block:\n%s", out)
	}
	if !strings.Contains(out, "ANTHROPIC_API_KEY=\n") {
		t.Error("ANTHROPIC_API_KEY line missing or non-empty")
	}
	if !strings.Contains(out, "ANTHROPIC_MODEL=claude-3-5-sonnet-20241022") {
		t.Error("ANTHROPIC_MODEL default missing")
	}
	if strings.Contains(out, "OPENAI_API_KEY") {
		t.Error("second provider block leaked into output")
	}

	// Unrecognized provider falls back to the OpenAI block.
	out = Render(env, "base-sepolia", "", "", registry.ResolveModelProvider("mistral"))
	if !strings.Contains(out, "# OpenAI configuration") || !strings.Contains(out, "OPENAI_MODEL=gpt-4o-mini") {
		t.Errorf("unrecognized provider did not fall back to OpenAI:\n%s", out)
	}
}

func TestRenderCustomChainLines(t *testing.T) {
	env := registry.EnvSpec{Required: []string{"PRIVATE_KEY"}, Optional: []string{"EXTRA"}}
	out := Render(env, "", "10143", "https://rpc.example.com", registry.ResolveModelProvider(""))

	for _, want := range []string{"NETWORK_ID=\n", "RPC_URL=https://rpc.example.com", "CHAIN_ID=10143", "EXTRA="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOverwritesAndParses(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, FileName)
	if err := os.WriteFile(stale, []byte("OLD_KEY=old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	env := registry.EnvSpec{Required: []string{"CDP_API_KEY_ID", "CDP_API_KEY_SECRET"}}
	path, err := Write(dir, env, "ethereum-mainnet", "", "", registry.ResolveModelProvider("Anthropic"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	// The rendered file must be valid dotenv syntax, and a full replacement.
	parsed, err := godotenv.Read(path)
	if err != nil {
		t.Fatalf("generated file does not parse as dotenv: %v", err)
	}
	if _, ok := parsed["OLD_KEY"]; ok {
		t.Error("stale content survived the overwrite")
	}
	if parsed["NETWORK_ID"] != "ethereum-mainnet" {
		t.Errorf("NETWORK_ID = %q", parsed["NETWORK_ID"])
	}
	if v, ok := parsed["CDP_API_KEY_SECRET"]; !ok || v != "" {
		t.Errorf("CDP_API_KEY_SECRET = (%q, %v), want empty value", v, ok)
	}
}
