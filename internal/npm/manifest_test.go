package npm

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const baseManifest = `{
  "name": "onchain-agent",
  "version": "0.1.0",
  "private": true,
  "dependencies": {
    "@coinbase/agentkit": "^0.4.0",
    "next": "15.1.3"
  },
  "devDependencies": {
    "typescript": "^5.7.2"
  }
}`

func writeManifest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(baseManifest), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func readManifest(t *testing.T, dir string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("mutated manifest is not JSON: %v", err)
	}
	return m
}

func TestMutateAddsDependenciesAndName(t *testing.T) {
	dir := writeManifest(t)

	err := Mutate(dir, "@acme/my-agent", map[string]string{
		"@langchain/anthropic": "^0.3.11",
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	m := readManifest(t, dir)
	if m["name"] != "@acme/my-agent" {
		t.Errorf("name = %v", m["name"])
	}

	deps := m["dependencies"].(map[string]any)
	if deps["@langchain/anthropic"] != "^0.3.11" {
		t.Errorf("new dependency missing: %v", deps)
	}
	// Pre-existing entries and unrelated keys are untouched.
	if deps["@coinbase/agentkit"] != "^0.4.0" {
		t.Errorf("existing dependency disturbed: %v", deps)
	}
	if m["private"] != true {
		t.Error("unrelated key dropped")
	}
	if _, ok := m["devDependencies"]; !ok {
		t.Error("devDependencies dropped")
	}
}

func TestMutateRejectsInvalidConstraint(t *testing.T) {
	dir := writeManifest(t)

	err := Mutate(dir, "", map[string]string{"broken": "not-a-version"})
	if err == nil {
		t.Fatal("Mutate accepted an invalid version constraint")
	}

	// Nothing was written.
	data, _ := os.ReadFile(filepath.Join(dir, ManifestName))
	if string(data) != baseManifest {
		t.Error("manifest modified despite validation failure")
	}
}

func TestMutateNoDepsSetsNameOnly(t *testing.T) {
	dir := writeManifest(t)
	if err := Mutate(dir, "bare-name", nil); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	m := readManifest(t, dir)
	if m["name"] != "bare-name" {
		t.Errorf("name = %v", m["name"])
	}
}
