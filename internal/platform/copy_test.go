package platform

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestCopyTree(t *testing.T) {
	srcFS := fstest.MapFS{
		"next/package.json":        {Data: []byte(`{"name": "template"}`)},
		"next/agentkit/cdp-evm.ts": {Data: []byte("export {};")},
		"next/app/page.tsx":        {Data: []byte("export default function Page() {}")},
		"next/app/api/.gitkeep":    {Data: []byte("")},
	}

	dst := filepath.Join(t.TempDir(), "out")
	if err := CopyTree(srcFS, "next", dst); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	for rel, want := range map[string]string{
		"package.json":        `{"name": "template"}`,
		"agentkit/cdp-evm.ts": "export {};",
		"app/page.tsx":        "export default function Page() {}",
	} {
		data, err := os.ReadFile(filepath.Join(dst, rel))
		if err != nil {
			t.Errorf("missing %s: %v", rel, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s content = %q, want %q", rel, data, want)
		}
	}
}

func TestCopyTreeMissingRoot(t *testing.T) {
	srcFS := fstest.MapFS{}
	if err := CopyTree(srcFS, "nope", t.TempDir()); err == nil {
		t.Fatal("CopyTree succeeded for a missing template root")
	}
}

func TestCopyTreeRootMustBeDirectory(t *testing.T) {
	srcFS := fstest.MapFS{"file": {Data: []byte("x")}}
	if err := CopyTree(srcFS, "file", t.TempDir()); err == nil {
		t.Fatal("CopyTree accepted a file as the template root")
	}
}
