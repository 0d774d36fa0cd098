// Package npm mutates the dependency manifest (package.json) of a generated
// project. Only the name field and provider-specific dependency entries are
// touched; every other key survives the parse/serialize round trip.
package npm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ManifestName is the dependency manifest at the project root.
const ManifestName = "package.json"

// Mutate sets the package name and adds (or overwrites) the given
// {package: version} dependency entries. Versions must be valid npm semver
// constraints; an invalid one indicates a broken registry table and fails
// loudly before anything is written.
func Mutate(projectRoot, packageName string, deps map[string]string) error {
	for pkg, version := range deps {
		if err := validateConstraint(version); err != nil {
			return fmt.Errorf("dependency %s@%s: %w", pkg, version, err)
		}
	}

	path := filepath.Join(projectRoot, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if packageName != "" {
		manifest["name"] = packageName
	}

	if len(deps) > 0 {
		dependencies, ok := manifest["dependencies"].(map[string]any)
		if !ok {
			dependencies = map[string]any{}
			manifest["dependencies"] = dependencies
		}
		for pkg, version := range deps {
			dependencies[pkg] = version
		}
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// validateConstraint checks an npm version constraint. Masterminds/semver
// understands the ^ and ~ range syntax npm uses.
func validateConstraint(version string) error {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return fmt.Errorf("empty version constraint")
	}
	if _, err := semver.NewConstraint(trimmed); err != nil {
		return fmt.Errorf("invalid version constraint: %w", err)
	}
	return nil
}
