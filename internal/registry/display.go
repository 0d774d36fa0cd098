package registry

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName converts a hyphenated identifier like "base-sepolia" into a
// prompt-friendly label like "Base Sepolia".
func DisplayName[T ~string](id T) string {
	return titleCaser.String(strings.ReplaceAll(string(id), "-", " "))
}
