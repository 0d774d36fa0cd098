// Package templates embeds the project skeletons that every generated
// project starts from. Each top-level directory is one template kind; the
// per-option variant files live under agentkit/, framework/, and api/ until
// the assembly driver promotes the selected ones and removes the rest.
package templates

import "embed"

//go:embed all:next all:mcp all:prepare
var FS embed.FS
