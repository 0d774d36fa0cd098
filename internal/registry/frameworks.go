package registry

import (
	"fmt"
	"strings"
)

// Framework identifies the calling convention of the generated agent code.
type Framework string

const (
	Langchain   Framework = "Langchain"
	VercelAISDK Framework = "VercelAISDK"
	MCP         Framework = "MCP"
)

// Template identifies a physical directory skeleton to copy.
type Template string

const (
	TemplateNext    Template = "next"
	TemplateMCP     Template = "mcp"
	TemplatePrepare Template = "prepare"
)

// frameworkTemplates maps each framework to the templates it can generate.
// A framework with more than one entry requires an explicit template
// selection from the user; a framework with exactly one does not.
var frameworkTemplates = map[Framework][]Template{
	Langchain:   {TemplateNext},
	VercelAISDK: {TemplateNext},
	MCP:         {TemplateMCP},
}

// FrameworkRouteConfig names the variant files promoted for a framework in
// the full-app template: the create-agent source and the API route source.
type FrameworkRouteConfig struct {
	CreateAgent string
	APIRoute    string
}

var frameworkRoutes = map[Framework]FrameworkRouteConfig{
	Langchain: {
		CreateAgent: "framework/langchain.ts",
		APIRoute:    "api/langchain.ts",
	},
	VercelAISDK: {
		CreateAgent: "framework/vercel-ai-sdk.ts",
		APIRoute:    "api/vercel-ai-sdk.ts",
	},
}

// Frameworks returns the frameworks offered for full-app and tool-server
// generation, in display order.
func Frameworks() []Framework {
	return []Framework{Langchain, VercelAISDK, MCP}
}

// TemplatesFor returns the templates a framework can generate.
func TemplatesFor(f Framework) ([]Template, bool) {
	templates, ok := frameworkTemplates[f]
	if !ok {
		return nil, false
	}
	return append([]Template(nil), templates...), true
}

// ParseFramework converts a user-supplied string to a Framework. Matching is
// case-insensitive and tolerates hyphenated spellings like "vercel-ai-sdk".
func ParseFramework(s string) (Framework, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(s, "-", ""))
	switch normalized {
	case "langchain":
		return Langchain, true
	case "vercelaisdk", "vercel":
		return VercelAISDK, true
	case "mcp":
		return MCP, true
	default:
		return "", false
	}
}

// ParseTemplate converts a string to a Template, returning false for unknown
// template names.
func ParseTemplate(s string) (Template, bool) {
	switch Template(strings.ToLower(s)) {
	case TemplateNext:
		return TemplateNext, true
	case TemplateMCP:
		return TemplateMCP, true
	case TemplatePrepare:
		return TemplatePrepare, true
	default:
		return "", false
	}
}

// FrameworkRoute returns the framework route configuration consulted for the
// full-app template. Absence is a hard error: the combination was never
// offered to the user.
func FrameworkRoute(f Framework) (FrameworkRouteConfig, error) {
	cfg, ok := frameworkRoutes[f]
	if !ok {
		return FrameworkRouteConfig{}, fmt.Errorf("%w: framework %q has no full-app route", ErrInvalidSelection, f)
	}
	return cfg, nil
}
