package registry

import "strings"

// ModelProvider describes an LLM vendor: the environment variables its SDK
// reads, its default model, and the npm dependencies each calling framework
// needs to talk to it.
type ModelProvider struct {
	// Name is the canonical display name (e.g., "OpenAI").
	Name string

	// KeyEnvVar is the API-key environment variable (e.g., "OPENAI_API_KEY").
	KeyEnvVar string

	// ModelEnvVar is the model-override environment variable.
	ModelEnvVar string

	// DefaultModel is the model name written into generated configuration.
	DefaultModel string

	// Dependencies maps a framework to the {package: version} pairs added to
	// the generated package.json. Versions are npm semver constraints.
	Dependencies map[Framework]map[string]string
}

// modelProviders lists the supported vendors in display order. The first
// entry is the default used when a selection carries an unrecognized or
// empty provider name.
var modelProviders = []ModelProvider{
	{
		Name:         "OpenAI",
		KeyEnvVar:    "OPENAI_API_KEY",
		ModelEnvVar:  "OPENAI_MODEL",
		DefaultModel: "gpt-4o-mini",
		Dependencies: map[Framework]map[string]string{
			Langchain:   {"@langchain/openai": "^0.3.14"},
			VercelAISDK: {"@ai-sdk/openai": "^1.0.11", "ai": "^4.0.22"},
		},
	},
	{
		Name:         "Anthropic",
		KeyEnvVar:    "ANTHROPIC_API_KEY",
		ModelEnvVar:  "ANTHROPIC_MODEL",
		DefaultModel: "claude-3-5-sonnet-20241022",
		Dependencies: map[Framework]map[string]string{
			Langchain:   {"@langchain/anthropic": "^0.3.11"},
			VercelAISDK: {"@ai-sdk/anthropic": "^1.0.8", "ai": "^4.0.22"},
		},
	},
	{
		Name:         "Google",
		KeyEnvVar:    "GOOGLE_API_KEY",
		ModelEnvVar:  "GOOGLE_MODEL",
		DefaultModel: "gemini-2.0-flash",
		Dependencies: map[Framework]map[string]string{
			Langchain:   {"@langchain/google-genai": "^0.1.6"},
			VercelAISDK: {"@ai-sdk/google": "^1.0.14", "ai": "^4.0.22"},
		},
	},
}

// ModelProviders returns the supported vendors in display order.
func ModelProviders() []ModelProvider {
	return append([]ModelProvider(nil), modelProviders...)
}

// DefaultModelProvider returns the provider used when none is selected.
func DefaultModelProvider() ModelProvider {
	return modelProviders[0]
}

// LookupModelProvider finds a provider by name, case-insensitively.
func LookupModelProvider(name string) (ModelProvider, bool) {
	for _, p := range modelProviders {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return ModelProvider{}, false
}

// ResolveModelProvider returns the named provider, or the default when the
// name is empty or unrecognized. Defaulting here is deliberate: the model
// provider is cosmetic relative to the wallet/network selection, and the
// original tool behaves the same way.
func ResolveModelProvider(name string) ModelProvider {
	if p, ok := LookupModelProvider(name); ok {
		return p
	}
	return DefaultModelProvider()
}
