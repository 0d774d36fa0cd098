// Package rewrite performs targeted substitution of model-provider import,
// guard, and constructor blocks inside the generated create-agent source.
// The substitutions are textual, not AST-based: the template source is
// controlled, so matching structural patterns against it is sufficient. A
// pattern miss means the template drifted from the patterns below and is
// reported to the caller instead of passing silently.
package rewrite

import (
	"fmt"
	"regexp"

	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
)

// substitutionSet holds the three structural patterns a framework's
// create-agent template is expected to match, in its default (OpenAI) form.
type substitutionSet struct {
	// signature distinguishes the framework's source text.
	signature *regexp.Regexp

	importLine  *regexp.Regexp
	guard       *regexp.Regexp
	constructor *regexp.Regexp
}

// replacementTriple is the provider-specific text substituted for each of
// the three patterns.
type replacementTriple struct {
	importLine  string
	guard       string
	constructor string
}

var langchainSet = substitutionSet{
	signature:   regexp.MustCompile(`"@langchain/openai"`),
	importLine:  regexp.MustCompile(`(?m)^import\s*\{\s*ChatOpenAI\s*\}\s*from\s*"@langchain/openai";?`),
	guard:       regexp.MustCompile(`if\s*\(\s*!process\.env\.OPENAI_API_KEY\s*\)\s*\{\s*throw new Error\([^)]*\);\s*\}`),
	constructor: regexp.MustCompile(`new ChatOpenAI\(\{[^}]*\}\)`),
}

var vercelSet = substitutionSet{
	signature:   regexp.MustCompile(`"@ai-sdk/openai"`),
	importLine:  regexp.MustCompile(`(?m)^import\s*\{\s*openai\s*\}\s*from\s*"@ai-sdk/openai";?`),
	guard:       regexp.MustCompile(`if\s*\(\s*!process\.env\.OPENAI_API_KEY\s*\)\s*\{\s*throw new Error\([^)]*\);\s*\}`),
	constructor: regexp.MustCompile(`openai\(\s*process\.env\.OPENAI_MODEL\s*\|\|\s*"[^"]*"\s*\)`),
}

var langchainReplacements = map[string]replacementTriple{
	"OpenAI": {
		importLine: `import { ChatOpenAI } from "@langchain/openai";`,
		guard: `if (!process.env.OPENAI_API_KEY) {
    throw new Error("OPENAI_API_KEY is not set");
  }`,
		constructor: `new ChatOpenAI({
    model: process.env.OPENAI_MODEL || "gpt-4o-mini",
  })`,
	},
	"Anthropic": {
		importLine: `import { ChatAnthropic } from "@langchain/anthropic";`,
		guard: `if (!process.env.ANTHROPIC_API_KEY) {
    throw new Error("ANTHROPIC_API_KEY is not set");
  }`,
		constructor: `new ChatAnthropic({
    model: process.env.ANTHROPIC_MODEL || "claude-3-5-sonnet-20241022",
  })`,
	},
	"Google": {
		importLine: `import { ChatGoogleGenerativeAI } from "@langchain/google-genai";`,
		guard: `if (!process.env.GOOGLE_API_KEY) {
    throw new Error("GOOGLE_API_KEY is not set");
  }`,
		constructor: `new ChatGoogleGenerativeAI({
    model: process.env.GOOGLE_MODEL || "gemini-2.0-flash",
  })`,
	},
}

var vercelReplacements = map[string]replacementTriple{
	"OpenAI": {
		importLine: `import { openai } from "@ai-sdk/openai";`,
		guard: `if (!process.env.OPENAI_API_KEY) {
    throw new Error("OPENAI_API_KEY is not set");
  }`,
		constructor: `openai(process.env.OPENAI_MODEL || "gpt-4o-mini")`,
	},
	"Anthropic": {
		importLine: `import { anthropic } from "@ai-sdk/anthropic";`,
		guard: `if (!process.env.ANTHROPIC_API_KEY) {
    throw new Error("ANTHROPIC_API_KEY is not set");
  }`,
		constructor: `anthropic(process.env.ANTHROPIC_MODEL || "claude-3-5-sonnet-20241022")`,
	},
	"Google": {
		importLine: `import { google } from "@ai-sdk/google";`,
		guard: `if (!process.env.GOOGLE_API_KEY) {
    throw new Error("GOOGLE_API_KEY is not set");
  }`,
		constructor: `google(process.env.GOOGLE_MODEL || "gemini-2.0-flash")`,
	},
}

// ModelProvider rewrites the create-agent source for the selected provider.
// The framework is detected from the source's import signature; source that
// matches neither framework is returned unchanged with no warnings. Each of
// the three substitutions replaces the first match of its pattern; a miss is
// reported in the returned warnings and the remaining substitutions still
// run.
func ModelProvider(src string, provider registry.ModelProvider) (string, []string) {
	var set substitutionSet
	var replacements map[string]replacementTriple

	switch {
	case langchainSet.signature.MatchString(src):
		set, replacements = langchainSet, langchainReplacements
	case vercelSet.signature.MatchString(src):
		set, replacements = vercelSet, vercelReplacements
	default:
		return src, nil
	}

	triple, ok := replacements[provider.Name]
	if !ok {
		// Registry and rewrite tables are maintained together; a provider
		// without a triple is a programming error surfaced as a warning.
		return src, []string{fmt.Sprintf("no substitution triple for provider %q", provider.Name)}
	}

	var warnings []string
	src, warnings = replaceFirst(src, set.importLine, triple.importLine, "import line", warnings)
	src, warnings = replaceFirst(src, set.guard, triple.guard, "API key guard", warnings)
	src, warnings = replaceFirst(src, set.constructor, triple.constructor, "model constructor", warnings)
	return src, warnings
}

// replaceFirst substitutes the first match of pattern with the literal
// replacement text, recording a warning when the pattern does not match.
func replaceFirst(src string, pattern *regexp.Regexp, replacement, what string, warnings []string) (string, []string) {
	loc := pattern.FindStringIndex(src)
	if loc == nil {
		return src, append(warnings, fmt.Sprintf("%s pattern not found; template source drifted from the expected shape", what))
	}
	return src[:loc[0]] + replacement + src[loc[1]:], warnings
}
