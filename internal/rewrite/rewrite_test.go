package rewrite

import (
	"strings"
	"testing"

	"github.com/agentkit-labs/create-onchain-agent/internal/registry"
)

const langchainSrc = `import { AgentKit } from "@coinbase/agentkit";
import { ChatOpenAI } from "@langchain/openai";
import { createReactAgent } from "@langchain/langgraph/prebuilt";

export async function createAgent() {
  if (!process.env.OPENAI_API_KEY) {
    throw new Error("OPENAI_API_KEY is not set");
  }

  const llm = new ChatOpenAI({
    model: process.env.OPENAI_MODEL || "gpt-4o-mini",
  });

  return createReactAgent({ llm, tools: [] });
}
`

const vercelSrc = `import { openai } from "@ai-sdk/openai";
import { generateText } from "ai";

export async function createAgent() {
  if (!process.env.OPENAI_API_KEY) {
    throw new Error("OPENAI_API_KEY is not set");
  }

  const model = openai(process.env.OPENAI_MODEL || "gpt-4o-mini");

  return { model, generateText };
}
`

func TestModelProviderRewritesLangchain(t *testing.T) {
	out, warnings := ModelProvider(langchainSrc, registry.ResolveModelProvider("Anthropic"))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	for _, want := range []string{
		`import { ChatAnthropic } from "@langchain/anthropic";`,
		"if (!process.env.ANTHROPIC_API_KEY)",
		`"ANTHROPIC_API_KEY is not set"`,
		"new ChatAnthropic({",
		`process.env.ANTHROPIC_MODEL || "claude-3-5-sonnet-20241022"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rewritten source missing %q:\n%s", want, out)
		}
	}
	for _, gone := range []string{"ChatOpenAI", "OPENAI_API_KEY", "@langchain/openai"} {
		if strings.Contains(out, gone) {
			t.Errorf("rewritten source still contains %q", gone)
		}
	}
	// Untouched lines survive.
	if !strings.Contains(out, `import { AgentKit } from "@coinbase/agentkit";`) {
		t.Error("unrelated import was disturbed")
	}
}

func TestModelProviderRewritesVercel(t *testing.T) {
	out, warnings := ModelProvider(vercelSrc, registry.ResolveModelProvider("Google"))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	for _, want := range []string{
		`import { google } from "@ai-sdk/google";`,
		"if (!process.env.GOOGLE_API_KEY)",
		`google(process.env.GOOGLE_MODEL || "gemini-2.0-flash")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rewritten source missing %q:\n%s", want, out)
		}
	}
}

func TestModelProviderToleratesWhitespaceVariance(t *testing.T) {
	loose := strings.Replace(langchainSrc,
		`import { ChatOpenAI } from "@langchain/openai";`,
		`import {ChatOpenAI} from  "@langchain/openai"`, 1)
	loose = strings.Replace(loose,
		"if (!process.env.OPENAI_API_KEY) {",
		"if(  !process.env.OPENAI_API_KEY ){", 1)

	out, warnings := ModelProvider(loose, registry.ResolveModelProvider("Anthropic"))
	if len(warnings) != 0 {
		t.Fatalf("whitespace variance produced warnings: %v", warnings)
	}
	if strings.Contains(out, "OPENAI") {
		t.Errorf("loose formatting defeated a substitution:\n%s", out)
	}
}

func TestModelProviderOpenAIIsStable(t *testing.T) {
	out, warnings := ModelProvider(langchainSrc, registry.ResolveModelProvider("OpenAI"))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if out != langchainSrc {
		t.Errorf("OpenAI rewrite changed the canonical template:\n%s", out)
	}
}

func TestModelProviderUnknownSourceUnchanged(t *testing.T) {
	src := "export const noop = () => {};\n"
	out, warnings := ModelProvider(src, registry.ResolveModelProvider("Anthropic"))
	if out != src || warnings != nil {
		t.Errorf("source without a framework signature was modified: %q %v", out, warnings)
	}
}

func TestModelProviderReportsPatternMiss(t *testing.T) {
	drifted := strings.Replace(langchainSrc,
		"new ChatOpenAI({",
		"new ChatOpenAI (opts", 1)

	out, warnings := ModelProvider(drifted, registry.ResolveModelProvider("Anthropic"))
	if len(warnings) != 1 || !strings.Contains(warnings[0], "model constructor") {
		t.Fatalf("warnings = %v, want one constructor miss", warnings)
	}
	// The other two substitutions still ran.
	if !strings.Contains(out, `"@langchain/anthropic"`) || !strings.Contains(out, "ANTHROPIC_API_KEY") {
		t.Errorf("remaining substitutions skipped after a miss:\n%s", out)
	}
}
