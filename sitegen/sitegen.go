// Package sitegen produces the static site content for a submission:
// index.html and script.js from an LLM when one is configured, plus
// style.css, README.md and LICENSE which are always deterministic.
package sitegen

import (
	"context"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sparshsumani/meta-app-builder/logger"
)

// ChatClient is the slice of the OpenAI client the generator needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Generator struct {
	client ChatClient // nil means fallback-only generation
	model  string
}

// NewGenerator builds a generator backed by the OpenAI chat completions
// API. With an empty API key the generator still works and emits the
// deterministic fallback pages.
func NewGenerator(apiKey string, model string) *Generator {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if apiKey == "" {
		return &Generator{model: model}
	}
	cfg := openai.DefaultConfig(apiKey)
	// short timeout to avoid long hangs
	cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	return &Generator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// NewGeneratorWithClient wires in a caller-supplied chat client.
func NewGeneratorWithClient(client ChatClient, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Generate returns {path -> UTF-8 text} for the site. Attachment bytes
// are committed separately; only their names are passed so the prompts
// can reference them. LLM failures degrade to the fallback pages, they
// never fail the deployment.
func (g *Generator) Generate(ctx context.Context, brief string, checks []string, attachments []string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	var html, js string
	fallback := g.client == nil

	if !fallback {
		var err error
		html, err = g.complete(ctx, systemPromptHtml, indexHtmlPrompt(brief, checks, attachments))
		if err != nil {
			log.Warn("index.html generation failed, using fallback", "error", err)
			fallback = true
		}
	}
	if !fallback {
		var err error
		js, err = g.complete(ctx, systemPromptJs, scriptJsPrompt(brief, checks, attachments))
		if err != nil {
			log.Warn("script.js generation failed, using fallback", "error", err)
			fallback = true
		}
	}

	if fallback {
		html = fallbackIndexHtml(brief, checks)
		js = fallbackScriptJs
	}

	return map[string]string{
		"index.html": html,
		"style.css":  styleCss,
		"script.js":  js,
		"README.md":  readmeMd(brief, checks),
		"LICENSE":    mitLicense,
	}, nil
}

func (g *Generator) complete(ctx context.Context, system string, user string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	return stripCodeFence(resp.Choices[0].Message.Content), nil
}

// stripCodeFence removes a surrounding markdown code fence that models
// sometimes wrap their output in despite the prompt.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:] // drop the opening fence with its language tag
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
