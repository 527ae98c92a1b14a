package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Gemini implements Provider for Google's Gemini API. A single API key
// configures the client; generation takes one combined prompt string.
type Gemini struct {
	api  geminiAPI
	warn io.Writer
}

// geminiAPI is the seam between the adapter and the genai SDK so tests can
// run without live credentials.
type geminiAPI interface {
	generate(ctx context.Context, model, prompt string) (string, error)
	models(ctx context.Context) ([]geminiModel, error)
}

type geminiModel struct {
	name    string
	methods []string
}

// NewGemini creates the Google adapter. Client construction failures are
// fatal and wrapped in ConfigError.
func NewGemini(ctx context.Context, apiKey string, opts Options) (*Gemini, error) {
	copts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if opts.Endpoint != "" {
		copts = append(copts, option.WithEndpoint(opts.Endpoint))
	}
	client, err := genai.NewClient(ctx, copts...)
	if err != nil {
		return nil, &ConfigError{Provider: IdentityGoogle, Err: err}
	}
	return &Gemini{api: &genaiClient{client: client}, warn: opts.stderr()}, nil
}

func (g *Gemini) Name() string { return string(IdentityGoogle) }

// Models lists generation-capable Gemini models with the vendor namespace
// prefix stripped, ordered so higher-capability tiers surface first.
func (g *Gemini) Models(ctx context.Context) []string {
	infos, err := g.api.models(ctx)
	if err != nil {
		warnf(g.warn, "Could not fetch Gemini model list: %v", err)
		return []string{}
	}
	var names []string
	for _, m := range infos {
		if !supportsGeneration(m.methods) {
			continue
		}
		names = append(names, strings.TrimPrefix(m.name, "models/"))
	}
	return orderByTier(names)
}

func (g *Gemini) GenerateReview(ctx context.Context, req ReviewRequest) string {
	full := composeCombined(req.Prompt, req.Content)
	if req.Debug {
		debugEcho(g.warn, g.Name(), req.Model, full)
		return DebugSentinel
	}
	text, err := g.api.generate(ctx, req.Model, full)
	if err != nil {
		return errorText(err)
	}
	if strings.TrimSpace(text) == "" {
		warnf(g.warn, "Gemini returned an empty response for model %s", req.Model)
		return EmptyResponse
	}
	return text
}

func supportsGeneration(methods []string) bool {
	for _, m := range methods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}

// orderByTier groups model names by tier marker — "pro" variants first, then
// "flash", then everything else — with each group lexicographically sorted.
// Interactive selection then shows the most capable models at the top.
func orderByTier(names []string) []string {
	var pro, flash, rest []string
	for _, n := range names {
		switch {
		case strings.Contains(n, "pro"):
			pro = append(pro, n)
		case strings.Contains(n, "flash"):
			flash = append(flash, n)
		default:
			rest = append(rest, n)
		}
	}
	sort.Strings(pro)
	sort.Strings(flash)
	sort.Strings(rest)
	out := make([]string, 0, len(names))
	out = append(out, pro...)
	out = append(out, flash...)
	out = append(out, rest...)
	return out
}

// genaiClient adapts the genai SDK to geminiAPI.
type genaiClient struct {
	client *genai.Client
}

func (c *genaiClient) generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

func (c *genaiClient) models(ctx context.Context) ([]geminiModel, error) {
	it := c.client.ListModels(ctx)
	var out []geminiModel
	for {
		mi, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing models: %w", err)
		}
		out = append(out, geminiModel{name: mi.Name, methods: mi.SupportedGenerationMethods})
	}
	return out, nil
}
