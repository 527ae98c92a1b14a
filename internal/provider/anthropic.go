package provider

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// claudeMaxTokens caps review output length; Claude requires an explicit
// max_tokens on every request.
const claudeMaxTokens = 4096

// claudeModels is the pinned model catalog. Anthropic offers no key-scoped
// discovery comparable to the other vendors, so the list is fixed.
var claudeModels = []string{
	"claude-3-5-haiku-20241022",
	"claude-3-5-sonnet-20241022",
	"claude-3-7-sonnet-20250219",
	"claude-opus-4-20250514",
	"claude-sonnet-4-20250514",
}

// Claude implements Provider for Anthropic's messages API. The prompt rides
// in the system parameter alongside a single user message.
type Claude struct {
	client anthropic.Client
	warn   io.Writer
}

// NewClaude creates the Anthropic adapter.
func NewClaude(apiKey string, opts Options) *Claude {
	ropts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if opts.Endpoint != "" {
		ropts = append(ropts, option.WithBaseURL(opts.Endpoint))
	}
	return &Claude{
		client: anthropic.NewClient(ropts...),
		warn:   opts.stderr(),
	}
}

func (c *Claude) Name() string { return string(IdentityAnthropic) }

// Models returns the fixed catalog, lexicographically sorted.
func (c *Claude) Models(ctx context.Context) []string {
	models := make([]string, len(claudeModels))
	copy(models, claudeModels)
	sort.Strings(models)
	return models
}

func (c *Claude) GenerateReview(ctx context.Context, req ReviewRequest) string {
	user := composeUser(req.Content)
	if req.Debug {
		debugEcho(c.warn, c.Name(), req.Model, req.Prompt+"\n\n"+user)
		return DebugSentinel
	}
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: claudeMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: req.Prompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return errorText(err)
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		warnf(c.warn, "Claude returned an empty response for model %s", req.Model)
		return EmptyResponse
	}
	return b.String()
}
