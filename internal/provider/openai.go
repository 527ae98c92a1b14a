package provider

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultOpenAIEndpoint is the vendor's own base URL, used when no override
// is supplied.
const DefaultOpenAIEndpoint = "https://api.openai.com/v1"

// OpenAI implements Provider for OpenAI's chat completions API. The same
// type serves Grok: xAI's API is wire-compatible, so the adapter is
// parameterized by base endpoint rather than duplicated.
type OpenAI struct {
	client   openai.Client
	endpoint string
	warn     io.Writer
}

// NewOpenAI creates the OpenAI-compatible adapter. An empty opts.Endpoint
// selects the vendor default.
func NewOpenAI(apiKey string, opts Options) *OpenAI {
	ropts := []option.RequestOption{option.WithAPIKey(apiKey)}
	endpoint := opts.Endpoint
	if endpoint != "" {
		ropts = append(ropts, option.WithBaseURL(endpoint))
	} else {
		endpoint = DefaultOpenAIEndpoint
	}
	return &OpenAI{
		client:   openai.NewClient(ropts...),
		endpoint: endpoint,
		warn:     opts.stderr(),
	}
}

func (o *OpenAI) Name() string {
	if o.endpoint == GrokEndpoint {
		return string(IdentityGrok)
	}
	return string(IdentityOpenAI)
}

// Endpoint reports the base URL the adapter was constructed with.
func (o *OpenAI) Endpoint() string { return o.endpoint }

// Models returns the vendor's full model listing, lexicographically sorted.
// The list endpoint already scopes results to the key, so the adapter does
// no filtering.
func (o *OpenAI) Models(ctx context.Context) []string {
	it := o.client.Models.ListAutoPaging(ctx)
	var ids []string
	for it.Next() {
		ids = append(ids, it.Current().ID)
	}
	if err := it.Err(); err != nil {
		warnf(o.warn, "Could not fetch %s model list: %v", o.Name(), err)
		return []string{}
	}
	sort.Strings(ids)
	return ids
}

func (o *OpenAI) GenerateReview(ctx context.Context, req ReviewRequest) string {
	user := composeUser(req.Content)
	if req.Debug {
		debugEcho(o.warn, o.Name(), req.Model, req.Prompt+"\n\n"+user)
		return DebugSentinel
	}
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Prompt),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return errorText(err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		warnf(o.warn, "%s returned an empty response for model %s", o.Name(), req.Model)
		return EmptyResponse
	}
	return completion.Choices[0].Message.Content
}
