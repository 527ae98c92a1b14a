package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/redact"
)

// Identity names a supported provider. The set is closed: adding a vendor
// means adding one constant, one branch in New, and one adapter type.
type Identity string

const (
	IdentityGoogle    Identity = "Google"
	IdentityOpenAI    Identity = "OpenAI"
	IdentityAnthropic Identity = "Anthropic"
	IdentityGrok      Identity = "Grok"
)

// GrokEndpoint is xAI's OpenAI-compatible base URL.
const GrokEndpoint = "https://api.x.ai/v1"

// Identities returns all supported provider identities in display order.
func Identities() []Identity {
	return []Identity{IdentityGoogle, IdentityOpenAI, IdentityAnthropic, IdentityGrok}
}

// ParseIdentity resolves a user-supplied provider name, accepting common
// aliases (gemini, claude, xai).
func ParseIdentity(name string) (Identity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "google", "gemini":
		return IdentityGoogle, nil
	case "openai", "gpt":
		return IdentityOpenAI, nil
	case "anthropic", "claude", "anthropic (claude)":
		return IdentityAnthropic, nil
	case "grok", "xai":
		return IdentityGrok, nil
	}
	return "", fmt.Errorf("unsupported provider: %s", name)
}

// ReviewRequest is the unit of work for one generation call. It is
// constructed fresh per call and never persisted.
type ReviewRequest struct {
	Content string // diff text or concatenated file dump
	Prompt  string // review instructions
	Model   string // vendor-scoped model name
	Debug   bool   // skip the network call, echo the composed request
}

// Provider is the capability contract every vendor adapter satisfies.
// Callers hold only this interface and never branch on vendor identity.
type Provider interface {
	// Name returns the identity string for display and reporting.
	Name() string

	// Models returns the vendor's generation-capable models in a stable
	// order. It never fails: on any vendor error it warns on the operator
	// channel and returns an empty slice.
	Models(ctx context.Context) []string

	// GenerateReview performs one synchronous generation call with no
	// retry. The result is always a string: generated text, the debug
	// sentinel, or an embedded error description.
	GenerateReview(ctx context.Context, req ReviewRequest) string
}

// ConfigError indicates a provider could not be configured — a missing or
// rejected credential, or an unreachable vendor at client construction.
// It is fatal for the adapter instance.
type ConfigError struct {
	Provider Identity
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuring %s provider: %v", e.Provider, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsConfigError checks if an error is a provider configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Options carries cross-adapter construction settings.
type Options struct {
	// Stderr receives operator-facing warnings and debug echoes.
	// Defaults to os.Stderr.
	Stderr io.Writer

	// Endpoint overrides the vendor base URL. New sets it for Grok;
	// tests point it at local servers.
	Endpoint string
}

func (o Options) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

// New constructs the adapter for an identity, configuring the vendor client
// as part of construction. An empty credential or unknown identity fails;
// nothing after construction does.
func New(ctx context.Context, id Identity, apiKey string, opts Options) (Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigError{Provider: id, Err: errors.New("API key is required")}
	}
	switch id {
	case IdentityGoogle:
		return NewGemini(ctx, apiKey, opts)
	case IdentityOpenAI:
		return NewOpenAI(apiKey, opts), nil
	case IdentityAnthropic:
		return NewClaude(apiKey, opts), nil
	case IdentityGrok:
		if opts.Endpoint == "" {
			opts.Endpoint = GrokEndpoint
		}
		return NewOpenAI(apiKey, opts), nil
	}
	return nil, fmt.Errorf("unsupported provider: %s", id)
}

// DebugSentinel is returned by GenerateReview when Debug is set.
const DebugSentinel = "(Debug mode: AI call skipped)"

// EmptyResponse marks a vendor call that succeeded but produced no text.
// Treated as a degraded-but-reported result, not silent success.
const EmptyResponse = "(Empty response from model)"

func errorText(err error) string {
	return fmt.Sprintf("(Error during API call: %v)", err)
}

func warnf(w io.Writer, format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprintf(w, format+"\n", args...)
}

// debugEcho prints the composed request for inspection. The text passes
// through redact so a credential pasted into a diff never reaches the
// terminal or a captured log.
func debugEcho(w io.Writer, name, model, composed string) {
	head := color.New(color.FgYellow)
	head.Fprintf(w, "--- DEBUG: %s request for model %s ---\n", name, model)
	fmt.Fprintln(w, redact.Secrets(composed))
	head.Fprintln(w, "--- END DEBUG ---")
}

// composeCombined builds the single-blob instruction used by vendors that
// take one prompt string.
func composeCombined(prompt, content string) string {
	return prompt + "\n\n---\n\n**Code Diff to Review:**\n\n```diff\n" + content + "\n```"
}

// composeUser builds the user message used by vendors with a system/user
// message split.
func composeUser(content string) string {
	return "Please review the following code diff:\n```diff\n" + content + "\n```"
}
