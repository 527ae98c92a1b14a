package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/provider"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewAt(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := newTestConfig(t)

	assert.Equal(t, "Google", cfg.Provider())
	assert.Equal(t, "gemini-2.5-pro", cfg.Model(provider.IdentityGoogle))
	assert.Equal(t, "reports", cfg.ReportsDir())
	assert.NotEmpty(t, cfg.HistoryPath())
	assert.Equal(t, 3600, cfg.CacheTTL())
	assert.Empty(t, cfg.PromptParts())
}

func TestSetPersists(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewAt(dir)
	require.NoError(t, err)

	require.NoError(t, cfg.Set("provider", "Anthropic"))
	require.NoError(t, cfg.Set("models.anthropic", "claude-opus-4-20250514"))

	reloaded, err := NewAt(dir)
	require.NoError(t, err)
	assert.Equal(t, "Anthropic", reloaded.Provider())
	assert.Equal(t, "claude-opus-4-20250514", reloaded.Model(provider.IdentityAnthropic))
}

func TestAPIKey_ConfigBeatsEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	cfg := newTestConfig(t)
	require.NoError(t, cfg.Set("api_keys.openai", "file-key"))

	key, err := cfg.APIKey(provider.IdentityOpenAI)
	require.NoError(t, err)
	assert.Equal(t, "file-key", key)
}

func TestAPIKey_EnvFallback(t *testing.T) {
	t.Setenv("XAI_API_KEY", "xai-env-key")
	cfg := newTestConfig(t)

	key, err := cfg.APIKey(provider.IdentityGrok)
	require.NoError(t, err)
	assert.Equal(t, "xai-env-key", key)
}

func TestAPIKey_Missing(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	cfg := newTestConfig(t)

	_, err := cfg.APIKey(provider.IdentityAnthropic)
	assert.Error(t, err)
}

func TestSession_OverridesBeatDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	cfg := newTestConfig(t)

	sess, err := cfg.Session("openai", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, provider.IdentityOpenAI, sess.Identity)
	assert.Equal(t, "gpt-4o-mini", sess.Model)
	assert.Equal(t, "env-key", sess.APIKey)
}

func TestSession_DefaultsApply(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "g-key")
	cfg := newTestConfig(t)

	sess, err := cfg.Session("", "")
	require.NoError(t, err)
	assert.Equal(t, provider.IdentityGoogle, sess.Identity)
	assert.Equal(t, "gemini-2.5-pro", sess.Model)
}

func TestSession_UnknownProvider(t *testing.T) {
	cfg := newTestConfig(t)

	_, err := cfg.Session("cohere", "")
	assert.Error(t, err)
}

func TestSession_MissingKeyFailsBeforeConstruction(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	cfg := newTestConfig(t)

	_, err := cfg.Session("google", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key configured")
}
