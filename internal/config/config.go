package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/provider"
)

const (
	envPrefix  = "AICR"
	configName = "config"
	configType = "yaml"
)

// keyEnvVars maps each identity to the vendor environment variables checked
// when no key is stored in the config file.
var keyEnvVars = map[provider.Identity][]string{
	provider.IdentityGoogle:    {"GOOGLE_API_KEY", "GEMINI_API_KEY"},
	provider.IdentityOpenAI:    {"OPENAI_API_KEY"},
	provider.IdentityAnthropic: {"ANTHROPIC_API_KEY"},
	provider.IdentityGrok:      {"XAI_API_KEY", "GROK_API_KEY"},
}

// Config wraps a viper instance bound to the aicr config file and
// environment. Each Config owns its instance; there is no package-level
// mutable state.
type Config struct {
	v    *viper.Viper
	path string
}

// Dir returns the platform-appropriate config directory for aicr.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aicr"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "aicr"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "aicr"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "aicr"), nil
	default:
		return filepath.Join(home, ".config", "aicr"), nil
	}
}

// New loads the config from the default directory. A missing config file is
// not an error; defaults and environment apply.
func New() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return NewAt(dir)
}

// NewAt loads the config rooted at a specific directory.
func NewAt(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{
		v:    v,
		path: filepath.Join(dir, configName+"."+configType),
	}, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("provider", string(provider.IdentityGoogle))
	v.SetDefault("models.google", "gemini-2.5-pro")
	v.SetDefault("models.openai", "gpt-4o")
	v.SetDefault("models.anthropic", "claude-sonnet-4-20250514")
	v.SetDefault("models.grok", "grok-3")
	v.SetDefault("reports.dir", "reports")
	v.SetDefault("history.path", filepath.Join(dir, "history.db"))
	v.SetDefault("cache.ttl_seconds", 3600)
}

// Path returns the config file location, whether or not it exists yet.
func (c *Config) Path() string { return c.path }

// Provider returns the default provider name.
func (c *Config) Provider() string { return c.v.GetString("provider") }

// Model returns the default model for an identity, or "" when unset.
func (c *Config) Model(id provider.Identity) string {
	return c.v.GetString("models." + strings.ToLower(string(id)))
}

// APIKey resolves the credential for an identity: config file first, then
// the vendor environment variables. The returned key is opaque and must
// never be logged.
func (c *Config) APIKey(id provider.Identity) (string, error) {
	if k := c.v.GetString("api_keys." + strings.ToLower(string(id))); k != "" {
		return k, nil
	}
	for _, env := range keyEnvVars[id] {
		if k := os.Getenv(env); k != "" {
			return k, nil
		}
	}
	return "", fmt.Errorf("no API key configured for %s: set api_keys.%s or %s",
		id, strings.ToLower(string(id)), keyEnvVars[id][0])
}

// ReportsDir returns the directory reviews are written to.
func (c *Config) ReportsDir() string { return c.v.GetString("reports.dir") }

// HistoryPath returns the SQLite run-history database path.
func (c *Config) HistoryPath() string { return c.v.GetString("history.path") }

// CacheTTL returns the model-list cache lifetime in seconds.
func (c *Config) CacheTTL() int { return c.v.GetInt("cache.ttl_seconds") }

// PromptParts returns the configured prompt-template fragments, in order.
// Empty means the built-in review prompt applies.
func (c *Config) PromptParts() []string { return c.v.GetStringSlice("prompt.parts") }

// Set updates a single key and persists the config file.
func (c *Config) Set(key, value string) error {
	c.v.Set(key, value)
	return c.Save()
}

// Save writes the config file, creating its directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Keys returns all effective setting keys, sorted, for config show.
func (c *Config) Keys() []string {
	keys := c.v.AllKeys()
	sort.Strings(keys)
	return keys
}

// Get returns the effective value for a key as a string.
func (c *Config) Get(key string) string { return c.v.GetString(key) }

// Session is the provider+model+credential triple active for one run.
// Exactly one session is active per invocation.
type Session struct {
	Identity provider.Identity
	APIKey   string
	Model    string
}

// Session resolves the active triple. Non-empty overrides (from command
// flags) beat stored defaults; stored defaults beat built-ins. A missing
// credential fails here, before any adapter is constructed.
func (c *Config) Session(providerOverride, modelOverride string) (Session, error) {
	name := providerOverride
	if name == "" {
		name = c.Provider()
	}
	id, err := provider.ParseIdentity(name)
	if err != nil {
		return Session{}, err
	}
	key, err := c.APIKey(id)
	if err != nil {
		return Session{}, err
	}
	model := modelOverride
	if model == "" {
		model = c.Model(id)
	}
	if model == "" {
		return Session{}, fmt.Errorf("no model configured for %s: pass --model or set models.%s",
			id, strings.ToLower(string(id)))
	}
	return Session{Identity: id, APIKey: key, Model: model}, nil
}
