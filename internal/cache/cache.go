package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// entry is one cached model list on disk.
type entry struct {
	Provider  string    `json:"provider"`
	Models    []string  `json:"models"`
	CreatedAt time.Time `json:"createdAt"`
	TTL       int       `json:"ttl"`
}

// Cache stores provider model lists on disk so `aicr models` does not
// hit the vendor API on every invocation.
type Cache struct {
	dir        string
	ttlSeconds int
}

// New creates a Cache. If dir is empty, the platform cache directory
// is used. A ttlSeconds of zero disables expiry.
func New(dir string, ttlSeconds int) (*Cache, error) {
	if dir == "" {
		d, err := defaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{dir: dir, ttlSeconds: ttlSeconds}, nil
}

// Models returns the cached model list for a provider. Returns
// (nil, false) on miss or expiry.
func (c *Cache) Models(provider string) ([]string, bool) {
	data, err := os.ReadFile(c.entryPath(provider))
	if err != nil {
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if c.ttlSeconds > 0 && time.Since(e.CreatedAt) > time.Duration(c.ttlSeconds)*time.Second {
		os.Remove(c.entryPath(provider))
		return nil, false
	}
	return e.Models, true
}

// PutModels stores a provider's model list. Empty lists are not cached
// so a degraded discovery run does not mask a later healthy one.
func (c *Cache) PutModels(provider string, models []string) error {
	if len(models) == 0 {
		return nil
	}
	e := entry{
		Provider:  provider,
		Models:    models,
		CreatedAt: time.Now(),
		TTL:       c.ttlSeconds,
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}
	return os.WriteFile(c.entryPath(provider), data, 0o644)
}

// Clear removes all cached model lists.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading cache directory: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			os.Remove(filepath.Join(c.dir, e.Name()))
		}
	}
	return nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) entryPath(provider string) string {
	name := "models_" + strings.ToLower(provider) + ".json"
	return filepath.Join(c.dir, name)
}

func defaultCacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "aicr"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "aicr"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "aicr", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "aicr", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "aicr"), nil
	}
}
