package redact

import "regexp"

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for credentials that could leak into
// a diff or a debug echo of a composed request.
var secretPatterns = []*regexp.Regexp{
	// Generic API keys in assignments
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	// Generic secrets/tokens/passwords in assignments
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// Anthropic API keys
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	// OpenAI API keys
	regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
	// xAI API keys
	regexp.MustCompile(`xai-[A-Za-z0-9]{20,}`),
	// Google API keys
	regexp.MustCompile(`AIza[A-Za-z0-9_-]{30,}`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`),
}

// Secrets replaces detected credentials in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}

// Key masks an API key for display, keeping only a short prefix so the
// operator can tell which credential is configured.
func Key(key string) string {
	if len(key) <= 8 {
		return placeholder
	}
	return key[:4] + "..." + placeholder
}
