package review

import "strings"

const defaultPrompt = `You are an expert code reviewer. Review the code changes below and produce a concise, actionable report in Markdown.

Guidelines:
1. Focus on bugs, security issues, performance problems, and correctness. Comment on style only when it harms readability.
2. Every finding needs a short explanation of what is wrong and a concrete suggestion for fixing it, with code where helpful.
3. Reference file names and line context from the input.
4. Rate each finding as Low, Medium, or High severity.
5. Close with a one-paragraph overall assessment.

If the changes look good, say so briefly instead of inventing issues.`

// DefaultPrompt returns the built-in review instructions used when no
// prompt fragments are configured.
func DefaultPrompt() string {
	return defaultPrompt
}

// AssemblePrompt joins configured prompt fragments into the prompt sent
// to the provider. Blank fragments are dropped; an empty list falls
// back to [DefaultPrompt].
func AssemblePrompt(parts []string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimRight(p, "\n"))
		}
	}
	if len(kept) == 0 {
		return defaultPrompt
	}
	return strings.Join(kept, "\n\n")
}
