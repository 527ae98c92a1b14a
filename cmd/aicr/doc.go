// Aicr reviews git changes with an LLM provider of your choice and
// saves the result as a Markdown report.
//
// It supports Google Gemini, OpenAI, Anthropic, and Grok through one
// provider abstraction, with per-run overrides for provider and model.
//
// Usage:
//
//	aicr review range main HEAD       # review changes on top of main
//	aicr review range main HEAD --per-commit
//	aicr review commit <sha>          # review a single commit
//	aicr review files ./internal      # review files or directories
//	aicr models                       # list models for the active provider
//	aicr config set provider OpenAI   # change the default provider
//	aicr branches --remote            # list branches
//	aicr history list                 # show past review runs
//
// See https://github.com/Lewsiafat/AICodeReviewCLI for full documentation.
package main
