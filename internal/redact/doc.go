// Package redact removes credentials from text before it leaves the
// process — diff content bound for a provider, or the composed request
// echoed in debug mode.
//
// Detection uses regex heuristics covering common credential shapes:
// vendor API keys (Anthropic, OpenAI, xAI, Google), bearer tokens, AWS
// and GitHub keys, private key blocks, and generic key/secret/password
// assignments. [Key] masks a configured credential for display.
package redact
