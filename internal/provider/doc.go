// Package provider implements the Provider contract for each supported LLM
// vendor.
//
// Supported identities: Google (Gemini), OpenAI, Anthropic (Claude), and
// Grok. Grok is not a fourth implementation — it is the OpenAI adapter
// pointed at xAI's wire-compatible endpoint, so the abstraction boundary is
// the API shape, not the vendor name.
//
// Adapters are configured at construction: [New] builds the vendor client
// and fails with [*ConfigError] on a missing or rejected credential. After
// construction the contract is deliberately forgiving — Models degrades to
// an empty list on failure and GenerateReview embeds failures in its result
// text — so a batch of reviews has exactly one downstream code path.
package provider
