// Package review assembles prompts and drives review runs against a
// provider.
//
// A [Runner] binds a provider, model, and prompt for a session.
// [Runner.RunBatch] reviews items sequentially; a provider failure on
// one item does not abort the batch because the provider embeds
// failures in its output text. Only context cancellation stops a batch
// early.
package review
