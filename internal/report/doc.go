// Package report names and persists finished review reports as
// Markdown files under the configured reports directory.
package report
