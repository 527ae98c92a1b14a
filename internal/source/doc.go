// Package source collects file contents for whole-file review. Each
// file is preceded by a "--- File: <relpath> ---" header so the model
// can attribute findings to the right file.
package source
