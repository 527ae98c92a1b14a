// Package cli implements the aicr command tree: review (range, commit,
// files), models, config, branches, history, and version. Command
// handlers set a process exit code instead of returning errors so the
// binary can distinguish usage, auth, and runtime failures.
package cli
