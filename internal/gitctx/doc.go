// Package gitctx gathers review input from a git repository by shelling
// out to the git binary.
//
// A [Repo] is bound to a working directory and exposes branch listing,
// fetch/pull, range diffs, and single-commit patches. [Repo.ListCommits]
// returns the ordered commit list for per-commit review mode. Command
// failures wrap git's stderr so callers can surface the real cause.
package gitctx
