package gitctx

import (
	"fmt"
	"os/exec"
	"strings"
)

// Repo runs git commands against a working directory.
type Repo struct {
	Dir string
}

// New returns a Repo rooted at dir. An empty dir means the current
// working directory.
func New(dir string) *Repo {
	return &Repo{Dir: dir}
}

// IsRepository reports whether Dir is inside a git working tree.
func (r *Repo) IsRepository() bool {
	out, err := r.git("rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// Root returns the top-level directory of the repository.
func (r *Repo) Root() (string, error) {
	out, err := r.git("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the checked-out branch name, or "HEAD" when
// detached.
func (r *Repo) CurrentBranch() (string, error) {
	out, err := r.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolving current branch: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// LocalBranches returns local branch names in git's default order.
func (r *Repo) LocalBranches() ([]string, error) {
	out, err := r.git("branch", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}
	return splitLines(out), nil
}

// RemoteBranches returns remote-tracking branch names. Symbolic refs
// like origin/HEAD are skipped.
func (r *Repo) RemoteBranches() ([]string, error) {
	out, err := r.git("branch", "-r", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("listing remote branches: %w", err)
	}
	var branches []string
	for _, b := range splitLines(out) {
		if strings.HasSuffix(b, "/HEAD") {
			continue
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// Fetch updates remote-tracking refs from all remotes.
func (r *Repo) Fetch() error {
	if _, err := r.git("fetch", "--all", "--prune"); err != nil {
		return fmt.Errorf("git fetch: %w", err)
	}
	return nil
}

// Pull fast-forwards the current branch from its upstream.
func (r *Repo) Pull() error {
	if _, err := r.git("pull", "--ff-only"); err != nil {
		return fmt.Errorf("git pull: %w", err)
	}
	return nil
}

// RangeDiff returns the unified diff of head against the merge base
// with base, i.e. the changes the head side introduced.
func (r *Repo) RangeDiff(base, head string) (string, error) {
	out, err := r.git("diff", base+"..."+head)
	if err != nil {
		return "", fmt.Errorf("git diff %s...%s: %w", base, head, err)
	}
	return out, nil
}

// ShowCommit returns the full patch for a single commit, message
// included.
func (r *Repo) ShowCommit(sha string) (string, error) {
	out, err := r.git("show", sha)
	if err != nil {
		return "", fmt.Errorf("git show %s: %w", sha, err)
	}
	return out, nil
}

// Commit holds a commit SHA and its subject line.
type Commit struct {
	SHA     string
	Subject string
}

// ListCommits returns the commits reachable from head but not base,
// oldest first.
func (r *Repo) ListCommits(base, head string) ([]Commit, error) {
	// Output format: "commit <sha>\n<subject>\n" per commit.
	out, err := r.git("rev-list", "--reverse", "--format=%s", base+".."+head)
	if err != nil {
		return nil, fmt.Errorf("git rev-list %s..%s: %w", base, head, err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}

	lines := strings.Split(out, "\n")
	var commits []Commit
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "commit ") {
			continue
		}
		sha := strings.TrimPrefix(line, "commit ")
		var subject string
		if i+1 < len(lines) {
			subject = strings.TrimSpace(lines[i+1])
			i++ // skip the subject line
		}
		commits = append(commits, Commit{SHA: sha, Subject: subject})
	}
	return commits, nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (r *Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
