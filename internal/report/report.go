package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// Report is one finished review ready to persist.
type Report struct {
	Provider  string
	Model     string
	Target    string
	Body      string
	CreatedAt time.Time
}

// FileName builds the report file name for a target and model:
// review_<target>_<model>_<timestamp>.md. Target and model are
// sanitized so refs like "main..feature/x" stay filesystem-safe.
func FileName(target, model string, at time.Time) string {
	return fmt.Sprintf("review_%s_%s_%s.md",
		sanitize(target), sanitize(model), at.Format(timestampLayout))
}

// sanitize replaces anything outside [A-Za-z0-9._-] with a dash and
// collapses runs so names stay readable.
func sanitize(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "review"
	}
	return out
}

// Render writes the report with its metadata header.
func (r Report) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# AI Code Review\n\n")
	fmt.Fprintf(&b, "- **Target:** %s\n", r.Target)
	fmt.Fprintf(&b, "- **Provider:** %s\n", r.Provider)
	fmt.Fprintf(&b, "- **Model:** %s\n", r.Model)
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", r.CreatedAt.Format(time.RFC3339))
	b.WriteString("---\n\n")
	b.WriteString(r.Body)
	if !strings.HasSuffix(r.Body, "\n") {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Save renders the report into dir, creating it if needed, and returns
// the written path.
func Save(dir string, r Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}
	path := filepath.Join(dir, FileName(r.Target, r.Model, r.CreatedAt))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()
	if err := r.Render(f); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
