package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/provider"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/redact"
)

// Item is one unit of content to review, labeled for the report.
type Item struct {
	Label   string
	Content string
}

// Result pairs an item's label with the provider's output. Output is
// always populated; failures arrive embedded as error text.
type Result struct {
	Label    string
	Output   string
	Duration time.Duration
}

// Runner drives reviews against a single provider and model.
type Runner struct {
	Provider provider.Provider
	Model    string
	Prompt   string
	Debug    bool
}

// Run reviews a single item. Secrets are redacted from the content
// before it leaves the process.
func (r *Runner) Run(ctx context.Context, item Item) Result {
	start := time.Now()
	out := r.Provider.GenerateReview(ctx, provider.ReviewRequest{
		Content: redact.Secrets(item.Content),
		Prompt:  r.Prompt,
		Model:   r.Model,
		Debug:   r.Debug,
	})
	return Result{
		Label:    item.Label,
		Output:   out,
		Duration: time.Since(start),
	}
}

// RunBatch reviews items strictly in order. Every attempted item yields
// a Result even when the provider embedded a failure; cancellation is
// checked between items and stops the batch with the results gathered
// so far.
func (r *Runner) RunBatch(ctx context.Context, items []Item) ([]Result, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("nothing to review")
	}
	results := make([]Result, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("batch interrupted after %d of %d items: %w", len(results), len(items), err)
		}
		results = append(results, r.Run(ctx, item))
	}
	return results, nil
}

// Combined merges batch results into one document, one section per
// item.
func Combined(results []Result) string {
	if len(results) == 1 {
		return results[0].Output
	}
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n%s", res.Label, res.Output)
	}
	return b.String()
}
