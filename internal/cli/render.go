package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/bio-browser/internal/browser"
	"github.com/rcliao/bio-browser/internal/model"
)

// writeViewText renders a view the way the results grid reads: chips, a
// count line, cards, then the page footer.
func writeViewText(w io.Writer, v browser.View) {
	switch v.Status {
	case browser.StatusLoading:
		fmt.Fprintln(w, "Loading profiles...")
		return
	case browser.StatusFailed:
		fmt.Fprintf(w, "Failed to load profiles: %s\n", v.Error)
		return
	}

	if v.HasActiveFilters {
		var chips []string
		if v.SearchChip != "" {
			chips = append(chips, fmt.Sprintf("[Search: %q x]", v.SearchChip))
		}
		if v.ExperienceChip > 0 {
			chips = append(chips, fmt.Sprintf("[Min exp: %d x]", v.ExperienceChip))
		}
		for _, c := range v.Chips {
			chips = append(chips, fmt.Sprintf("[%s x]", c.Value))
		}
		fmt.Fprintln(w, strings.Join(chips, " "))
	}
	fmt.Fprintf(w, "Showing %d of %d biographies\n\n", v.Matched, v.Total)

	if v.Page == nil || len(v.Page.Items) == 0 {
		fmt.Fprintln(w, "No biographies match your filters")
		fmt.Fprintln(w, "Try adjusting or clearing your filters to see more results.")
		return
	}

	for _, r := range v.Page.Items {
		writeCard(w, r)
	}
	fmt.Fprintf(w, "Page %d of %d\n", v.Page.Index, v.Page.TotalPages)
}

func writeCard(w io.Writer, r model.Record) {
	fmt.Fprintf(w, "#%d %s  %s · %s · exp %d\n", r.ID, r.DisplayName(), r.SkillDomain, r.AIConfidence, r.ExperienceLevel)
	fmt.Fprintf(w, "    %s\n\n", r.Preview(model.PreviewLength))
}

// writeDetailText renders one record with its prediction and similar profiles.
func writeDetailText(w io.Writer, d detail) {
	r := d.Record
	fmt.Fprintf(w, "%s\n\n", r.DisplayName())
	fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(r.Biography))
	fmt.Fprintf(w, "Recommended profession: %s (%s, score %.2f)\n", r.PredictedProfession, r.AIConfidence, r.ConfidenceScore)
	if r.Reason != "" {
		fmt.Fprintf(w, "Explanation: %s\n", r.Reason)
	}
	if len(d.Similar) > 0 {
		fmt.Fprintln(w, "\nSimilar profiles:")
		for _, s := range d.Similar {
			fmt.Fprintf(w, "  #%d %s  %s\n", s.ID, s.DisplayName(), s.SkillDomain)
		}
	}
}
