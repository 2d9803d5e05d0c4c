package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/bio-browser/internal/browser"
	"github.com/rcliao/bio-browser/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Filter and page through records",
		Long:  "Apply a text query, an experience floor and facet selections, then print one page of matches.",
		Run:   runBrowse,
	}

	cmd.Flags().StringP("query", "q", "", "Case-insensitive substring of the biography")
	cmd.Flags().Int("min-exp", 0, "Minimum experience level (0-100)")
	cmd.Flags().StringSlice("domain", nil, "Skill domain (repeatable)")
	cmd.Flags().StringSlice("confidence", nil, "AI confidence band (repeatable)")
	cmd.Flags().StringSlice("length", nil, "Biography length band (repeatable)")
	cmd.Flags().IntP("page", "p", 1, "Page number")
	cmd.Flags().Int("page-size", 0, "Records per page (default: $BIO_BROWSER_PAGE_SIZE or 10)")

	RootCmd.AddCommand(cmd)
}

func runBrowse(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")
	minExp, _ := cmd.Flags().GetInt("min-exp")
	domains, _ := cmd.Flags().GetStringSlice("domain")
	confidence, _ := cmd.Flags().GetStringSlice("confidence")
	lengths, _ := cmd.Flags().GetStringSlice("length")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}

	facets := map[model.Dimension][]string{
		model.DimensionDomain:     domains,
		model.DimensionConfidence: confidence,
		model.DimensionBioLength:  lengths,
	}
	for d, values := range facets {
		if err := checkFacetValues(d, values); err != nil {
			exitErr("browse", err)
		}
	}

	sess, err := loadSession(cmd.Context(), pageSize)
	if err != nil {
		if sess == nil {
			exitErr("open store", err)
		}
		renderView(cmd.OutOrStdout(), sess.View())
		os.Exit(1)
	}

	sess.SetQuery(query)
	sess.SetMinExperience(minExp)
	for _, d := range model.Dimensions {
		for _, v := range dedupe(facets[d]) {
			sess.ToggleFacet(d, v)
		}
	}
	sess.SetPage(page)

	renderView(cmd.OutOrStdout(), sess.View())
}

// checkFacetValues rejects values outside the dimension's enumeration.
func checkFacetValues(d model.Dimension, values []string) error {
	for _, v := range values {
		if !d.Allows(v) {
			return fmt.Errorf("invalid %s %q (valid: %v)", d, v, d.Values())
		}
	}
	return nil
}

// dedupe keeps the first occurrence of each value, so repeating a flag does
// not toggle the selection back off.
func dedupe(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func renderView(w io.Writer, v browser.View) {
	if formatFlag == "text" {
		writeViewText(w, v)
		return
	}
	printJSON(w, v)
}
