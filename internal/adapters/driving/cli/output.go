package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

// jsonOutput is the --json flag shared by commands that print profiles.
var jsonOutput bool

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printProfile prints one line per category, sorted by name.
func printProfile(cmd *cobra.Command, p domain.FlavourProfile) {
	if len(p) == 0 {
		cmd.Println("  (no categories)")
		return
	}

	names := p.Names()
	width := 0
	for _, name := range names {
		if n := utf8.RuneCountInString(displayName(name)); n > width {
			width = n
		}
	}

	for _, name := range names {
		label := displayName(name)
		pad := width - utf8.RuneCountInString(label)
		cmd.Printf("  %s%*s  %s\n", label, pad, "", formatShare(p[name]))
	}
}

func printRecord(cmd *cobra.Command, rec *domain.ProfileRecord) {
	cmd.Printf("Profile: %s\n\n", rec.ID)
	if rec.Title != "" {
		cmd.Printf("  Title:    %s\n", rec.Title)
	}
	cmd.Printf("  URL:      %s\n", rec.URL)
	cmd.Printf("  Digits:   %s (rub %q)\n", rec.Digits, rec.Flag)
	if rec.Votes != domain.VotesUnknown {
		cmd.Printf("  Votes:    %d\n", rec.Votes)
	}
	cmd.Printf("  Updated:  %s\n", rec.UpdatedAt.Format("2006-01-02 15:04:05"))
	cmd.Println()
	printProfile(cmd, rec.Profile)
}

// displayName shows the key used for digits that have no category name.
func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

func formatShare(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f (%5.1f%%)", v, v*100)
}
