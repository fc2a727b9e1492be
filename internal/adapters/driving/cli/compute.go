package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

var computeRub string

var computeCmd = &cobra.Command{
	Use:   "compute [digits]",
	Short: "Compute a profile from a rating string",
	Long: `Computes a flavour profile from the digits of a data-content attribute.
Each digit is the vote count of one category. Use --rub t for tobacco
aroma names; any other value selects the general aroma names.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVar(&computeRub, "rub", "", `data-rub value ("t" selects tobacco names)`)
	computeCmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	element := domain.SourceElement{Flag: computeRub, Digits: args[0]}
	profile, err := profileService.Compute(context.Background(), element)
	if err != nil {
		return fmt.Errorf("failed to compute profile: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, profile)
	}
	printProfile(cmd, profile)
	return nil
}
