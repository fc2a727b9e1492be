package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
)

var importURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch [url...]",
	Short: "Download product pages and store their profiles",
	Long: `Downloads each product page, reads its community aroma rating and
stores the computed profile. Pages are fetched one after another at the
configured request rate. A failing page does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Store the profile of a saved product page",
	Long: `Reads a product page saved to disk and stores its profile.
The record is keyed by --url when given, otherwise by the file path.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	fetchCmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	importCmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	importCmd.Flags().StringVar(&importURL, "url", "", "URL the page was saved from")
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(importCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	ctx := context.Background()
	var records []*domain.ProfileRecord
	var errs []error
	for _, url := range args {
		rec, err := profileService.Fetch(ctx, url)
		if err != nil {
			cmd.PrintErrf("Failed: %s: %v\n", url, err)
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}

	if jsonOutput {
		if err := printJSON(cmd, records); err != nil {
			return err
		}
	} else {
		for i, rec := range records {
			if i > 0 {
				cmd.Println()
			}
			printRecord(cmd, rec)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d pages failed: %w", len(errs), len(args), errors.Join(errs...))
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	path := args[0]
	page, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read page: %w", err)
	}

	uri := importURL
	if uri == "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		uri = "file://" + filepath.ToSlash(path)
	}

	rec, err := profileService.FromPage(context.Background(), uri, page)
	if err != nil {
		return fmt.Errorf("failed to import page: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, rec)
	}
	printRecord(cmd, rec)
	return nil
}
