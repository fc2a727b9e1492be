package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored profiles",
	Long:  `List, view or delete flavour profiles stored by fetch and import.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileGetCmd = &cobra.Command{
	Use:   "get [profile-id]",
	Short: "Show a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileGet,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete [profile-id]",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	profileGetCmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	records, err := profileService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No profiles stored.")
		return nil
	}

	cmd.Println("Profiles:")
	cmd.Println()
	for i := range records {
		title := records[i].Title
		if title == "" {
			title = records[i].URL
		}
		cmd.Printf("  %s\n", records[i].ID)
		cmd.Printf("    Title: %s\n", title)
		cmd.Printf("    URL:   %s\n", records[i].URL)
		cmd.Println()
	}

	cmd.Printf("Total: %d profiles\n", len(records))
	return nil
}

func runProfileGet(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	rec, err := profileService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, rec)
	}
	printRecord(cmd, rec)
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	if err := profileService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	cmd.Printf("Deleted profile: %s\n", args[0])
	return nil
}
