package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
	"github.com/custodia-labs/aroma-cli/internal/core/services"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Manage category name lists",
	Long: `Shows or replaces the configured category names. When both lists are
configured they override the names declared on product pages.`,
}

var namesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured name lists",
	Args:  cobra.NoArgs,
	RunE:  runNamesShow,
}

var namesSetCmd = &cobra.Command{
	Use:       "set [tobacco|general] [name...]",
	Short:     "Replace a name list",
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{services.NameKindTobacco, services.NameKindGeneral},
	RunE:      runNamesSet,
}

func init() {
	namesCmd.AddCommand(namesShowCmd)
	namesCmd.AddCommand(namesSetCmd)
	rootCmd.AddCommand(namesCmd)
}

func runNamesShow(cmd *cobra.Command, _ []string) error {
	if nameService == nil {
		return errors.New("name service not configured")
	}

	names := nameService.Get()
	if !names.Complete() {
		cmd.Println("Name lists are incomplete; page or built-in names are used.")
		cmd.Println()
	}

	printNameList(cmd, services.NameKindTobacco, names.Tobacco)
	printNameList(cmd, services.NameKindGeneral, names.General)
	return nil
}

func runNamesSet(cmd *cobra.Command, args []string) error {
	if nameService == nil {
		return errors.New("name service not configured")
	}

	kind := args[0]
	if err := nameService.Set(kind, args[1:]); err != nil {
		return fmt.Errorf("failed to set names: %w", err)
	}

	cmd.Printf("Set %d %s names\n", len(args)-1, kind)
	return nil
}

func printNameList(cmd *cobra.Command, kind string, names domain.NameList) {
	if len(names) == 0 {
		cmd.Printf("%s: (not set)\n", kind)
		return
	}
	cmd.Printf("%s: %s\n", kind, strings.Join(names, ", "))
}
