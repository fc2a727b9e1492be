// Package cli implements the aroma command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aroma-cli/internal/logger"
)

// version is set at build time with
// -ldflags "-X github.com/custodia-labs/aroma-cli/internal/adapters/driving/cli.version=...".
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	dataDir   string
	strict    bool
)

// Services used by the commands. They are wired by the builder before a
// command runs, or set directly by tests.
var (
	profileService  driving.ProfileService
	nameService     driving.NameService
	metricsRecorder driven.MetricsRecorder
)

// Options carries the global flags to a Builder.
type Options struct {
	ConfigDir string
	DataDir   string
	// Strict is nil unless --strict was given explicitly.
	Strict *bool
}

// Services is the set of wired services.
type Services struct {
	Profile driving.ProfileService
	Names   driving.NameService
	Metrics driven.MetricsRecorder
	// Close releases storage. May be nil.
	Close func() error
}

// Builder wires services from the global flags.
type Builder func(opts Options) (*Services, error)

var (
	builder       Builder
	closeServices func() error
)

// skipServicesAnnotation marks commands that run without wired services.
const skipServicesAnnotation = "aroma/skip-services"

var rootCmd = &cobra.Command{
	Use:   "aroma",
	Short: "Community flavour profiles for cigars",
	Long: `aroma reads the community aroma ratings published on cigar shop product
pages and turns them into normalised flavour profiles.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Finalizers run even when a command fails.
	cobra.OnFinalize(teardown)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.aroma)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.aroma/data)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject malformed ratings instead of producing NaN values")
}

// Execute runs the root command with the default service wiring.
func Execute() error {
	if builder == nil {
		builder = buildServices
	}
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if profileService != nil || builder == nil {
		return nil
	}
	if _, skip := cmd.Annotations[skipServicesAnnotation]; skip {
		return nil
	}

	opts := Options{ConfigDir: configDir, DataDir: dataDir}
	if cmd.Flags().Changed("strict") {
		opts.Strict = &strict
	}

	services, err := builder(opts)
	if err != nil {
		return err
	}
	profileService = services.Profile
	nameService = services.Names
	metricsRecorder = services.Metrics
	closeServices = services.Close
	return nil
}

// teardown flushes metrics and releases storage after every command.
func teardown() {
	if metricsRecorder != nil {
		if err := metricsRecorder.Flush(); err != nil {
			logger.Error("flushing metrics", "error", err)
		}
	}
	if closeServices != nil {
		if err := closeServices(); err != nil {
			logger.Error("closing store", "error", err)
		}
		closeServices = nil
	}
}
