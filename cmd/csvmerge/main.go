package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/csvmerge/merger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose   bool
	configURL string

	logger *zap.Logger
)

func main() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// run executes cmd and reports any failure, flag and argument errors included, on its error output
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "An error occurred: %v\n", err)
	}
	return err
}

// newRootCmd creates the csvmerge command, flags override the config file
func newRootCmd() *cobra.Command {
	config := merger.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "csvmerge",
		Short: "Merge CSV files sharing an identifier column into one table",
		Long: `Merges every file matching the pattern in the input directory into one wide table.

Files are merged in sorted name order with a full outer join on the identifier column.
After each file, rows sharing an identifier are coalesced into one row: every other
column takes the resolver's pick among its non-missing values (lexicographic max by default).

Example:
  csvmerge --input ./data/ --identifier SEQN --output merged_result.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if logger, err = newLogger(verbose); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, config)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&config.Input, "input", "i", config.Input, "directory holding the input files")
	flags.StringVar(&config.Identifier, "identifier", config.Identifier, "identifier column name")
	flags.StringVarP(&config.Pattern, "pattern", "p", config.Pattern, "input file name pattern")
	flags.StringVarP(&config.Output, "output", "o", config.Output, "output file")
	flags.StringVarP(&config.Resolver, "resolver", "r", config.Resolver, "conflict resolver: "+fmt.Sprint(merger.ResolverNames()))
	flags.StringSliceVar(&config.MissingTokens, "missing-tokens", config.MissingTokens, "field values read as missing, empty field is always missing")
	flags.StringVar(&config.MissingValue, "missing-value", config.MissingValue, "text written for missing values")
	flags.StringVarP(&configURL, "config", "c", "", "YAML config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func runMerge(cmd *cobra.Command, flagConfig *merger.Config) error {
	ctx := cmd.Context()
	config, err := resolveConfig(cmd, flagConfig)
	if err != nil {
		return err
	}
	srv, err := merger.New(config, merger.WithLogger(logger))
	if err != nil {
		return err
	}
	report, err := srv.Merge(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if report.Status == merger.StatusEmpty {
		fmt.Fprintln(out, "No CSV files found. Please check the folder path.")
		return nil
	}
	logger.Info("merge completed",
		zap.Int("files", len(report.Files)),
		zap.Int("rows", report.Rows),
		zap.Int("columns", report.Columns),
		zap.Int("dropped", report.Dropped),
		zap.String("digest", fmt.Sprintf("%016x", report.Digest)))
	fmt.Fprintf(out, "Merged CSV saved to: %s\n", report.Output)
	return nil
}

// resolveConfig loads the config file when given and applies explicitly set flags on top of it
func resolveConfig(cmd *cobra.Command, flagConfig *merger.Config) (*merger.Config, error) {
	if configURL == "" {
		return flagConfig, nil
	}
	ret, err := merger.LoadConfig(cmd.Context(), nil, configURL)
	if err != nil {
		return nil, err
	}
	overrides := map[string]func(){
		"input":          func() { ret.Input = flagConfig.Input },
		"identifier":     func() { ret.Identifier = flagConfig.Identifier },
		"pattern":        func() { ret.Pattern = flagConfig.Pattern },
		"output":         func() { ret.Output = flagConfig.Output },
		"resolver":       func() { ret.Resolver = flagConfig.Resolver },
		"missing-tokens": func() { ret.MissingTokens = flagConfig.MissingTokens },
		"missing-value":  func() { ret.MissingValue = flagConfig.MissingValue },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	return ret, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = ""
	return config.Build()
}
