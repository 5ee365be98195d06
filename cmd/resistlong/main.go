// Package main provides the CLI entry point for resistlong-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/resistlong-go/internal/config"
	"github.com/ukaji3/resistlong-go/internal/logging"
	"github.com/ukaji3/resistlong-go/pkg/resistlong"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/output"
	"github.com/ukaji3/resistlong-go/pkg/resistlong/summary"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath string
	format     string
	outputPath string
	workers    int
	pretty     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "resistlong",
		Short: "Convert resistance report workbooks into a long table",
		Long: `resistlong-go reads a folder of microbiology report workbooks, reshapes
every worksheet into one row per organism, resistance and department, and
splits the rows into retained and excluded tables.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")

	runCmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Process a directory and write both tables",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	runCmd.Flags().StringVar(&format, "format", "json", "Output format: csv, xlsx, json, sqlite, postgres")
	runCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output path, directory or DSN (default: stdout for json)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Workbooks processed in parallel (0 or 1: sequential)")
	runCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	summaryCmd := &cobra.Command{
		Use:   "summary [dir]",
		Short: "Print totals per period and department for the retained rows",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSummary,
	}
	summaryCmd.Flags().IntVar(&workers, "workers", 0, "Workbooks processed in parallel (0 or 1: sequential)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "resistlong", version)
		},
	}

	rootCmd.AddCommand(runCmd, summaryCmd, versionCmd)
	return rootCmd
}

// setup loads the configuration, applies the directory argument and any
// flags given on the command line, and installs the logger.
func setup(cmd *cobra.Command, args []string) (*config.Config, *slog.Logger, func() error, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(args) == 1 {
		cfg.Input.Dir = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("out") {
		cfg.Output.Path = outputPath
	}
	if flags.Changed("workers") {
		cfg.Processing.Workers = workers
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}

	if cfg.Input.Dir == "" {
		return nil, nil, nil, errors.New("no input directory: pass one as argument or set input.dir")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

func process(cmd *cobra.Command, args []string) (*config.Config, *models.Result, error) {
	cfg, logger, closeLog, err := setup(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	defer closeLog()

	res, err := resistlong.Run(cmd.Context(), cfg.Input.Dir, cfg.Options(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("processing failed: %w", err)
	}
	return cfg, res, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, res, err := process(cmd, args)
	if err != nil {
		return err
	}

	err = output.Write(cmd.Context(), res, output.Format(cfg.Output.Format),
		cfg.Output.Path, cfg.Output.Pretty, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	_, res, err := process(cmd, args)
	if err != nil {
		return err
	}

	groups, err := summary.Build(res.Retained)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Jaar\tMaand\tAfdeling\tAantal\tSom\tGemiddelde\tMediaan\tMax\tBRMO\t")
	for _, g := range groups {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%g\t%.2f\t%g\t%g\t%g\t\n",
			g.Year, g.Month, g.Afdeling, g.Count, g.Sum, g.Mean, g.Median, g.Max, g.BRMO)
	}
	return tw.Flush()
}
