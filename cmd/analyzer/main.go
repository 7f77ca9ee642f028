// Package main provides the YouTube channel analyzer CLI entry point.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/config"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/runner"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/scheduler"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the analyzer CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "analyzer",
		Short:   "Compute channel-level metrics for YouTube channels",
		Long:    "Analyzer fetches a channel's uploads from the YouTube Data API and computes posting cadence, engagement, topic and monetization metrics, with CSV/JSON export.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("analyzer version {{.Version}}\n")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the analyzer version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "analyzer version %s\n", version)
		},
	})

	return rootCmd
}

// analyzeFlags are the per-invocation overrides of the config file.
type analyzeFlags struct {
	input     string
	period    string
	from      string
	to        string
	out       string
	format    string
	maxVideos int
	perVideo  bool
}

// newAnalyzeCmd creates the analyze subcommand: one batch run, then exit.
func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [channel...]",
		Short: "Analyze channels once and export the results",
		Long: `Analyze the given channels (IDs, @handles or channel URLs) and export
channel-level metrics. Channels can also come from --input (one per line,
'#' comments allowed) or from the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cfg, cmd, &flags)

			identifiers, err := collectIdentifiers(cfg, args, flags.input)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := runner.New(cfg, identifiers)
			if err := r.Initialize(ctx); err != nil {
				return err
			}
			return r.RunOnce(ctx)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "File with channel identifiers, one per line")
	cmd.Flags().StringVarP(&flags.period, "period", "p", "", "Date window: all, last_7_days, last_30_days, last_90_days, last_year")
	cmd.Flags().StringVar(&flags.from, "from", "", "Custom window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.to, "to", "", "Custom window end (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output directory for exports")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Export format: csv, json or both")
	cmd.Flags().IntVar(&flags.maxVideos, "max-videos", 0, "Max videos to fetch per channel (0 = all)")
	cmd.Flags().BoolVar(&flags.perVideo, "per-video", false, "Also export per-video metrics")

	return cmd
}

// newScheduleCmd creates the schedule subcommand: run on the configured cron
// expression until interrupted.
func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run the analysis on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			identifiers, err := collectIdentifiers(cfg, args, "")
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := runner.New(cfg, identifiers)
			s := scheduler.New(cfg.Schedule, r)
			if err := s.Start(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}

// applyFlags overlays explicitly-set command line flags onto the loaded
// configuration.
func applyFlags(cfg *config.Config, cmd *cobra.Command, flags *analyzeFlags) {
	if cmd.Flags().Changed("period") {
		cfg.Analysis.Period = flags.period
	}
	if cmd.Flags().Changed("from") {
		cfg.Analysis.FromDate = flags.from
	}
	if cmd.Flags().Changed("to") {
		cfg.Analysis.ToDate = flags.to
	}
	if cmd.Flags().Changed("out") {
		cfg.Export.OutputDir = flags.out
	}
	if cmd.Flags().Changed("format") {
		cfg.Export.Format = flags.format
	}
	if cmd.Flags().Changed("max-videos") {
		cfg.YouTube.MaxVideosPerChannel = flags.maxVideos
	}
	if cmd.Flags().Changed("per-video") {
		cfg.Export.PerVideo = flags.perVideo
	}
}

// collectIdentifiers merges positional arguments, an optional input file and
// the config's channel list, preserving order and dropping duplicates.
func collectIdentifiers(cfg *config.Config, args []string, inputFile string) ([]string, error) {
	var lines []string
	lines = append(lines, args...)

	if inputFile == "" {
		inputFile = cfg.Channels.File
	}
	if inputFile != "" {
		fromFile, err := readIdentifierFile(inputFile)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fromFile...)
	}

	lines = append(lines, cfg.Channels.Identifiers...)

	seen := make(map[string]bool)
	var identifiers []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		identifiers = append(identifiers, line)
	}

	if len(identifiers) == 0 {
		return nil, fmt.Errorf("no channels given: pass identifiers, use --input or set channels in the config")
	}
	return identifiers, nil
}

func readIdentifierFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open channel file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read channel file: %w", err)
	}
	return lines, nil
}
