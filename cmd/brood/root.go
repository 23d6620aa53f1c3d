package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/brood/pkg/brood"
	"github.com/randalmurphal/brood/pkg/brood/census"
	"github.com/randalmurphal/brood/pkg/brood/config"
	"github.com/randalmurphal/brood/pkg/brood/observability"
)

// flags holds command-line overrides for config.Settings.
type flags struct {
	configFile string
	logLevel   string
	censusPath string
	runID      string
	metrics    bool
	trace      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "brood",
		Short:         "Move a brood of people into one household",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd, f)
			if err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return err
			}
			if err := run(cmd.Context(), settings, f.runID, stdout, stderr); err != nil {
				fmt.Fprintln(stderr, "Error:", err)
				return err
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "config file (.yaml, .yml, or .json)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	cmd.Flags().StringVar(&f.censusPath, "census", "", "record registrations in this SQLite database")
	cmd.Flags().StringVar(&f.runID, "run-id", "", "run identifier (default: random UUID)")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "log a metrics summary to stderr")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "write trace spans to stderr")

	return cmd
}

// resolveSettings loads the config file and applies flags that were set explicitly.
func resolveSettings(cmd *cobra.Command, f *flags) (config.Settings, error) {
	settings, err := config.Load(f.configFile)
	if err != nil {
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("log-level") {
		if _, err := config.ParseLevel(f.logLevel); err != nil {
			return config.Settings{}, err
		}
		settings.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("census") {
		settings.CensusPath = f.censusPath
	}
	if cmd.Flags().Changed("metrics") {
		settings.Metrics = f.metrics
	}
	if cmd.Flags().Changed("trace") {
		settings.Tracing = f.trace
	}
	return settings, nil
}

func run(ctx context.Context, settings config.Settings, runID string, stdout, stderr io.Writer) (err error) {
	level, err := config.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []brood.Option{
		brood.WithAnnouncer(brood.NewAnnouncer(stdout)),
		brood.WithLogger(logger),
	}
	if runID != "" {
		opts = append(opts, brood.WithRunID(runID))
	}

	if settings.CensusPath != "" {
		store, openErr := census.NewSQLiteStore(settings.CensusPath)
		if openErr != nil {
			return fmt.Errorf("open census: %w", openErr)
		}
		defer func() {
			if cerr := store.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close census: %w", cerr)
			}
		}()
		opts = append(opts, brood.WithCensus(store))
	}

	if settings.Tracing {
		shutdown, traceErr := setupTracing(stderr)
		if traceErr != nil {
			return traceErr
		}
		defer shutdown(ctx)
		opts = append(opts, brood.WithSpanManager(observability.NewSpanManager()))
	}

	if settings.Metrics {
		defer setupMetrics(stderr)(ctx)
		opts = append(opts, brood.WithMetrics(observability.NewMetricsRecorder()))
	}

	_, err = brood.Run(ctx, settings.Names, opts...)
	return err
}
