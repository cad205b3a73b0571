package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/sleeper-report/internal/app"
	"github.com/riskibarqy/sleeper-report/internal/config"
	"github.com/riskibarqy/sleeper-report/internal/interfaces/cli"
	"github.com/riskibarqy/sleeper-report/internal/observability"
	"github.com/riskibarqy/sleeper-report/internal/platform/logging"
	"github.com/riskibarqy/sleeper-report/internal/usecase"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const shutdownTimeout = 5 * time.Second

type rootOptions struct {
	team          string
	lookbackHours int
	limit         int
	json          bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sleeper-report [TEAM]",
		Short: "Print an NFL team report from Sleeper",
		Long: "sleeper-report fetches the Sleeper player directory and prints a team's roster, " +
			"the trending add/drop lists flagged against that team, and a depth-chart lineup.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.team, "team", "", "Team code (overrides REPORT_DEFAULT_TEAM)")
	cmd.Flags().IntVar(&opts.lookbackHours, "lookback-hours", 0, "Trending lookback window in hours (overrides TRENDING_LOOKBACK_HOURS)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Trending list size (overrides TRENDING_LIMIT)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the report as JSON")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr())
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("flush traces failed", "error", err)
		}
	}()

	input := buildInput(cmd, args, opts, cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, span := otel.Tracer("sleeper-report/cmd/report").Start(ctx, "report.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("report.team", input.Team),
		attribute.Int("report.lookback_hours", input.LookbackHours),
		attribute.Int("report.trending_limit", input.TrendingLimit),
	)

	report, err := app.NewReportService(cfg, logger).Generate(ctx, input)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if opts.json {
		return cli.WriteJSON(cmd.OutOrStdout(), report)
	}
	return cli.WriteReport(cmd.OutOrStdout(), report)
}

// buildInput resolves the team as positional arg, then --team, then
// REPORT_DEFAULT_TEAM. Flags override env only when set explicitly.
func buildInput(cmd *cobra.Command, args []string, opts *rootOptions, cfg config.Config) usecase.ReportInput {
	team := cfg.DefaultTeam
	if cmd.Flags().Changed("team") {
		team = opts.team
	}
	if len(args) > 0 {
		team = args[0]
	}

	input := usecase.ReportInput{
		Team:          strings.ToUpper(strings.TrimSpace(team)),
		LookbackHours: cfg.TrendingLookbackHours,
		TrendingLimit: cfg.TrendingLimit,
	}
	if cmd.Flags().Changed("lookback-hours") {
		input.LookbackHours = opts.lookbackHours
	}
	if cmd.Flags().Changed("limit") {
		input.TrendingLimit = opts.limit
	}
	return input
}
