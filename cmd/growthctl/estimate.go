package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/growth_estimator/internal/adapters/history"
	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/growth_estimator/internal/core/ports/services"
	"github.com/SscSPs/growth_estimator/internal/core/services"
	"github.com/SscSPs/growth_estimator/internal/dto"
	"github.com/SscSPs/growth_estimator/internal/platform/config"
	"github.com/SscSPs/growth_estimator/internal/repositories/database/pgsql"
	"github.com/SscSPs/growth_estimator/internal/utils"
	"github.com/SscSPs/growth_estimator/pkg/database"
	"github.com/spf13/cobra"
)

type estimateOptions struct {
	historySource string
	scenarioPath  string
	strict        bool
	asJSON        bool
}

func newEstimateCmd() *cobra.Command {
	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the forward growth rate of one company",
		Long: `Loads the financial history (CSV, XLSX[#Sheet], http(s):// page or db://TICKER),
computes the revenue, net income and market share CAGRs, scores the five forces
from the scenario's macro parameters and weights, and prints the blended growth
rate as a percentage rounded to two decimals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd.Context(), cmd.OutOrStdout(), opts, cmd.Flags().Changed("strict"))
		},
	}

	cmd.Flags().StringVar(&opts.historySource, "history", "", "History source; defaults to the scenario's history entry")
	cmd.Flags().StringVarP(&opts.scenarioPath, "scenario", "s", "", "Scenario file (YAML, TOML or JSON) with macro parameters and force weights")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Clamp the five-forces intensity to [0,1]")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the full breakdown as JSON")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func runEstimate(ctx context.Context, out io.Writer, opts *estimateOptions, strictSet bool) error {
	scenario, err := config.LoadScenario(opts.scenarioPath)
	if err != nil {
		return err
	}

	source := opts.historySource
	if source == "" {
		source = scenario.History
	}
	if source == "" {
		return fmt.Errorf("%w: no history source; pass --history or set history in the scenario", apperrors.ErrValidation)
	}

	strict := scenario.Strict
	if strictSet {
		strict = opts.strict
	}

	reader, closeReader, err := newHistoryReader(ctx, source)
	if err != nil {
		return err
	}
	defer closeReader()

	svc := services.NewEstimationService(services.WithHistoryReader(reader))
	estimate, err := svc.EstimateFromSource(ctx, source, scenario.Macro, scenario.Weights, portssvc.EstimationOptions{Strict: strict})
	if err != nil {
		return err
	}

	if opts.asJSON {
		return writeEstimateJSON(out, estimate)
	}
	return writeEstimateText(out, estimate)
}

// newHistoryReader builds the source router. A database connection is only
// opened for db:// sources.
func newHistoryReader(ctx context.Context, source string) (*history.Router, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	routerOpts := history.RouterOptions{
		DownloadTimeout: cfg.DownloadTimeout,
		DownloadRetries: cfg.DownloadRetries,
		UserAgent:       cfg.UserAgent,
	}
	closeFn := func() {}

	if strings.HasPrefix(strings.ToLower(source), history.DatabaseScheme) {
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("%w: %s needs PGSQL_URL to be set", apperrors.ErrValidation, source)
		}
		logger := slog.Default()
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		routerOpts.Finder = pgsql.NewRepositoryProvider(pool).HistoryFinder
		closeFn = func() { database.ClosePgxPool(pool, logger) }
	}

	return history.NewRouter(routerOpts), closeFn, nil
}

func writeEstimateText(out io.Writer, e *domain.GrowthEstimate) error {
	name := e.Ticker
	if name == "" {
		name = "company"
	}
	fmt.Fprintf(out, "Estimated growth rate for %s: %s\n\n", name, utils.FormatPercent(e.Value))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Periods\t%d\n", e.Periods)
	fmt.Fprintf(tw, "Revenue CAGR\t%s\n", utils.FormatPercent(e.RevenueCAGR*100))
	fmt.Fprintf(tw, "Net income CAGR\t%s\n", utils.FormatPercent(e.NetIncomeCAGR*100))
	fmt.Fprintf(tw, "Market share CAGR\t%s\n", utils.FormatPercent(e.MarketShareCAGR*100))
	fmt.Fprintf(tw, "Forces intensity\t%s\n", utils.FormatWithPrecision(e.Intensity, 4))
	for _, f := range domain.AllForces {
		fmt.Fprintf(tw, "  %s\t%s\n", f, utils.FormatWithPrecision(e.Signals[f], 4))
	}
	if e.GovernmentPolicy != "" {
		fmt.Fprintf(tw, "Government policy\t%s (not scored)\n", e.GovernmentPolicy)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if e.IntensityOutOfRange() {
		fmt.Fprintln(out, "\nwarning: forces intensity is outside [0,1]; macro inputs are raw magnitudes (use --strict to clamp)")
	}
	return nil
}

func writeEstimateJSON(out io.Writer, e *domain.GrowthEstimate) error {
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return errors.New("growth rate is undefined for this history (negative revenue ratio?)")
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToEstimateResponse(e))
}
