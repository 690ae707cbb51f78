package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/SscSPs/growth_estimator/internal/core/growth"
	"github.com/SscSPs/growth_estimator/internal/platform/config"
	"github.com/SscSPs/growth_estimator/internal/utils"
	"github.com/spf13/cobra"
)

func newForcesCmd() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "forces",
		Short: "Show the five-forces weights a scenario applies",
		Long: `Lists every force with its default coefficient and, when a scenario is given,
its weight and share of the total weight. Without a scenario, uniform weights are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weights := domain.UniformForceWeights(1)
			if scenarioPath != "" {
				scenario, err := config.LoadScenario(scenarioPath)
				if err != nil {
					return err
				}
				weights = scenario.Weights
			}
			return writeForces(cmd.OutOrStdout(), weights)
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Scenario file with force weights")
	return cmd
}

func writeForces(out io.Writer, weights domain.ForceWeights) error {
	coefficients := growth.DefaultCoefficients()
	total := weights.Sum()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FORCE\tCOEFFICIENT\tWEIGHT\tSHARE")
	for _, f := range domain.AllForces {
		share := "-"
		if total > 0 {
			share = utils.FormatPercent(weights.Get(f) / total * 100)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f,
			utils.FormatWithPrecision(coefficients[f], 2),
			utils.FormatWithPrecision(weights.Get(f), 2),
			share)
	}
	fmt.Fprintf(tw, "\nSignals are divided by %s before weighting.\n", utils.FormatWithPrecision(growth.MaxForceValue, 0))
	return tw.Flush()
}
