package main

import (
	"fmt"
	"io"

	"github.com/spboyer/gauss/gaussian"
	"github.com/spf13/cobra"
)

type describeReport struct {
	distView   `yaml:",inline"`
	Precision  float64      `json:"precision" yaml:"precision"`
	Quantiles  []queryPoint `json:"quantiles" yaml:"quantiles"`
	Confidence float64      `json:"confidence" yaml:"confidence"`
	Interval   [2]float64   `json:"interval" yaml:"interval,flow"`
}

func newDescribeCommand() *cobra.Command {
	var (
		format     string
		confidence float64
	)

	cmd := &cobra.Command{
		Use:   "describe <dist>",
		Short: "Show moments, quantiles and a central interval",
		Long: `Show the moments of a distribution, its quantiles at the probabilities
configured under describe.quantiles in .gauss.yaml, and the central interval
holding the --confidence share of its mass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}
			r, err := newRenderer(cmd.OutOrStdout(), format, cfg)
			if err != nil {
				return err
			}

			g, err := gaussian.Parse(args[0])
			if err != nil {
				return err
			}

			level := cfg.Describe.Confidence
			if cmd.Flags().Changed("confidence") {
				level = confidence
			}
			if !(level > 0 && level < 1) {
				return fmt.Errorf("confidence level must be in (0, 1), got %v", level)
			}

			report := describeReport{
				distView:   viewOf(g),
				Precision:  g.Precision(),
				Confidence: level,
				Interval:   [2]float64{g.PPF((1 - level) / 2), g.PPF((1 + level) / 2)},
			}
			for _, p := range cfg.Describe.Quantiles {
				if !(p > 0 && p < 1) {
					return fmt.Errorf("configured quantile %v outside (0, 1)", p)
				}
				report.Quantiles = append(report.Quantiles, queryPoint{At: p, Value: g.PPF(p)})
			}

			return r.emit(report, func(w io.Writer) {
				fmt.Fprintf(w, "%s\n\n", report.Literal) //nolint:errcheck
				rows := [][]string{
					{"mean", r.num(report.Mean)},
					{"variance", r.num(report.Variance)},
					{"std dev", r.num(report.StdDev)},
					{"precision", r.num(report.Precision)},
				}
				for _, q := range report.Quantiles {
					rows = append(rows, []string{fmt.Sprintf("q(%g)", q.At), r.num(q.Value)})
				}
				rows = append(rows, []string{
					fmt.Sprintf("%g%% interval", level*100),
					fmt.Sprintf("[%s, %s]", r.num(report.Interval[0]), r.num(report.Interval[1])),
				})
				printTable(w, []string{"statistic", "value"}, rows)
			})
		},
	}

	cmd.Flags().Float64Var(&confidence, "confidence", 0.95, "Mass of the central interval, in (0, 1)")
	addFormatFlag(cmd, &format)
	return cmd
}
