package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spboyer/gauss/internal/worksheet"
	"github.com/spf13/cobra"
)

func newEvalCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "eval <worksheet.yaml>",
		Short: "Validate and evaluate a worksheet",
		Long: `Evaluate a YAML worksheet of named distributions, derivation steps and queries.

The worksheet is checked against its JSON schema first; every schema problem
is reported. Steps run in order and may refer to any distribution defined
before them.

Example:
  distributions:
    prior:  {mean: 0, variance: 4}
    sensor: {mean: 1.2, variance: 1}
  steps:
    - name: posterior
      op: mul
      params: {left: prior, right: sensor}
  queries:
    - of: posterior
      cdf: [0]
      ppf: [0.05, 0.95]`,
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

			ws, err := worksheet.Load(args[0])
			if err != nil {
				return err
			}
			res, err := ws.Evaluate()
			if err != nil {
				return err
			}
			slog.Debug("worksheet evaluated", "path", args[0], "distributions", len(res.Distributions), "queries", len(res.Queries))

			return r.emit(res, func(w io.Writer) {
				rows := make([][]string, len(res.Distributions))
				for i, d := range res.Distributions {
					rows[i] = []string{d.Name, r.num(d.Mean), r.num(d.Variance), r.num(d.StdDev)}
				}
				printTable(w, []string{"name", "μ", "σ²", "σ"}, rows)

				for _, q := range res.Queries {
					fmt.Fprintf(w, "\n%s\n", q.Of) //nolint:errcheck
					var qrows [][]string
					for _, set := range []struct {
						fn     string
						points []worksheet.Point
					}{{"pdf", q.PDF}, {"cdf", q.CDF}, {"ppf", q.PPF}} {
						for _, p := range set.points {
							qrows = append(qrows, []string{set.fn, r.num(p.At), r.num(p.Value)})
						}
					}
					printTable(w, []string{"fn", "at", "value"}, qrows)
				}
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

