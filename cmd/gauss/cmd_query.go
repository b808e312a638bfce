package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spboyer/gauss/gaussian"
	"github.com/spf13/cobra"
)

// queryKind names one of the distribution's point functions.
type queryKind string

const (
	queryPDF queryKind = "pdf"
	queryCDF queryKind = "cdf"
	queryPPF queryKind = "ppf"
)

type queryPoint struct {
	At    float64 `json:"at" yaml:"at"`
	Value float64 `json:"value" yaml:"value"`
}

type queryReport struct {
	Distribution string       `json:"distribution" yaml:"distribution"`
	Function     string       `json:"function" yaml:"function"`
	Points       []queryPoint `json:"points" yaml:"points"`
}

func newQueryCommand(kind queryKind) *cobra.Command {
	var format string

	short := map[queryKind]string{
		queryPDF: "Evaluate the probability density at each point",
		queryCDF: "Evaluate the cumulative distribution at each point",
		queryPPF: "Evaluate the quantile (percent point) for each probability",
	}[kind]
	arg := "x"
	if kind == queryPPF {
		arg = "p"
	}

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <dist> <%s>...", kind, arg),
		Short: short,
		Long: short + `.

<dist> is a distribution literal such as "N(0, 1)" (mean, variance).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, kind, format, args)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func runQuery(cmd *cobra.Command, kind queryKind, format string, args []string) error {
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

	f := g.PDF
	switch kind {
	case queryCDF:
		f = g.CDF
	case queryPPF:
		f = g.PPF
	}

	report := queryReport{Distribution: g.String(), Function: string(kind)}
	for _, s := range args[1:] {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid point %q: %w", s, err)
		}
		if kind == queryPPF && !(x > 0 && x < 1) {
			return fmt.Errorf("probability %v outside (0, 1)", x)
		}
		report.Points = append(report.Points, queryPoint{At: x, Value: f(x)})
	}
	slog.Debug("evaluated points", "function", kind, "dist", report.Distribution, "count", len(report.Points))

	return r.emit(report, func(w io.Writer) {
		arg := "x"
		if kind == queryPPF {
			arg = "p"
		}
		rows := make([][]string, len(report.Points))
		for i, p := range report.Points {
			rows[i] = []string{r.num(p.At), r.num(p.Value)}
		}
		fmt.Fprintf(w, "%s\n\n", report.Distribution) //nolint:errcheck
		printTable(w, []string{arg, fmt.Sprintf("%s(%s)", kind, arg)}, rows)
	})
}
