package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spboyer/gauss/gaussian"
	"github.com/spf13/cobra"
)

// distView is the rendered form of a distribution.
type distView struct {
	Literal  string  `json:"literal" yaml:"literal"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Variance float64 `json:"variance" yaml:"variance"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
}

func viewOf(g gaussian.Gaussian) distView {
	return distView{Literal: g.String(), Mean: g.Mean(), Variance: g.Variance(), StdDev: g.StdDev()}
}

type combineReport struct {
	Op     string   `json:"op" yaml:"op"`
	Left   string   `json:"left" yaml:"left"`
	Right  string   `json:"right" yaml:"right"`
	Result distView `json:"result" yaml:"result"`
}

func newCombineCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "combine <mul|div|add|sub|scale> <left> <right>",
		Short: "Combine two distributions, or a distribution and a constant",
		Long: `Combine distributions with closed-form Gaussian algebra.

  mul    product of densities (precisions add), or scale by a constant
  div    quotient of densities (precisions subtract), or scale by 1/constant
  add    sum of independent variables
  sub    difference of independent variables (variances still add)
  scale  multiply the variable by a constant

Operands are distribution literals such as "N(1, 2)" or plain numbers.
div fails when the divisor is at least as precise as the dividend.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, format, args)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func runCombine(cmd *cobra.Command, format string, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd.OutOrStdout(), format, cfg)
	if err != nil {
		return err
	}

	op := args[0]
	left, err := gaussian.Parse(args[1])
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	right, err := gaussian.ParseOperand(args[2])
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	result, err := combine(op, left, right)
	if err != nil {
		return err
	}
	if !result.IsFinite() {
		return fmt.Errorf("%s overflows: result %s is not finite", op, result)
	}
	slog.Debug("combined distributions", "op", op, "left", left.String(), "right", args[2], "result", result.String())

	report := combineReport{Op: op, Left: left.String(), Right: args[2], Result: viewOf(result)}
	return r.emit(report, func(w io.Writer) {
		printTable(w, []string{"", "μ", "σ²", "σ"}, [][]string{
			{report.Result.Literal, r.num(result.Mean()), r.num(result.Variance()), r.num(result.StdDev())},
		})
	})
}

func combine(op string, left gaussian.Gaussian, right gaussian.Operand) (gaussian.Gaussian, error) {
	switch op {
	case "mul":
		return left.Mul(right)
	case "div":
		return left.Div(right)
	case "add", "sub":
		g, ok := right.(gaussian.Gaussian)
		if !ok {
			return gaussian.Gaussian{}, fmt.Errorf("%s requires a distribution on the right, got a constant", op)
		}
		if op == "add" {
			return left.Add(g)
		}
		return left.Sub(g)
	case "scale":
		c, ok := right.(gaussian.Scalar)
		if !ok {
			return gaussian.Gaussian{}, fmt.Errorf("scale requires a constant on the right, got a distribution")
		}
		return left.Scale(float64(c))
	default:
		return gaussian.Gaussian{}, fmt.Errorf("unknown operation %q: must be mul, div, add, sub or scale", op)
	}
}
