package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spboyer/gauss/gaussian"
	"github.com/spboyer/gauss/internal/projectconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineCommand(t *testing.T) {
	withConfig(t, projectconfig.New())

	tests := []struct {
		name         string
		args         []string
		wantMean     float64
		wantVariance float64
	}{
		{"product", []string{"mul", "N(0, 1)", "N(0, 1)"}, 0, 0.5},
		{"product by constant", []string{"mul", "N(1, 2)", "2"}, 2, 8},
		{"quotient", []string{"div", "N(1, 1)", "N(0, 2)"}, 2, 2},
		{"quotient by constant", []string{"div", "N(1, 2)", "2"}, 0.5, 0.5},
		{"sum", []string{"add", "N(1, 2)", "N(3, 4)"}, 4, 6},
		{"difference", []string{"sub", "N(1, 2)", "N(3, 4)"}, -2, 6},
		{"scale", []string{"scale", "N(1, 2)", "3"}, 3, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, newCombineCommand(), tt.args...)
			require.NoError(t, err)

			var report combineReport
			require.NoError(t, json.Unmarshal([]byte(out), &report))
			assert.Equal(t, tt.args[0], report.Op)
			assert.InDelta(t, tt.wantMean, report.Result.Mean, 1e-12)
			assert.InDelta(t, tt.wantVariance, report.Result.Variance, 1e-12)
		})
	}
}

func TestCombineCommand_Errors(t *testing.T) {
	withConfig(t, projectconfig.New())

	tests := []struct {
		name       string
		args       []string
		want       string
		invalidArg bool
	}{
		{"divisor more precise", []string{"div", "N(0, 2)", "N(0, 1)"}, "precision must be > 0", true},
		{"equal variances", []string{"div", "N(0, 1)", "N(5, 1)"}, "precision must be > 0", true},
		{"divide by zero", []string{"div", "N(0, 1)", "0"}, "divisor must be > 0 (but was: 0)", true},
		{"scale by zero", []string{"scale", "N(0, 1)", "0"}, "variance must be > 0", true},
		{"add constant", []string{"add", "N(0, 1)", "3"}, "requires a distribution", false},
		{"scale by distribution", []string{"scale", "N(0, 1)", "N(0, 1)"}, "requires a constant", false},
		{"unknown op", []string{"pow", "N(0, 1)", "2"}, `unknown operation "pow"`, false},
		{"bad left", []string{"mul", "3", "N(0, 1)"}, "left operand", false},
		{"bad right", []string{"mul", "N(0, 1)", "x"}, "right operand", false},
		{"wrong arg count", []string{"mul", "N(0, 1)"}, "accepts 3 arg(s)", false},
		{"variance overflow", []string{"scale", "N(0, 1)", "1e200", "-f", "json"}, "scale overflows: result N(0, +Inf) is not finite", false},
		{"mean overflow", []string{"add", "N(1e308, 1)", "N(1e308, 1)"}, "add overflows", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, newCombineCommand(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.invalidArg, errors.Is(err, gaussian.ErrInvalidParameter))
		})
	}
}

func TestCombineCommand_YAML(t *testing.T) {
	withConfig(t, projectconfig.New())

	out, err := run(t, newCombineCommand(), "add", "N(1, 2)", "N(3, 4)", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "op: add")
	assert.Contains(t, out, "literal: N(4, 6)")
	assert.Contains(t, out, "variance: 6")
}
