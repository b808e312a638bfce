package main

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/spboyer/gauss/gaussian"
	"github.com/spboyer/gauss/internal/projectconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCommand_JSON(t *testing.T) {
	withConfig(t, projectconfig.New())

	tests := []struct {
		kind queryKind
		args []string
		want []float64
	}{
		{queryPDF, []string{"N(0, 1)", "0", "1"}, []float64{1 / math.Sqrt(2*math.Pi), math.Exp(-0.5) / math.Sqrt(2*math.Pi)}},
		{queryCDF, []string{"N(0, 1)", "0", "1.96"}, []float64{0.5, 0.9750021}},
		{queryPPF, []string{"N(2, 4)", "0.5", "0.975"}, []float64{2, 2 + 2*1.959964}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			out, err := run(t, newQueryCommand(tt.kind), tt.args...)
			require.NoError(t, err)

			var report queryReport
			require.NoError(t, json.Unmarshal([]byte(out), &report))
			assert.Equal(t, string(tt.kind), report.Function)
			require.Len(t, report.Points, len(tt.want))
			for i, want := range tt.want {
				assert.InDelta(t, want, report.Points[i].Value, 1e-6)
			}
		})
	}
}

func TestQueryCommand_Table(t *testing.T) {
	withConfig(t, projectconfig.New())

	out, err := run(t, newQueryCommand(queryCDF), "N(0, 1)", "0", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "N(0, 1)")
	assert.Contains(t, out, "cdf(x)")
	assert.Contains(t, out, "0.5")
}

func TestQueryCommand_Errors(t *testing.T) {
	withConfig(t, projectconfig.New())

	tests := []struct {
		name       string
		kind       queryKind
		args       []string
		want       string
		invalidArg bool
	}{
		{"missing points", queryPDF, []string{"N(0, 1)"}, "requires at least 2 arg(s)", false},
		{"bad literal", queryPDF, []string{"G(0, 1)", "0"}, "invalid distribution literal", false},
		{"bad point", queryCDF, []string{"N(0, 1)", "abc"}, `invalid point "abc"`, false},
		{"ppf at one", queryPPF, []string{"N(0, 1)", "1"}, "outside (0, 1)", false},
		{"ppf at zero", queryPPF, []string{"N(0, 1)", "0"}, "outside (0, 1)", false},
		{"zero variance", queryPDF, []string{"N(0, 0)", "0"}, "variance must be > 0 (but was: 0)", true},
		{"bad format", queryPDF, []string{"N(0, 1)", "0", "-f", "xml"}, `unsupported format "xml"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, newQueryCommand(tt.kind), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.invalidArg, errors.Is(err, gaussian.ErrInvalidParameter))
		})
	}
}
