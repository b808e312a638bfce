package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spboyer/gauss/gaussian"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "success",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "invalid parameter",
			err:  &gaussian.InvalidParameterError{Name: "variance", Value: -1},
			want: ExitInvalidParameter,
		},
		{
			name: "wrapped invalid parameter",
			err:  fmt.Errorf("step %q: %w", "c", &gaussian.InvalidParameterError{Name: "precision", Value: -0.5}),
			want: ExitInvalidParameter,
		},
		{
			name: "regular error",
			err:  errors.New("config error"),
			want: ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"pdf", "cdf", "ppf", "combine", "sample", "describe", "eval"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}
