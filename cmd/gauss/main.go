package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/gauss/gaussian"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Command completed
	ExitInvalidParameter = 1 // A distribution parameter was out of range
	ExitError            = 2 // Usage, configuration or I/O error
)

func main() {
	os.Exit(exitCode(execute()))
}

// exitCode reports err on stderr and maps it to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(os.Stderr, err)

	if errors.Is(err, gaussian.ErrInvalidParameter) {
		return ExitInvalidParameter
	}
	return ExitError
}
