package cli

import (
	"errors"
	"fmt"

	"github.com/desertwitch/bprop/internal/props"
	"github.com/spf13/cobra"
)

// Exit codes as advertised in the root command help.
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsageError = 2
	ExitPanic      = 3
)

// errUsage marks command line parsing failures (bad flags, wrong argument
// counts) for exit-code mapping.
var errUsage = errors.New("command line usage error")

// usageArgs wraps a positional-argument check so its failures carry the
// usage marker.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}

		return nil
	}
}

// ExitCode maps an error returned by [Execute] to the process exit code.
// Malformed invocations and request-shaped failures (unknown property,
// inapplicable type, rejected value) count as usage errors; everything else
// is a general failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, errUsage),
		errors.Is(err, props.ErrUnknownProperty),
		errors.Is(err, props.ErrUnknownObjectType),
		errors.Is(err, props.ErrNotApplicable),
		errors.Is(err, props.ErrReadOnlyProperty),
		errors.Is(err, props.ErrInvalidValue):
		return ExitUsageError
	}

	return ExitError
}
