package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// propertyNameCompletion completes the property-name argument of get and set
// from the registry; the object argument before it stays file completion.
func propertyNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 1 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	app, err := newApp(io.Discard)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return app.propsHandler.Registry().Names(), cobra.ShellCompDirectiveNoFileComp
}
