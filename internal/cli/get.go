package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <object> [name]",
	Short: "Read properties of a filesystem object",
	Long: `Read one named property of a filesystem object, or every property
applicable to it when no name is given. Each value is printed as one
name=value line; an unset property prints nothing.`,
	Args:              usageArgs(cobra.RangeArgs(1, 2)),
	ValidArgsFunction: propertyNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(os.Stdout)
		if err != nil {
			return err
		}

		object := args[0]

		types, err := app.objectTypes(object)
		if err != nil {
			return err
		}
		slog.Debug("Addressing object", "object", object, "types", types.String())

		if len(args) < 2 {
			return app.propsHandler.GetAll(types, object)
		}

		return app.propsHandler.Get(types, object, args[1])
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
