package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <object> <name> <value>",
	Short: "Write a property of a filesystem object",
	Long: `Write value as the new content of one named property of a filesystem
object. Values are validated before anything is touched; a rejected
value leaves the property unchanged.`,
	Args:              usageArgs(cobra.ExactArgs(3)),
	ValidArgsFunction: propertyNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(os.Stdout)
		if err != nil {
			return err
		}

		object, name, value := args[0], args[1], args[2]

		types, err := app.objectTypes(object)
		if err != nil {
			return err
		}
		slog.Debug("Addressing object", "object", object, "types", types.String())

		if err := app.propsHandler.Set(types, object, name, value); err != nil {
			return err
		}
		slog.Debug("Property written", "object", object, "name", name, "value", value)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
