package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/desertwitch/bprop/internal/props"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known properties",
	Long: `List every known property with the object types it applies to. With
-t, only the properties applicable to that object type are shown.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(os.Stdout)
		if err != nil {
			return err
		}

		descriptors := app.propsHandler.Registry().Descriptors()
		if typeFlag != "" {
			types, err := props.ParseObjectTypes(typeFlag)
			if err != nil {
				return err
			}
			descriptors = app.propsHandler.Registry().ApplicableTo(types)
		}

		return printDescriptors(os.Stdout, descriptors)
	},
}

func printDescriptors(out io.Writer, descriptors []*props.Descriptor) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	for _, desc := range descriptors {
		access := "rw"
		if desc.ReadOnly {
			access = "ro"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", desc.Name, desc.Types, access, desc.Description)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("(cli) failed to print properties: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
