package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inercia/meshcat-go/wire"
)

var moveCmd = &cobra.Command{
	Use:   "move <path>",
	Short: "Set the transform of a scene path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, _ := cmd.Flags().GetString("at")
		rpy, _ := cmd.Flags().GetString("rpy")
		p, err := poseFromFlags(at, rpy)
		if err != nil {
			return err
		}

		v, err := dial()
		if err != nil {
			return err
		}
		defer v.Close()
		return v.SetTransform(cmd.Context(), args[0], p)
	},
}

var propertyCmd = &cobra.Command{
	Use:   "property <path> <name> <value>...",
	Short: "Set a property of a scene path",
	Long: `Set a named property on a scene path. Booleans and numbers are
sent as such, several numbers become a numeric array, anything else is
sent as a string:

  meshcat property /demo/box visible false
  meshcat property /demo/box scale 2 2 2
  meshcat property /Background top_color 0.9 0.9 0.9`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		prop := wire.Property{Name: args[1], Value: propertyValue(args[2:])}

		v, err := dial()
		if err != nil {
			return err
		}
		defer v.Close()
		return v.SetProperty(cmd.Context(), args[0], prop)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a scene path and everything below it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := dial()
		if err != nil {
			return err
		}
		defer v.Close()
		return v.Delete(cmd.Context(), args[0])
	},
}

func init() {
	placementFlags(moveCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(propertyCmd)
	rootCmd.AddCommand(deleteCmd)
}

// propertyValue infers the wire value from the CLI arguments.
func propertyValue(args []string) any {
	if len(args) == 1 {
		if b, err := strconv.ParseBool(args[0]); err == nil {
			return b
		}
		if f, err := strconv.ParseFloat(args[0], 64); err == nil {
			return f
		}
		return args[0]
	}

	vals, err := parseFloatArgs(args)
	if err != nil {
		// Mixed non-numeric values go through as strings.
		out := make([]any, len(args))
		for i, a := range args {
			out[i] = a
		}
		return out
	}
	return vals
}
