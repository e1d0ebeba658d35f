package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inercia/meshcat-go/geometry"
)

var boxCmd = &cobra.Command{
	Use:   "box <path> <width> <height> <depth>",
	Short: "Publish a box at the given scene path",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := parseFloatArgs(args[1:])
		if err != nil {
			return err
		}
		return publishObject(cmd, args[0], geometry.NewBox(dims[0], dims[1], dims[2]))
	},
}

var sphereCmd = &cobra.Command{
	Use:   "sphere <path> <radius>",
	Short: "Publish a sphere at the given scene path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := parseFloatArgs(args[1:])
		if err != nil {
			return err
		}
		return publishObject(cmd, args[0], geometry.NewSphere(dims[0]))
	},
}

var cylinderCmd = &cobra.Command{
	Use:   "cylinder <path> <radius> <height>",
	Short: "Publish a cylinder at the given scene path",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := parseFloatArgs(args[1:])
		if err != nil {
			return err
		}
		return publishObject(cmd, args[0], geometry.NewCylinder(dims[0], dims[0], dims[1]))
	},
}

var coneCmd = &cobra.Command{
	Use:   "cone <path> <radius> <height>",
	Short: "Publish a cone at the given scene path",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := parseFloatArgs(args[1:])
		if err != nil {
			return err
		}
		return publishObject(cmd, args[0], geometry.NewCone(dims[0], dims[1]))
	},
}

var torusCmd = &cobra.Command{
	Use:   "torus <path> <radius> <tube>",
	Short: "Publish a torus at the given scene path",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := parseFloatArgs(args[1:])
		if err != nil {
			return err
		}
		return publishObject(cmd, args[0], geometry.NewTorus(dims[0], dims[1]))
	},
}

var textCmd = &cobra.Command{
	Use:   "text <path> <text>",
	Short: "Publish a text plane at the given scene path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fontSize, err := cmd.Flags().GetInt("font-size")
		if err != nil {
			return err
		}
		at, _ := cmd.Flags().GetString("at")
		rpy, _ := cmd.Flags().GetString("rpy")
		p, err := poseFromFlags(at, rpy)
		if err != nil {
			return err
		}

		obj := geometry.Text(args[1], fontSize)
		obj.Object.Matrix = p.Matrix()

		v, err := dial()
		if err != nil {
			return err
		}
		defer v.Close()
		return v.SetObject(cmd.Context(), args[0], obj)
	},
}

var meshCmd = &cobra.Command{
	Use:   "mesh <path> <file>",
	Short: "Publish a mesh file (obj, dae or stl) at the given scene path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mesh, err := geometry.LoadMeshFile(args[1])
		if err != nil {
			return err
		}
		return publishObject(cmd, args[0], mesh)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{boxCmd, sphereCmd, cylinderCmd, coneCmd, torusCmd, meshCmd} {
		placementFlags(cmd)
		cmd.Flags().String("color", "", "Material color as RRGGBB hex")
		rootCmd.AddCommand(cmd)
	}
	placementFlags(textCmd)
	textCmd.Flags().Int("font-size", 100, "Font size of the rendered text")
	rootCmd.AddCommand(textCmd)
}

// placementFlags registers the shared --at and --rpy flags.
func placementFlags(cmd *cobra.Command) {
	cmd.Flags().String("at", "", "Position as x,y,z")
	cmd.Flags().String("rpy", "", "Orientation as roll,pitch,yaw in radians")
}

// publishObject builds a lumped object from the command flags and sends
// it to the configured endpoint.
func publishObject(cmd *cobra.Command, path string, geom geometry.Geometry) error {
	at, _ := cmd.Flags().GetString("at")
	rpy, _ := cmd.Flags().GetString("rpy")
	p, err := poseFromFlags(at, rpy)
	if err != nil {
		return err
	}

	opts := []geometry.ObjectOption{
		geometry.WithGeometry(geom),
		geometry.WithPose(p),
	}
	if colorStr, _ := cmd.Flags().GetString("color"); colorStr != "" {
		color, err := parseColor(colorStr)
		if err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		opts = append(opts, geometry.WithMaterial(geometry.NewMaterial(geometry.WithColor(color))))
	}

	v, err := dial()
	if err != nil {
		return err
	}
	defer v.Close()
	return v.SetObject(cmd.Context(), path, geometry.NewObject(opts...))
}
