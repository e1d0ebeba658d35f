package cmd

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/inercia/meshcat-go/pose"
)

var spinCmd = &cobra.Command{
	Use:   "spin <path>",
	Short: "Spin a scene path around the vertical axis",
	Long: `Rotate a scene path around the Z axis by streaming set_transform
commands at a fixed rate. With --turns 0 it spins until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fps, _ := cmd.Flags().GetFloat64("fps")
		turns, _ := cmd.Flags().GetFloat64("turns")
		at, _ := cmd.Flags().GetString("at")
		if fps <= 0 {
			return fmt.Errorf("--fps must be positive, got %v", fps)
		}

		xyz := [3]float64{}
		if at != "" {
			var err error
			if xyz, err = parseVec3(at); err != nil {
				return err
			}
		}

		v, err := dial()
		if err != nil {
			return err
		}
		defer v.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		limiter := rate.NewLimiter(rate.Limit(fps), 1)
		step := 2 * math.Pi / fps // one full turn per second
		for angle := 0.0; turns == 0 || angle < turns*2*math.Pi; angle += step {
			if err := limiter.Wait(ctx); err != nil {
				return nil // interrupted
			}
			p := pose.New(xyz[0], xyz[1], xyz[2], 0, 0, angle)
			if err := v.SetTransform(ctx, args[0], p); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	spinCmd.Flags().Float64("fps", 30, "Transform updates per second")
	spinCmd.Flags().Float64("turns", 1, "Number of full turns (0 spins forever)")
	spinCmd.Flags().String("at", "", "Center of rotation as x,y,z")
	rootCmd.AddCommand(spinCmd)
}
