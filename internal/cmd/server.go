package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/inercia/meshcat-go/internal/logging"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the external visualization server",
	Long: `Run the meshcat-server process and wait for it to exit. The
command line comes from the server.command configuration key and must be
installed separately (the server ships its own environment.yml).

With --open the server is asked to open the viewer in a browser.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		open, _ := cmd.Flags().GetBool("open")

		command := cfg.Server.Command
		argv, err := shlex.Split(command)
		if err != nil {
			return fmt.Errorf("parse server command %q: %w", command, err)
		}
		if len(argv) == 0 {
			return fmt.Errorf("empty server command")
		}
		if open {
			argv = append(argv, "--open")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := logging.WithComponent(logging.Get(), "server")
		logger.Info("starting server", "command", argv)

		proc := exec.CommandContext(ctx, argv[0], argv[1:]...)
		proc.Stdout = os.Stdout
		proc.Stderr = os.Stderr
		if err := proc.Run(); err != nil {
			if ctx.Err() != nil {
				return nil // interrupted by the user
			}
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().Bool("open", false, "Open the viewer in a browser")
	rootCmd.AddCommand(serverCmd)
}
