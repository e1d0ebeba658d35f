// Package cmd provides the CLI commands for the meshcat client.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inercia/meshcat-go"
	"github.com/inercia/meshcat-go/internal/config"
	"github.com/inercia/meshcat-go/internal/logging"
	"github.com/inercia/meshcat-go/pose"
)

var (
	// Global flags
	endpointFlag string
	configPath   string
	debug        bool
	logLevel     string
	logFile      string

	// Loaded configuration
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meshcat",
	Short: "meshcat - command a meshcat 3D visualization server",
	Long: `meshcat is a command-line client for the meshcat visualization
server. It publishes scene-graph commands - objects, transforms,
properties, deletions - to a running viewer.

Start the companion server first (see 'meshcat server'), then point
commands at it:

  meshcat box /demo/box 0.5 0.5 0.5 --color ff00ff
  meshcat move /demo/box --at 0,1,0
  meshcat delete /demo`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		// Priority: --log-level flag > --debug flag > config > default (info)
		effectiveLogLevel := ""
		if logLevel != "" {
			effectiveLogLevel = logLevel
		} else if debug {
			effectiveLogLevel = "debug"
		}

		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
			}
		} else {
			cfg, err = config.LoadDefault()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
		}

		if effectiveLogLevel == "" {
			effectiveLogLevel = cfg.Log.Level
		}
		file := cfg.Log.File
		if logFile != "" {
			file = logFile
		}
		if err := logging.Initialize(logging.Config{
			Level: effectiveLogLevel,
			File: logging.FileConfig{
				Path:       file,
				MaxSizeMB:  cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
				Compress:   cfg.Log.Compress,
			},
			JSON: cfg.Log.JSON,
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Server endpoint (tcp:// for the ZMQ bridge, ws:// for a viewer; default from config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path (default: $MESHCATRC or ~/.meshcatrc)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging (shorthand for --log-level=debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "logfile", "l", "", "Log file path (logs are also written to stderr)")
}

// endpoint returns the server endpoint from flags and config.
func endpoint() string {
	if endpointFlag != "" {
		return endpointFlag
	}
	if cfg != nil && cfg.Endpoint != "" {
		return cfg.Endpoint
	}
	return meshcat.DefaultEndpoint
}

// dial connects a Visualizer to the configured endpoint.
func dial() (*meshcat.Visualizer, error) {
	return meshcat.New(endpoint(), meshcat.WithLogger(logging.Get()))
}

// parseVec3 parses a "x,y,z" triple.
func parseVec3(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("want three comma-separated values, got %q", s)
	}
	var out [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("parse %q: %w", part, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseColor parses an RRGGBB hex color, optionally prefixed with # or 0x.
func parseColor(s string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return uint32(v), nil
}

// poseFromFlags builds a pose from optional --at and --rpy values.
func poseFromFlags(at, rpy string) (pose.Pose, error) {
	xyz := [3]float64{}
	if at != "" {
		var err error
		if xyz, err = parseVec3(at); err != nil {
			return pose.Identity(), fmt.Errorf("--at: %w", err)
		}
	}
	angles := [3]float64{}
	if rpy != "" {
		var err error
		if angles, err = parseVec3(rpy); err != nil {
			return pose.Identity(), fmt.Errorf("--rpy: %w", err)
		}
	}
	return pose.New(xyz[0], xyz[1], xyz[2], angles[0], angles[1], angles[2]), nil
}

// parseFloatArgs parses positional numeric arguments.
func parseFloatArgs(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		vals[i] = v
	}
	return vals, nil
}
