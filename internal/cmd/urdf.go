package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/inercia/meshcat-go"
	"github.com/inercia/meshcat-go/internal/logging"
	"github.com/inercia/meshcat-go/urdf"
)

// watchDebounce coalesces bursts of filesystem events (editors often
// fire several per save).
const watchDebounce = 100 * time.Millisecond

var urdfCmd = &cobra.Command{
	Use:   "urdf <path> <file>",
	Short: "Publish a URDF robot description under the given scene path",
	Long: `Parse a URDF file and publish its kinematic tree under the given
scene path: one object per link with visuals, one transform per joint.

With --watch the file is re-published every time it changes on disk,
which gives a live preview while editing the URDF.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenePath, file := args[0], args[1]
		watch, _ := cmd.Flags().GetBool("watch")

		v, err := dial()
		if err != nil {
			return err
		}
		defer v.Close()

		if err := publishURDF(cmd.Context(), v, scenePath, file); err != nil {
			return err
		}
		if !watch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchURDF(ctx, v, scenePath, file)
	},
}

func init() {
	urdfCmd.Flags().Bool("watch", false, "Re-publish whenever the file changes")
	rootCmd.AddCommand(urdfCmd)
}

func publishURDF(ctx context.Context, v *meshcat.Visualizer, scenePath, file string) error {
	robot, err := urdf.Load(file)
	if err != nil {
		return err
	}
	return urdf.Publish(ctx, v, scenePath, robot)
}

// watchURDF re-publishes the robot whenever the file changes, until the
// context is canceled.
func watchURDF(ctx context.Context, v *meshcat.Visualizer, scenePath, file string) error {
	logger := logging.WithComponent(logging.Get(), "urdf-watcher")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save
	// and a watch on the old inode goes stale.
	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(file)
	logger.Info("watching URDF file", "file", target)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	republish := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case republish <- struct{}{}:
				default:
				}
			})
		case <-republish:
			logger.Info("URDF changed, re-publishing", "file", target)
			if err := publishURDF(ctx, v, scenePath, file); err != nil {
				// Keep watching: transient parse errors are normal
				// while the file is being edited.
				logger.Warn("re-publish failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
