package cli

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"vk-helpers-generator/internal/logger"
)

const watchDebounce = 300 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the table or config file changes",
		Long: `Generate once, then watch the --tables file and the --config file and
regenerate after every change. Stops on interrupt.

Runs never overlap: changes arriving during a run schedule the next one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := a.watchedFiles()
			if len(files) == 0 {
				return errors.WithHint(errors.New("nothing to watch"),
					"pass --tables or --config so there is a file to watch")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, cmd, files)
		},
	}
}

func (a *app) watchedFiles() []string {
	var files []string

	if p := a.cfg.TablesPath(); p != "" {
		files = append(files, p)
	}

	if a.configFile != "" {
		files = append(files, a.configFile)
	}

	return files
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer w.Close()

	// Editors often replace files by rename, so watch the directories and
	// filter by name.
	wanted := map[string]bool{}
	dirs := map[string]bool{}

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", f)
		}

		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	a.runLogged(cmd)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			abs, _ := filepath.Abs(event.Name)
			if !wanted[abs] || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			logger.Logger.Debugw("change detected", "file", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}

			timer = time.NewTimer(watchDebounce)
			pending = timer.C

		case <-pending:
			pending = nil
			a.regenerate(cmd)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			logger.Logger.Warnw("file watcher error", "error", err)
		}
	}
}

// regenerate reloads configuration and tables, then generates. Failures
// are logged instead of returned so the watch loop keeps going.
func (a *app) regenerate(cmd *cobra.Command) {
	if err := a.load(cmd); err != nil {
		logger.Logger.Errorw("failed to reload configuration", "error", err)
		return
	}

	a.runLogged(cmd)
}

func (a *app) runLogged(cmd *cobra.Command) {
	if err := a.runGenerate(cmd); err != nil {
		logger.Logger.Errorw("generation failed", "error", err)
	}
}
