package adapter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	m "github.com/skua-bio/fastascan/internal/model"
)

// RescanFunc is called once file activity under the watched root has
// settled.
type RescanFunc func()

// Watch starts an fsnotify watcher over root and invokes rescan after
// changes to files with a watched extension settle for the debounce
// interval. Directories created at runtime join the watch list. Watch
// blocks until ctx is cancelled.
func Watch(ctx context.Context, root m.Path, extensions []string, debounce time.Duration, logger *log.Logger, rescan RescanFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addDirsRecursive(watcher, string(root)); err != nil {
		return err
	}

	logger.Info("watching for fasta changes", "root", root)

	// settleTimer debounces bursts of events into one rescan.
	var settleTimer *time.Timer

	var settleCh <-chan time.Time

	scheduleRescan := func() {
		if settleTimer == nil {
			settleTimer = time.NewTimer(debounce)
			settleCh = settleTimer.C
		} else {
			settleTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if settleTimer != nil {
				settleTimer.Stop()
			}

			logger.Info("watcher stopped")

			return nil

		case <-settleCh:
			rescan()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(watcher, ev.Name); addErr != nil {
						logger.Warn("cannot watch new directory", "path", ev.Name, "error", addErr)
					}

					// The new directory may already hold fasta files.
					scheduleRescan()

					continue
				}
			}

			if !hasWatchedExtension(ev.Name, extensions) {
				continue
			}

			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("fasta file changed", "path", ev.Name, "op", ev.Op.String())
				scheduleRescan()
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Error("watch error", "error", watchErr)
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return watcher.Add(path)
		}

		return nil
	})
}

func hasWatchedExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}
