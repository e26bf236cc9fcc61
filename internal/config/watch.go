package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Editors often replace files with rename+create and fire several events
// per save; changes are collapsed over this window before reloading.
const watchDebounce = 150 * time.Millisecond

// RunnerConfigPath resolves the config file the loader would read, using
// the same search order as LoadRunner. Returns "" when only the embedded
// default applies, in which case there is nothing to watch.
func RunnerConfigPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if p := userConfigPath("runner.yaml"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat("configs/runner.yaml"); err == nil {
		return "configs/runner.yaml"
	}
	return ""
}

// WatchRunner watches the config file at path and invokes onLoad with the
// freshly parsed config after each change. Parse failures go to onError
// and keep the previous config in effect. The watcher runs until ctx is
// cancelled.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (rename over the original) keep being seen.
func WatchRunner(ctx context.Context, path string, onLoad func(RunnerConfig), onError func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	go func() {
		defer func() { _ = w.Close() }()

		timer := time.NewTimer(watchDebounce)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
					continue
				}
				timer.Reset(watchDebounce)

			case <-timer.C:
				cfg, err := loadRunnerFile(target)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				onLoad(cfg)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()

	return nil
}

// loadRunnerFile reads and parses one specific config file.
func loadRunnerFile(path string) (RunnerConfig, error) {
	var cfg RunnerConfig
	data, err := os.ReadFile(path) //#nosec G304 -- path was resolved from the loader's search chain
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
