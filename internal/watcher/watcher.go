// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package watcher

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/whitespace-ls/internal/state"
)

// DefaultDebounce is how long a file has to stay untouched
// after an event before its change hooks run
const DefaultDebounce = 200 * time.Millisecond

// watcher is a wrapper around native fsnotify.Watcher
// It provides the ability to detect actual file changes
// (rather than just events that may not be changing any bytes)
//
// Parent directories are watched rather than files themselves,
// so that files replaced via rename (as many editors save) stay watched.
type watcher struct {
	fw          *fsnotify.Watcher
	hashes      *state.FileHashStore
	changeHooks []ChangeHook
	logger      *log.Logger
	debounce    time.Duration

	mu          sync.Mutex
	tracked     map[string]struct{}
	watchedDirs map[string]struct{}
	timers      map[string]*time.Timer

	// processing of a single file is serialized
	processMu sync.Mutex

	watching   bool
	cancelFunc context.CancelFunc
}

func NewWatcher(hashes *state.FileHashStore) (Watcher, error) {
	return newWatcher(hashes, DefaultDebounce)
}

func newWatcher(hashes *state.FileHashStore, debounce time.Duration) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &watcher{
		fw:          fw,
		hashes:      hashes,
		logger:      defaultLogger,
		debounce:    debounce,
		tracked:     make(map[string]struct{}),
		watchedDirs: make(map[string]struct{}),
		timers:      make(map[string]*time.Timer),
	}, nil
}

var defaultLogger = log.New(io.Discard, "", 0)

func (w *watcher) SetLogger(logger *log.Logger) {
	w.logger = logger
}

func (w *watcher) AddPaths(paths []string) error {
	for _, p := range paths {
		err := w.AddPath(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *watcher) AddPath(path string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.logger.Printf("adding %s for watching", path)

	tf, err := trackedFileFromPath(path)
	if err != nil {
		return err
	}
	_, err = w.hashes.SetHash(path, tf.Sha256Sum())
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.tracked[path] = struct{}{}

	dir := filepath.Dir(path)
	if _, ok := w.watchedDirs[dir]; ok {
		return nil
	}
	err = w.fw.Add(dir)
	if err != nil {
		return err
	}
	w.watchedDirs[dir] = struct{}{}

	return nil
}

func (w *watcher) AddChangeHook(h ChangeHook) {
	w.changeHooks = append(w.changeHooks, h)
}

func (w *watcher) isTracked(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.tracked[path]
	return ok
}

func (w *watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if !w.isTracked(path) {
				continue
			}

			w.logger.Printf("detected %s of %s", event.Op, path)
			w.schedule(ctx, path)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Println("watch error:", err)
		}
	}
}

// schedule (re)starts the debounce timer of path
func (w *watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.processFile(ctx, path)
	})
}

func (w *watcher) processFile(ctx context.Context, path string) {
	w.processMu.Lock()
	defer w.processMu.Unlock()

	tf, err := trackedFileFromPath(path)
	if err != nil {
		w.logger.Println("failed to track file, ignoring", err)
		return
	}

	changed, err := w.hashes.SetHash(path, tf.Sha256Sum())
	if err != nil {
		w.logger.Printf("failed to record hash of %s: %s", path, err)
		return
	}
	if !changed {
		w.logger.Printf("content of %s unchanged", path)
		return
	}

	for _, h := range w.changeHooks {
		err := h(ctx, tf)
		if err != nil {
			w.logger.Println("change hook error:", err)
		}
	}

	// hooks may have rewritten the file
	sum, err := fileSha256Sum(path)
	if err != nil {
		w.logger.Printf("failed to refresh hash of %s: %s", path, err)
		return
	}
	_, err = w.hashes.SetHash(path, sum)
	if err != nil {
		w.logger.Printf("failed to record hash of %s: %s", path, err)
	}
}

// Start starts to watch for changes that were added
// via AddPath(s) until Stop() is called or ctx is cancelled
func (w *watcher) Start(ctx context.Context) error {
	if w.watching {
		w.logger.Println("watching already in progress")
		return nil
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	w.cancelFunc = cancelFunc
	w.watching = true

	w.logger.Printf("watching for changes ...")
	go w.run(ctx)

	return nil
}

func (w *watcher) Stop() error {
	if !w.watching {
		return nil
	}

	w.cancelFunc()

	w.mu.Lock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	err := w.fw.Close()
	if err == nil {
		w.watching = false
	}

	return err
}
