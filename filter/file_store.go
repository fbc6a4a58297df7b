package filter

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/logsink/logsink/internal"
)

// FileStore is a Store backed by a property file of `key value` lines.
// Lines starting with '#' are skipped. The file is reloaded whenever it
// changes on disk.
type FileStore struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}

	mu    sync.RWMutex
	props map[string]string
}

// OpenFileStore loads the property file at path and starts watching it for
// changes. The watch covers the containing directory so atomic
// rename-into-place saves are picked up too.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		done: make(chan struct{}),
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating filter watcher failed")
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		internal.LogError(watcher.Close())
		return nil, errors.Wrapf(err, "watching %s failed", filepath.Dir(path))
	}
	s.watcher = watcher

	go s.watch()
	return s, nil
}

// Get implements Store
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.props[key]
	return v, ok
}

// Close stops the watcher.
func (s *FileStore) Close() error {
	close(s.done)
	return s.watcher.Close()
}

func (s *FileStore) watch() {
	for {
		select {
		case <-s.done:
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.path {
				continue
			}
			// editors often save via rename, so catch Create as well
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.load(); err != nil {
				// keep the previous properties on a bad reload
				internal.Logf("filter reload failed: %+v", err)
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			internal.Logf("filter watcher error: %+v", err)
		}
	}
}

func (s *FileStore) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return errors.Wrapf(err, "opening %s failed", s.path)
	}
	defer f.Close()

	props := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		props[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s failed", s.path)
	}

	s.mu.Lock()
	s.props = props
	s.mu.Unlock()
	return nil
}
