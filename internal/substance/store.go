// Holds the live catalog and reloads it when its file changes.

package substance

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/invopop/jsonschema"
)

// Store holds the current catalog. It is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	cat *Catalog
}

// NewStore returns a store serving c.
func NewStore(c *Catalog) *Store {
	return &Store{cat: c}
}

// Get returns the current catalog.
func (s *Store) Get() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Set replaces the current catalog.
func (s *Store) Set(c *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat = c
}

// Reload loads path into the store. On error the previous catalog is kept.
func (s *Store) Reload(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	s.Set(c)
	return nil
}

// Watch reloads path into the store whenever the file is written or replaced,
// until ctx is done.
//
// The parent directory is watched rather than the file itself so that editors
// that save by renaming a temporary file are handled.
func (s *Store) Watch(ctx context.Context, path string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return err
	}
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := s.Reload(path); err != nil {
					slog.WarnContext(ctx, "Keeping previous substance catalog", "path", path, "err", err)
					continue
				}
				slog.InfoContext(ctx, "Reloaded substance catalog", "path", path, "count", len(s.Get().All()))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.WarnContext(ctx, "Error watching substance catalog", "err", err)
			}
		}
	}()
	return nil
}

// Schema returns the JSON schema of the catalog file format.
func Schema() json.RawMessage {
	r := jsonschema.Reflector{DoNotReference: true}
	b, err := json.Marshal(r.Reflect(&File{}))
	if err != nil {
		panic(err)
	}
	return b
}
