package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultMarkup ships a sample storefront so the binary runs without a catalog file.
//
//go:embed default_catalog.html
var defaultMarkup []byte

// Library holds the current catalog snapshot. Snapshots are never mutated;
// a reload swaps the whole value.
type Library struct {
	current atomic.Pointer[Catalog]
	logger  *zap.Logger
}

// NewLibrary returns an empty library; call Load before serving.
func NewLibrary(logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Library{logger: logger}
	l.current.Store(&Catalog{})
	return l
}

// Load parses the markup at path, or the embedded sample when path is empty.
func (l *Library) Load(path string) error {
	data := defaultMarkup
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = raw
	}
	cat, err := ParseMarkup(bytes.NewReader(data))
	if err != nil {
		return err
	}
	l.current.Store(&cat)
	l.logger.Info("catalog loaded",
		zap.String("path", path),
		zap.Int("products", len(cat.Products)),
		zap.Int("recipes", len(cat.Recipes)))
	return nil
}

// Catalog returns the current snapshot. Callers must treat it as read-only.
func (l *Library) Catalog() Catalog {
	return *l.current.Load()
}

// Product finds a product card by its exact name.
func (l *Library) Product(name string) (Entry, error) {
	return find(l.Catalog().Products, name)
}

// Recipe finds a recipe card by its exact name.
func (l *Library) Recipe(name string) (Entry, error) {
	return find(l.Catalog().Recipes, name)
}

// Lookup searches products first, then recipes.
func (l *Library) Lookup(name string) (Entry, error) {
	if e, err := l.Product(name); err == nil {
		return e, nil
	}
	return l.Recipe(name)
}

func find(entries []Entry, name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Watch reloads the catalog whenever the file at path is written or replaced.
// It blocks until ctx is done. A failed reload keeps the previous snapshot.
func (l *Library) Watch(ctx context.Context, path string) error {
	if path == "" {
		<-ctx.Done()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files, so the directory is watched instead of the file.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := l.Load(target); err != nil {
				l.logger.Warn("catalog reload failed, keeping previous snapshot", zap.String("path", target), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}
