// Package views renders the site's pug templates.
package views

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
	"github.com/fsnotify/fsnotify"
)

// ErrTemplateNotFound is returned for a template name outside the views directory
var ErrTemplateNotFound = errors.New("template not found")

// Renderer renders a named view with data
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Engine compiles pug views from a directory and caches the result
type Engine struct {
	dir    string
	logger *log.Logger

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// NewEngine creates an engine over the views in dir. A relative dir is made
// absolute since the pug loader refuses paths that start with "..".
func NewEngine(dir string, logger *log.Logger) *Engine {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Engine{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]*template.Template),
	}
}

// Render executes the view name (without the .pug extension)
func (e *Engine) Render(w io.Writer, name string, data any) error {
	tmpl, err := e.template(name)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func (e *Engine) template(name string) (*template.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	file, err := e.file(name)
	if err != nil {
		return nil, err
	}

	// Extends and includes resolve against the views directory, not the
	// process working directory.
	e.logger.Debug("Compiling view", "name", name, "dir", e.dir)
	tmpl, err = pug.CompileFile(file, pug.Options{Dir: compiler.FsDir(e.dir)})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}

	e.mu.Lock()
	e.cache[name] = tmpl
	e.mu.Unlock()
	return tmpl, nil
}

// file maps a view name to its file relative to the views directory
func (e *Engine) file(name string) (string, error) {
	if name == "" || strings.Contains(name, "..") || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return name + ".pug", nil
}

// Cached returns the number of compiled views
func (e *Engine) Cached() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// Invalidate drops every compiled view. Views share layouts and mixins, so a
// change to any file invalidates them all.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	e.cache = make(map[string]*template.Template)
	e.mu.Unlock()
}

// Watch invalidates the cache whenever a file in the views directory changes,
// until ctx is done. ready, if not nil, is closed once the watch is in place.
func (e *Engine) Watch(ctx context.Context, ready chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(e.dir); err != nil {
		return fmt.Errorf("failed to watch views directory: %w", err)
	}
	e.logger.Info("Watching views", "dir", e.dir)
	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				e.logger.Debug("View changed", "file", filepath.Base(event.Name), "op", event.Op.String())
				e.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("View watcher error", "err", err)
		}
	}
}
