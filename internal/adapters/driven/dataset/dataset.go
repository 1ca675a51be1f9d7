// Package dataset provides the bundled directory source. Records ship
// embedded in the binary so the app works offline out of the box. An
// optional override directory lets users drop in their own JSON files;
// changes are picked up live via a debounced filesystem watcher.
package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/debounce"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

//go:embed data/*.json
var bundledFS embed.FS

const (
	universitiesFile = "universities.json"
	scholarshipsFile = "scholarships.json"

	// reloadDelay coalesces bursts of filesystem events (editors
	// often write a file several times in quick succession).
	reloadDelay = 500 * time.Millisecond
)

// Ensure Source implements the interface.
var _ driven.DirectorySource = (*Source)(nil)

// Source serves directory records from the embedded dataset, with
// optional per-file overrides from a local directory.
type Source struct {
	mu           sync.RWMutex
	universities []domain.University
	scholarships []domain.Scholarship

	overrideDir string
	watcher     *fsnotify.Watcher
	reload      *debounce.Func
	done        chan struct{}
}

// NewSource creates a source backed by the embedded dataset only.
func NewSource() (*Source, error) {
	s := &Source{}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSourceWithOverride creates a source that prefers JSON files from
// overrideDir over the embedded dataset and reloads when they change.
// The directory is created if it does not exist.
func NewSourceWithOverride(overrideDir string) (*Source, error) {
	if err := os.MkdirAll(overrideDir, 0700); err != nil {
		return nil, fmt.Errorf("creating override directory: %w", err)
	}

	s := &Source{overrideDir: overrideDir}
	if err := s.load(); err != nil {
		return nil, err
	}

	reload, err := debounce.NewFunc(reloadDelay, func() {
		if err := s.load(); err != nil {
			logger.Warn("Dataset reload failed: %v", err)
			return
		}
		logger.Debug("Dataset reloaded from %s", overrideDir)
	})
	if err != nil {
		return nil, fmt.Errorf("creating reload debouncer: %w", err)
	}
	s.reload = reload

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(overrideDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", overrideDir, err)
	}
	s.watcher = watcher
	s.done = make(chan struct{})

	go s.watchLoop()

	return s, nil
}

// ListUniversities returns all universities from the source.
func (s *Source) ListUniversities(_ context.Context) ([]domain.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.University, len(s.universities))
	copy(out, s.universities)
	return out, nil
}

// ListScholarships returns all scholarships from the source.
func (s *Source) ListScholarships(_ context.Context) ([]domain.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Scholarship, len(s.scholarships))
	copy(out, s.scholarships)
	return out, nil
}

// Close stops the override watcher. Safe to call on a source without
// one.
func (s *Source) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	s.reload.Cancel()
	return s.watcher.Close()
}

// load parses both collections, preferring override files when
// present.
func (s *Source) load() error {
	universities, err := loadCollection[domain.University](s.overrideDir, universitiesFile)
	if err != nil {
		return err
	}
	scholarships, err := loadCollection[domain.Scholarship](s.overrideDir, scholarshipsFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.universities = universities
	s.scholarships = scholarships
	s.mu.Unlock()
	return nil
}

// loadCollection reads one JSON collection, from the override
// directory when the file exists there and the embedded dataset
// otherwise.
func loadCollection[T any](overrideDir, name string) ([]T, error) {
	var data []byte
	var err error

	if overrideDir != "" {
		overridePath := filepath.Join(overrideDir, name)
		data, err = os.ReadFile(overridePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading override %s: %w", name, err)
		}
	}
	if data == nil {
		data, err = bundledFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading bundled %s: %w", name, err)
		}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return records, nil
}

// watchLoop forwards relevant filesystem events to the debounced
// reload.
func (s *Source) watchLoop() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if s.relevantEvent(event) {
				s.reload.Call()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Dataset watcher error: %v", err)
		}
	}
}

// relevantEvent reports whether the event touches one of the dataset
// files in a way that warrants a reload.
func (s *Source) relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return name == universitiesFile || name == scholarshipsFile
}
