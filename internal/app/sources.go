package app

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/config"
)

// SourceState is a configured source and whether it is currently active.
type SourceState struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// SourceSet is the read/write set of active card sources exposed to the
// debug panel. It is safe for concurrent use since reloads run off the UI loop.
type SourceSet struct {
	mu      sync.RWMutex
	baseDir string
	sources []config.Source
	enabled map[string]bool
}

// NewSourceSet copies the configured sources. Relative paths resolve against baseDir.
func NewSourceSet(sources []config.Source, baseDir string) *SourceSet {
	s := &SourceSet{
		baseDir: baseDir,
		sources: append([]config.Source(nil), sources...),
		enabled: make(map[string]bool, len(sources)),
	}
	for _, src := range sources {
		s.enabled[src.Name] = src.IsEnabled()
	}
	return s
}

// List returns every source in configuration order.
func (s *SourceSet) List() []SourceState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SourceState, 0, len(s.sources))
	for _, src := range s.sources {
		out = append(out, SourceState{Name: src.Name, Path: src.Path, Enabled: s.enabled[src.Name]})
	}
	return out
}

// SetEnabled turns a source on or off.
func (s *SourceSet) SetEnabled(name string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enabled[name]; !ok {
		return fmt.Errorf("unknown source %q", name)
	}
	s.enabled[name] = enabled
	return nil
}

// Toggle flips a source and returns its new state.
func (s *SourceSet) Toggle(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.enabled[name]
	if !ok {
		return false, fmt.Errorf("unknown source %q", name)
	}
	s.enabled[name] = !cur
	return !cur, nil
}

// Resolve expands the enabled sources into loadable files. A pattern that
// matches nothing is reported as an unavailable source.
func (s *SourceSet) Resolve() ([]card.Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []card.Source
	for _, src := range s.sources {
		if !s.enabled[src.Name] {
			continue
		}
		files, err := src.Resolve(s.baseDir)
		if err != nil {
			return nil, &card.SourceUnavailableError{Source: src.Name, Err: err}
		}
		for _, f := range files {
			out = append(out, card.FileSource{Path: f})
		}
	}
	return out, nil
}

// WatchDirs returns the directories holding configured source files,
// disabled sources included so that enabling one later is still watched. A
// pattern contributes its static prefix plus the directory of every match.
func (s *SourceSet) WatchDirs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dirs []string
	for _, src := range s.sources {
		path := src.Path
		if !filepath.IsAbs(path) && s.baseDir != "" {
			path = filepath.Join(s.baseDir, path)
		}

		if !src.IsPattern() {
			dirs = append(dirs, filepath.Dir(path))
			continue
		}

		base, _ := doublestar.SplitPattern(filepath.ToSlash(path))
		dirs = append(dirs, filepath.FromSlash(base))
		if files, err := src.Resolve(s.baseDir); err == nil {
			for _, f := range files {
				dirs = append(dirs, filepath.Dir(f))
			}
		}
	}

	slices.Sort(dirs)
	return slices.Compact(dirs)
}
