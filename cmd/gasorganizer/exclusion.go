// cmd/gasorganizer/exclusion.go
package main

import (
	"fmt"
	"log/slog"
	"path"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// PathInfo holds information about a dataset path being considered for exclusion.
type PathInfo struct {
	AbsPath  string // Absolute path on the filesystem
	RelPath  string // Path relative to the dataset root, using slashes
	BaseName string // Final component of the path
}

// Excluder defines the interface for checking if a path should be skipped during restructuring.
type Excluder interface {
	IsExcluded(info PathInfo) (excluded bool, reason string, pattern string)
}

// DefaultExcluder matches doublestar patterns against basenames and
// dataset-relative paths, for the item and each of its ancestors.
type DefaultExcluder struct {
	patterns        []string
	excludedDirRels map[string]string // dataset-relative dir -> causing pattern
	mu              sync.RWMutex
}

// NewDefaultExcluder creates a DefaultExcluder, dropping patterns with invalid syntax.
func NewDefaultExcluder(patterns []string) *DefaultExcluder {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			slog.Warn("Invalid exclude pattern syntax, ignoring.", "pattern", p)
			continue
		}
		valid = append(valid, p)
	}
	return &DefaultExcluder{
		patterns:        valid,
		excludedDirRels: make(map[string]string),
	}
}

// Patterns returns the validated patterns in use.
func (e *DefaultExcluder) Patterns() []string {
	return e.patterns
}

// matchesPattern checks name against every pattern. Patterns were validated up front.
func (e *DefaultExcluder) matchesPattern(name string) (bool, string) {
	for _, p := range e.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true, p
		}
	}
	return false, ""
}

// IsExcluded implements the Excluder interface with ancestor checking.
func (e *DefaultExcluder) IsExcluded(info PathInfo) (excluded bool, reason string, pattern string) {
	// --- Check Ancestors, nearest first ---
	for dir := path.Dir(info.RelPath); dir != "." && dir != "/" && dir != ""; dir = path.Dir(dir) {
		e.mu.RLock()
		causingPattern, exists := e.excludedDirRels[dir]
		e.mu.RUnlock()
		if exists {
			return true, fmt.Sprintf("ancestor %s excluded", dir), causingPattern
		}

		if match, p := e.matchesPattern(path.Base(dir)); match {
			e.rememberDir(dir, p)
			return true, fmt.Sprintf("ancestor %s basename match", dir), p
		}
		if match, p := e.matchesPattern(dir); match {
			e.rememberDir(dir, p)
			return true, fmt.Sprintf("ancestor %s path match", dir), p
		}
	}

	// --- Check Current Item ---
	if match, p := e.matchesPattern(info.BaseName); match {
		return true, "basename match", p
	}
	if match, p := e.matchesPattern(info.RelPath); match {
		return true, "path match", p
	}

	return false, "", ""
}

func (e *DefaultExcluder) rememberDir(dir, pattern string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.excludedDirRels[dir]; !exists {
		slog.Debug("Adding dir to excluded map.", "relPath", dir, "pattern", pattern)
		e.excludedDirRels[dir] = pattern
	}
}
