// cmd/gasorganizer/restructure.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gocodewalker "github.com/boyter/gocodewalker"

	"github.com/gagin/gasorganizer/analytictools"
)

// restructureDataset copies every original gas file found below datasetDir into
// destRoot/gas_<formula>/<source>_<formula>.csv. Files named in manualFilePaths
// are copied even when an exclude pattern or .gitignore would skip them.
// Per-file failures are collected in errorFiles; returnedErr is set only when
// the walk itself cannot run or fails.
func restructureDataset(
	datasetDir string,
	destRoot string,
	manualFilePaths []string,
	excludePatterns []string,
	useGitignore bool,
) (
	copiedFiles []FileInfo,
	skippedFiles []string,
	errorFiles map[string]error,
	totalSize int64,
	returnedErr error,
) {
	copiedFiles = make([]FileInfo, 0)
	skippedFiles = make([]string, 0)
	errorFiles = make(map[string]error)
	processedAbsPaths := make(map[string]bool)

	dirInfo, statErr := os.Stat(datasetDir)
	if statErr != nil {
		slog.Error(tern(os.IsNotExist(statErr), "Dataset directory does not exist.", "Cannot stat dataset directory."),
			"path", datasetDir, "error", statErr)
		returnedErr = fmt.Errorf("dataset directory '%s' error: %w", datasetDir, statErr)
		return
	}
	if !dirInfo.IsDir() {
		returnedErr = fmt.Errorf("dataset path '%s' is not a directory", datasetDir)
		slog.Error(returnedErr.Error(), "path", datasetDir)
		return
	}

	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		returnedErr = fmt.Errorf("cannot create destination '%s': %w", destRoot, err)
		return
	}

	copier := &gasFileCopier{
		datasetDir:   datasetDir,
		destRoot:     destRoot,
		copiedFiles:  &copiedFiles,
		skippedFiles: &skippedFiles,
		errorFiles:   errorFiles,
		totalSize:    &totalSize,
	}

	// --- Process Manually Specified Files (-f) ---
	processManualFiles(copier, manualFilePaths, processedAbsPaths)

	// --- Walk the dataset ---
	excluder := NewDefaultExcluder(excludePatterns)
	slog.Info("Starting dataset scan.", "dataset", datasetDir, "useGitignore", useGitignore, "excludes", excluder.Patterns())

	fileListQueue := make(chan *gocodewalker.File, 100)
	fileWalker := gocodewalker.NewFileWalker(datasetDir, fileListQueue)
	fileWalker.IgnoreGitIgnore = !useGitignore
	fileWalker.IgnoreIgnoreFile = !useGitignore
	fileWalker.AllowListExtensions = []string{"csv"}

	var walkErr error
	walkErrors := &walkErrorRecorder{}
	processingDone := make(chan struct{})

	go func() {
		defer close(processingDone)
		fileWalker.SetErrorHandler(func(e error) bool {
			slog.Warn("Error reported by file walker.", "dataset", datasetDir, "error", e)
			walkErrors.record(e)
			return true
		})
		walkErr = fileWalker.Start()
	}()

	for f := range fileListQueue {
		absPath := f.Location
		if processedAbsPaths[absPath] {
			slog.Debug("Walk: Skipping item already processed manually.", "path", absPath)
			continue
		}
		processedAbsPaths[absPath] = true

		// Never re-import files written by an earlier run into a destination inside the dataset.
		if absPath == destRoot || strings.HasPrefix(absPath, destRoot+string(filepath.Separator)) {
			continue
		}

		relPath := copier.relPath(absPath)
		info := PathInfo{AbsPath: absPath, RelPath: relPath, BaseName: filepath.Base(absPath)}
		if excluded, reason, pattern := excluder.IsExcluded(info); excluded {
			slog.Debug("Excluding file.", "path", relPath, "reason", reason, "pattern", pattern)
			continue
		}

		copier.copyGasFile(absPath, false)
	}
	<-processingDone

	finalWalkError := walkErr
	if finalWalkError == nil {
		finalWalkError = walkErrors.first()
	}
	if finalWalkError != nil {
		returnedErr = fmt.Errorf("file walk operation failed for '%s': %w", datasetDir, finalWalkError)
		slog.Error("Dataset scan finished with errors.", "first_error", returnedErr)
	} else {
		slog.Info("Dataset scan completed.", "copied", len(copiedFiles), "skipped", len(skippedFiles), "errors", len(errorFiles))
	}
	return
}

// walkErrorRecorder keeps the first error reported by the walker.
// The error handler runs on the walker's worker goroutines.
type walkErrorRecorder struct {
	mu    sync.Mutex
	err   error
	count int
}

func (r *walkErrorRecorder) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
	r.count++
}

func (r *walkErrorRecorder) first() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// gasFileCopier accumulates the results of restructureDataset.
type gasFileCopier struct {
	datasetDir   string
	destRoot     string
	copiedFiles  *[]FileInfo
	skippedFiles *[]string
	errorFiles   map[string]error
	totalSize    *int64
}

func (c *gasFileCopier) relPath(absPath string) string {
	rel, err := filepath.Rel(c.datasetDir, absPath)
	if err != nil {
		return filepath.ToSlash(absPath)
	}
	return filepath.ToSlash(rel)
}

// copyGasFile copies one candidate file if it is an original gas file.
func (c *gasFileCopier) copyGasFile(absPath string, isManual bool) {
	relPath := c.relPath(absPath)

	isGas, err := analytictools.IsGasCSV(absPath)
	if err != nil {
		if errors.Is(err, analytictools.ErrInvalidFileExtension) {
			slog.Debug("Skipping file without .csv suffix.", "path", relPath)
			*c.skippedFiles = append(*c.skippedFiles, relPath)
			return
		}
		c.errorFiles[relPath] = err
		return
	}
	if !isGas {
		slog.Debug("Skipping non-gas csv file.", "path", relPath)
		*c.skippedFiles = append(*c.skippedFiles, relPath)
		return
	}

	destDir, err := analytictools.GetDestDirFromCSVFile(c.destRoot, absPath)
	if err != nil {
		slog.Warn("Cannot resolve destination directory.", "path", relPath, "error", err)
		c.errorFiles[relPath] = err
		return
	}
	newName, err := analytictools.MergeParentAndBasename(absPath)
	if err != nil {
		slog.Warn("Cannot derive destination file name.", "path", relPath, "error", err)
		c.errorFiles[relPath] = err
		return
	}

	destPath := filepath.Join(destDir, newName)
	size, err := copyFile(absPath, destPath)
	if err != nil {
		slog.Warn("Error copying gas file.", "path", relPath, "dest", destPath, "error", err)
		c.errorFiles[relPath] = err
		return
	}

	destRel, errRel := filepath.Rel(c.destRoot, destPath)
	if errRel != nil {
		destRel = destPath
	}
	slog.Debug("Copied gas file.", "path", relPath, "dest", destPath, "size", size)
	*c.copiedFiles = append(*c.copiedFiles, FileInfo{
		Path:     filepath.ToSlash(destRel),
		Source:   relPath,
		Size:     size,
		IsManual: isManual,
	})
	*c.totalSize += size
}
