// cmd/gasorganizer/manual_files.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// processManualFiles handles the gas files explicitly specified via the -f flag.
// Relative paths are resolved against the dataset directory. Exclude patterns
// and .gitignore rules do not apply to them.
func processManualFiles(
	copier *gasFileCopier,
	manualFilePaths []string,
	processedAbsPaths map[string]bool, // Keep track of processed files
) {
	if len(manualFilePaths) == 0 {
		return // Nothing to do
	}

	slog.Debug("Processing manually specified files (-f overrides excludes).", "count", len(manualFilePaths))
	for _, manualPathRaw := range manualFilePaths {
		absManualPath := manualPathRaw
		if !filepath.IsAbs(manualPathRaw) {
			absManualPath = filepath.Join(copier.datasetDir, manualPathRaw)
		}
		absManualPath = filepath.Clean(absManualPath)
		relPath := copier.relPath(absManualPath)

		if processedAbsPaths[absManualPath] {
			slog.Debug("Skipping duplicate manual file.", "path", relPath)
			continue
		}
		processedAbsPaths[absManualPath] = true

		slog.Debug("Attempting to process manual file.", "raw", manualPathRaw,
			"absolute", absManualPath, "relativeToDataset", relPath)

		fileInfo, errStat := os.Stat(absManualPath)
		if errStat != nil {
			slog.Warn(tern(os.IsNotExist(errStat), "Manual file not found.", "Cannot stat manual file."),
				"path", relPath, "error", errStat)
			copier.errorFiles[relPath] = errStat
			continue
		}
		if fileInfo.IsDir() {
			slog.Warn("Manual path points to a directory, skipping.", "path", relPath)
			copier.errorFiles[relPath] = fmt.Errorf("path is a directory")
			continue
		}

		copier.copyGasFile(absManualPath, true)
	}
}
