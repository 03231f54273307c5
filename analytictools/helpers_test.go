package analytictools

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDir creates structure under a temp dir. Keys ending in "/" are directories.
func setupTestDir(t *testing.T, structure map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()
	paths := make([]string, 0, len(structure))
	for p := range structure {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, relPath := range paths {
		absPath := filepath.Join(tempDir, filepath.FromSlash(relPath))
		if strings.HasSuffix(relPath, "/") {
			require.NoError(t, os.MkdirAll(absPath, 0755), "Failed to create directory: %s", absPath)
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(absPath), 0755))
		err := os.WriteFile(absPath, []byte(structure[relPath]), 0644)
		require.NoError(t, err, "Failed to write file: %s", absPath)
	}
	return tempDir
}

// setupExampleDataset builds the sample pollution dataset: 10 files
// (8 .csv, 2 .npy) in 5 subdirectories.
func setupExampleDataset(t *testing.T) string {
	t.Helper()
	return setupTestDir(t, map[string]string{
		"pollution_data/by_src/src_agriculture/CO2.csv":  "year,value\n2000,1.0\n",
		"pollution_data/by_src/src_agriculture/H2.csv":   "year,value\n2000,0.1\n",
		"pollution_data/by_src/src_agriculture/N2O.csv":  "year,value\n2000,0.3\n",
		"pollution_data/by_src/src_airtraffic/CO2.csv":   "year,value\n2000,2.0\n",
		"pollution_data/by_src/src_airtraffic/N2O.csv":   "year,value\n2000,0.2\n",
		"pollution_data/by_src/src_airtraffic/CO2.npy":   "\x93NUMPY",
		"pollution_data/by_src/src_oil_and_gass/CH4.csv": "year,value\n2000,5.0\n",
		"pollution_data/by_src/src_oil_and_gass/CO2.csv": "year,value\n2000,4.0\n",
		"pollution_data/by_src/src_oil_and_gass/SF6.csv": "year,value\n2000,0.01\n",
		"pollution_data/by_src/src_oil_and_gass/CH4.npy": "\x93NUMPY",
	})
}

// assertArgumentError checks kind and exact message of a validation failure.
func assertArgumentError(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	if msg != "" {
		assert.Equal(t, msg, argErr.Error())
	}
}
