package main

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pathInfo(rel string) PathInfo {
	return PathInfo{AbsPath: "/data/" + rel, RelPath: rel, BaseName: path.Base(rel)}
}

func TestDefaultExcluder(t *testing.T) {
	excluder := NewDefaultExcluder([]string{"*_backup.csv", "drafts", "by_src/src_test/**", "archive/*/old", "by_src/*/N2O.csv"})

	testCases := []struct {
		rel      string
		excluded bool
		reason   string
		pattern  string
	}{
		{"by_src/src_agriculture/CO2.csv", false, "", ""},
		{"by_src/src_agriculture/CO2_backup.csv", true, "basename match", "*_backup.csv"},
		{"drafts/CO2.csv", true, "ancestor drafts basename match", "drafts"},
		{"by_src/drafts/deep/CH4.csv", true, "ancestor by_src/drafts basename match", "drafts"},
		{"by_src/src_test/CO2.csv", true, "ancestor by_src/src_test path match", "by_src/src_test/**"},
		{"by_src/src_x/N2O.csv", true, "path match", "by_src/*/N2O.csv"},
		{"by_src/src_test/nested/H2.csv", true, "ancestor by_src/src_test/nested path match", "by_src/src_test/**"},
		{"archive/2020/old/SF6.csv", true, "ancestor archive/2020/old path match", "archive/*/old"},
		{"archive/2020/new/SF6.csv", false, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.rel, func(t *testing.T) {
			excluded, reason, pattern := excluder.IsExcluded(pathInfo(tc.rel))
			assert.Equal(t, tc.excluded, excluded)
			assert.Equal(t, tc.reason, reason)
			assert.Equal(t, tc.pattern, pattern)
		})
	}
}

func TestDefaultExcluder_RemembersExcludedDirs(t *testing.T) {
	excluder := NewDefaultExcluder([]string{"drafts"})

	excluded, _, _ := excluder.IsExcluded(pathInfo("drafts/CO2.csv"))
	assert.True(t, excluded)

	excluded, reason, pattern := excluder.IsExcluded(pathInfo("drafts/CH4.csv"))
	assert.True(t, excluded)
	assert.Equal(t, "ancestor drafts excluded", reason)
	assert.Equal(t, "drafts", pattern)
}

func TestDefaultExcluder_InvalidPatternIgnored(t *testing.T) {
	_, logBuf := setupTestLogger(t)
	excluder := NewDefaultExcluder([]string{"[unclosed", "*.bak"})

	assert.Equal(t, []string{"*.bak"}, excluder.Patterns())
	assert.Contains(t, logBuf.String(), "Invalid exclude pattern syntax, ignoring.")

	excluded, _, _ := excluder.IsExcluded(pathInfo("[unclosed"))
	assert.False(t, excluded)
}
