package analytictools

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintDirectoryTree_CapsChildren(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"a.csv": "1",
		"b.csv": "2",
		"c.csv": "3",
		"d.csv": "4",
		"e.csv": "5",
	})

	var out bytes.Buffer
	require.NoError(t, FprintDirectoryTree(&out, root, 3))

	expected := filepath.Base(root) + "/\n" +
		"    - a.csv\n" +
		"    - b.csv\n" +
		"    - c.csv\n" +
		"    ...\n"
	assert.Equal(t, expected, out.String())
}

func TestFprintDirectoryTree_Nested(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"by_src/src_agriculture/CH4.csv": "x",
		"by_src/src_agriculture/CO2.csv": "x",
		"by_src/src_agriculture/H2.csv":  "x",
		"by_src/src_agriculture/N2O.csv": "x",
		"by_src/src_airtraffic/CO2.csv":  "x",
		"README.md":                      "x",
	})

	var out bytes.Buffer
	require.NoError(t, FprintDirectoryTree(&out, root, 3))

	// os.ReadDir returns entries sorted by name.
	expected := filepath.Base(root) + "/\n" +
		"    - README.md\n" +
		"    by_src/\n" +
		"        src_agriculture/\n" +
		"            - CH4.csv\n" +
		"            - CO2.csv\n" +
		"            - H2.csv\n" +
		"            ...\n" +
		"        src_airtraffic/\n" +
		"            - CO2.csv\n"
	assert.Equal(t, expected, out.String())
}

func TestFprintDirectoryTree_NoEllipsisAtLimit(t *testing.T) {
	root := setupTestDir(t, map[string]string{"a": "1", "b": "2"})

	var out bytes.Buffer
	require.NoError(t, FprintDirectoryTree(&out, Path(root), 2))
	assert.NotContains(t, out.String(), "...")
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
}

func TestFprintDirectoryTree_MaxFilesOne(t *testing.T) {
	root := setupTestDir(t, map[string]string{
		"x/y/z/leaf.txt": "1",
		"x/y/other.txt":  "2",
	})

	var out bytes.Buffer
	require.NoError(t, FprintDirectoryTree(&out, root, 1))

	expected := filepath.Base(root) + "/\n" +
		"    x/\n" +
		"        y/\n" +
		"            - other.txt\n" +
		"            ...\n"
	assert.Equal(t, expected, out.String())
}

func TestFprintDirectoryTree_Errors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(setupTestDir(t, map[string]string{"f.txt": "x"}), "f.txt")

	testCases := []struct {
		name     string
		dir      any
		maxFiles int
		kind     error
		msg      string
	}{
		{"Zero maxfiles", root, 0, ErrInvalidArgumentValue, "maxfiles must be greater or equal to 1"},
		{"Negative maxfiles", root, -4, ErrInvalidArgumentValue, "maxfiles must be greater or equal to 1"},
		{"Missing dir", filepath.Join(root, "missing"), 3, ErrPathNotFound, MsgPathMustExist},
		{"File", file, 3, ErrNotADirectory, MsgPathMustBeDir},
		{"Bad type", false, 3, ErrInvalidArgumentType, MsgInvalidPathType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := FprintDirectoryTree(&out, tc.dir, tc.maxFiles)
			assertArgumentError(t, err, tc.kind, tc.msg)
			assert.Empty(t, out.String())
		})
	}
}

func TestParseMaxFiles(t *testing.T) {
	valid := []struct {
		in       any
		expected int
	}{
		{3, 3},
		{int64(10), 10},
		{uint8(1), 1},
		{int32(7), 7},
	}
	for _, tc := range valid {
		got, err := ParseMaxFiles(tc.in)
		assert.NoError(t, err, "input %#v", tc.in)
		assert.Equal(t, tc.expected, got)
	}

	for _, in := range []any{"3", 3.0, true, nil, []int{3}} {
		_, err := ParseMaxFiles(in)
		assertArgumentError(t, err, ErrInvalidArgumentType, "maxfiles must be an integer")
	}

	for _, in := range []any{0, -1, int64(-100)} {
		_, err := ParseMaxFiles(in)
		assertArgumentError(t, err, ErrInvalidArgumentValue, "maxfiles must be greater or equal to 1")
	}
}
