// analytictools/tree.go
package analytictools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultMaxFiles is the number of children shown per directory when no limit is given.
const DefaultMaxFiles = 3

const treeIndent = "    "

// ParseMaxFiles validates an untyped per-level limit, e.g. one decoded from a config file.
func ParseMaxFiles(v any) (int, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		n = int64(x)
	default:
		return 0, argError(ErrInvalidArgumentType, "maxfiles must be an integer")
	}
	if err := checkMaxFiles(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func checkMaxFiles(n int64) error {
	if n < 1 {
		return argError(ErrInvalidArgumentValue, "maxfiles must be greater or equal to 1")
	}
	return nil
}

// DisplayDirectoryTree prints the tree below dir to standard output.
func DisplayDirectoryTree(dir any, maxFiles int) error {
	return FprintDirectoryTree(os.Stdout, dir, maxFiles)
}

// FprintDirectoryTree writes an indented tree of dir to w. At every level,
// including the root's children, at most maxFiles entries are rendered and
// a "..." line marks the rest.
func FprintDirectoryTree(w io.Writer, dir any, maxFiles int) error {
	root, err := existingDir(dir)
	if err != nil {
		return err
	}
	if err := checkMaxFiles(int64(maxFiles)); err != nil {
		return err
	}
	name := root.Name()
	if name == "" {
		if abs, err := filepath.Abs(string(root)); err == nil {
			name = Path(abs).Name()
		}
	}
	return printTreeRecursive(w, string(root), name, "", maxFiles)
}

// printTreeRecursive renders one directory and descends into its first maxFiles entries.
func printTreeRecursive(w io.Writer, dirPath, name, indent string, maxFiles int) error {
	if _, err := fmt.Fprintf(w, "%s%s/\n", indent, name); err != nil {
		return err
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", dirPath)
	}

	childIndent := indent + treeIndent
	shown := min(maxFiles, len(entries))
	for _, entry := range entries[:shown] {
		switch {
		case entry.IsDir():
			if err := printTreeRecursive(w, filepath.Join(dirPath, entry.Name()), entry.Name(), childIndent, maxFiles); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if _, err := fmt.Fprintf(w, "%s- %s\n", childIndent, entry.Name()); err != nil {
				return err
			}
		}
	}
	if len(entries) > maxFiles {
		if _, err := fmt.Fprintf(w, "%s...\n", childIndent); err != nil {
			return err
		}
	}
	return nil
}
