// analytictools/diagnostics.go
package analytictools

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Diagnostics holds file and subdirectory counts for a directory tree.
// Files always equals the sum of the per-extension counters.
type Diagnostics struct {
	Files          int
	Subdirectories int
	CSVFiles       int
	TXTFiles       int
	NPYFiles       int
	MDFiles        int
	OtherFiles     int
}

// Keys of the mapping form of Diagnostics.
const (
	KeyFiles          = "files"
	KeySubdirectories = "subdirectories"
	KeyCSVFiles       = ".csv files"
	KeyTXTFiles       = ".txt files"
	KeyNPYFiles       = ".npy files"
	KeyMDFiles        = ".md files"
	KeyOtherFiles     = "other files"
)

var diagnosticsKeys = []string{KeyFiles, KeySubdirectories, KeyCSVFiles, KeyTXTFiles, KeyNPYFiles, KeyMDFiles, KeyOtherFiles}

// AsMap returns d keyed by the KeyXxx constants.
func (d Diagnostics) AsMap() map[string]int {
	return map[string]int{
		KeyFiles:          d.Files,
		KeySubdirectories: d.Subdirectories,
		KeyCSVFiles:       d.CSVFiles,
		KeyTXTFiles:       d.TXTFiles,
		KeyNPYFiles:       d.NPYFiles,
		KeyMDFiles:        d.MDFiles,
		KeyOtherFiles:     d.OtherFiles,
	}
}

func (d *Diagnostics) addFile(name string) {
	d.Files++
	switch Path(name).Suffix() {
	case ".csv":
		d.CSVFiles++
	case ".txt":
		d.TXTFiles++
	case ".npy":
		d.NPYFiles++
	case ".md":
		d.MDFiles++
	default:
		d.OtherFiles++
	}
}

// GetDiagnostics counts every file and subdirectory below dir, at all depths.
// Symlinks, sockets and devices are not counted.
func GetDiagnostics(dir any) (Diagnostics, error) {
	var res Diagnostics

	root, err := existingDir(dir)
	if err != nil {
		return res, err
	}

	// WalkDir does not descend into a symlinked root, so resolve it first.
	walkRoot, err := filepath.EvalSymlinks(string(root))
	if err != nil {
		return res, errors.Wrapf(err, "resolving %s", root)
	}

	walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walking %s", path)
		}
		if path == walkRoot {
			return nil
		}
		switch {
		case d.IsDir():
			res.Subdirectories++
		case d.Type().IsRegular():
			res.addFile(d.Name())
		}
		return nil
	})
	if walkErr != nil {
		return Diagnostics{}, walkErr
	}
	return res, nil
}

// asDiagnostics accepts Diagnostics, a non-nil *Diagnostics, or a map with exactly the KeyXxx keys.
func asDiagnostics(v any) (Diagnostics, error) {
	switch c := v.(type) {
	case Diagnostics:
		return c, nil
	case *Diagnostics:
		if c != nil {
			return *c, nil
		}
	case map[string]int:
		if len(c) != len(diagnosticsKeys) {
			break
		}
		for _, k := range diagnosticsKeys {
			if _, ok := c[k]; !ok {
				return Diagnostics{}, argError(ErrInvalidArgumentType, "expected diagnostics but received a map without key %q", k)
			}
		}
		return Diagnostics{
			Files:          c[KeyFiles],
			Subdirectories: c[KeySubdirectories],
			CSVFiles:       c[KeyCSVFiles],
			TXTFiles:       c[KeyTXTFiles],
			NPYFiles:       c[KeyNPYFiles],
			MDFiles:        c[KeyMDFiles],
			OtherFiles:     c[KeyOtherFiles],
		}, nil
	}
	return Diagnostics{}, argError(ErrInvalidArgumentType, "expected diagnostics but received %T", v)
}

const diagnosticsRule = "----------------------------------------------"

// DisplayDiagnostics prints the report for dir to standard output.
func DisplayDiagnostics(dir any, contents any) error {
	return FprintDiagnostics(os.Stdout, dir, contents)
}

// FprintDiagnostics writes the report for dir to w. Nothing is written unless
// both arguments are valid.
func FprintDiagnostics(w io.Writer, dir any, contents any) error {
	root, err := existingDir(dir)
	if err != nil {
		return err
	}
	d, err := asDiagnostics(contents)
	if err != nil {
		return err
	}

	lines := []struct {
		label string
		n     int
	}{
		{"files", d.Files},
		{"subdirectories", d.Subdirectories},
		{".csv files", d.CSVFiles},
		{".txt files", d.TXTFiles},
		{".npy files", d.NPYFiles},
		{".md files", d.MDFiles},
		{"other files", d.OtherFiles},
	}

	if _, err := fmt.Fprintf(w, "Diagnostics for: %s \n%s\n", root, diagnosticsRule); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "Number of %s: %d\n", l.label, l.n); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, diagnosticsRule)
	return err
}
