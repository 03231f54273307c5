// analytictools/destination.go
package analytictools

import (
	"os"

	"github.com/pkg/errors"
)

// GasDirPrefix prefixes every per-gas destination directory.
const GasDirPrefix = "gas_"

// originalGasSuffix exempts a file from the existence check below. It is
// ".cvs", not ".csv", and is kept that way so a non-existent "foo.csv" is
// still rejected.
const originalGasSuffix = ".cvs"

// GetDestDirFromCSVFile returns destParent/gas_<stem of filePath>, creating
// the directory if needed. destParent must already exist; creation is not
// recursive. Repeated calls return the same path.
func GetDestDirFromCSVFile(destParent, filePath any) (string, error) {
	parent, err := asPath(destParent)
	if err != nil {
		return "", err
	}
	file, err := asPath(filePath)
	if err != nil {
		return "", err
	}

	if info, statErr := os.Stat(string(parent)); statErr != nil || !info.IsDir() {
		return "", argError(ErrNotADirectory, "expected dest_parent to be an existing directory")
	}

	if file.Suffix() == "" {
		return "", argError(ErrInvalidArgumentValue, "expected path to a file")
	}
	if file.Suffix() != originalGasSuffix {
		if _, statErr := os.Stat(string(file)); statErr != nil {
			return "", argError(ErrInvalidArgumentValue, "expected path to an original gas file")
		}
	}

	dest := parent.Join(GasDirPrefix + file.Stem())
	if info, statErr := os.Stat(string(dest)); statErr == nil {
		if !info.IsDir() {
			return "", argError(ErrNotADirectory, "destination %s exists and is not a directory", dest)
		}
		return string(dest), nil
	}

	if err := os.Mkdir(string(dest), 0o755); err != nil && !os.IsExist(err) {
		return "", errors.Wrapf(err, "creating %s", dest)
	}
	return string(dest), nil
}
