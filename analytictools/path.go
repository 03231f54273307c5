// analytictools/path.go
package analytictools

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Path is a filesystem location that may or may not exist.
// Its accessors are purely lexical.
type Path string

// Name returns the final path component, or "" for a root or "." path.
func (p Path) Name() string {
	cleaned := filepath.Clean(string(p))
	if cleaned == "." || cleaned == filepath.VolumeName(cleaned)+string(filepath.Separator) {
		return ""
	}
	return filepath.Base(cleaned)
}

// Parent returns the lexical parent. A bare name has parent ".".
func (p Path) Parent() Path {
	return Path(filepath.Dir(filepath.Clean(string(p))))
}

// Suffix returns the final dotted extension of Name, dot included.
// Dotfiles and names ending in a dot have no suffix.
func (p Path) Suffix() string {
	name := p.Name()
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// Stem returns Name without Suffix.
func (p Path) Stem() string {
	return strings.TrimSuffix(p.Name(), p.Suffix())
}

// Join appends elem to p.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

func (p Path) String() string { return string(p) }

// asPath converts a path-like argument. Only string, Path and non-nil *Path are accepted.
func asPath(v any) (Path, error) {
	switch p := v.(type) {
	case string:
		return Path(p), nil
	case Path:
		return p, nil
	case *Path:
		if p != nil {
			return *p, nil
		}
	}
	return "", argError(ErrInvalidArgumentType, MsgInvalidPathType)
}

// existingDir validates a path-like argument that must name an existing directory.
func existingDir(v any) (Path, error) {
	p, err := asPath(v)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return "", argError(ErrPathNotFound, MsgPathMustExist)
		}
		return "", errors.Wrapf(err, "cannot stat %s", p)
	}
	if !info.IsDir() {
		return "", argError(ErrNotADirectory, MsgPathMustBeDir)
	}
	return p, nil
}
