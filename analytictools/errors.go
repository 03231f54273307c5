// analytictools/errors.go
package analytictools

import (
	"fmt"
)

// kind is an error category. A kind may have a parent, so that
// errors.Is(err, parent) also holds for errors of the child kind.
type kind struct {
	name   string
	parent *kind
}

func (k *kind) Error() string { return k.name }

// Is reports whether target is one of k's ancestors.
func (k *kind) Is(target error) bool {
	for p := k.parent; p != nil; p = p.parent {
		if target == p {
			return true
		}
	}
	return false
}

// --- Error Kinds ---
var (
	errNotADirectory        = &kind{name: "not a directory"}
	errInvalidArgumentValue = &kind{name: "invalid argument value"}

	// ErrInvalidArgumentType means an argument is neither a string nor a Path,
	// or is not the expected container shape.
	ErrInvalidArgumentType  error = &kind{name: "invalid argument type"}
	ErrNotADirectory        error = errNotADirectory
	// ErrPathNotFound also matches ErrNotADirectory.
	ErrPathNotFound         error = &kind{name: "path not found", parent: errNotADirectory}
	ErrInvalidArgumentValue error = errInvalidArgumentValue
	// ErrInvalidFileExtension also matches ErrInvalidArgumentValue.
	ErrInvalidFileExtension error = &kind{name: "invalid file extension", parent: errInvalidArgumentValue}
)

// ArgumentError is returned by every validation failure in this package.
// Error() returns a stable message; Unwrap returns the kind.
type ArgumentError struct {
	Kind error
	Msg  string
}

func (e *ArgumentError) Error() string { return e.Msg }

func (e *ArgumentError) Unwrap() error { return e.Kind }

func argError(k error, format string, args ...any) *ArgumentError {
	return &ArgumentError{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Stable messages, shared by tests and callers that match on text.
const (
	MsgInvalidPathType = "the provided path must be a string or Path"
	MsgPathMustExist   = "the provided path must exist"
	MsgPathMustBeDir   = "the provided path must be a directory"
)
