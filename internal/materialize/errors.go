package materialize

import (
	"errors"
	"fmt"
)

// ErrKindConflict is wrapped by an IOError when the destination already holds
// a file where the source has a directory, or a directory where the source
// has a file.
// A symlink inside the destination is also a conflict: it is never written
// through.
var ErrKindConflict = errors.New("destination entry has a different kind")

// ErrDestinationInSource is wrapped by an IOError when the destination lies
// inside the source tree, where the copy would recurse into its own output.
var ErrDestinationInSource = errors.New("destination is inside the source")

// IOError reports the filesystem operation that aborted a materialization.
type IOError struct {
	Op   string // "stat", "mkdir", "readdir", "read", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
