package organizer

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotADirectory is returned when a source or destination root is
	// missing or is not a directory. Nothing has been touched when it is
	// returned.
	ErrNotADirectory = errors.New("not a directory")

	// ErrPermissionDenied marks a folder creation, move or delete the
	// filesystem refused.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSourceVanished marks a file that disappeared between discovery and
	// move.
	ErrSourceVanished = errors.New("source file vanished")
)

const (
	opWalk   = "walk"
	opMkdir  = "mkdir"
	opMove   = "move"
	opRemove = "remove"
	opStat   = "stat"
)

// Failure describes one path that could not be processed.
type Failure struct {
	Path string
	Op   string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Op, f.Path, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// newFailure tags err with the matching sentinel so callers can use
// errors.Is without caring about the underlying *fs.PathError.
func newFailure(op, path string, err error) *Failure {
	switch {
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrSourceVanished), errors.Is(err, ErrNotADirectory):
	case errors.Is(err, fs.ErrPermission):
		err = fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, fs.ErrNotExist) && (op == opMove || op == opWalk):
		err = fmt.Errorf("%w: %w", ErrSourceVanished, err)
	}
	return &Failure{Path: path, Op: op, Err: err}
}
