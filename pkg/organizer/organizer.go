// Package organizer moves files out of a source tree into category folders
// of a destination directory, and deletes trees.
//
// All operations are synchronous and run on the caller's goroutine. They
// take no context and report no progress; front ends that must stay
// responsive run them in the background and wait for the Result.
package organizer

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/pkg/category"
)

// Organizer carries the filesystem the core operates on.
type Organizer struct {
	Fs afero.Fs

	// VerifyCopy compares checksums before removing the source when a move
	// falls back to copy-then-delete.
	VerifyCopy bool
}

// New returns an Organizer over fsys with copy verification enabled.
func New(fsys afero.Fs) *Organizer {
	return &Organizer{
		Fs:         fsys,
		VerifyCopy: true,
	}
}

// Move is one completed relocation.
type Move struct {
	Source      string
	Destination string
	Category    category.Category
}

// Result summarises a SortTree run.
type Result struct {
	Moved    int
	Skipped  int // non-regular entries such as symlinks
	Moves    []Move
	Failures []*Failure
}

// OK reports whether every discovered file was moved.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Err joins all failures, or returns nil when there are none.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

func (r *Result) addFailure(f *Failure) {
	r.Failures = append(r.Failures, f)
}

// requireDir fails with ErrNotADirectory unless path is an existing
// directory.
func (o *Organizer) requireDir(path string) error {
	info, err := o.Fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Failure{Path: path, Op: opStat, Err: ErrNotADirectory}
		}
		return newFailure(opStat, path, err)
	}
	if !info.IsDir() {
		return &Failure{Path: path, Op: opStat, Err: ErrNotADirectory}
	}
	return nil
}

// lstat does not follow a final symlink when the filesystem supports it.
func (o *Organizer) lstat(path string) (os.FileInfo, error) {
	if l, ok := o.Fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return o.Fs.Stat(path)
}

func (o *Organizer) exists(path string) (bool, error) {
	_, err := o.lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
