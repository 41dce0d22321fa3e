package organizer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/pkg/category"
	"github.com/starter-coder/File-Sorter/pkg/logger"
)

// SortTree moves every regular file under srcRoot into the category
// folders of destRoot.
//
// Both roots must be existing directories; otherwise an error wrapping
// ErrNotADirectory is returned before anything is touched. Failures on
// individual files are collected in the Result and never stop the run.
// Directories are traversed but left in place, and nothing is rolled back.
func (o *Organizer) SortTree(srcRoot, destRoot string) (*Result, error) {
	if err := o.requireDir(srcRoot); err != nil {
		return nil, err
	}
	if err := o.requireDir(destRoot); err != nil {
		return nil, err
	}

	skip := skippedDirs(srcRoot, destRoot)
	result := &Result{}

	logger.Get().Info().
		Str("source", srcRoot).
		Str("destination", destRoot).
		Msg("sorting files")

	err := afero.Walk(o.Fs, srcRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == srcRoot {
				return err
			}
			f := newFailure(opWalk, path, err)
			logger.Get().Error().Err(f.Err).Str("path", path).Msg("cannot read path")
			result.addFailure(f)
			return nil
		}

		if info.IsDir() {
			if skip[filepath.Clean(path)] {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			logger.Get().Debug().Str("path", path).Msg("skipping non-regular file")
			result.Skipped++
			return nil
		}

		o.sortFile(path, info.Name(), destRoot, result)
		return nil
	})
	if err != nil {
		return nil, newFailure(opWalk, srcRoot, err)
	}

	logger.Get().Info().
		Int("moved", result.Moved).
		Int("failed", len(result.Failures)).
		Int("skipped", result.Skipped).
		Msg("sorting finished")

	return result, nil
}

func (o *Organizer) sortFile(path, name, destRoot string, result *Result) {
	ext := category.ExtOf(name)

	folder, err := o.ResolveFolder(ext, destRoot)
	if err != nil {
		logger.Get().Error().Err(err).Str("file", path).Msg("cannot prepare destination folder")
		result.addFailure(asFailure(opMkdir, path, err))
		return
	}

	final, err := o.MoveSafely(path, folder, name)
	if err != nil {
		logger.Get().Error().Err(err).Str("file", path).Msg("cannot move file")
		result.addFailure(asFailure(opMove, path, err))
		return
	}

	cat := category.Classify(ext)
	result.Moved++
	result.Moves = append(result.Moves, Move{Source: path, Destination: final, Category: cat})

	logger.Get().Debug().
		Str("source", path).
		Str("destination", final).
		Str("category", string(cat)).
		Msg("moved file")
}

// skippedDirs returns the directories under srcRoot that already hold
// sorted output, spelled the way the walk reports them: destRoot when it
// lies strictly inside srcRoot, or the category folders directly under
// srcRoot when both roots are the same directory.
func skippedDirs(srcRoot, destRoot string) map[string]bool {
	src, err := filepath.Abs(srcRoot)
	if err != nil {
		return nil
	}
	dst, err := filepath.Abs(destRoot)
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(src, dst)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	skip := make(map[string]bool)
	if rel == "." {
		for _, c := range category.All() {
			skip[filepath.Join(srcRoot, string(c))] = true
		}
		return skip
	}
	skip[filepath.Join(srcRoot, rel)] = true
	return skip
}

func asFailure(op, path string, err error) *Failure {
	if f, ok := err.(*Failure); ok {
		return f
	}
	return newFailure(op, path, err)
}
