package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/starter-coder/File-Sorter/internal"
	"github.com/starter-coder/File-Sorter/pkg/category"
	"github.com/starter-coder/File-Sorter/pkg/logger"
)

// ResolveFolder returns destRoot/<category of ext>, creating the folder
// when it does not exist yet. destRoot itself must already exist.
func (o *Organizer) ResolveFolder(ext, destRoot string) (string, error) {
	folder := filepath.Join(destRoot, string(category.Classify(ext)))

	info, err := o.Fs.Stat(folder)
	if err == nil {
		if !info.IsDir() {
			return "", &Failure{Path: folder, Op: opMkdir, Err: fmt.Errorf("%w: a file with that name exists", ErrNotADirectory)}
		}
		return folder, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", newFailure(opMkdir, folder, err)
	}

	if err := o.Fs.Mkdir(folder, internal.DirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return "", newFailure(opMkdir, folder, err)
	}

	logger.Get().Debug().Str("folder", folder).Msg("created category folder")
	return folder, nil
}
