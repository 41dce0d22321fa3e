package organizer

import (
	"github.com/starter-coder/File-Sorter/pkg/logger"
)

// DeleteTree removes path and everything below it. A missing path or a
// non-directory fails with ErrNotADirectory; a refused removal fails with
// ErrPermissionDenied. There is no partial-cleanup guarantee beyond what
// RemoveAll provides.
func (o *Organizer) DeleteTree(path string) error {
	if err := o.requireDir(path); err != nil {
		return err
	}

	if err := o.Fs.RemoveAll(path); err != nil {
		f := newFailure(opRemove, path, err)
		logger.Get().Error().Err(f.Err).Str("path", path).Msg("cannot delete tree")
		return f
	}

	logger.Get().Info().Str("path", path).Msg("deleted tree")
	return nil
}
