package scanner

import (
	"os"

	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/pkg/logger"
)

type FileWalker struct {
	Fs afero.Fs
}

func NewFileWalker() *FileWalker {
	return NewFileWalkerFs(afero.NewOsFs())
}

func NewFileWalkerFs(fsys afero.Fs) *FileWalker {
	return &FileWalker{
		Fs: fsys,
	}
}

// Walk calls callback for every non-directory entry under root. Unreadable
// entries are skipped.
func (w *FileWalker) Walk(root string, callback func(path string, info os.FileInfo) error) error {
	return afero.Walk(w.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Get().Debug().Err(err).Str("path", path).Msg("cannot access path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		return callback(path, info)
	})
}

// CountFiles returns how many files remain under dirs. Missing directories
// count as empty.
func (w *FileWalker) CountFiles(dirs []string) (int, error) {
	count := 0
	for _, dir := range dirs {
		logger.Get().Debug().Str("dir", dir).Msg("counting files")
		err := w.Walk(dir, func(path string, info os.FileInfo) error {
			count++
			return nil
		})
		if err != nil {
			logger.Get().Error().Err(err).Str("dir", dir).Msg("counting files failed")
			return 0, err
		}
	}

	logger.Get().Debug().Int("count", count).Msg("file count finished")
	return count, nil
}
