package organizer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starter-coder/File-Sorter/pkg/logger"
)

// FreePath returns folder/name, or the first folder/stem(n)ext for
// n = 1, 2, ... that does not exist yet.
func (o *Organizer) FreePath(folder, name string) (string, error) {
	target := filepath.Join(folder, name)
	exists, err := o.exists(target)
	if err != nil {
		return "", err
	}
	if !exists {
		return target, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		// dotfiles such as .bashrc take the suffix at the end
		stem, ext = name, ""
	}

	for n := 1; ; n++ {
		candidate := filepath.Join(folder, fmt.Sprintf("%s(%d)%s", stem, n, ext))
		exists, err := o.exists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// MoveSafely moves src into destFolder under name, renaming it with a
// numeric suffix when that name is taken. It never overwrites an existing
// file and returns the path the file ended up at.
func (o *Organizer) MoveSafely(src, destFolder, name string) (string, error) {
	if _, err := o.lstat(src); err != nil {
		return "", newFailure(opMove, src, err)
	}

	target, err := o.FreePath(destFolder, name)
	if err != nil {
		return "", newFailure(opStat, filepath.Join(destFolder, name), err)
	}

	if target != filepath.Join(destFolder, name) {
		logger.Get().Debug().
			Str("original_path", filepath.Join(destFolder, name)).
			Str("new_path", target).
			Msg("name taken, renaming")
	}

	if err := o.moveFile(src, target); err != nil {
		return "", newFailure(opMove, src, err)
	}
	return target, nil
}

// moveFile renames src to dst, falling back to copy-then-delete when the
// rename fails for a reason other than permissions or a missing source
// (typically a cross-device move).
func (o *Organizer) moveFile(src, dst string) error {
	err := o.Fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
		return err
	}

	logger.Get().Debug().
		Err(err).
		Str("source", src).
		Str("destination", dst).
		Msg("rename failed, copying instead")

	return o.copyThenDelete(src, dst)
}

func (o *Organizer) copyThenDelete(src, dst string) (err error) {
	info, err := o.Fs.Stat(src)
	if err != nil {
		return err
	}

	sourceFile, err := o.Fs.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := o.Fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	// drop the partial copy on any failure below
	defer func() {
		if err != nil {
			_ = o.Fs.Remove(dst)
		}
	}()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return fmt.Errorf("copy contents: %w", err)
	}
	if err = destFile.Close(); err != nil {
		return err
	}

	if err = o.Fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	if err = o.Fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return err
	}

	if o.VerifyCopy {
		if err = verifyCopy(o.Fs, src, dst); err != nil {
			return err
		}
	}

	sourceFile.Close()
	if err = o.Fs.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}
