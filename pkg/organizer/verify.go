package organizer

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// hashFile returns the xxHash64 digest of the file at path.
func hashFile(fsys afero.Fs, path string) (uint64, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, fmt.Errorf("hash %s: %w", path, err)
	}
	return h.Sum64(), nil
}

// verifyCopy checks that dst holds the same bytes as src.
func verifyCopy(fsys afero.Fs, src, dst string) error {
	srcSum, err := hashFile(fsys, src)
	if err != nil {
		return err
	}
	dstSum, err := hashFile(fsys, dst)
	if err != nil {
		return err
	}
	if srcSum != dstSum {
		return fmt.Errorf("checksum mismatch copying %s to %s (%x != %x)", src, dst, srcSum, dstSum)
	}
	return nil
}
