package organizer

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create directory: %v", err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("create test file: %v", err)
	}
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func assertExists(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if ok, _ := afero.Exists(fsys, path); !ok {
		t.Errorf("Expected %s to exist", path)
	}
}

func assertMissing(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if ok, _ := afero.Exists(fsys, path); ok {
		t.Errorf("Expected %s to be absent", path)
	}
}

// crossDeviceFs fails every rename the way os.Rename does across mounts.
type crossDeviceFs struct {
	afero.Fs
}

func (c crossDeviceFs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: syscall.EXDEV}
}

// denyMkdirFs refuses to create one directory.
type denyMkdirFs struct {
	afero.Fs
	deny string
}

func (d denyMkdirFs) Mkdir(name string, perm os.FileMode) error {
	if filepath.Clean(name) == d.deny {
		return &os.PathError{Op: "mkdir", Path: name, Err: fs.ErrPermission}
	}
	return d.Fs.Mkdir(name, perm)
}
