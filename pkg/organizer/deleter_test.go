package organizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestDeleteTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/src/a.txt", "a")
	writeFile(t, fsys, "/src/sub/b.mp3", "b")
	fsys.MkdirAll("/src/empty", 0755)

	o := New(fsys)
	if err := o.DeleteTree("/src"); err != nil {
		t.Fatalf("DeleteTree() error = %v", err)
	}
	assertMissing(t, fsys, "/src")
	assertMissing(t, fsys, "/src/sub/b.mp3")

	err := o.DeleteTree("/src")
	if err == nil {
		t.Fatal("Expected error deleting an absent tree")
	}
	if !errors.Is(err, ErrNotADirectory) {
		t.Errorf("Expected ErrNotADirectory, got %v", err)
	}
	if !strings.Contains(err.Error(), "/src") {
		t.Errorf("Expected error to name the path, got %q", err.Error())
	}
}

func TestDeleteTree_File(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/a.txt", "a")

	if err := New(fsys).DeleteTree("/a.txt"); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("Expected ErrNotADirectory, got %v", err)
	}
	assertExists(t, fsys, "/a.txt")
}

func TestDeleteTree_PermissionDenied(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFile(t, mem, "/src/a.txt", "a")

	err := New(afero.NewReadOnlyFs(mem)).DeleteTree("/src")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Expected ErrPermissionDenied, got %v", err)
	}
	assertExists(t, mem, "/src/a.txt")
}
