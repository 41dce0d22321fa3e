package app

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/pkg/organizer"
)

func memTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, f := range files {
		if err := afero.WriteFile(fsys, f, []byte(f), 0644); err != nil {
			t.Fatalf("create %s: %v", f, err)
		}
	}
	if err := fsys.MkdirAll("/dst", 0755); err != nil {
		t.Fatal(err)
	}
	return fsys
}

func TestRunSort(t *testing.T) {
	fsys := memTree(t, "/src/a.mp3", "/src/sub/b.docx")

	report, err := RunSort(&SortOptions{Source: "/src", Destination: "/dst", Fs: fsys})
	if err != nil {
		t.Fatalf("RunSort() error = %v", err)
	}

	if report.Result.Moved != 2 {
		t.Errorf("Expected 2 moved files, got %d", report.Result.Moved)
	}
	if report.Remaining != 0 {
		t.Errorf("Expected 0 remaining files, got %d", report.Remaining)
	}
	if report.Deleted {
		t.Error("Source must not be deleted without DeleteSource")
	}
	if report.RunID == "" {
		t.Error("Expected a run ID")
	}
	if ok, _ := afero.DirExists(fsys, "/src"); !ok {
		t.Error("Expected source to remain")
	}
	if summary := report.String(); strings.Contains(summary, "Failures:") || strings.Contains(summary, "Journaled") {
		t.Errorf("Unexpected summary:\n%s", summary)
	}
}

func TestRunSort_DeleteSource(t *testing.T) {
	fsys := memTree(t, "/src/a.mp3", "/src/sub/b.docx")

	report, err := RunSort(&SortOptions{Source: "/src", Destination: "/dst", DeleteSource: true, Fs: fsys})
	if err != nil {
		t.Fatalf("RunSort() error = %v", err)
	}
	if !report.Deleted || report.DeleteErr != nil {
		t.Errorf("Expected source deleted, got deleted=%v err=%v", report.Deleted, report.DeleteErr)
	}
	if ok, _ := afero.Exists(fsys, "/src"); ok {
		t.Error("Expected source to be gone")
	}
	if ok, _ := afero.Exists(fsys, "/dst/Documents/b.docx"); !ok {
		t.Error("Expected sorted file to survive source deletion")
	}
}

func TestRunSort_DeleteSourceKeepsLeftovers(t *testing.T) {
	mem := memTree(t, "/src/a.mp3", "/src/b.txt")
	fsys := afero.NewReadOnlyFs(mem)

	report, err := RunSort(&SortOptions{Source: "/src", Destination: "/dst", DeleteSource: true, Fs: fsys})
	if err != nil {
		t.Fatalf("RunSort() error = %v", err)
	}
	if report.Remaining != 2 {
		t.Errorf("Expected 2 remaining files, got %d", report.Remaining)
	}
	if report.Deleted {
		t.Error("Source with leftovers must not be deleted")
	}
	if !errors.Is(report.DeleteErr, ErrSourceNotEmpty) {
		t.Errorf("Expected ErrSourceNotEmpty, got %v", report.DeleteErr)
	}

	summary := report.String()
	if !strings.Contains(summary, "Failed: 2") || !strings.Contains(summary, "Failures:") || !strings.Contains(summary, "Source kept") {
		t.Errorf("Unexpected summary:\n%s", summary)
	}
}

func TestRunSort_BadRoots(t *testing.T) {
	fsys := memTree(t, "/src/a.mp3")

	_, err := RunSort(&SortOptions{Source: "/missing", Destination: "/dst", Fs: fsys})
	if !errors.Is(err, organizer.ErrNotADirectory) {
		t.Errorf("Expected ErrNotADirectory, got %v", err)
	}
}

func TestRunSort_Journal(t *testing.T) {
	fsys := memTree(t, "/src/a.mp3", "/src/b.zip")
	journalPath := filepath.Join(t.TempDir(), "journal.db")

	report, err := RunSort(&SortOptions{
		Source:      "/src",
		Destination: "/dst",
		Journal:     true,
		JournalPath: journalPath,
		Fs:          fsys,
	})
	if err != nil {
		t.Fatalf("RunSort() error = %v", err)
	}

	if report.Journaled != 2 {
		t.Errorf("Expected 2 journaled moves, got %d", report.Journaled)
	}
	if !strings.Contains(report.String(), "Journaled: 2") {
		t.Errorf("Expected journal count in summary:\n%s", report.String())
	}

	records, err := History(journalPath, 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 journal records, got %d", len(records))
	}
	for _, r := range records {
		if r.RunID != report.RunID {
			t.Errorf("Expected run ID %s, got %s", report.RunID, r.RunID)
		}
	}
}

func TestRunDeleteAndCount(t *testing.T) {
	fsys := memTree(t, "/src/a.mp3", "/src/x/b.txt")

	count, err := RunCount(fsys, []string{"/src"})
	if err != nil {
		t.Fatalf("RunCount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 files, got %d", count)
	}

	if err := RunDelete(fsys, "/src"); err != nil {
		t.Fatalf("RunDelete() error = %v", err)
	}
	if err := RunDelete(fsys, "/src"); !errors.Is(err, organizer.ErrNotADirectory) {
		t.Errorf("Expected ErrNotADirectory on second delete, got %v", err)
	}
}
