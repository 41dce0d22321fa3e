package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starter-coder/File-Sorter/internal"
)

func openTemp(t *testing.T) (*Journal, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "journal.db")
	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j, dbPath
}

func TestOpen_CreatesFile(t *testing.T) {
	_, dbPath := openTemp(t)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected journal file to be created")
	}
}

func TestRecordAndRecent(t *testing.T) {
	j, _ := openTemp(t)
	runID := NewRunID()

	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []internal.MoveRecord{
		{RunID: runID, Source: "/src/a.mp3", Destination: "/dst/Music/a.mp3", Category: "Music", MovedAt: base},
		{RunID: runID, Source: "/src/b.txt", Destination: "/dst/Documents/b.txt", Category: "Documents", MovedAt: base.Add(time.Second)},
	}
	if err := j.Record(records); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[0].Source != "/src/b.txt" {
		t.Errorf("Expected newest record first, got %s", got[0].Source)
	}
	if !got[1].MovedAt.Equal(base) {
		t.Errorf("Expected moved_at %v, got %v", base, got[1].MovedAt)
	}

	count, err := j.CountRun(runID)
	if err != nil {
		t.Fatalf("CountRun() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 records for run, got %d", count)
	}
}

func TestRecent_Limit(t *testing.T) {
	j, _ := openTemp(t)
	runID := NewRunID()

	var records []internal.MoveRecord
	for i := 0; i < 5; i++ {
		records = append(records, internal.MoveRecord{RunID: runID, Source: "s", Destination: "d", Category: "Miscellaneous"})
	}
	if err := j.Record(records); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := j.Recent(3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 records, got %d", len(got))
	}
}

func TestRecord_Empty(t *testing.T) {
	j, _ := openTemp(t)
	if err := j.Record(nil); err != nil {
		t.Errorf("Record(nil) error = %v", err)
	}
}

func TestNewRunID_Unique(t *testing.T) {
	if NewRunID() == NewRunID() {
		t.Error("Expected distinct run IDs")
	}
}
