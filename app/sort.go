package app

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/internal"
	"github.com/starter-coder/File-Sorter/pkg/journal"
	"github.com/starter-coder/File-Sorter/pkg/logger"
	"github.com/starter-coder/File-Sorter/pkg/organizer"
	"github.com/starter-coder/File-Sorter/pkg/scanner"
)

// ErrSourceNotEmpty is returned instead of deleting a source tree that
// still holds files.
var ErrSourceNotEmpty = errors.New("source still contains files")

type SortOptions struct {
	Source       string
	Destination  string
	DeleteSource bool
	VerifyCopy   bool
	Journal      bool
	JournalPath  string

	// Fs defaults to the OS filesystem
	Fs afero.Fs
}

// SortReport is what front ends display after a sort.
type SortReport struct {
	RunID     string
	Result    *organizer.Result
	Journaled int
	Remaining int
	Deleted   bool
	DeleteErr error
	StartTime time.Time
	EndTime   time.Time
}

func (opts *SortOptions) fs() afero.Fs {
	if opts.Fs == nil {
		return afero.NewOsFs()
	}
	return opts.Fs
}

// RunSort sorts opts.Source into opts.Destination, writes the journal when
// enabled and, with DeleteSource, removes the source tree once no files
// are left in it.
func RunSort(opts *SortOptions) (*SortReport, error) {
	fsys := opts.fs()
	org := organizer.New(fsys)
	org.VerifyCopy = opts.VerifyCopy

	report := &SortReport{
		RunID:     journal.NewRunID(),
		StartTime: time.Now(),
	}

	result, err := org.SortTree(opts.Source, opts.Destination)
	if err != nil {
		return nil, err
	}
	report.Result = result

	if opts.Journal && len(result.Moves) > 0 {
		report.Journaled, err = writeJournal(opts.JournalPath, report.RunID, result.Moves)
		if err != nil {
			// the files are already moved; losing the audit entry is not fatal
			logger.Get().Error().Err(err).Str("journal", opts.JournalPath).Msg("cannot write journal")
		}
	}

	report.Remaining, err = scanner.NewFileWalkerFs(fsys).CountFiles([]string{opts.Source})
	if err != nil {
		return nil, err
	}

	if opts.DeleteSource {
		report.DeleteErr = deleteIfEmpty(org, opts.Source, report.Remaining)
		report.Deleted = report.DeleteErr == nil
	}

	report.EndTime = time.Now()
	return report, nil
}

func deleteIfEmpty(org *organizer.Organizer, source string, remaining int) error {
	if remaining > 0 {
		return fmt.Errorf("%w: %d file(s) left in %s", ErrSourceNotEmpty, remaining, source)
	}
	return org.DeleteTree(source)
}

// writeJournal records moves under runID and returns how many entries the
// journal now holds for that run.
func writeJournal(path, runID string, moves []organizer.Move) (int, error) {
	j, err := journal.Open(path)
	if err != nil {
		return 0, err
	}
	defer j.Close()

	now := time.Now()
	records := make([]internal.MoveRecord, len(moves))
	for i, m := range moves {
		records[i] = internal.MoveRecord{
			RunID:       runID,
			Source:      m.Source,
			Destination: m.Destination,
			Category:    string(m.Category),
			MovedAt:     now,
		}
	}
	if err := j.Record(records); err != nil {
		return 0, err
	}
	return j.CountRun(runID)
}

// RunDelete removes the tree at path.
func RunDelete(fsys afero.Fs, path string) error {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return organizer.New(fsys).DeleteTree(path)
}

// RunCount returns the number of files under dirs.
func RunCount(fsys afero.Fs, dirs []string) (int, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return scanner.NewFileWalkerFs(fsys).CountFiles(dirs)
}

// History returns the newest journal entries.
func History(path string, limit int) ([]internal.MoveRecord, error) {
	j, err := journal.Open(path)
	if err != nil {
		return nil, err
	}
	defer j.Close()
	return j.Recent(limit)
}

func (r *SortReport) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== Sort summary ==========\n")
	buf.WriteString(fmt.Sprintf("Moved: %d\n", r.Result.Moved))
	buf.WriteString(fmt.Sprintf("Failed: %d\n", len(r.Result.Failures)))
	if r.Result.Skipped > 0 {
		buf.WriteString(fmt.Sprintf("Skipped (not regular files): %d\n", r.Result.Skipped))
	}
	buf.WriteString(fmt.Sprintf("Files left in source: %d\n", r.Remaining))
	if r.Journaled > 0 {
		buf.WriteString(fmt.Sprintf("Journaled: %d (run %s)\n", r.Journaled, r.RunID))
	}
	if r.Deleted {
		buf.WriteString("Source deleted\n")
	} else if r.DeleteErr != nil {
		buf.WriteString(fmt.Sprintf("Source kept: %v\n", r.DeleteErr))
	}
	buf.WriteString(fmt.Sprintf("Elapsed: %v\n", r.EndTime.Sub(r.StartTime).Round(time.Millisecond)))
	if !r.Result.OK() {
		buf.WriteString("Failures:\n")
		for _, f := range r.Result.Failures {
			buf.WriteString(fmt.Sprintf("  ! %v\n", f))
		}
	}
	buf.WriteString("==================================")

	return buf.String()
}
