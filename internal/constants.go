package internal

const (
	// Default log level when neither config nor flags set one
	DefaultLogLevel = "info"

	// Default path of the move journal database
	DefaultJournalPath = "~/.file-sorter/journal.db"

	// Permission bits for created category folders
	DirPerm = 0755

	// Default number of rows printed by the history command
	DefaultHistoryLimit = 20
)
