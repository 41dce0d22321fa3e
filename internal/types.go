package internal

import "time"

// Action is an operation a front end can trigger.
type Action string

const (
	ActionSort          Action = "sort"
	ActionSortAndDelete Action = "sort+delete"
	ActionDelete        Action = "delete"
	ActionCount         Action = "count"
)

// MoveRecord is one completed move as written to the journal.
type MoveRecord struct {
	RunID       string
	Source      string
	Destination string
	Category    string
	MovedAt     time.Time
}
