package tui

import "github.com/starter-coder/File-Sorter/app"

type sortDoneMsg struct {
	report *app.SortReport
	err    error
}

type deleteDoneMsg struct {
	path string
	err  error
}

type countDoneMsg struct {
	count int
	err   error
}
