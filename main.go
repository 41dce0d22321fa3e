package main

import "github.com/starter-coder/File-Sorter/cmd"

func main() {
	cmd.Execute()
}
