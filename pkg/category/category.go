// Package category maps file extensions to the destination folders files
// are sorted into. The table is fixed at build time and read-only.
package category

import (
	"path/filepath"
	"sort"
	"strings"
)

// Category is the name of a destination folder.
type Category string

const (
	Music         Category = "Music"
	Documents     Category = "Documents"
	Videos        Category = "Videos"
	Compressed    Category = "Compressed"
	Photos        Category = "Photos"
	Programs      Category = "Programs"
	Miscellaneous Category = "Miscellaneous"
)

var folderExtensions = map[Category][]string{
	Music: {".aif", ".cda", ".mid", ".midi", ".mp3", ".mpa",
		".ogg", ".wav", ".wma", ".wpl"},
	Documents: {".doc", ".docx", ".pdf", ".rtf", ".txt", ".wpd",
		".xls", ".xlsx", ".xlr", ".pps", ".ppt", ".pptx"},
	Videos: {".avi", ".flv", ".m4v", ".mkv", ".mov", ".mp4",
		".mpg", ".mpeg", ".rm", ".vob", ".wmv"},
	Compressed: {".7z", ".arj", ".deb", ".pkg", ".rar", ".rpm",
		".tar", ".gz", ".z", ".zip"},
	Photos: {".ai", ".bmp", ".gif", ".ico", ".jpeg", ".jpg",
		".png", ".ps", ".psd", ".svg", ".tif", ".tiff"},
	Programs: {".apk", ".bat", ".bin", ".cgi", ".pl", ".com",
		".exe", ".gadget", ".jar", ".py", ".wsf"},
}

// extension -> category, the reverse of folderExtensions
var table = buildTable()

func buildTable() map[string]Category {
	t := make(map[string]Category)
	for c, exts := range folderExtensions {
		for _, ext := range exts {
			t[ext] = c
		}
	}
	return t
}

// Classify returns the category for ext. The lookup ignores case; empty
// and unknown extensions map to Miscellaneous.
func Classify(ext string) Category {
	if c, ok := table[strings.ToLower(ext)]; ok {
		return c
	}
	return Miscellaneous
}

// ExtOf returns the extension of a file name: the suffix starting at the
// last dot, or "" when the name has no dot.
func ExtOf(name string) string {
	return filepath.Ext(name)
}

// All returns every category in display order, Miscellaneous last.
func All() []Category {
	return []Category{Music, Documents, Videos, Compressed, Photos, Programs, Miscellaneous}
}

// Extensions returns the sorted extensions of c. Miscellaneous has none.
func Extensions(c Category) []string {
	exts := append([]string(nil), folderExtensions[c]...)
	sort.Strings(exts)
	return exts
}
