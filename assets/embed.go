// Package assets holds files compiled into the server binary: the default
// dictionary and the SQL migrations for the dictionary database.
package assets

import (
	"embed"
	"io/fs"
)

// DefaultWordsFile is the name of the embedded default dictionary.
const DefaultWordsFile = "words.json"

//go:embed words.json sql/*.sql
var FS embed.FS

// DefaultWords returns the raw bytes of the embedded dictionary.
func DefaultWords() ([]byte, error) {
	return FS.ReadFile(DefaultWordsFile)
}

// Migrations returns the embedded migration directory rooted at sql/.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
