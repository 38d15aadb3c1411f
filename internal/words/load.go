// internal/words/load.go
//
// Dictionary loading.
//
// Supported formats (chosen by file extension):
//   - .json  : a JSON array of strings.
//   - .plist : a property-list array of strings (XML or binary).
//   - other  : plain text, one word per line; blank lines and "#" comments skipped.
//
// Every failure is reported as *LoadError so startup code can treat a missing
// or malformed dictionary as fatal.

package words

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"howett.net/plist"

	"github.com/robalobadob/anagram/assets"
)

// ErrEmpty is the cause of a LoadError for a dictionary with no words.
var ErrEmpty = errors.New("dictionary is empty")

// LoadError reports a dictionary source that is missing or malformed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the dictionary at path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(path, data)
}

// LoadEmbedded returns the dictionary compiled into the binary.
func LoadEmbedded() (*Bank, error) {
	data, err := assets.DefaultWords()
	if err != nil {
		return nil, &LoadError{Source: "embedded:" + assets.DefaultWordsFile, Err: err}
	}
	return Parse(assets.DefaultWordsFile, data)
}

// Parse decodes data using the format implied by name's extension.
func Parse(name string, data []byte) (*Bank, error) {
	list, err := ParseList(name, data)
	if err != nil {
		return nil, err
	}
	return New(list), nil
}

// ParseList is Parse without building the Bank. Used by the importer.
func ParseList(name string, data []byte) ([]string, error) {
	var (
		list []string
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		list, err = decodeJSON(data)
	case ".plist":
		list, err = decodePlist(data)
	default:
		list, err = readLines(data)
	}
	if err == nil && len(list) == 0 {
		err = ErrEmpty
	}
	if err == nil {
		err = checkUTF8(list)
	}
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return list, nil
}

func decodeJSON(data []byte) ([]string, error) {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return list, checkEntries(list)
}

func decodePlist(data []byte) ([]string, error) {
	var list []string
	if _, err := plist.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode plist: %w", err)
	}
	return list, checkEntries(list)
}

// readLines splits plain text into words, one per line.
func readLines(data []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// checkEntries rejects blank entries in structured formats.
func checkEntries(list []string) error {
	for i, w := range list {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("entry %d is blank", i)
		}
	}
	return nil
}

// checkUTF8 rejects entries that are not valid UTF-8 in any format.
func checkUTF8(list []string) error {
	for i, w := range list {
		if !utf8.ValidString(w) {
			return fmt.Errorf("entry %d is not valid UTF-8", i)
		}
	}
	return nil
}
