// Package assets holds files compiled into the binary: the fallback word
// list and the SQLite dictionary migrations.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt sql
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded fallback words (uppercase).
func WordList() ([]string, error) {
	return readLines("words.txt")
}
