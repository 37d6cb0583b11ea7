/*
Package wordlist loads plain text word lists and keeps a catalog of the lists
found in a directory.

A word list is a UTF-8 text file with one word per line and no header. Lines
are kept as they are, in file order: duplicates stay, and blank lines become
zero-length words. A catalog maps list names (the file name without ".txt")
to files and picks the lexicographically first file as the default.

	cat, err := wordlist.Scan("lists/")
	name, _ := cat.Default()
	words, err := cat.Load(name)
*/
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single line; word lists never get close.
const maxLineSize = 1024 * 1024

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	words, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}

// Read splits r into lines. A final newline does not add an empty word and
// CRLF endings are accepted.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	words := make([]string, 0, 1024)
	for scanner.Scan() {
		words = append(words, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
