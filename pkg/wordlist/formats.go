package wordlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Ext is the extension every word list file carries.
const Ext = ".txt"

// sniffSize is how much of a file ValidateFile inspects.
const sniffSize = 4096

var (
	// ErrNotWordList is returned for files that cannot be a word list.
	ErrNotWordList = errors.New("not a word list")
)

// IsListFile reports whether name looks like a word list file.
func IsListFile(name string) bool {
	base := filepath.Base(name)
	return strings.EqualFold(filepath.Ext(base), Ext) && !strings.HasPrefix(base, ".")
}

// NameOf returns the list name for a file path.
func NameOf(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// ValidateFile checks that path is a readable regular .txt file whose head
// is valid UTF-8. Empty files are valid lists with no words.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file: %w", path, ErrNotWordList)
	}
	if !IsListFile(path) {
		return fmt.Errorf("file %s has invalid extension %s (expected: %s): %w",
			path, filepath.Ext(path), Ext, ErrNotWordList)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	buf := make([]byte, sniffSize)
	n, _ := file.Read(buf)
	head := buf[:n]
	// a multi-byte rune may straddle the cut
	for i := 0; i < utf8.UTFMax && len(head) > 0 && !utf8.Valid(head) && n == sniffSize; i++ {
		head = head[:len(head)-1]
	}
	if !utf8.Valid(head) {
		return fmt.Errorf("file %s is not valid UTF-8: %w", path, ErrNotWordList)
	}

	log.Debugf("Word list %s validated", path)
	return nil
}
