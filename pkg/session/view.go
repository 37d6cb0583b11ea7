package session

import (
	"fmt"

	"github.com/bastiangx/hangserve/pkg/solver"
)

// Snapshot is the declarative render state of a session.
type Snapshot struct {
	List    string
	Pattern string
	// Known is how many cells of Pattern hold a letter.
	Known    int
	Fields   []string
	Excluded string
	// Words is the current page of matches.
	Words []string
	// Start is the index of Words[0] among all matches.
	Start   int
	Total   int
	Page    int
	Pages   int
	HasPrev bool
	HasNext bool
	Letters []solver.LetterCount
}

// LetterLines renders the frequency table as "a: 3" lines.
func (s Snapshot) LetterLines() []string {
	lines := make([]string, len(s.Letters))
	for i, lc := range s.Letters {
		lines[i] = fmt.Sprintf("%c: %d", lc.Letter, lc.Count)
	}
	return lines
}

// PageLabel renders the one-based page position, e.g. "Page 2 of 3".
func (s Snapshot) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", s.Page+1, s.Pages)
}
