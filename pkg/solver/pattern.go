/*
Package solver is the core of HangServe: it filters a word list against a
partially known hangman pattern and ranks the letters left in the candidates.

Everything in this package is pure. The same inputs always produce the same
output in the same order, and no state is kept between calls.

# Patterns

A Pattern is a fixed number of cells, each either a known letter or a
wildcard. Patterns come either from per-letter fields (one string per cell,
empty meaning wildcard) or from the shorthand string form:

	p := solver.ParsePattern("ca.", solver.DefaultWildcard)
	words := solver.Filter(list, p, solver.NewLetterSet("t"), solver.DefaultOptions())

# Ranking

RankLetters counts, for each letter, how many words contain it at least once
and returns the most frequent letters first. Ties keep the order in which the
letters were first seen.
*/
package solver

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWildcard marks a cell whose letter is still unknown.
const DefaultWildcard = '.'

// Pattern is a fixed-length template of known letters and wildcards.
type Pattern struct {
	cells    []rune
	known    []bool
	wildcard rune
}

// NewPattern builds a pattern from per-letter fields. Only the first rune of
// each field is used; an empty field, or one holding the wildcard, leaves the
// cell unknown.
func NewPattern(fields []string, wildcard rune) Pattern {
	p := Pattern{
		cells:    make([]rune, len(fields)),
		known:    make([]bool, len(fields)),
		wildcard: wildcard,
	}
	for i, f := range fields {
		r, _ := utf8.DecodeRuneInString(strings.TrimSpace(f))
		if r == utf8.RuneError || r == wildcard {
			p.cells[i] = wildcard
			continue
		}
		p.cells[i] = r
		p.known[i] = true
	}
	return p
}

// ParsePattern reads the shorthand form where every rune is one cell.
// Besides the wildcard itself, '_' and '?' are read as wildcards.
func ParsePattern(s string, wildcard rune) Pattern {
	fields := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if r == wildcard || r == '_' || r == '?' {
			fields = append(fields, "")
			continue
		}
		fields = append(fields, string(r))
	}
	return NewPattern(fields, wildcard)
}

// Len returns the number of cells, which is also the required word length.
func (p Pattern) Len() int {
	return len(p.cells)
}

// At returns the letter at cell i and whether it is known.
func (p Pattern) At(i int) (rune, bool) {
	if i < 0 || i >= len(p.cells) {
		return p.wildcard, false
	}
	return p.cells[i], p.known[i]
}

// Wildcard returns the marker used for unknown cells.
func (p Pattern) Wildcard() rune {
	return p.wildcard
}

// KnownCount returns how many cells hold a concrete letter.
func (p Pattern) KnownCount() int {
	n := 0
	for _, k := range p.known {
		if k {
			n++
		}
	}
	return n
}

// Multiplicity counts how often each concrete letter occurs in the pattern.
func (p Pattern) Multiplicity() map[rune]int {
	counts := make(map[rune]int)
	for i, r := range p.cells {
		if p.known[i] {
			counts[r]++
		}
	}
	return counts
}

// Fields returns one string per cell, empty for unknown cells.
func (p Pattern) Fields() []string {
	out := make([]string, len(p.cells))
	for i, r := range p.cells {
		if p.known[i] {
			out[i] = string(r)
		}
	}
	return out
}

// String renders the pattern with the wildcard in unknown cells.
func (p Pattern) String() string {
	return string(p.cells)
}

// fold returns a lowercased copy of p.
func (p Pattern) fold() Pattern {
	out := Pattern{
		cells:    make([]rune, len(p.cells)),
		known:    append([]bool(nil), p.known...),
		wildcard: p.wildcard,
	}
	for i, r := range p.cells {
		if p.known[i] {
			r = unicode.ToLower(r)
		}
		out.cells[i] = r
	}
	return out
}

// LetterSet is a set of letters known not to be in the target word.
type LetterSet map[rune]struct{}

// NewLetterSet collects every non-space rune of s.
func NewLetterSet(s string) LetterSet {
	set := make(LetterSet)
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	return len(s)
}

// String renders the letters sorted.
func (s LetterSet) String() string {
	letters := make([]rune, 0, len(s))
	for r := range s {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

func (s LetterSet) fold() LetterSet {
	out := make(LetterSet, len(s))
	for r := range s {
		out[unicode.ToLower(r)] = struct{}{}
	}
	return out
}

// MultiplicityPolicy decides whether repeated pattern letters must appear in
// the word exactly as often as in the pattern.
type MultiplicityPolicy int

const (
	// MultiplicityIgnore only checks the known positions.
	MultiplicityIgnore MultiplicityPolicy = iota
	// MultiplicityExact also requires each known letter to occur in the word
	// exactly as many times as it occurs in the pattern.
	MultiplicityExact
)

func (m MultiplicityPolicy) String() string {
	switch m {
	case MultiplicityIgnore:
		return "ignore"
	case MultiplicityExact:
		return "exact"
	default:
		return fmt.Sprintf("MultiplicityPolicy(%d)", int(m))
	}
}

// ParseMultiplicity maps "ignore" or "exact" to a policy.
func ParseMultiplicity(s string) (MultiplicityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return MultiplicityIgnore, nil
	case "exact":
		return MultiplicityExact, nil
	}
	return MultiplicityIgnore, fmt.Errorf("unknown multiplicity policy %q", s)
}
