package solver

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTopLetters is how many letters RankLetters reports by default.
const DefaultTopLetters = 10

// Options tunes Filter and Solve.
type Options struct {
	Multiplicity MultiplicityPolicy
	// FoldCase compares words, pattern and exclusions lowercased.
	FoldCase bool
	// TopLetters caps the ranking; zero or less means DefaultTopLetters.
	TopLetters int
}

// DefaultOptions returns exact-case matching with multiplicity ignored.
func DefaultOptions() Options {
	return Options{
		Multiplicity: MultiplicityIgnore,
		TopLetters:   DefaultTopLetters,
	}
}

// Filter returns the words that fit p and contain none of the excluded
// letters, in their original order. The input slice is never modified.
func Filter(words []string, p Pattern, excluded LetterSet, opts Options) []string {
	if opts.FoldCase {
		p = p.fold()
		excluded = excluded.fold()
	}
	counts := p.Multiplicity()

	filtered := make([]string, 0)
	for _, word := range words {
		w := word
		if opts.FoldCase {
			w = strings.ToLower(word)
		}
		if match(w, p, counts, excluded, opts.Multiplicity) {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

func match(word string, p Pattern, counts map[rune]int, excluded LetterSet, policy MultiplicityPolicy) bool {
	if utf8.RuneCountInString(word) != p.Len() {
		return false
	}

	i := 0
	for _, r := range word {
		if want, known := p.At(i); known && want != r {
			return false
		}
		if excluded.Has(r) {
			return false
		}
		i++
	}

	if policy == MultiplicityExact {
		for letter, n := range counts {
			if strings.Count(word, string(letter)) != n {
				return false
			}
		}
	}
	return true
}

// LetterCount is one row of the frequency table.
type LetterCount struct {
	Letter rune
	// Count is the number of words containing Letter at least once.
	Count int
}

// RankLetters counts how many words contain each letter, drops excluded
// letters and returns at most limit rows, most frequent first. Ties keep
// first-encounter order: words in list order, runes left to right.
func RankLetters(words []string, excluded LetterSet, limit int) []LetterCount {
	if limit <= 0 {
		limit = DefaultTopLetters
	}

	index := make(map[rune]int)
	var table []LetterCount
	seen := make(map[rune]bool)
	for _, word := range words {
		clear(seen)
		for _, r := range word {
			if seen[r] {
				continue
			}
			seen[r] = true
			if i, ok := index[r]; ok {
				table[i].Count++
				continue
			}
			index[r] = len(table)
			table = append(table, LetterCount{Letter: r, Count: 1})
		}
	}

	ranked := table[:0]
	for _, lc := range table {
		if !excluded.Has(lc.Letter) {
			ranked = append(ranked, lc)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Result bundles the output of one solve pass.
type Result struct {
	Pattern  Pattern
	Excluded LetterSet
	Words    []string
	Letters  []LetterCount
}

// Solve filters words and ranks the letters of the survivors.
func Solve(words []string, p Pattern, excluded LetterSet, opts Options) Result {
	filtered := Filter(words, p, excluded, opts)

	rankInput, rankExcluded := filtered, excluded
	if opts.FoldCase {
		rankExcluded = excluded.fold()
		rankInput = make([]string, len(filtered))
		for i, w := range filtered {
			rankInput[i] = strings.Map(unicode.ToLower, w)
		}
	}

	return Result{
		Pattern:  p,
		Excluded: excluded,
		Words:    filtered,
		Letters:  RankLetters(rankInput, rankExcluded, opts.TopLetters),
	}
}
