package wordlist

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Scoring used when guessing which list name a mistyped query meant.
const (
	firstCharMatchBonus            = 15
	adjacentMatchBonus             = 10
	separatorMatchBonus            = 12
	unmatchedLeadingCharPenalty    = -3
	maxUnmatchedLeadingCharPenalty = -9
)

type nameMatch struct {
	name  string
	score int
}

// closestName returns the candidate the query most likely meant, or "" when
// nothing is close. Candidates that contain the query letters in order score
// highest; otherwise the smallest edit distance within half the query wins.
func closestName(query string, candidates []string) string {
	query = strings.ToLower(query)
	if len(query) < 2 || len(candidates) == 0 {
		return ""
	}

	var matches []nameMatch
	for _, c := range candidates {
		if score, ok := subsequenceScore([]rune(query), []rune(strings.ToLower(c))); ok {
			lengthDiff := abs(utf8.RuneCountInString(c) - utf8.RuneCountInString(query))
			matches = append(matches, nameMatch{name: c, score: score - lengthDiff})
		}
	}
	if len(matches) > 0 {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].score > matches[j].score
		})
		return matches[0].name
	}

	best, bestDist := "", utf8.RuneCountInString(query)/2+1
	for _, c := range candidates {
		if d := levenshtein(query, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// subsequenceScore reports whether every rune of pattern appears in
// candidate in order and scores how tightly they cluster.
func subsequenceScore(pattern, candidate []rune) (int, bool) {
	score := 0
	pi := 0
	lastMatch := -2
	adjacent := 0
	for i, r := range candidate {
		if pi >= len(pattern) {
			break
		}
		if r != pattern[pi] {
			continue
		}
		s := 0
		if i == 0 {
			s += firstCharMatchBonus
		}
		if i > 0 && isSeparator(candidate[i-1]) {
			s += separatorMatchBonus
		}
		if lastMatch == i-1 {
			adjacent = adjacent*2 + adjacentMatchBonus
			s += adjacent
		} else {
			adjacent = 0
		}
		if pi == 0 {
			s += max(i*unmatchedLeadingCharPenalty, maxUnmatchedLeadingCharPenalty)
		}
		score += s
		lastMatch = i
		pi++
	}
	return score, pi == len(pattern)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
