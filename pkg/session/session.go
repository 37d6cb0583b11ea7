// Package session holds the state one user builds up while solving a puzzle:
// the selected word list, the letter fields, the excluded letters and the
// result page. Front ends mutate it through methods and render View.
//
// A Session is not safe for concurrent use; it belongs to one UI loop.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/solver"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	"github.com/charmbracelet/log"
)

// ErrNoCatalog is returned when a list is selected on a session without a catalog.
var ErrNoCatalog = errors.New("session has no word list catalog")

// MaxFields caps the field count so a stray keystroke cannot allocate
// millions of inputs.
const MaxFields = 64

// Options configures a Session.
type Options struct {
	Solver   solver.Options
	Wildcard rune
	PageSize int
}

// DefaultOptions returns exact matching, no multiplicity check and pages of ten.
func DefaultOptions() Options {
	return Options{
		Solver:   solver.DefaultOptions(),
		Wildcard: solver.DefaultWildcard,
		PageSize: solver.DefaultPageSize,
	}
}

// Session is the explicit state behind every front end.
type Session struct {
	catalog  *wordlist.Catalog
	opts     Options
	listName string
	words    []string
	fields   []string
	excluded string
	page     int
}

// New creates a session. catalog may be nil when words are supplied with SetWords.
func New(catalog *wordlist.Catalog, opts Options) *Session {
	if opts.Wildcard == 0 {
		opts.Wildcard = solver.DefaultWildcard
	}
	if opts.PageSize <= 0 {
		opts.PageSize = solver.DefaultPageSize
	}
	return &Session{catalog: catalog, opts: opts}
}

// Catalog returns the catalog the session selects lists from.
func (s *Session) Catalog() *wordlist.Catalog {
	return s.catalog
}

// Options returns the session settings.
func (s *Session) Options() Options {
	return s.opts
}

// SetOptions replaces the settings and keeps the page in range.
func (s *Session) SetOptions(opts Options) {
	if opts.Wildcard == 0 {
		opts.Wildcard = s.opts.Wildcard
	}
	if opts.PageSize <= 0 {
		opts.PageSize = s.opts.PageSize
	}
	s.opts = opts
	s.page = 0
}

// SelectList loads the named list and replaces the current one. On failure
// the previous list stays active.
func (s *Session) SelectList(name string) error {
	if s.catalog == nil {
		return ErrNoCatalog
	}
	resolved, err := s.catalog.Resolve(name)
	if err != nil {
		return err
	}
	path, err := s.catalog.Path(resolved)
	if err != nil {
		return err
	}
	words, err := wordlist.Load(path)
	if err != nil {
		return err
	}
	s.SetWords(resolved, words)
	log.Debugf("Selected list %s (%s words)", resolved, utils.FormatWithCommas(len(words)))
	return nil
}

// SelectDefault selects the lexicographically first list of the catalog.
func (s *Session) SelectDefault() error {
	if s.catalog == nil {
		return ErrNoCatalog
	}
	name, err := s.catalog.Default()
	if err != nil {
		return err
	}
	return s.SelectList(name)
}

// Reload reads the current list from disk again.
func (s *Session) Reload() error {
	if s.listName == "" {
		return s.SelectDefault()
	}
	return s.SelectList(s.listName)
}

// SetWords installs a word list directly.
func (s *Session) SetWords(name string, words []string) {
	s.listName = name
	s.words = words
	s.page = 0
}

// ListName returns the name of the active list.
func (s *Session) ListName() string {
	return s.listName
}

// Words returns the active word list.
func (s *Session) Words() []string {
	return s.words
}

// SetFieldCount regenerates count empty fields. Anything but digits is
// ignored without error; the return value says whether the fields changed.
func (s *Session) SetFieldCount(text string) bool {
	text = strings.TrimSpace(text)
	if !utils.IsOnlyNumbers(text) {
		return false
	}
	n, err := strconv.Atoi(text)
	if err != nil || n > MaxFields {
		return false
	}
	s.fields = make([]string, n)
	s.page = 0
	return true
}

// FieldCount returns the number of letter fields.
func (s *Session) FieldCount() int {
	return len(s.fields)
}

// SetField stores the letter typed into field i. Only the first letter is
// kept; empty text or the wildcard clears the field.
func (s *Session) SetField(i int, text string) {
	if i < 0 || i >= len(s.fields) {
		return
	}
	s.fields[i] = firstRune(text, s.opts.Wildcard)
	s.page = 0
}

// Field returns the content of field i.
func (s *Session) Field(i int) string {
	if i < 0 || i >= len(s.fields) {
		return ""
	}
	return s.fields[i]
}

// Fields returns a copy of all fields.
func (s *Session) Fields() []string {
	return append([]string(nil), s.fields...)
}

// SetPattern replaces the fields with the shorthand form, e.g. "ca.".
func (s *Session) SetPattern(shorthand string) {
	p := solver.ParsePattern(shorthand, s.opts.Wildcard)
	if p.Len() > MaxFields {
		return
	}
	s.fields = p.Fields()
	s.page = 0
}

// Pattern returns the pattern the fields describe.
func (s *Session) Pattern() solver.Pattern {
	return solver.NewPattern(s.fields, s.opts.Wildcard)
}

// SetExcluded stores the free text of the excluded-letters input.
func (s *Session) SetExcluded(text string) {
	s.excluded = text
	s.page = 0
}

// Excluded returns the raw excluded-letters text.
func (s *Session) Excluded() string {
	return s.excluded
}

// Page returns the current page index.
func (s *Session) Page() int {
	return s.page
}

// SetPage jumps to page n, clamped to the available pages.
func (s *Session) SetPage(n int) {
	s.page = solver.ClampPage(n, s.pages())
}

// NextPage advances one page and reports whether it moved.
func (s *Session) NextPage() bool {
	if s.page+1 >= s.pages() {
		return false
	}
	s.page++
	return true
}

// PrevPage goes back one page and reports whether it moved.
func (s *Session) PrevPage() bool {
	if s.page == 0 {
		return false
	}
	s.page--
	return true
}

func (s *Session) pages() int {
	return solver.PageCount(len(s.solve().Words), s.opts.PageSize)
}

func (s *Session) solve() solver.Result {
	return solver.Solve(s.words, s.Pattern(), solver.NewLetterSet(s.excluded), s.opts.Solver)
}

// View computes everything a front end shows. Nothing is cached; every call
// filters and ranks from scratch.
func (s *Session) View() Snapshot {
	res := s.solve()
	page := solver.Paginate(res.Words, s.page, s.opts.PageSize)
	s.page = page.Index

	return Snapshot{
		List:     s.listName,
		Pattern:  res.Pattern.String(),
		Known:    res.Pattern.KnownCount(),
		Fields:   s.Fields(),
		Excluded: res.Excluded.String(),
		Words:    page.Items,
		Start:    page.Start,
		Total:    page.Total,
		Page:     page.Index,
		Pages:    page.Pages,
		HasPrev:  page.HasPrev,
		HasNext:  page.HasNext,
		Letters:  res.Letters,
	}
}

func (s *Session) String() string {
	return fmt.Sprintf("session{list=%s pattern=%s excluded=%q page=%d}",
		s.listName, s.Pattern(), s.excluded, s.page)
}

func firstRune(text string, wildcard rune) string {
	text = strings.TrimSpace(text)
	for _, r := range text {
		if r == wildcard {
			return ""
		}
		return string(r)
	}
	return ""
}
