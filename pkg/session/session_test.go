package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/hangserve/pkg/solver"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func catalogWith(t *testing.T, lists map[string][]string) *wordlist.Catalog {
	t.Helper()
	dir := t.TempDir()
	for name, words := range lists {
		content := strings.Join(words, "\n") + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), []byte(content), 0o644))
	}
	cat, err := wordlist.Scan(dir)
	require.NoError(t, err)
	return cat
}

func TestSelectDefaultPicksFirstList(t *testing.T) {
	cat := catalogWith(t, map[string][]string{
		"zoo":     {"yak"},
		"animals": {"cat", "car", "can", "dog"},
	})
	s := New(cat, DefaultOptions())

	require.NoError(t, s.SelectDefault())
	assert.Equal(t, "animals", s.ListName())
	assert.Len(t, s.Words(), 4)
}

func TestSelectListReplacesWords(t *testing.T) {
	cat := catalogWith(t, map[string][]string{
		"animals": {"cat", "car"},
		"zoo":     {"yak", "emu", "gnu"},
	})
	s := New(cat, DefaultOptions())
	require.NoError(t, s.SelectList("animals"))

	require.NoError(t, s.SelectList("zo"))
	assert.Equal(t, "zoo", s.ListName())
	assert.Equal(t, []string{"yak", "emu", "gnu"}, s.Words())

	err := s.SelectList("birds")
	assert.ErrorIs(t, err, wordlist.ErrUnknownList)
	assert.Equal(t, "zoo", s.ListName(), "failed selection must keep the previous list")
}

func TestSelectWithoutCatalog(t *testing.T) {
	s := New(nil, DefaultOptions())

	assert.ErrorIs(t, s.SelectList("x"), ErrNoCatalog)
	assert.ErrorIs(t, s.SelectDefault(), ErrNoCatalog)
}

func TestSetFieldCountIgnoresNonNumeric(t *testing.T) {
	s := New(nil, DefaultOptions())

	assert.True(t, s.SetFieldCount("3"))
	assert.Equal(t, 3, s.FieldCount())

	for _, bad := range []string{"", "abc", "3a", "-1", "1.5", "999"} {
		assert.False(t, s.SetFieldCount(bad), bad)
		assert.Equal(t, 3, s.FieldCount(), bad)
	}

	assert.True(t, s.SetFieldCount(" 5 "))
	assert.Equal(t, 5, s.FieldCount())
	assert.True(t, s.SetFieldCount("0"))
	assert.Equal(t, 0, s.FieldCount())
}

func TestSetFieldCountLimit(t *testing.T) {
	s := New(nil, DefaultOptions())

	assert.True(t, s.SetFieldCount(fmt.Sprint(MaxFields)))
	assert.Equal(t, MaxFields, s.FieldCount())

	assert.False(t, s.SetFieldCount(fmt.Sprint(MaxFields+1)))
	assert.Equal(t, MaxFields, s.FieldCount(), "an oversized count leaves the fields alone")

	s.SetPattern(strings.Repeat(".", MaxFields+1))
	assert.Equal(t, MaxFields, s.FieldCount())
}

func TestSetFieldCountClearsFields(t *testing.T) {
	s := New(nil, DefaultOptions())
	s.SetFieldCount("3")
	s.SetField(0, "c")

	s.SetFieldCount("3")
	assert.Equal(t, []string{"", "", ""}, s.Fields())
}

func TestSetField(t *testing.T) {
	s := New(nil, DefaultOptions())
	s.SetFieldCount("3")

	s.SetField(0, "c")
	s.SetField(1, "ax")
	s.SetField(2, ".")
	s.SetField(7, "z")

	assert.Equal(t, "c", s.Field(0))
	assert.Equal(t, "a", s.Field(1))
	assert.Equal(t, "", s.Field(2))
	assert.Equal(t, "ca.", s.Pattern().String())

	s.SetField(1, "")
	assert.Equal(t, "c..", s.Pattern().String())
}

func TestViewMatchesExamples(t *testing.T) {
	s := New(nil, DefaultOptions())
	s.SetWords("animals", []string{"cat", "car", "can", "dog"})
	s.SetFieldCount("3")
	s.SetField(0, "c")
	s.SetField(1, "a")

	view := s.View()
	assert.Equal(t, []string{"cat", "car", "can"}, view.Words)
	assert.Equal(t, "ca.", view.Pattern)
	assert.Equal(t, []string{"c: 3", "a: 3", "t: 1", "r: 1", "n: 1"}, view.LetterLines())

	s.SetExcluded("t")
	view = s.View()
	assert.Equal(t, []string{"car", "can"}, view.Words)
	assert.Equal(t, "t", view.Excluded)
	for _, lc := range view.Letters {
		assert.NotEqual(t, 't', lc.Letter)
	}
}

func TestSetPattern(t *testing.T) {
	s := New(nil, DefaultOptions())
	s.SetWords("animals", []string{"cat", "car", "can", "dog"})

	s.SetPattern("d_?")
	assert.Equal(t, 3, s.FieldCount())
	view := s.View()
	assert.Equal(t, []string{"dog"}, view.Words)
	assert.Equal(t, 1, view.Known)
}

func TestPagination(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = fmt.Sprintf("w%02d", i)
	}
	s := New(nil, DefaultOptions())
	s.SetWords("numbers", words)
	s.SetPattern("...")

	view := s.View()
	assert.Equal(t, words[0:10], view.Words)
	assert.False(t, view.HasPrev)
	assert.True(t, view.HasNext)
	assert.Equal(t, "Page 1 of 3", view.PageLabel())

	assert.False(t, s.PrevPage())
	assert.True(t, s.NextPage())
	assert.True(t, s.NextPage())
	assert.False(t, s.NextPage())

	view = s.View()
	assert.Equal(t, 2, view.Page)
	assert.Equal(t, words[20:25], view.Words)
	assert.Equal(t, 20, view.Start)
	assert.True(t, view.HasPrev)
	assert.False(t, view.HasNext)

	s.SetExcluded("x")
	assert.Equal(t, 0, s.Page(), "editing the query returns to the first page")

	s.SetPage(99)
	assert.Equal(t, 2, s.Page())
}

func TestMultiplicityOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Solver.Multiplicity = solver.MultiplicityExact
	s := New(nil, opts)
	s.SetWords("l", []string{"lolo", "lilo", "lllo"})
	s.SetPattern("l.lo")

	assert.Equal(t, []string{"lilo"}, s.View().Words)

	opts.Solver.Multiplicity = solver.MultiplicityIgnore
	s.SetOptions(opts)
	assert.Equal(t, []string{"lolo", "lilo", "lllo"}, s.View().Words)
}

func TestViewIsRecomputed(t *testing.T) {
	s := New(nil, DefaultOptions())
	s.SetWords("a", []string{"cat"})
	s.SetPattern("...")

	first := s.View()
	s.SetWords("b", []string{"dog", "dig"})
	second := s.View()

	assert.Equal(t, []string{"cat"}, first.Words)
	assert.Equal(t, []string{"dog", "dig"}, second.Words)
	assert.Equal(t, "b", second.List)
}

func TestReload(t *testing.T) {
	cat := catalogWith(t, map[string][]string{"animals": {"cat"}})
	s := New(cat, DefaultOptions())
	require.NoError(t, s.Reload())
	assert.Equal(t, "animals", s.ListName())

	require.NoError(t, os.WriteFile(filepath.Join(cat.Dir(), "animals.txt"), []byte("cat\ncow\n"), 0o644))
	require.NoError(t, s.Reload())
	assert.Equal(t, []string{"cat", "cow"}, s.Words())
}
