package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func animalSession() *session.Session {
	sess := session.New(nil, session.DefaultOptions())
	sess.SetWords("animals", []string{"cat", "car", "can", "dog"})
	return sess
}

func TestGenerateFieldsAndFilter(t *testing.T) {
	sess := animalSession()
	m := New(sess, nil)

	press(m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 3, sess.FieldCount())
	assert.Equal(t, 1, m.focus, "focus moves to the first cell")

	press(m, runes("c"), runes("a"))
	assert.Equal(t, []string{"c", "a", ""}, m.cells)
	assert.Equal(t, []string{"cat", "car", "can"}, sess.View().Words)

	press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("t"))
	assert.Equal(t, m.excludeIndex(), m.focus)
	assert.Equal(t, "t", sess.Excluded())
	assert.Equal(t, []string{"car", "can"}, sess.View().Words)

	out := m.View()
	assert.Contains(t, out, "car")
	assert.Contains(t, out, "can")
	assert.NotContains(t, out, "dog")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestNonNumericCountIsIgnored(t *testing.T) {
	sess := animalSession()
	m := New(sess, nil)
	press(m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})

	m.setFocus(0)
	m.count.SetValue("")
	press(m, runes("x"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 3, sess.FieldCount())
	assert.Len(t, m.cells, 3)
	assert.Equal(t, 0, m.focus)
}

func TestCountAboveLimit(t *testing.T) {
	sess := animalSession()
	m := New(sess, nil)
	press(m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})

	m.setFocus(0)
	m.count.SetValue("")
	press(m, runes("9"), runes("9"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 3, sess.FieldCount())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), fmt.Sprintf("At most %d letters", session.MaxFields))
}

func TestCellEditing(t *testing.T) {
	sess := animalSession()
	m := New(sess, nil)
	press(m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})

	press(m, runes("d"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("?"))
	assert.Equal(t, []string{"d", "", ""}, m.cells)
	assert.Equal(t, []string{"dog"}, sess.View().Words)

	m.setFocus(1)
	press(m, runes("7"))
	assert.Equal(t, "d", m.cells[0], "digits are not letters")
	assert.Equal(t, 1, m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.cells[0])
	assert.Equal(t, 1, m.focus)
	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 0, m.focus, "backspace on an empty cell moves back")
}

func TestArrowKeys(t *testing.T) {
	sess := animalSession()
	m := New(sess, nil)
	press(m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})

	press(m, runes("c"), runes("a"), tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, m.excludeIndex(), m.focus)

	press(m, runes("x"), runes("y"), tea.KeyMsg{Type: tea.KeyLeft}, runes("z"))
	assert.Equal(t, m.excludeIndex(), m.focus, "left moves the cursor, not the focus")
	assert.Equal(t, "xzy", sess.Excluded())
	assert.Equal(t, []string{"c", "a", ""}, m.cells)

	m.setFocus(2)
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.focus)
	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 3, m.focus)
	assert.Equal(t, []string{"c", "a", ""}, m.cells)
}

func TestPagingKeys(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = fmt.Sprintf("w%02d", i)
	}
	sess := session.New(nil, session.DefaultOptions())
	sess.SetWords("numbers", words)
	sess.SetPattern("...")
	m := New(sess, nil)

	press(m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, sess.Page())
	assert.Contains(t, m.View(), "Page 3 of 3")
	assert.Contains(t, m.View(), "w24")

	press(m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 1, sess.Page())
}

func TestCycleLists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "animals.txt"), []byte("cat\ndog\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "birds.txt"), []byte("owl\n"), 0o644))
	cat, err := wordlist.Scan(dir)
	require.NoError(t, err)
	sess := session.New(cat, session.DefaultOptions())
	require.NoError(t, sess.SelectDefault())
	m := New(sess, nil)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "birds", sess.ListName())
	assert.Contains(t, m.status, "birds")

	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "animals", sess.ListName())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.Equal(t, "birds", sess.ListName())
}

func TestListChangeReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animals.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\n"), 0o644))
	cat, err := wordlist.Scan(dir)
	require.NoError(t, err)
	sess := session.New(cat, session.DefaultOptions())
	require.NoError(t, sess.SelectDefault())

	changes := make(chan wordlist.Change, 1)
	m := New(sess, changes)

	require.NoError(t, os.WriteFile(path, []byte("cat\ncow\n"), 0o644))
	changes <- wordlist.Change{Kind: wordlist.ListModified, Name: "animals", Path: path}

	msg := m.waitForChange()()
	require.IsType(t, listChangedMsg{}, msg)
	cmd := press(m, msg)
	assert.NotNil(t, cmd, "the model keeps listening")
	assert.Equal(t, []string{"cat", "cow"}, sess.Words())
	assert.True(t, strings.HasPrefix(m.status, "Reloaded"))

	close(changes)
	assert.IsType(t, watchClosedMsg{}, m.waitForChange()())
}

func TestQuit(t *testing.T) {
	m := New(animalSession(), nil)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
