// Package tui is the interactive front end: a field count input, one cell per
// letter, the excluded letters, and the matching words with their most common
// letters next to them.
package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// listChangedMsg carries one change of the word list directory.
type listChangedMsg struct {
	change wordlist.Change
}

// watchClosedMsg is sent once the change channel is closed.
type watchClosedMsg struct{}

// Model is the bubbletea model over a session. Focus index 0 is the field
// count, 1..n are the letter cells and n+1 is the excluded letters input.
type Model struct {
	session *session.Session
	changes <-chan wordlist.Change

	keys    keyMap
	help    help.Model
	pager   paginator.Model
	count   textinput.Model
	cells   []string
	exclude textinput.Model
	focus   int

	status    string
	statusErr bool
	width     int
}

// New creates the model. changes may be nil when the list directory is not watched.
func New(sess *session.Session, changes <-chan wordlist.Change) *Model {
	count := textinput.New()
	count.Prompt = ""
	count.Placeholder = "0"
	count.CharLimit = 2
	count.Width = 3
	if n := sess.FieldCount(); n > 0 {
		count.SetValue(fmt.Sprint(n))
	}

	exclude := textinput.New()
	exclude.Prompt = ""
	exclude.Placeholder = "letters not in the word"
	exclude.Width = 30
	exclude.SetValue(sess.Excluded())

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = Styles.PageDot.Render("•")
	pager.InactiveDot = Styles.PageDim.Render("•")

	m := &Model{
		session: sess,
		changes: changes,
		keys:    newKeyMap(),
		help:    help.New(),
		pager:   pager,
		count:   count,
		cells:   sess.Fields(),
		exclude: exclude,
	}
	m.setFocus(0)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return watchClosedMsg{}
		}
		return listChangedMsg{change: change}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case listChangedMsg:
		m.applyChange(msg.change)
		return m, m.waitForChange()

	case watchClosedMsg:
		m.changes = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.session.NextPage()
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		m.session.PrevPage()
		return m, nil
	case key.Matches(msg, m.keys.NextList):
		m.cycleList(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevList):
		m.cycleList(-1)
		return m, nil
	case key.Matches(msg, m.keys.Generate) && m.focus == 0:
		return m, m.generate()
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Generate):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)
	}

	if cell, ok := m.focusedCell(); ok {
		switch {
		case key.Matches(msg, m.keys.CellNext):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.CellPrev):
			return m, m.setFocus(m.focus - 1)
		}
		return m, m.editCell(cell, msg)
	}
	cmd := m.updateFocusedInput(msg)
	if m.focus == m.excludeIndex() {
		m.session.SetExcluded(m.exclude.Value())
	}
	return m, cmd
}

// generate rebuilds the letter cells from the count input. Anything but a
// number is ignored.
func (m *Model) generate() tea.Cmd {
	if !m.session.SetFieldCount(m.count.Value()) {
		log.Debugf("Ignoring field count %q", m.count.Value())
		if utils.IsOnlyNumbers(strings.TrimSpace(m.count.Value())) {
			m.setStatus(fmt.Sprintf("At most %d letters", session.MaxFields), true)
		}
		return nil
	}
	m.cells = m.session.Fields()
	m.setStatus(fmt.Sprintf("%d letters", len(m.cells)), false)
	if len(m.cells) == 0 {
		return m.setFocus(m.excludeIndex())
	}
	return m.setFocus(1)
}

// editCell handles a key typed into letter cell i. A letter fills the cell and
// moves on; space or a wildcard marks it unknown; backspace clears it.
func (m *Model) editCell(i int, msg tea.KeyMsg) tea.Cmd {
	wildcard := m.session.Options().Wildcard
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		if m.cells[i] == "" {
			return m.setFocus(m.focus - 1)
		}
		m.setCell(i, "")
		return nil
	case tea.KeySpace:
		m.setCell(i, "")
		return m.setFocus(m.focus + 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return nil
		}
		r := msg.Runes[0]
		switch {
		case utils.IsWildcardAlias(r, wildcard):
			m.setCell(i, "")
		case unicode.IsLetter(r) || utils.IsWordPunct(r):
			m.setCell(i, string(r))
		default:
			return nil
		}
		return m.setFocus(m.focus + 1)
	}
	return nil
}

func (m *Model) setCell(i int, text string) {
	m.session.SetField(i, text)
	m.cells[i] = m.session.Field(i)
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.count, cmd = m.count.Update(msg)
	case m.excludeIndex():
		m.exclude, cmd = m.exclude.Update(msg)
	}
	return cmd
}

func (m *Model) excludeIndex() int {
	return len(m.cells) + 1
}

func (m *Model) focusedCell() (int, bool) {
	if m.focus >= 1 && m.focus <= len(m.cells) {
		return m.focus - 1, true
	}
	return 0, false
}

// setFocus moves focus to i, clamped to the available inputs.
func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = max(0, min(i, m.excludeIndex()))
	m.count.Blur()
	m.exclude.Blur()
	switch m.focus {
	case 0:
		return m.count.Focus()
	case m.excludeIndex():
		return m.exclude.Focus()
	}
	return nil
}

func (m *Model) cycleList(step int) {
	cat := m.session.Catalog()
	if cat == nil {
		return
	}
	names := cat.Names()
	if len(names) == 0 {
		return
	}
	idx := 0
	for i, n := range names {
		if n == m.session.ListName() {
			idx = i
			break
		}
	}
	next := names[(idx+step+len(names))%len(names)]
	if err := m.session.SelectList(next); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("Loaded %s (%s words)", next, utils.FormatWithCommas(len(m.session.Words()))), false)
}

// applyChange refreshes the catalog after a list file changed and reloads the
// selected list when it was rewritten.
func (m *Model) applyChange(change wordlist.Change) {
	cat := m.session.Catalog()
	if cat == nil {
		return
	}
	if err := cat.Refresh(); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if change.Name != m.session.ListName() {
		m.setStatus(fmt.Sprintf("List %s %s", change.Name, change.Kind), false)
		return
	}
	switch change.Kind {
	case wordlist.ListAdded, wordlist.ListModified:
		if err := m.session.Reload(); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		m.setStatus(fmt.Sprintf("Reloaded %s", change.Name), false)
	case wordlist.ListRemoved:
		m.setStatus(fmt.Sprintf("%s was removed, keeping it in memory", change.Name), true)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	if isErr {
		log.Warn(text)
	} else {
		log.Debug(text)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	view := m.session.View()

	header := Styles.Title.Render("HangServe") + "  " + Styles.List.Render(view.List)

	countRow := Styles.Label.Render("Letters") + m.count.View()
	excludeRow := Styles.Label.Render("Excluded") + m.exclude.View()

	sections := []string{
		header,
		Styles.Sections.Render(countRow),
		m.renderCells(),
		excludeRow,
		Styles.Sections.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderWords(view), " ", m.renderLetters(view))),
		m.renderPager(view),
	}
	if m.status != "" {
		style := Styles.Status
		if m.statusErr {
			style = Styles.Error
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderCells() string {
	if len(m.cells) == 0 {
		return Styles.Empty.Render("type a word length and press enter")
	}
	wildcard := string(m.session.Options().Wildcard)
	cells := make([]string, len(m.cells))
	for i, c := range m.cells {
		style := Styles.Cell
		if m.focus == i+1 {
			style = Styles.CellOn
		}
		if c == "" {
			c = Styles.Muted.Render(wildcard)
		}
		cells[i] = style.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderWords(view session.Snapshot) string {
	if view.Total == 0 {
		return Styles.Panel.Render(Styles.Empty.Render("no matching words"))
	}
	lines := make([]string, 0, len(view.Words)+1)
	lines = append(lines, Styles.Muted.Render(fmt.Sprintf("%s matches", utils.FormatWithCommas(view.Total))))
	for i, w := range view.Words {
		lines = append(lines, Styles.Index.Render(fmt.Sprintf("%d.", view.Start+i+1))+" "+Styles.Word.Render(w))
	}
	return Styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderLetters(view session.Snapshot) string {
	if len(view.Letters) == 0 {
		return ""
	}
	lines := make([]string, 0, len(view.Letters)+1)
	lines = append(lines, Styles.Muted.Render("common"))
	for _, lc := range view.Letters {
		lines = append(lines, Styles.Letter.Render(string(lc.Letter))+Styles.Count.Render(fmt.Sprintf(": %d", lc.Count)))
	}
	return Styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPager(view session.Snapshot) string {
	m.pager.TotalPages = view.Pages
	m.pager.Page = view.Page
	prev, next := Styles.PageDim.Render("‹ prev"), Styles.PageDim.Render("next ›")
	if view.HasPrev {
		prev = Styles.Status.Render("‹ prev")
	}
	if view.HasNext {
		next = Styles.Status.Render("next ›")
	}
	return strings.Join([]string{prev, m.pager.View(), Styles.Muted.Render(view.PageLabel()), next}, "  ")
}
