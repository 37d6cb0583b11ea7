package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/hangserve/internal/logger"
	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	tea "github.com/charmbracelet/bubbletea"
)

// LogFile is where the TUI writes its log in debug mode.
var LogFile = filepath.Join(os.TempDir(), utils.AppDirName, "tui.log")

// Run starts the TUI and blocks until the user quits. The terminal belongs to
// the TUI while it runs, so logs are discarded, or written to LogFile in
// debug mode.
func Run(sess *session.Session, changes <-chan wordlist.Change, debug bool) error {
	path := ""
	if debug {
		path = LogFile
	}
	restore, err := logger.RedirectToFile(path)
	if err != nil {
		return err
	}
	defer restore()

	p := tea.NewProgram(New(sess, changes), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
