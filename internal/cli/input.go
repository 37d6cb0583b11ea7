package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/hangserve/internal/logger"
	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler reads board states from a line based input and prints the
// candidates. A line is "pattern [excluded letters]", e.g. "ca. t", or one
// of the colon commands listed by :help.
type InputHandler struct {
	session      *session.Session
	in           io.Reader
	out          *log.Logger
	requestCount int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(sess *session.Session, in io.Reader, out io.Writer, noFilter bool) *InputHandler {
	return &InputHandler{
		session:  sess,
		in:       in,
		out:      logger.NewWithConfig(out, "", log.InfoLevel, false, false, log.TextFormatter),
		noFilter: noFilter,
	}
}

// Start begins the interface loop. It returns nil on EOF or :quit.
func (h *InputHandler) Start() error {
	h.out.Print("HangServe CLI")
	h.out.Printf("list: %s, type a pattern like 'ca.' and the wrong guesses, :help for commands", h.session.ListName())
	scanner := bufio.NewScanner(h.in)

	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !h.handleInput(line) {
			return nil
		}
	}
}

// handleInput processes one line and reports whether the loop should continue.
func (h *InputHandler) handleInput(line string) bool {
	h.requestCount++

	if strings.HasPrefix(line, ":") {
		return h.handleCommand(line)
	}

	pattern, excluded, _ := strings.Cut(line, " ")
	if !h.noFilter {
		if !utils.IsValidPattern(pattern, h.session.Options().Wildcard) {
			h.out.Errorf("Invalid pattern: '%s'", pattern)
			return true
		}
		if !utils.IsValidExclusion(excluded) {
			h.out.Errorf("Invalid excluded letters: '%s'", excluded)
			return true
		}
	} else {
		h.out.Debug("Input filtering disabled")
	}
	if len([]rune(pattern)) > session.MaxFields {
		h.out.Errorf("Pattern too long: %d letters max", session.MaxFields)
		return true
	}

	h.session.SetPattern(pattern)
	h.session.SetExcluded(excluded)
	h.printView()
	return true
}

func (h *InputHandler) handleCommand(line string) bool {
	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "q", "quit", "exit":
		return false
	case "n", "next":
		if !h.session.NextPage() {
			h.out.Warn("Already on the last page")
			return true
		}
		h.printView()
	case "p", "prev":
		if !h.session.PrevPage() {
			h.out.Warn("Already on the first page")
			return true
		}
		h.printView()
	case "lists":
		cat := h.session.Catalog()
		if cat == nil {
			h.out.Error(session.ErrNoCatalog)
			return true
		}
		for _, n := range cat.Names() {
			marker := " "
			if n == h.session.ListName() {
				marker = "*"
			}
			h.out.Printf("%s %s", marker, n)
		}
	case "list":
		if arg == "" {
			h.out.Printf("current list: %s", h.session.ListName())
			return true
		}
		if err := h.session.SelectList(arg); err != nil {
			h.out.Error(err)
			return true
		}
		h.out.Printf("Loaded %s (%s words)", h.session.ListName(), utils.FormatWithCommas(len(h.session.Words())))
	case "help":
		h.out.Print("ca. t        pattern 'ca.' with 't' ruled out ('.', '_' and '?' are unknown letters)")
		h.out.Print(":next :prev  page through the matches")
		h.out.Print(":list NAME   switch word list (prefixes work)")
		h.out.Print(":lists       show the available lists")
		h.out.Print(":quit        leave")
	default:
		h.out.Errorf("Unknown command: %s", name)
	}
	return true
}

func (h *InputHandler) printView() {
	start := time.Now()
	view := h.session.View()
	log.Debugf("Took [ %v ] for pattern '%s'", time.Since(start), view.Pattern)

	if view.Total == 0 {
		h.out.Warnf("No words match '%s'", view.Pattern)
		return
	}

	h.out.Printf("Found %s words for '%s' (%d of %d known, %s):", utils.FormatWithCommas(view.Total),
		view.Pattern, view.Known, len(view.Fields), view.PageLabel())
	for i, w := range view.Words {
		h.out.Printf("%4d. %s", view.Start+i+1, wordStyle.Render(w))
	}
	h.out.Printf("Common letters: %s", strings.Join(view.LetterLines(), ", "))
}

func newCLICommand() *cobra.Command {
	var noFilter bool

	cliCmd := &cobra.Command{
		Use:   "cli",
		Short: "Line based solver, useful for testing and scripting",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			sess, err := a.newSession("")
			if err != nil {
				return err
			}
			log.SetReportTimestamp(false)
			return NewInputHandler(sess, cmd.InOrStdin(), cmd.ErrOrStderr(), noFilter).Start()
		},
	}
	cliCmd.Flags().BoolVar(&noFilter, "no-filter", false, "accept patterns with digits and symbols")

	return cliCmd
}
