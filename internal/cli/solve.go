package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// solveOutput is the machine readable form of one solve.
type solveOutput struct {
	List     string         `json:"list" yaml:"list"`
	Pattern  string         `json:"pattern" yaml:"pattern"`
	Excluded string         `json:"excluded" yaml:"excluded"`
	Words    []string       `json:"words" yaml:"words"`
	Letters  []letterOutput `json:"letters" yaml:"letters"`
	Total    int            `json:"total" yaml:"total"`
	Page     int            `json:"page" yaml:"page"`
	Pages    int            `json:"pages" yaml:"pages"`
}

type letterOutput struct {
	Letter string `json:"letter" yaml:"letter"`
	Count  int    `json:"count" yaml:"count"`
}

func newSolveCommand() *cobra.Command {
	var (
		exclude  string
		list     string
		page     int
		pageSize int
		format   string
	)

	solveCmd := &cobra.Command{
		Use:   "solve PATTERN",
		Short: "Print the words matching one board",
		Long: `Print the words matching a pattern, one page at a time.

Use '.', '_' or '?' for unknown letters. Letters passed to --exclude never
appear in a result.`,
		Example: `  hangserve solve ca.
  hangserve solve h_ng__n --exclude "eo" --list english
  hangserve solve ..... -x aeiou --page 2 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			a, err := loadApp()
			if err != nil {
				return err
			}
			if pageSize > 0 {
				a.cfg.UI.PageSize = pageSize
			}
			sess, err := a.newSession(list)
			if err != nil {
				return err
			}
			if !utils.IsValidPattern(pattern, sess.Options().Wildcard) {
				return fmt.Errorf("invalid pattern %q: use letters and '.', '_' or '?'", pattern)
			}
			if len([]rune(pattern)) > session.MaxFields {
				return fmt.Errorf("pattern exceeds maximum length of %d letters", session.MaxFields)
			}

			sess.SetPattern(pattern)
			sess.SetExcluded(exclude)
			sess.SetPage(page - 1)
			return writeView(cmd.OutOrStdout(), format, sess.View())
		},
	}

	solveCmd.Flags().StringVarP(&exclude, "exclude", "x", "", "letters known not to be in the word")
	solveCmd.Flags().StringVar(&list, "list", "", "word list to search (default from config)")
	solveCmd.Flags().IntVarP(&page, "page", "p", 1, "page to print, starting at 1")
	solveCmd.Flags().IntVar(&pageSize, "page-size", 0, "words per page (default from config)")
	solveCmd.Flags().StringVarP(&format, "output", "o", "text", "output format (text, json, yaml)")

	return solveCmd
}

// writeView renders a snapshot in the requested format.
func writeView(w io.Writer, format string, view session.Snapshot) error {
	switch strings.ToLower(format) {
	case "", "text":
		return writeViewText(w, view)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toSolveOutput(view))
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toSolveOutput(view)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func toSolveOutput(view session.Snapshot) solveOutput {
	letters := make([]letterOutput, len(view.Letters))
	for i, lc := range view.Letters {
		letters[i] = letterOutput{Letter: string(lc.Letter), Count: lc.Count}
	}
	words := view.Words
	if words == nil {
		words = []string{}
	}
	return solveOutput{
		List:     view.List,
		Pattern:  view.Pattern,
		Excluded: view.Excluded,
		Words:    words,
		Letters:  letters,
		Total:    view.Total,
		Page:     view.Page + 1,
		Pages:    view.Pages,
	}
}

func writeViewText(w io.Writer, view session.Snapshot) error {
	if view.Total == 0 {
		_, err := fmt.Fprintf(w, "No words match '%s' in %s\n", view.Pattern, view.List)
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s words match '%s' in %s (%s)\n",
		utils.FormatWithCommas(view.Total), view.Pattern, view.List, view.PageLabel())
	for i, word := range view.Words {
		fmt.Fprintf(&b, "%4d. %s\n", view.Start+i+1, wordStyle.Render(word))
	}
	b.WriteString("\nCommon letters:\n")
	for _, line := range view.LetterLines() {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
