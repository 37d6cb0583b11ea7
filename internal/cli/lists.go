package cli

import (
	"fmt"
	"io"

	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var defaultListStyle = lipgloss.NewStyle().Bold(true)

func newListsCommand() *cobra.Command {
	var counts bool

	listsCmd := &cobra.Command{
		Use:   "lists",
		Short: "Show the available word lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), a.catalog, a.cfg.Lists.Default, counts)
		},
	}
	listsCmd.Flags().BoolVar(&counts, "counts", false, "load every list and show its word count")

	return listsCmd
}

// writeCatalog prints one list per line and marks the one a session starts
// with. configured is the default from the config, which wins when it resolves.
func writeCatalog(w io.Writer, catalog *wordlist.Catalog, configured string, counts bool) error {
	names := catalog.Names()
	if len(names) == 0 {
		return fmt.Errorf("%w in %s", wordlist.ErrNoLists, catalog.Dir())
	}

	start, _ := catalog.Default()
	if configured != "" {
		if resolved, err := catalog.Resolve(configured); err == nil {
			start = resolved
		} else {
			log.Warnf("Configured default list: %v", err)
		}
	}

	fmt.Fprintf(w, "Word lists in %s:\n", catalog.Dir())
	for _, name := range names {
		line := "  " + name
		if name == start {
			line = defaultListStyle.Render("* " + name)
		}
		if counts {
			words, err := catalog.Load(name)
			if err != nil {
				return err
			}
			line += fmt.Sprintf(" (%s words)", utils.FormatWithCommas(len(words)))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
