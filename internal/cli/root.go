// Package cli wires the hangserve commands: the TUI, the line REPL, the IPC
// server and the one-shot helpers.
package cli

import (
	"context"
	"fmt"

	"github.com/bastiangx/hangserve/internal/logger"
	"github.com/bastiangx/hangserve/internal/tui"
	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/config"
	"github.com/bastiangx/hangserve/pkg/session"
	"github.com/bastiangx/hangserve/pkg/solver"
	"github.com/bastiangx/hangserve/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	listsDir     string
	multiplicity string
	debugMode    bool
)

// NewRootCommand creates the root command. Without a subcommand it starts the TUI.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hangserve",
		Short: "Hangman word finder",
		Long: `HangServe narrows a word list down to the words that fit a hangman board.

Give it the word length, the letters you already know and the letters the
game rejected; it lists every candidate and the letters most worth guessing.

Run without a subcommand for the interactive TUI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(debugMode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&listsDir, "lists", "l", "", "directory holding the .txt word lists")
	rootCmd.PersistentFlags().StringVar(&multiplicity, "multiplicity", "", "repeated pattern letters: ignore or exact (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "toggle debug mode")

	rootCmd.AddCommand(newCLICommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newListsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// app is everything a command needs after startup.
type app struct {
	cfg     *config.Config
	cfgPath string
	catalog *wordlist.Catalog
}

// loadApp reads the config and scans the word list directory. Flags win over
// the config file and the environment.
func loadApp() (*app, error) {
	cfg, cfgPath, err := config.LoadConfigWithPriority(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(cfgPath))

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	dir := pathResolver.GetListsDir(cfg.Lists.Dir)
	log.Debugf("Using lists dir at: %s", dir)

	catalog, err := wordlist.Scan(dir)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, cfgPath: cfgPath, catalog: catalog}, nil
}

// applyFlags copies the persistent flags that were given onto cfg.
func applyFlags(cfg *config.Config) error {
	if listsDir != "" {
		cfg.Lists.Dir = listsDir
	}
	if multiplicity != "" {
		policy, err := solver.ParseMultiplicity(multiplicity)
		if err != nil {
			return err
		}
		cfg.Solver.EnforceMultiplicity = policy == solver.MultiplicityExact
	}
	return nil
}

// newSession builds a session with the configured options and selects name,
// the configured default list, or the first list in that order.
func (a *app) newSession(name string) (*session.Session, error) {
	sess := session.New(a.catalog, a.cfg.SessionOptions())
	if name == "" {
		name = a.cfg.Lists.Default
	}
	var err error
	if name != "" {
		err = sess.SelectList(name)
	} else {
		err = sess.SelectDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	return sess, nil
}

// watch starts the list directory watcher when enabled. The returned channel
// is nil when watching is off, which blocks forever in a select.
func (a *app) watch(ctx context.Context) (<-chan wordlist.Change, func()) {
	if !a.cfg.Lists.Watch {
		return nil, func() {}
	}
	w, err := wordlist.Watch(a.catalog.Dir())
	if err != nil {
		log.Warnf("Live list refresh disabled: %v", err)
		return nil, func() {}
	}
	go w.Run(ctx)
	return w.Changes(), func() {
		if err := w.Close(); err != nil {
			log.Debugf("Closing watcher: %v", err)
		}
	}
}

func runTUI(ctx context.Context) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	sess, err := a.newSession("")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	changes, stop := a.watch(ctx)
	defer stop()

	return tui.Run(sess, changes, debugMode)
}
