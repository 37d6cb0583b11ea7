package cli

import (
	"context"
	"os"

	"github.com/bastiangx/hangserve/internal/utils"
	"github.com/bastiangx/hangserve/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer msgpack requests on stdin/stdout",
		Long: `Start the msgpack IPC server for editor plugins and bots.

Requests are read from stdin and responses written to stdout. Logs go to
stderr. The server exits when stdin is closed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			sess, err := a.newSession("")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			srv := server.NewServer(sess, a.cfg.Server.MaxPageSize, os.Stdin, os.Stdout)
			changes, stop := a.watch(ctx)
			defer stop()
			if changes != nil {
				go srv.Follow(ctx, changes)
			}

			showStartupInfo(a.catalog.Dir(), sess.ListName(), len(sess.Words()))
			log.Debug("spawning IPC")
			return srv.Start()
		},
	}
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(listsDir, list string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	log.Info("HangServe IPC", "pid", os.Getpid())
	log.Infof("lists dir: ( %s )", listsDir)
	log.Infof("list: %s (%s words)", list, utils.FormatWithCommas(words))
	log.Info("status: ready")
}
