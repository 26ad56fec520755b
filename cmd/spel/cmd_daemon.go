package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spel/spel/internal/bidifacade"
	"github.com/spel/spel/internal/daemon"
	"github.com/spel/spel/internal/log"
	"github.com/spel/spel/internal/process"
)

// newDaemonCmd is the hidden entry point the CLI spawns itself into
// (`spel daemon --session NAME [--headed]`); a user never types it by hand.
func newDaemonCmd() *cobra.Command {
	var daemonSession string
	var headed bool
	var idleMinutes int

	cmd := &cobra.Command{
		Use:    "daemon",
		Short:  "Run the session daemon in the foreground (internal; spawned by the CLI)",
		Hidden: true,
		Args:   cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if debug {
				log.Setup(log.LevelVerbose)
			}
			log.Debug("daemon launched", "session", daemonSession, "headed", headed)

			port := bidifacade.New()
			d := daemon.NewWithPort(daemonSession, version, time.Duration(idleMinutes)*time.Minute, port)

			// Guarantees trace autosave, storage-state autosave, and
			// pid-file/socket cleanup run even when the daemon is killed
			// directly (not via the CLI's close/kill-stale paths).
			process.OnCleanup(d.Shutdown)

			if err := d.Run(context.Background()); err != nil {
				fmt.Fprintln(os.Stderr, "daemon:", err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVar(&daemonSession, "session", "default", "session name")
	cmd.Flags().BoolVar(&headed, "headed", false, "start with a visible browser window")
	cmd.Flags().IntVar(&idleMinutes, "idle-timeout", 0, "shut down automatically after N idle minutes (0 disables)")
	return cmd
}
