package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spel/spel/internal/log"
	"github.com/spel/spel/internal/process"
	"github.com/spel/spel/internal/sessionfs"
)

var version = "dev"

func main() {
	process.SetupSignalHandler()

	progName := filepath.Base(os.Args[0])
	rootCmd := &cobra.Command{
		Use:   progName,
		Short: "spel is a command-line browser-automation driver",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.Setup(log.LevelVerbose)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&session, "session", envDefault("SPEL_SESSION", sessionfs.DefaultSession), "named session")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", envDefaultBool("SPEL_JSON", false), "print raw JSON response")
	rootCmd.PersistentFlags().BoolVar(&interactive, "interactive", false, "force a visible (headed) browser window")
	rootCmd.PersistentFlags().StringVar(&proxy, "proxy", envDefault("SPEL_PROXY", ""), "proxy server URL")
	rootCmd.PersistentFlags().StringVar(&proxyBypass, "proxy-bypass", envDefault("SPEL_PROXY_BYPASS", ""), "comma-separated proxy bypass list")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", envDefault("SPEL_USER_AGENT", ""), "override navigator.userAgent")
	rootCmd.PersistentFlags().StringVar(&executablePath, "executable-path", envDefault("SPEL_EXECUTABLE_PATH", ""), "path to the browser binary")
	rootCmd.PersistentFlags().StringVar(&launchArgs, "args", envDefault("SPEL_ARGS", ""), "comma-separated extra browser launch args")
	rootCmd.PersistentFlags().StringVar(&cdp, "cdp", envDefault("SPEL_CDP", ""), "connect to an existing browser over this WebSocket URL")
	rootCmd.PersistentFlags().BoolVar(&ignoreHTTPSErrors, "ignore-https-errors", envDefaultBool("SPEL_IGNORE_HTTPS_ERRORS", false), "ignore TLS certificate errors")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", envDefault("SPEL_PROFILE", ""), "persistent profile directory")
	rootCmd.PersistentFlags().IntVar(&timeoutMS, "timeout", envDefaultInt("SPEL_TIMEOUT", 30000), "request timeout in milliseconds")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", envDefaultBool("SPEL_DEBUG", false), "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&sessionName, "session-name", "", "name under which to auto-save/auto-load storage state")
	rootCmd.PersistentFlags().StringVar(&headersJSON, "headers", envDefault("SPEL_HEADERS", ""), "JSON object of extra HTTP headers")

	registerNavigationCommands(rootCmd)
	registerSnapshotCommands(rootCmd)
	registerInteractionCommands(rootCmd)
	registerMouseCommands(rootCmd)
	registerCaptureCommands(rootCmd)
	registerEvalCommands(rootCmd)
	registerGetterCommands(rootCmd)
	registerFindCommands(rootCmd)
	registerWaitCommands(rootCmd)
	registerTabCommands(rootCmd)
	registerSettingsCommands(rootCmd)
	registerStorageCommands(rootCmd)
	registerNetworkCommands(rootCmd)
	registerFrameCommands(rootCmd)
	registerDialogCommands(rootCmd)
	registerTraceCommands(rootCmd)
	registerStateCommands(rootCmd)
	registerSessionCommands(rootCmd)
	registerConnectCommands(rootCmd)
	registerCloseCommands(rootCmd)
	rootCmd.AddCommand(newDaemonCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the spel version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
