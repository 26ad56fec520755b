package main

import "github.com/spf13/cobra"

func registerSessionCommands(root *cobra.Command) {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect daemon sessions",
	}
	sessionCmd.AddCommand(simpleCommand("list", "List every session with a live or stale daemon", nil, cobra.NoArgs, "session_list", noParams))
	sessionCmd.AddCommand(simpleCommand("info", "Print this session's daemon state", nil, cobra.NoArgs, "session_info", noParams))
	root.AddCommand(sessionCmd)
}

func registerConnectCommands(root *cobra.Command) {
	root.AddCommand(simpleCommand("connect <cdp-url>", "Attach to an already-running browser over CDP/BiDi", nil, cobra.ExactArgs(1), "connect",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"cdp": args[0]}
		}))
}

func registerCloseCommands(root *cobra.Command) {
	root.AddCommand(simpleCommand("close", "Shut down the daemon for this session", []string{"quit", "exit"}, cobra.NoArgs, "close", noParams))
}
