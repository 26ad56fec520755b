package main

import "github.com/spf13/cobra"

func registerTraceCommands(root *cobra.Command) {
	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Record a browser trace",
	}
	traceCmd.AddCommand(simpleCommand("start", "Begin recording a trace", nil, cobra.NoArgs, "trace_start", noParams))
	traceCmd.AddCommand(simpleCommand("stop [path]", "Stop recording and flush the trace to a zip archive", nil, cobra.MaximumNArgs(1), "trace_stop",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			if len(args) == 1 {
				return map[string]interface{}{"path": args[0]}
			}
			return nil
		}))
	root.AddCommand(traceCmd)

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Captured console messages",
	}
	consoleCmd.AddCommand(simpleCommand("get", "Print captured console messages", nil, cobra.NoArgs, "console_get", noParams))
	consoleCmd.AddCommand(simpleCommand("clear", "Clear the console ring", nil, cobra.NoArgs, "console_clear", noParams))
	consoleCmd.AddCommand(simpleCommand("start", "No-op: console capture runs continuously once a browser exists", nil, cobra.NoArgs, "console_start", noParams))
	root.AddCommand(consoleCmd)

	errorsCmd := &cobra.Command{
		Use:   "errors",
		Short: "Captured uncaught page errors",
	}
	errorsCmd.AddCommand(simpleCommand("get", "Print captured page errors", nil, cobra.NoArgs, "errors_get", noParams))
	errorsCmd.AddCommand(simpleCommand("clear", "Clear the error ring", nil, cobra.NoArgs, "errors_clear", noParams))
	errorsCmd.AddCommand(simpleCommand("start", "No-op: error capture runs continuously once a browser exists", nil, cobra.NoArgs, "errors_start", noParams))
	root.AddCommand(errorsCmd)
}
