package main

import "github.com/spf13/cobra"

func registerFrameCommands(root *cobra.Command) {
	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "Work with child frames",
	}
	frameCmd.AddCommand(simpleCommand("switch <name-or-url>", "Scope subsequent commands to a child frame", nil, cobra.ExactArgs(1), "frame_switch",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"frame": args[0]}
		}))
	frameCmd.AddCommand(simpleCommand("list", "List child frames of the current page", nil, cobra.NoArgs, "frame_list", noParams))
	root.AddCommand(frameCmd)
}
