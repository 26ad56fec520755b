package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func registerTabCommands(root *cobra.Command) {
	tabCmd := &cobra.Command{
		Use:   "tab",
		Short: "Manage browser tabs",
	}

	tabCmd.AddCommand(simpleCommand("new [url]", "Open a new tab, optionally navigating it", nil, cobra.MaximumNArgs(1), "tab_new",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			if len(args) == 1 {
				return map[string]interface{}{"url": args[0]}
			}
			return nil
		}))
	tabCmd.AddCommand(simpleCommand("list", "List open tabs", nil, cobra.NoArgs, "tab_list", noParams))
	tabCmd.AddCommand(simpleCommand("switch <index>", "Switch the active tab", nil, cobra.ExactArgs(1), "tab_switch",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			idx, _ := strconv.Atoi(args[0])
			return map[string]interface{}{"index": idx}
		}))
	tabCmd.AddCommand(simpleCommand("close [index]", "Close a tab (default: the active one)", nil, cobra.MaximumNArgs(1), "tab_close",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			if len(args) == 1 {
				idx, _ := strconv.Atoi(args[0])
				return map[string]interface{}{"index": idx}
			}
			return nil
		}))

	root.AddCommand(tabCmd)
}
