package main

import "github.com/spf13/cobra"

func registerStateCommands(root *cobra.Command) {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Save, load, and inspect named storage-state snapshots",
	}

	stateCmd.AddCommand(simpleCommand("save <name>", "Save the current context's storage state under a name", nil, cobra.ExactArgs(1), "state_save",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"name": args[0]}
		}))
	stateCmd.AddCommand(simpleCommand("load <name>", "Recreate the context from a saved storage state", nil, cobra.ExactArgs(1), "state_load",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"name": args[0]}
		}))
	stateCmd.AddCommand(simpleCommand("list", "List saved storage-state names", nil, cobra.NoArgs, "state_list", noParams))
	stateCmd.AddCommand(simpleCommand("show <name>", "Print a saved storage state", nil, cobra.ExactArgs(1), "state_show",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"name": args[0]}
		}))
	stateCmd.AddCommand(simpleCommand("rename <from> <to>", "Rename a saved storage state", nil, cobra.ExactArgs(2), "state_rename",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"from": args[0], "to": args[1]}
		}))
	stateCmd.AddCommand(simpleCommand("clear <name>", "Delete a saved storage state", nil, cobra.ExactArgs(1), "state_clear",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"name": args[0]}
		}))

	var maxAgeDays int
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete saved storage states older than --max-age-days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAction("state_clean", map[string]interface{}{"maxAgeDays": maxAgeDays})
		},
	}
	cleanCmd.Flags().IntVar(&maxAgeDays, "max-age-days", 30, "age threshold in days")
	stateCmd.AddCommand(cleanCmd)

	root.AddCommand(stateCmd)
}
