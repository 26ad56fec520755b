package main

import "github.com/spf13/cobra"

func registerDialogCommands(root *cobra.Command) {
	dialogCmd := &cobra.Command{
		Use:   "dialog",
		Short: "Handle native dialogs (alert/confirm/prompt)",
	}

	var reply string
	acceptCmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept every dialog from now on, optionally with prompt text",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAction("dialog_accept", map[string]interface{}{"text": reply})
		},
	}
	acceptCmd.Flags().StringVar(&reply, "text", "", "text to supply to a prompt() dialog")
	dialogCmd.AddCommand(acceptCmd)

	dialogCmd.AddCommand(simpleCommand("dismiss", "Dismiss every dialog from now on", nil, cobra.NoArgs, "dialog_dismiss", noParams))
	root.AddCommand(dialogCmd)
}
