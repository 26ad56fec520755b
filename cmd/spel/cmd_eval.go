package main

import "github.com/spf13/cobra"

func registerEvalCommands(root *cobra.Command) {
	var selector string
	var base64Out bool
	evalCmd := &cobra.Command{
		Use:     "evaluate <script>",
		Aliases: []string{"eval"},
		Short:   "Run JavaScript in the page, or scoped to an element with --selector",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{"script": args[0], "base64": base64Out}
			if selector != "" {
				params["selector"] = selector
			}
			runAction("evaluate", params)
		},
	}
	evalCmd.Flags().StringVarP(&selector, "selector", "s", "", "scope evaluation to this element")
	evalCmd.Flags().BoolVar(&base64Out, "base64", false, "base64-encode the result")
	root.AddCommand(evalCmd)
}
