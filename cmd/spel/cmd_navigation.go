package main

import "github.com/spf13/cobra"

func registerNavigationCommands(root *cobra.Command) {
	root.AddCommand(simpleCommand("open <url>", "Navigate to a URL, launching the browser if needed", []string{"goto", "navigate"}, cobra.ExactArgs(1), "navigate",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"url": args[0]}
		}))

	root.AddCommand(simpleCommand("back", "Navigate back in history", nil, cobra.NoArgs, "back", noParams))
	root.AddCommand(simpleCommand("forward", "Navigate forward in history", nil, cobra.NoArgs, "forward", noParams))
	root.AddCommand(simpleCommand("reload", "Reload the current page", nil, cobra.NoArgs, "reload", noParams))
	root.AddCommand(simpleCommand("url", "Print the current page URL", nil, cobra.NoArgs, "url", noParams))
	root.AddCommand(simpleCommand("title", "Print the current page title", nil, cobra.NoArgs, "title", noParams))
	root.AddCommand(simpleCommand("content", "Print the current page HTML", nil, cobra.NoArgs, "content", noParams))
}

func noParams(cmd *cobra.Command, args []string) map[string]interface{} { return nil }
