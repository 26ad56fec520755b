package main

import "github.com/spf13/cobra"

// registerWaitCommands implements the single multiplexed `wait` action:
// exactly one of --text/--url/--function/--selector/--state is usually
// given; with none, it waits for --timeout milliseconds of wall time.
func registerWaitCommands(root *cobra.Command) {
	var text, url, function, selector, state string
	var timeout int

	waitCmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for text, a URL, a predicate, a selector, a load state, or a plain timeout",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{"timeout": timeout}
			switch {
			case selector != "":
				params["selector"] = selector
			case url != "":
				params["url"] = url
			case function != "":
				params["function"] = function
			case state != "":
				params["state"] = state
			case text != "":
				params["text"] = text
			}
			runAction("wait", params)
		},
	}
	waitCmd.Flags().StringVar(&text, "text", "", "wait until the page's visible text contains this substring")
	waitCmd.Flags().StringVar(&url, "url", "", "wait until the URL matches this pattern")
	waitCmd.Flags().StringVar(&function, "function", "", "wait until this JS expression is truthy")
	waitCmd.Flags().StringVarP(&selector, "selector", "s", "", "wait until this selector resolves")
	waitCmd.Flags().StringVar(&state, "state", "", "wait for a load state: load, domcontentloaded, networkidle")
	waitCmd.Flags().IntVar(&timeout, "timeout", 30000, "timeout in milliseconds")
	root.AddCommand(waitCmd)
}
