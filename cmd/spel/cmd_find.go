package main

import "github.com/spf13/cobra"

// registerFindCommands implements spec's semantic `find` action: locate an
// element by {role, text, label, placeholder, alt, title, testid} and
// optionally perform an action on it in the same round trip. The daemon's
// selector builder rejects the kinds first, last and nth, matches --name
// as a case-insensitive substring of aria-label, and does not apply
// --exact.
func registerFindCommands(root *cobra.Command) {
	var name string
	var exact bool
	var nth int
	var frame string
	var findAction string

	findCmd := &cobra.Command{
		Use:   "find <kind> <value>",
		Short: "Find an element by semantic locator (role, text, label, placeholder, alt, title, testid)",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{"kind": args[0]}
			if len(args) == 2 {
				params["value"] = args[1]
			}
			if name != "" {
				params["name"] = name
			}
			if exact {
				params["exact"] = true
			}
			if nth != 0 {
				params["nth"] = nth
			}
			if frame != "" {
				params["frame"] = frame
			}
			if findAction != "" {
				params["find_action"] = findAction
			}
			runAction("find", params)
		},
	}
	findCmd.Flags().StringVar(&name, "name", "", "accessible-name filter for role lookups (case-insensitive substring of aria-label)")
	findCmd.Flags().BoolVar(&exact, "exact", false, "sent to the daemon; its selector builder does not apply it")
	findCmd.Flags().IntVar(&nth, "nth", 0, "select the Nth match (0-indexed)")
	findCmd.Flags().StringVar(&frame, "frame", "", "scope the search to this child frame")
	findCmd.Flags().StringVar(&findAction, "action", "", "perform this action on the match: click, fill, type, check, uncheck, hover, focus, text, count, visible")
	root.AddCommand(findCmd)
}
