package main

import "github.com/spf13/cobra"

func registerSnapshotCommands(root *cobra.Command) {
	var interactiveFlag, cursorFlag, compactFlag bool
	var depth int
	var selector string

	snapCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture the accessibility-tree snapshot of the current page",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{
				"interactive": interactiveFlag,
				"cursor":      cursorFlag,
				"compact":     compactFlag,
			}
			if depth > 0 {
				params["depth"] = depth
			}
			if selector != "" {
				params["selector"] = selector
			}
			runAction("snapshot", params)
		},
	}
	snapCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "only interactive elements")
	snapCmd.Flags().BoolVarP(&cursorFlag, "cursor", "c", false, "only the focused element (implies --interactive)")
	snapCmd.Flags().BoolVarP(&compactFlag, "compact", "C", false, "drop bare generic containers")
	snapCmd.Flags().IntVarP(&depth, "depth", "d", 0, "maximum tree depth (0 = unlimited)")
	snapCmd.Flags().StringVarP(&selector, "selector", "s", "", "scope capture to this CSS selector")
	root.AddCommand(snapCmd)

	root.AddCommand(simpleCommand("annotate", "Draw ref badges and bounding boxes over the current page", nil, cobra.NoArgs, "annotate", noParams))
	root.AddCommand(simpleCommand("unannotate", "Remove annotate overlays", nil, cobra.NoArgs, "unannotate", noParams))
	root.AddCommand(simpleCommand("clear-refs", "Discard the current ref table", nil, cobra.NoArgs, "clear-refs", noParams))
}
