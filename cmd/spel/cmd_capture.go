package main

import "github.com/spf13/cobra"

func registerCaptureCommands(root *cobra.Command) {
	var fullPage bool
	var selector string
	screenshotCmd := &cobra.Command{
		Use:   "screenshot [path]",
		Short: "Capture a screenshot, to a file path or as base64 if omitted",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{"fullPage": fullPage}
			if selector != "" {
				params["selector"] = selector
			}
			if len(args) == 1 {
				params["path"] = args[0]
			}
			runAction("screenshot", params)
		},
	}
	screenshotCmd.Flags().BoolVarP(&fullPage, "full-page", "f", false, "capture the full scrollable page")
	screenshotCmd.Flags().StringVarP(&selector, "selector", "s", "", "capture only this element")
	root.AddCommand(screenshotCmd)

	pdfCmd := &cobra.Command{
		Use:   "pdf [path]",
		Short: "Render the current page to PDF",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{}
			if len(args) == 1 {
				params["path"] = args[0]
			}
			runAction("pdf", params)
		},
	}
	root.AddCommand(pdfCmd)
}
