package main

import "github.com/spf13/cobra"

func registerNetworkCommands(root *cobra.Command) {
	networkCmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect and intercept network traffic",
	}

	var abort, cont bool
	var status int
	var body, contentType string
	routeCmd := &cobra.Command{
		Use:   "route <pattern>",
		Short: "Install an interception handler for a URL pattern",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			action := "fulfill"
			switch {
			case abort:
				action = "abort"
			case cont:
				action = "continue"
			}
			runAction("network_route", map[string]interface{}{
				"pattern": args[0], "action": action,
				"status": status, "body": body, "contentType": contentType,
			})
		},
	}
	routeCmd.Flags().BoolVar(&abort, "abort", false, "abort matching requests")
	routeCmd.Flags().BoolVar(&cont, "continue", false, "let matching requests through unmodified")
	routeCmd.Flags().IntVar(&status, "status", 200, "response status for --fulfill (default)")
	routeCmd.Flags().StringVar(&body, "body", "", "response body for --fulfill (default)")
	routeCmd.Flags().StringVar(&contentType, "content-type", "", "response Content-Type for --fulfill (default)")
	networkCmd.AddCommand(routeCmd)

	networkCmd.AddCommand(simpleCommand("unroute [pattern]", "Remove one route, or all routes if omitted", nil, cobra.MaximumNArgs(1), "network_unroute",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			if len(args) == 1 {
				return map[string]interface{}{"pattern": args[0]}
			}
			return nil
		}))

	var urlPattern, resourceType, method, statusPrefix string
	requestsCmd := &cobra.Command{
		Use:   "requests",
		Short: "List tracked network responses",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{}
			if urlPattern != "" {
				params["urlPattern"] = urlPattern
			}
			if resourceType != "" {
				params["type"] = resourceType
			}
			if method != "" {
				params["method"] = method
			}
			if statusPrefix != "" {
				params["status"] = statusPrefix
			}
			runAction("network_requests", params)
		},
	}
	requestsCmd.Flags().StringVar(&urlPattern, "filter", "", "regex to filter by URL")
	requestsCmd.Flags().StringVar(&resourceType, "type", "", "filter by resource type")
	requestsCmd.Flags().StringVar(&method, "method", "", "filter by HTTP method")
	requestsCmd.Flags().StringVar(&statusPrefix, "status", "", "filter by status-code prefix")
	networkCmd.AddCommand(requestsCmd)

	networkCmd.AddCommand(simpleCommand("clear", "Clear the tracked-requests ring", nil, cobra.NoArgs, "network_clear", noParams))

	root.AddCommand(networkCmd)
}
