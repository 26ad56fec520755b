package main

import "github.com/spf13/cobra"

func registerGetterCommands(root *cobra.Command) {
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Read a property off an element",
	}

	getCmd.AddCommand(simpleCommand("text <selector>", "Get an element's inner text", nil, cobra.ExactArgs(1), "get_text",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	getCmd.AddCommand(simpleCommand("value <selector>", "Get an input's value", nil, cobra.ExactArgs(1), "get_value",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	getCmd.AddCommand(simpleCommand("attribute <selector> <name>", "Get an element's attribute", []string{"attr"}, cobra.ExactArgs(2), "get_attribute",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0], "name": args[1]}
		}))
	getCmd.AddCommand(simpleCommand("count <selector>", "Count matching elements", nil, cobra.ExactArgs(1), "get_count",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	getCmd.AddCommand(simpleCommand("box <selector>", "Get an element's bounding box", []string{"bounding-box"}, cobra.ExactArgs(1), "get_box",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))

	root.AddCommand(getCmd)

	root.AddCommand(simpleCommand("visible <selector>", "Is an element visible?", []string{"is-visible"}, cobra.ExactArgs(1), "is_visible",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("enabled <selector>", "Is an element enabled?", []string{"is-enabled"}, cobra.ExactArgs(1), "is_enabled",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("checked <selector>", "Is a checkbox/radio checked?", []string{"is-checked"}, cobra.ExactArgs(1), "is_checked",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
}
