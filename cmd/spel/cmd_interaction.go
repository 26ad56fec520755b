package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func registerInteractionCommands(root *cobra.Command) {
	root.AddCommand(simpleCommand("click <selector>", "Click an element", nil, cobra.ExactArgs(1), "click",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("dblclick <selector>", "Double-click an element", nil, cobra.ExactArgs(1), "dblclick",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("fill <selector> <value>", "Set an input's value", nil, cobra.ExactArgs(2), "fill",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0], "value": args[1]}
		}))

	var typeDelay int
	typeCmd := &cobra.Command{
		Use:   "type <text>",
		Short: "Type text with the page-level keyboard",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runAction("type", map[string]interface{}{"text": args[0], "delay": typeDelay})
		},
	}
	typeCmd.Flags().IntVar(&typeDelay, "delay", 0, "milliseconds between keystrokes")
	root.AddCommand(typeCmd)

	root.AddCommand(simpleCommand("press <key>", "Press a single key", nil, cobra.ExactArgs(1), "press",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"key": args[0]}
		}))
	root.AddCommand(simpleCommand("keydown <key>", "Hold a key down", nil, cobra.ExactArgs(1), "keydown",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"key": args[0]}
		}))
	root.AddCommand(simpleCommand("keyup <key>", "Release a held key", nil, cobra.ExactArgs(1), "keyup",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"key": args[0]}
		}))
	root.AddCommand(simpleCommand("hover <selector>", "Hover over an element", nil, cobra.ExactArgs(1), "hover",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("check <selector>", "Check a checkbox or radio", nil, cobra.ExactArgs(1), "check",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("uncheck <selector>", "Uncheck a checkbox", nil, cobra.ExactArgs(1), "uncheck",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("select <selector> <values>", "Select option(s) in a <select>, comma-separated", nil, cobra.ExactArgs(2), "select",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0], "values": strings.Split(args[1], ",")}
		}))
	root.AddCommand(simpleCommand("focus <selector>", "Focus an element", nil, cobra.ExactArgs(1), "focus",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("clear <selector>", "Clear an input's value", nil, cobra.ExactArgs(1), "clear",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("drag <selector> <target>", "Drag one element onto another", nil, cobra.ExactArgs(2), "drag",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0], "target": args[1]}
		}))
	root.AddCommand(simpleCommand("upload <selector> <files>", "Set a file input's files, comma-separated paths", nil, cobra.ExactArgs(2), "upload",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0], "files": strings.Split(args[1], ",")}
		}))

	var scrollSelector string
	scrollCmd := &cobra.Command{
		Use:   "scroll [dx] [dy]",
		Short: "Scroll the page, or an element into view with --selector",
		Args:  cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			params := map[string]interface{}{}
			if scrollSelector != "" {
				params["selector"] = scrollSelector
			} else if len(args) == 2 {
				dx, _ := strconv.ParseFloat(args[0], 64)
				dy, _ := strconv.ParseFloat(args[1], 64)
				params["dx"], params["dy"] = dx, dy
			}
			runAction("scroll", params)
		},
	}
	scrollCmd.Flags().StringVarP(&scrollSelector, "selector", "s", "", "scroll this element into view instead")
	root.AddCommand(scrollCmd)

	root.AddCommand(simpleCommand("scrollintoview <selector>", "Scroll an element into view", nil, cobra.ExactArgs(1), "scrollintoview",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
	root.AddCommand(simpleCommand("highlight <selector>", "Draw a highlight outline around an element", nil, cobra.ExactArgs(1), "highlight",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"selector": args[0]}
		}))
}
