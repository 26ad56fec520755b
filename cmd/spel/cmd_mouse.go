package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func registerMouseCommands(root *cobra.Command) {
	mouseCmd := &cobra.Command{
		Use:   "mouse",
		Short: "Low-level mouse input",
	}

	var moveButton string
	mouseCmd.AddCommand(&cobra.Command{
		Use:   "move <x> <y>",
		Short: "Move the mouse to an absolute position",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			x, _ := strconv.ParseFloat(args[0], 64)
			y, _ := strconv.ParseFloat(args[1], 64)
			runAction("mouse_move", map[string]interface{}{"x": x, "y": y})
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Press a mouse button",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAction("mouse_down", map[string]interface{}{"button": moveButton})
		},
	}
	downCmd.Flags().StringVarP(&moveButton, "button", "b", "left", "left, right, or middle")
	mouseCmd.AddCommand(downCmd)

	var upButton string
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Release a mouse button",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAction("mouse_up", map[string]interface{}{"button": upButton})
		},
	}
	upCmd.Flags().StringVarP(&upButton, "button", "b", "left", "left, right, or middle")
	mouseCmd.AddCommand(upCmd)

	mouseCmd.AddCommand(&cobra.Command{
		Use:   "wheel <dx> <dy>",
		Short: "Scroll the mouse wheel",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			dx, _ := strconv.ParseFloat(args[0], 64)
			dy, _ := strconv.ParseFloat(args[1], 64)
			runAction("mouse_wheel", map[string]interface{}{"dx": dx, "dy": dy})
		},
	})

	root.AddCommand(mouseCmd)

	root.AddCommand(&cobra.Command{
		Use:   "tap <x> <y>",
		Short: "Tap a point with the touchscreen",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			x, _ := strconv.ParseFloat(args[0], 64)
			y, _ := strconv.ParseFloat(args[1], 64)
			runAction("tap", map[string]interface{}{"x": x, "y": y})
		},
	})
}
