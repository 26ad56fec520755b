package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"
)

func registerSettingsCommands(root *cobra.Command) {
	var dpr float64
	var mobile, touch bool
	viewportCmd := &cobra.Command{
		Use:   "set-viewport <width> <height>",
		Short: "Resize the viewport",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			w, _ := strconv.Atoi(args[0])
			h, _ := strconv.Atoi(args[1])
			runAction("set_viewport", map[string]interface{}{
				"width": w, "height": h, "dpr": dpr, "mobile": mobile, "touch": touch,
			})
		},
	}
	viewportCmd.Flags().Float64Var(&dpr, "dpr", 1, "device scale factor")
	viewportCmd.Flags().BoolVar(&mobile, "mobile", false, "emulate a mobile viewport")
	viewportCmd.Flags().BoolVar(&touch, "touch", false, "emulate touch input")
	root.AddCommand(viewportCmd)

	root.AddCommand(simpleCommand("set-device <name>", "Emulate a named device preset (recreates the context)", nil, cobra.ExactArgs(1), "set_device",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"name": args[0]}
		}))

	var accuracy float64
	geoCmd := &cobra.Command{
		Use:   "set-geo <lat> <lon>",
		Short: "Override geolocation",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			lat, _ := strconv.ParseFloat(args[0], 64)
			lon, _ := strconv.ParseFloat(args[1], 64)
			runAction("set_geo", map[string]interface{}{"lat": lat, "lon": lon, "accuracy": accuracy})
		},
	}
	geoCmd.Flags().Float64Var(&accuracy, "accuracy", 0, "accuracy in meters")
	root.AddCommand(geoCmd)

	var goOnline bool
	offlineCmd := &cobra.Command{
		Use:   "set-offline",
		Short: "Simulate the browser going offline",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAction("set_offline", map[string]interface{}{"offline": !goOnline})
		},
	}
	offlineCmd.Flags().BoolVar(&goOnline, "online", false, "restore connectivity instead")
	root.AddCommand(offlineCmd)

	root.AddCommand(simpleCommand("set-headers <json>", "Set extra HTTP request headers from a JSON object", nil, cobra.ExactArgs(1), "set_headers",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			var headers map[string]interface{}
			json.Unmarshal([]byte(args[0]), &headers)
			return map[string]interface{}{"headers": headers}
		}))

	var colorScheme string
	mediaCmd := &cobra.Command{
		Use:   "set-media <media>",
		Short: "Emulate a CSS media type (screen, print)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runAction("set_media", map[string]interface{}{"media": args[0], "colorScheme": colorScheme})
		},
	}
	mediaCmd.Flags().StringVar(&colorScheme, "color-scheme", "", "light or dark")
	root.AddCommand(mediaCmd)

	root.AddCommand(simpleCommand("set-credentials <user> <pass>", "Set HTTP basic-auth credentials (recreates the context)", nil, cobra.ExactArgs(2), "set_credentials",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			return map[string]interface{}{"user": args[0], "pass": args[1]}
		}))

	root.AddCommand(simpleCommand("set-default-timeout <ms>", "Set the default timeout for waits/navigations", nil, cobra.ExactArgs(1), "set_default_timeout",
		func(cmd *cobra.Command, args []string) map[string]interface{} {
			ms, _ := strconv.Atoi(args[0])
			return map[string]interface{}{"timeout": ms}
		}))
}
