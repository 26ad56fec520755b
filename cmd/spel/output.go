package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// printResponse renders one wireResponse and returns the process exit code
// (spec §4.5 Output: 0 on success, 1 otherwise).
func printResponse(resp *wireResponse) int {
	if jsonOutput {
		raw, _ := json.Marshal(resp)
		fmt.Println(string(raw))
		if resp.Success {
			return 0
		}
		return 1
	}

	if !resp.Success {
		msg := "unknown error"
		if resp.Error != nil {
			msg = resp.Error.Message
			if resp.Error.Hint != "" {
				msg += " (" + resp.Error.Hint + ")"
			}
		}
		fmt.Fprintln(os.Stderr, "error:", msg)
		return 1
	}

	printData(resp.Data)
	return 0
}

// printData pretty-prints by case analysis on well-known fields, per
// spec's "case analysis on the data fields" note. The accessibility tree
// keeps its own bespoke indented-text rendering (already produced
// server-side by internal/snapshot.Render); everything else — cookies,
// tab lists, session lists, tracked-requests tables, key/value results —
// goes through a generic YAML pretty-printer, since that format reads
// cleanly for nested maps/slices without inventing a bespoke layout for
// each action.
func printData(data map[string]interface{}) {
	if data == nil {
		return
	}
	if tree, ok := data["snapshot"]; ok {
		if s, ok := tree.(string); ok {
			fmt.Println(s)
			rest := cloneWithout(data, "snapshot")
			if len(rest) > 0 {
				printYAML(rest)
			}
			return
		}
	}
	if tree, ok := data["tree"]; ok {
		if s, ok := tree.(string); ok {
			fmt.Println(s)
			return
		}
	}
	if len(data) == 1 {
		for _, v := range data {
			switch t := v.(type) {
			case string:
				fmt.Println(t)
				return
			case bool:
				fmt.Println(t)
				return
			case float64:
				fmt.Println(t)
				return
			}
		}
	}
	printYAML(data)
}

func printYAML(v interface{}) {
	out, err := yaml.Marshal(v)
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Print(string(out))
}

func cloneWithout(m map[string]interface{}, key string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
}
