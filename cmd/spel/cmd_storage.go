package main

import "github.com/spf13/cobra"

func registerStorageCommands(root *cobra.Command) {
	cookiesCmd := &cobra.Command{
		Use:   "cookies",
		Short: "Manage browser cookies",
	}
	cookiesCmd.AddCommand(simpleCommand("get", "List cookies", nil, cobra.NoArgs, "cookies_get", noParams))
	cookiesCmd.AddCommand(simpleCommand("clear", "Remove all cookies", nil, cobra.NoArgs, "cookies_clear", noParams))

	var domain, path, sameSite string
	var httpOnly, secure bool
	setCmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Add a cookie",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cookie := map[string]interface{}{
				"name": args[0], "value": args[1],
				"domain": domain, "path": path, "sameSite": sameSite,
				"httpOnly": httpOnly, "secure": secure,
			}
			runAction("cookies_set", map[string]interface{}{"cookies": []interface{}{cookie}})
		},
	}
	setCmd.Flags().StringVar(&domain, "domain", "", "cookie domain")
	setCmd.Flags().StringVar(&path, "path", "/", "cookie path")
	setCmd.Flags().StringVar(&sameSite, "same-site", "", "Strict, Lax, or None")
	setCmd.Flags().BoolVar(&httpOnly, "http-only", false, "mark the cookie HttpOnly")
	setCmd.Flags().BoolVar(&secure, "secure", false, "mark the cookie Secure")
	cookiesCmd.AddCommand(setCmd)
	root.AddCommand(cookiesCmd)

	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "Read and write localStorage/sessionStorage",
	}
	var scope string
	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Read a storage key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runAction("storage_get", map[string]interface{}{"key": args[0], "scope": scope})
		},
	}
	getCmd.Flags().StringVar(&scope, "scope", "local", "local or session")
	storageCmd.AddCommand(getCmd)

	setStorageCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a storage key",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runAction("storage_set", map[string]interface{}{"key": args[0], "value": args[1], "scope": scope})
		},
	}
	setStorageCmd.Flags().StringVar(&scope, "scope", "local", "local or session")
	storageCmd.AddCommand(setStorageCmd)

	clearStorageCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all storage in one scope",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAction("storage_clear", map[string]interface{}{"scope": scope})
		},
	}
	clearStorageCmd.Flags().StringVar(&scope, "scope", "local", "local or session")
	storageCmd.AddCommand(clearStorageCmd)

	root.AddCommand(storageCmd)
}
