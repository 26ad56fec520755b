package main

import (
	"encoding/json"
	"os"
)

// Global flags, extracted by cobra's persistent-flag layer before any
// subcommand runs (spec's two-level argument grammar). Defaults come from
// SPEL_* environment variables when the flag is left unset.
var (
	session          string
	jsonOutput       bool
	interactive      bool
	proxy            string
	proxyBypass      string
	userAgent        string
	executablePath   string
	launchArgs       string
	cdp              string
	ignoreHTTPSErrors bool
	profile          string
	timeoutMS        int
	debug            bool
	sessionName      string
	headersJSON      string
)

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDefaultBool(key string, def bool) bool {
	v := os.Getenv(key)
	switch v {
	case "1", "true", "TRUE", "yes":
		return true
	case "0", "false", "FALSE", "no":
		return false
	default:
		return def
	}
}

func envDefaultInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return def
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// launchFlags builds the "_flags" map the daemon merges into its launch
// configuration on first use.
func launchFlags() map[string]interface{} {
	flags := map[string]interface{}{
		"headless": !interactive,
	}
	if proxy != "" {
		flags["proxy"] = proxy
	}
	if proxyBypass != "" {
		flags["proxyBypass"] = proxyBypass
	}
	if userAgent != "" {
		flags["userAgent"] = userAgent
	}
	if executablePath != "" {
		flags["executablePath"] = executablePath
	}
	if launchArgs != "" {
		flags["args"] = launchArgs
	}
	if cdp != "" {
		flags["cdp"] = cdp
	}
	if ignoreHTTPSErrors {
		flags["ignoreHttpsErrors"] = true
	}
	if profile != "" {
		flags["profile"] = profile
	}
	if sessionName != "" {
		flags["sessionName"] = sessionName
	}
	if headersJSON != "" {
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(headersJSON), &decoded); err == nil {
			flags["headers"] = decoded
		}
	}
	return flags
}
