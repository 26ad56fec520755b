package bidifacade

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spel/spel/internal/facade"
)

// pollUntil retries cond every 100ms until it reports true, errors, or
// timeout elapses.
func pollUntil(timeout time.Duration, cond func() (bool, error)) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	deadline := time.Now().Add(timeout)
	for {
		ok, err := cond()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out after %s", timeout)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// matchURLPattern supports a leading/trailing "*" glob, else substring match.
func matchURLPattern(pattern, url string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	switch {
	case strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*"):
		return strings.Contains(url, strings.Trim(pattern, "*"))
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(url, strings.TrimPrefix(pattern, "*"))
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(url, strings.TrimSuffix(pattern, "*"))
	default:
		return strings.Contains(url, pattern)
	}
}

func decodeBase64Result(result json.RawMessage) ([]byte, error) {
	var parsed struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, fmt.Errorf("parse base64 result: %w", err)
	}
	return base64.StdEncoding.DecodeString(parsed.Data)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// buildFindSelector turns a semantic find request into a CSS selector
// understood by the in-page query helper. Role, label, placeholder, alt and
// title lookups match plain DOM attributes (a role's Name is a
// case-insensitive substring of aria-label; Exact is not applied); text
// lookups use the ":-spel-text(...)" pseudo-selector. Kinds first, last
// and nth are not supported and return an error.
func buildFindSelector(opts facade.FindOptions) (string, error) {
	switch opts.Kind {
	case "testid":
		return fmt.Sprintf(`[data-testid="%s"]`, cssEscape(opts.Value)), nil
	case "role":
		if opts.Name != "" {
			return fmt.Sprintf(`[role="%s"][aria-label*="%s" i]`, cssEscape(opts.Value), cssEscape(opts.Name)), nil
		}
		return fmt.Sprintf(`[role="%s"]`, cssEscape(opts.Value)), nil
	case "label":
		return fmt.Sprintf(`[aria-label*="%s" i]`, cssEscape(opts.Value)), nil
	case "placeholder":
		return fmt.Sprintf(`[placeholder*="%s" i]`, cssEscape(opts.Value)), nil
	case "alt":
		return fmt.Sprintf(`[alt*="%s" i]`, cssEscape(opts.Value)), nil
	case "title":
		return fmt.Sprintf(`[title*="%s" i]`, cssEscape(opts.Value)), nil
	case "text":
		return fmt.Sprintf(`:-spel-text("%s")`, cssEscape(opts.Value)), nil
	default:
		return "", fmt.Errorf("unsupported find kind %q", opts.Kind)
	}
}

func cssEscape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`)
}
