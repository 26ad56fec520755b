package bidifacade

import (
	"encoding/json"
	"fmt"
)

// serializedValue is the subset of the BiDi script remote-value shape this
// adapter round-trips. Objects/arrays are only unwrapped one level deep,
// which is all the daemon's evaluate/getter handlers need.
type serializedValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

func argValue(v interface{}) map[string]interface{} {
	switch t := v.(type) {
	case nil:
		return map[string]interface{}{"type": "null"}
	case string:
		return map[string]interface{}{"type": "string", "value": t}
	case bool:
		return map[string]interface{}{"type": "boolean", "value": t}
	case int:
		return map[string]interface{}{"type": "number", "value": t}
	case float64:
		return map[string]interface{}{"type": "number", "value": t}
	default:
		data, _ := json.Marshal(t)
		return map[string]interface{}{"type": "string", "value": string(data)}
	}
}

// callFunction evaluates a JS function body against the page's realm and
// decodes its primitive result. declaration must be a full function
// expression, e.g. "function(a,b){ return a+b }".
func (p *page) callFunction(declaration string, args ...interface{}) (json.RawMessage, error) {
	bidiArgs := make([]map[string]interface{}, 0, len(args))
	for _, a := range args {
		bidiArgs = append(bidiArgs, argValue(a))
	}
	result, err := p.cl.sendCommand("script.callFunction", map[string]interface{}{
		"functionDeclaration": declaration,
		"arguments":           bidiArgs,
		"awaitPromise":        true,
		"target":              map[string]interface{}{"context": p.id},
	})
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Type   string          `json:"type"`
		Result serializedValue `json:"result"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, fmt.Errorf("parse callFunction result: %w", err)
	}
	if parsed.Type == "exception" {
		return nil, fmt.Errorf("script exception")
	}
	return parsed.Result.Value, nil
}

func (p *page) callFunctionString(declaration string, args ...interface{}) (string, error) {
	raw, err := p.callFunction(declaration, args...)
	if err != nil {
		return "", err
	}
	var s string
	if len(raw) == 0 {
		return "", nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", nil
	}
	return s, nil
}

func (p *page) callFunctionBool(declaration string, args ...interface{}) (bool, error) {
	raw, err := p.callFunction(declaration, args...)
	if err != nil {
		return false, err
	}
	var b bool
	if len(raw) == 0 {
		return false, nil
	}
	json.Unmarshal(raw, &b)
	return b, nil
}

func (p *page) callFunctionNumber(declaration string, args ...interface{}) (float64, error) {
	raw, err := p.callFunction(declaration, args...)
	if err != nil {
		return 0, err
	}
	var n float64
	if len(raw) == 0 {
		return 0, nil
	}
	json.Unmarshal(raw, &n)
	return n, nil
}
