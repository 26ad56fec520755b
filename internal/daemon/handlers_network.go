package daemon

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/spel/spel/internal/facade"
)

func init() {
	register("network_route", handleNetworkRoute)
	register("network_unroute", handleNetworkUnroute)
	register("network_requests", handleNetworkRequests)
	register("network_clear", handleNetworkClear)
}

func handleNetworkRoute(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	pattern := stringFlag(params, "pattern")
	if pattern == "" {
		return nil, &paramError{"pattern"}
	}

	action := stringFlag(params, "action")
	status := intFlag(params, "status", 200)
	body := []byte(stringFlag(params, "body"))
	contentType := stringFlag(params, "contentType")

	handler := func(req facade.RouteRequest) facade.RouteDecision {
		switch action {
		case "abort":
			return facade.RouteDecision{Action: "abort"}
		case "fulfill":
			return facade.RouteDecision{Action: "fulfill", Status: status, Body: body, ContentType: contentType}
		default:
			return facade.RouteDecision{Action: "continue"}
		}
	}
	d.state.routes[pattern] = handler
	return nil, page.Route(ctx, pattern, handler)
}

func handleNetworkUnroute(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	pattern := stringFlag(params, "pattern")
	if pattern == "" {
		for p := range d.state.routes {
			page.Unroute(ctx, p)
			delete(d.state.routes, p)
		}
		return nil, nil
	}
	delete(d.state.routes, pattern)
	return nil, page.Unroute(ctx, pattern)
}

// handleNetworkRequests reads the tracked-requests ring, filtering by URL
// regex, resource type, method, and status-prefix (spec's network_requests
// filter set).
func handleNetworkRequests(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	var urlRe *regexp.Regexp
	if pattern := stringFlag(params, "urlPattern"); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		urlRe = re
	}
	resourceType := stringFlag(params, "type")
	method := stringFlag(params, "method")
	statusPrefix := stringFlag(params, "status")

	var out []facade.RequestSummary
	for _, item := range d.state.requestRing.Snapshot() {
		req, ok := item.(facade.RequestSummary)
		if !ok {
			continue
		}
		if urlRe != nil && !urlRe.MatchString(req.URL) {
			continue
		}
		if resourceType != "" && req.ResourceType != resourceType {
			continue
		}
		if method != "" && !strings.EqualFold(req.Method, method) {
			continue
		}
		if statusPrefix != "" && !strings.HasPrefix(strconv.Itoa(req.Status), statusPrefix) {
			continue
		}
		out = append(out, req)
	}
	return map[string]interface{}{"requests": out}, nil
}

func handleNetworkClear(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	d.state.requestRing.Clear()
	return nil, nil
}
