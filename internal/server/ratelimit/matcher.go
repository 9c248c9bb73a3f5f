package ratelimit

import "strings"

// MatchEndpoint resolves the throttle rule for a path and method. Exact path
// matches win; rules whose path ends in "/" act as prefix rules, so
// "/profiles/" covers "/profiles/{name}". Health checks are never limited.
func MatchEndpoint(path, method string, rules []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range rules {
		if rules[i].Path == path && rules[i].Method == method {
			return &rules[i]
		}
	}
	for i := range rules {
		if rules[i].Method == method && strings.HasSuffix(rules[i].Path, "/") && strings.HasPrefix(path, rules[i].Path) {
			return &rules[i]
		}
	}
	return nil
}
