package config

import (
	"fmt"
	"net/url"
	"sort"
)

// DefaultEndpointName is used by freshly created profiles
const DefaultEndpointName = "refactor-v0"

// builtinEndpoints are the refactor services baked into the build
var builtinEndpoints = map[string]string{
	"refactor-v0": "https://simonmoisselin--refactor-code-v0-refactor-code-web.modal.run",
}

// BuiltinEndpoints returns the names of the built-in endpoints in order
func BuiltinEndpoints() []string {
	names := make([]string, 0, len(builtinEndpoints))
	for name := range builtinEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinEndpointURL returns the URL behind a built-in endpoint name
func BuiltinEndpointURL(name string) (string, bool) {
	u, ok := builtinEndpoints[name]
	return u, ok
}

// ResolveEndpoint maps a built-in name or an absolute http(s) URL to a URL
func ResolveEndpoint(nameOrURL string) (string, error) {
	if nameOrURL == "" {
		return "", fmt.Errorf("no endpoint configured")
	}
	if u, ok := builtinEndpoints[nameOrURL]; ok {
		return u, nil
	}

	parsed, err := url.Parse(nameOrURL)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", nameOrURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("endpoint %q is neither a built-in name nor an http(s) URL", nameOrURL)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("endpoint %q has no host", nameOrURL)
	}
	return parsed.String(), nil
}
