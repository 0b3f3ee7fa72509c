package http

import (
	"slices"
	"strings"
)

type Route struct {
	Methods []string
	Path    string
	Prefix  bool
	Handler Handler
}

// NotFoundHandler defers to the not-found path. It backs the default
// catch-all entry.
var NotFoundHandler Handler = func(req *Request) (*Response, error) {
	return nil, ErrNotFound
}

func (route *Route) matches(method, path string) bool {
	if len(route.Methods) > 0 && !slices.Contains(route.Methods, method) {
		return false
	}

	if route.Prefix {
		return path == route.Path || strings.HasPrefix(path, route.Path+"/")
	}

	return path == route.Path
}
