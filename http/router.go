package http

import "strings"

// Router is an ordered route table. Lookup is a linear scan in
// registration order and the first matching entry wins, so a
// duplicate (method, path) registered later is unreachable. The
// catch-all lives in its own slot and is always consulted last, no
// matter when it was registered.
type Router struct {
	Routes []Route

	catchAll Handler
}

func NewRouter() *Router {
	return &Router{
		Routes:   make([]Route, 0),
		catchAll: NotFoundHandler,
	}
}

func (router *Router) Get(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"GET"}, path, handler, middleware...)
}

func (router *Router) Head(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"HEAD"}, path, handler, middleware...)
}

func (router *Router) Post(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"POST"}, path, handler, middleware...)
}

func (router *Router) Put(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"PUT"}, path, handler, middleware...)
}

func (router *Router) Patch(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"PATCH"}, path, handler, middleware...)
}

func (router *Router) Delete(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{"DELETE"}, path, handler, middleware...)
}

// Any appends a route. An empty methods list matches every method.
func (router *Router) Any(methods []string, path string, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, Route{
		Methods: methods,
		Path:    path,
		Handler: handler,
	})
}

// Mount appends a prefix route: it matches the prefix itself and any
// path below it.
func (router *Router) Mount(methods []string, prefix string, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, Route{
		Methods: methods,
		Path:    strings.TrimSuffix(prefix, "/"),
		Prefix:  true,
		Handler: handler,
	})
}

// Group registers a sub-group under a path prefix. The group occupies
// a single prefix entry in this table; a miss inside the group is a
// plain resolution miss, not a fault.
func (router *Router) Group(prefix string, groupFunc func(group *Router), middleware ...Middleware) {
	group := NewRouter()
	group.catchAll = nil

	groupFunc(group)

	prefix = strings.TrimSuffix(prefix, "/")

	router.Mount(nil, prefix, func(req *Request) (*Response, error) {
		sub := *req
		sub.Path = strings.TrimPrefix(req.Path, prefix)

		handler, found := group.Match(sub.Method, sub.Path)
		if !found {
			return nil, ErrNotFound
		}

		return handler(&sub)
	}, middleware...)
}

// CatchAll replaces the default catch-all entry.
func (router *Router) CatchAll(handler Handler) {
	router.catchAll = handler
}

// Match returns the first registered route matching the method and
// path, falling back to the catch-all entry.
func (router *Router) Match(method, path string) (Handler, bool) {
	for _, route := range router.Routes {
		if route.matches(method, path) {
			return route.Handler, true
		}
	}

	if router.catchAll != nil {
		return router.catchAll, true
	}

	return nil, false
}
