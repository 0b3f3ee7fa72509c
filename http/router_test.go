package http

import (
	"errors"
	"testing"
)

func textHandler(body string) Handler {
	return func(req *Request) (*Response, error) {
		return Text(200, body), nil
	}
}

func invoke(t *testing.T, router *Router, method, path string) (*Response, error) {
	t.Helper()

	handler, found := router.Match(method, path)
	if !found {
		t.Fatalf("no handler matched %s %s", method, path)
	}

	return handler(&Request{Method: method, Path: path})
}

func TestRouterFirstMatchWins(t *testing.T) {
	router := NewRouter()
	router.Get("/page", textHandler("first"))
	router.Get("/page", textHandler("second"))

	res, err := invoke(t, router, "GET", "/page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Body) != "first" {
		t.Errorf("expected first registered route to win, got %q", res.Body)
	}
}

func TestRouterMethodMismatch(t *testing.T) {
	router := NewRouter()
	router.Get("/page", textHandler("page"))

	res, err := invoke(t, router, "POST", "/page")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected catch-all miss, got res=%v err=%v", res, err)
	}
}

func TestRouterCatchAllNeverShadows(t *testing.T) {
	// The catch-all is registered before the explicit routes; it must
	// still lose to every one of them.
	router := NewRouter()
	router.CatchAll(textHandler("catch-all"))
	router.Get("/about", textHandler("about"))
	router.Get("/contact", textHandler("contact"))

	for path, want := range map[string]string{
		"/about":   "about",
		"/contact": "contact",
		"/other":   "catch-all",
	} {
		res, err := invoke(t, router, "GET", path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if string(res.Body) != want {
			t.Errorf("%s: expected %q, got %q", path, want, res.Body)
		}
	}
}

func TestRouterDefaultCatchAllIsMiss(t *testing.T) {
	router := NewRouter()

	res, err := invoke(t, router, "GET", "/anything")
	if res != nil || !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found signal, got res=%v err=%v", res, err)
	}
}

func TestRouterGroup(t *testing.T) {
	router := NewRouter()
	router.Group("/api", func(group *Router) {
		group.Get("/time", textHandler("time"))
	})

	res, err := invoke(t, router, "GET", "/api/time")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Body) != "time" {
		t.Errorf("expected group route body, got %q", res.Body)
	}

	// A miss inside the group is a plain miss, not a fault.
	_, err = invoke(t, router, "GET", "/api/nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found signal inside group, got %v", err)
	}
}

func TestRouterGroupPrefixBoundary(t *testing.T) {
	router := NewRouter()
	router.Group("/api", func(group *Router) {
		group.Get("/time", textHandler("time"))
	})

	// /apifoo shares the characters but not the path segment.
	res, err := invoke(t, router, "GET", "/apifoo")
	if res != nil || !errors.Is(err, ErrNotFound) {
		t.Errorf("expected miss outside the group boundary, got res=%v err=%v", res, err)
	}
}

func TestRouterMiddlewareOrder(t *testing.T) {
	var trace []string

	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(req *Request) (*Response, error) {
				trace = append(trace, name)
				return next(req)
			}
		}
	}

	// Later middleware wraps earlier, so the last one runs first.
	router := NewRouter()
	router.Get("/page", textHandler("page"), mark("a"), mark("b"))

	if _, err := invoke(t, router, "GET", "/page"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trace) != 2 || trace[0] != "b" || trace[1] != "a" {
		t.Errorf("unexpected middleware order: %v", trace)
	}
}
