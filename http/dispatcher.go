package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/freekieb7/pebble/http"

const (
	notFoundDocument    = "404.html"
	serverErrorDocument = "500.html"

	notFoundFallback    = "404 - Page Not Found"
	serverErrorFallback = "500 - Internal Server Error"
)

// Dispatcher routes every inbound request through a fixed pipeline:
// static resolution first, then the route table in registration
// order, then the not-found path. The fault path is reachable only
// from an error or panic raised while a handler ran, never from a
// plain miss. Exactly one response is flushed per request and no
// fault escapes ServeHTTP.
type Dispatcher struct {
	assets AssetResolver
	router *Router

	logger   *slog.Logger
	requests metric.Int64Counter
	faults   metric.Int64Counter
}

func NewDispatcher(assets AssetResolver, router *Router) *Dispatcher {
	meter := otel.Meter(scopeName)

	requests, err := meter.Int64Counter("pebble.requests",
		metric.WithDescription("The number of dispatched requests by status code"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}

	faults, err := meter.Int64Counter("pebble.faults",
		metric.WithDescription("The number of handler faults converted to 500 responses"),
		metric.WithUnit("{fault}"))
	if err != nil {
		panic(err)
	}

	return &Dispatcher{
		assets:   assets,
		router:   router,
		logger:   otelslog.NewLogger(scopeName),
		requests: requests,
		faults:   faults,
	}
}

func (dispatcher *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := NewRequest(r)

	res := dispatcher.tryStatic(req)
	if res == nil {
		res = dispatcher.tryRoutes(req)
	}

	dispatcher.respond(w, req, res)
}

// tryStatic attempts static resolution, only for safe GET-like
// methods. nil means defer to the route table.
func (dispatcher *Dispatcher) tryStatic(req *Request) *Response {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return nil
	}

	asset, found := dispatcher.assets.Resolve(req.Path)
	if !found {
		return nil
	}

	return File(http.StatusOK, asset)
}

func (dispatcher *Dispatcher) tryRoutes(req *Request) *Response {
	handler, found := dispatcher.router.Match(req.Method, req.Path)
	if !found {
		return dispatcher.notFound()
	}

	res, err := dispatcher.invoke(handler, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return dispatcher.notFound()
		}
		return dispatcher.fault(req, err)
	}

	return res
}

// invoke runs a handler behind the panic boundary: a panic becomes a
// fault error instead of crashing the process.
func (dispatcher *Dispatcher) invoke(handler Handler, req *Request) (res *Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler panic: %v\n%s", rec, debug.Stack())
		}
	}()

	res, err = handler(req)
	if res == nil && err == nil {
		err = errors.New("handler returned neither response nor error")
	}

	return res, err
}

func (dispatcher *Dispatcher) notFound() *Response {
	if body, err := dispatcher.assets.Document(notFoundDocument); err == nil {
		return HTML(http.StatusNotFound, body)
	}

	return Text(http.StatusNotFound, notFoundFallback)
}

// fault records the fault once and produces the generic 500 response.
// The detail stays in the log; the client never sees it.
func (dispatcher *Dispatcher) fault(req *Request, cause error) *Response {
	dispatcher.logger.ErrorContext(req.Context(), "handler fault",
		"request_id", uuid.NewString(),
		"method", req.Method,
		"path", req.Path,
		"error", cause)

	dispatcher.faults.Add(req.Context(), 1,
		metric.WithAttributes(attribute.String("http.request.method", req.Method)))

	if body, err := dispatcher.assets.Document(serverErrorDocument); err == nil {
		return HTML(http.StatusInternalServerError, body)
	}

	return Text(http.StatusInternalServerError, serverErrorFallback)
}

func (dispatcher *Dispatcher) respond(w http.ResponseWriter, req *Request, res *Response) {
	started, err := res.write(w)
	if err == nil {
		dispatcher.requests.Add(req.Context(), 1,
			metric.WithAttributes(attribute.Int("http.response.status_code", res.Status)))
		return
	}

	if !started {
		// A static file that vanished between probe and open is a
		// miss; a fallback document that became unreadable degrades
		// to the fixed plain text. Neither may raise again.
		if res.FilePath != "" {
			dispatcher.respond(w, req, dispatcher.notFound())
			return
		}

		fallback := Text(res.Status, notFoundFallback)
		if res.Status == http.StatusInternalServerError {
			fallback = Text(res.Status, serverErrorFallback)
		}
		if _, err := fallback.write(w); err != nil {
			dispatcher.logger.WarnContext(req.Context(), "response write failed",
				"path", req.Path, "error", err)
		}
		return
	}

	dispatcher.logger.WarnContext(req.Context(), "response write aborted",
		"path", req.Path, "error", err)
}
