package http

import "errors"

// ErrNotFound is the resolution-miss signal. A handler that cannot
// produce its resource returns it to defer to the not-found path;
// any other error is a fault.
var ErrNotFound = errors.New("http: not found")

// Handler produces either a response or an error. Handlers never
// write to the wire themselves; flushing is owned by the Dispatcher.
type Handler func(req *Request) (*Response, error)

type Middleware func(next Handler) Handler

// Asset is a file resolved under the static document root.
type Asset struct {
	Path        string
	Size        int64
	ContentType string
}

// AssetResolver maps URL paths onto the static document root. The
// root is fixed at startup and read-only, so implementations must be
// safe for concurrent use.
type AssetResolver interface {
	Resolve(urlPath string) (Asset, bool)
	Document(name string) ([]byte, error)
}
