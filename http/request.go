package http

import (
	"context"
	"net/http"
)

// Request captures the method and normalized path of one inbound
// request. It is immutable for the duration of a dispatch.
type Request struct {
	Method string
	Path   string

	original *http.Request
}

func NewRequest(original *http.Request) *Request {
	return &Request{
		Method:   original.Method,
		Path:     original.URL.Path,
		original: original,
	}
}

func (request *Request) Context() context.Context {
	if request.original == nil {
		return context.Background()
	}
	return request.original.Context()
}
