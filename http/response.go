package http

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
)

// Response is a value describing what to send: a status code and one
// body kind (in-memory bytes or a file to stream). Exactly one
// response is flushed per request, by the dispatcher.
type Response struct {
	Status      int
	ContentType string
	Body        []byte

	// FilePath streams a file instead of Body when set.
	FilePath string
}

func Text(status int, body string) *Response {
	return &Response{
		Status:      status,
		ContentType: contentTypeText,
		Body:        []byte(body),
	}
}

func JSON(status int, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Response{
		Status:      status,
		ContentType: contentTypeJSON,
		Body:        body,
	}, nil
}

func HTML(status int, body []byte) *Response {
	return &Response{
		Status:      status,
		ContentType: contentTypeHTML,
		Body:        body,
	}
}

func File(status int, asset Asset) *Response {
	return &Response{
		Status:      status,
		ContentType: asset.ContentType,
		FilePath:    asset.Path,
	}
}

// write flushes the response. started reports whether anything
// reached the wire: a caller may still substitute a different
// response as long as started is false.
func (response *Response) write(w http.ResponseWriter) (started bool, err error) {
	if response.FilePath != "" {
		file, err := os.Open(response.FilePath)
		if err != nil {
			return false, err
		}
		defer file.Close()

		w.Header().Set("Content-Type", response.ContentType)
		w.WriteHeader(response.Status)

		_, err = io.Copy(w, file)
		return true, err
	}

	w.Header().Set("Content-Type", response.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(response.Body)))
	w.WriteHeader(response.Status)

	_, err = w.Write(response.Body)
	return true, err
}
