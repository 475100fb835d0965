package internal

import (
	"bufio"
	"net"
	"net/http"
	"sync"
)

// ResponseWriter wraps http.ResponseWriter to track the written status and
// size and to rewrite error statuses for HTMX requests.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	size    int64
	written bool
	isHTMX  bool
	mu      sync.Mutex
}

// NewResponseWriter creates a new ResponseWriter.
func NewResponseWriter(w http.ResponseWriter, isHTMX bool) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
		isHTMX:         isHTMX,
	}
}

// WriteHeader sends the status code once. For HTMX requests, statuses of 400
// and above are sent as 200 so htmx swaps the error partial. Status() still
// reports the original code.
func (w *ResponseWriter) WriteHeader(code int) {
	w.mu.Lock()
	if w.written {
		w.mu.Unlock()
		return
	}
	w.written = true
	w.status = code
	w.mu.Unlock()

	if w.isHTMX && code >= http.StatusBadRequest {
		code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write writes the body, sending an implicit 200 header first if needed.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	if !w.written {
		w.written = true
		w.mu.Unlock()
		w.ResponseWriter.WriteHeader(w.status)
	} else {
		w.mu.Unlock()
	}

	n, err := w.ResponseWriter.Write(b)
	w.mu.Lock()
	w.size += int64(n)
	w.mu.Unlock()
	return n, err
}

// Status returns the status code the handler asked for.
func (w *ResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Size returns the number of body bytes written.
func (w *ResponseWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush implements http.Flusher.
func (w *ResponseWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Unwrap returns the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
