package webserver

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// gzipResponseWriter is a custom writer to make the webserver gzip output
// when possible.
type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	if w.Header().Get("Content-Type") == "" {
		// If no content type, apply sniffing algorithm to un-gzipped body.
		w.Header().Set("Content-Type", http.DetectContentType(b))
	}
	return w.Writer.Write(b)
}

func (w gzipResponseWriter) Flush() {
	if gz, ok := w.Writer.(*gzip.Writer); ok {
		_ = gz.Flush()
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// GzipHandler gzips the output using a custom writer. It will check if gzip
// is among the accepted encodings and gzip if so. Otherwise it will do
// nothing.
type GzipHandler struct {
	wrapped http.Handler
}

func (gzh GzipHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
		gzh.wrapped.ServeHTTP(writer, req)
		return
	}

	writer.Header().Set("Content-Encoding", "gzip")
	gz := gzip.NewWriter(writer)
	defer gz.Close()
	gzr := gzipResponseWriter{Writer: gz, ResponseWriter: writer}
	gzh.wrapped.ServeHTTP(gzr, req)
}

// NewGzipHandler returns a GzipHandler which will gzip anything written in
// the supplied handler. Must be the outermost handler given to the server.
func NewGzipHandler(handler http.Handler) http.Handler {
	return GzipHandler{wrapped: handler}
}
