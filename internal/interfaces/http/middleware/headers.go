package middleware

import "net/http"

// Headers middleware attaches the two unconditional response headers: a
// wildcard CORS origin so browser clients on any origin can fetch assets,
// and a no-cache directive so clients revalidate before reuse.
//
// The headers are set up front for handlers that write a body without an
// explicit WriteHeader, and re-set inside WriteHeader immediately before
// the status goes out: the file server's error path strips caching headers
// (Cache-Control among them) from the header map before writing an error
// status, so pre-setting alone does not survive a 404.
func Headers(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setInjectedHeaders(w.Header())

		next.ServeHTTP(&headerWriter{ResponseWriter: w}, r)
	})
}

func setInjectedHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Cache-Control", "no-cache")
}

type headerWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *headerWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		setInjectedHeaders(w.Header())
	}
	w.ResponseWriter.WriteHeader(code)
}
