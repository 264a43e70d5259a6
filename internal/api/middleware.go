package api

import (
	"net/http"
	"path"
	"strings"
)

var fontContentTypes = map[string]string{
	".ttf":   "font/ttf",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// headerWriter wraps http.ResponseWriter and runs mutate just before the
// status line goes out, which is the last moment headers can change.
type headerWriter struct {
	http.ResponseWriter
	mutate      func(status int, h http.Header)
	wroteHeader bool
}

func (hw *headerWriter) WriteHeader(code int) {
	if !hw.wroteHeader {
		hw.wroteHeader = true
		hw.mutate(code, hw.Header())
	}
	hw.ResponseWriter.WriteHeader(code)
}

func (hw *headerWriter) Write(b []byte) (int, error) {
	if !hw.wroteHeader {
		hw.WriteHeader(http.StatusOK)
	}
	return hw.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (hw *headerWriter) Unwrap() http.ResponseWriter { return hw.ResponseWriter }

func (hw *headerWriter) Flush() {
	if f, ok := hw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// SecureHeaders stamps the security and caching headers on every
// response. Only an exact 200 is cacheable; everything else, including
// 404s and recovered panics, goes out with no-store.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &headerWriter{ResponseWriter: w, mutate: func(status int, h http.Header) {
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("X-Content-Type-Options", "nosniff")
			if status == http.StatusOK {
				h.Set("Cache-Control", "public, max-age=1200")
			} else {
				h.Set("Cache-Control", "no-store")
			}
		}}
		next.ServeHTTP(hw, r)
	})
}

// FontContentType overwrites the Content-Type for font assets. Go's
// built-in MIME table has no entries for the font extensions, so the file
// server would otherwise sniff application/octet-stream.
func FontContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct, ok := fontContentTypes[strings.ToLower(path.Ext(r.URL.Path))]
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		hw := &headerWriter{ResponseWriter: w, mutate: func(status int, h http.Header) {
			h.Set("Content-Type", ct)
		}}
		next.ServeHTTP(hw, r)
	})
}
