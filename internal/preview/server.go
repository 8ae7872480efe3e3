// Package preview serves a built site locally for inspection before it is
// published. It only reads the output directory; builds stay a separate
// step.
package preview

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewHandler serves dir under basePath and redirects the root there.
func NewHandler(dir, basePath string, log *slog.Logger) http.Handler {
	base := strings.TrimSuffix(basePath, "/")
	if base == "" {
		base = "/"
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	fs := http.FileServer(http.Dir(dir))
	if base == "/" {
		r.Handle("/*", fs)
		return r
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/", http.StatusFound)
	})
	r.Handle(base+"/*", http.StripPrefix(base+"/", fs))
	return r
}

// requestLogger logs incoming requests.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: 200}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
