package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avalonwc/AWC-BookingService/pkg/metrics"
)

// srw status-recording ResponseWriter
type srw struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *srw) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *srw) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *srw) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Metrics middleware фиксирует количество и длительность HTTP-запросов.
// Метка route берётся из шаблона маршрута, а не из URL, чтобы не плодить
// кардинальность на path-параметрах
func Metrics(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &srw{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			m.ObserveHTTP(route, r.Method, sw.Status(), time.Since(start))
		})
	}
}
