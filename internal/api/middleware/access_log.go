package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += int64(n)
	return n, err
}

func (w *statusRecorder) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// AccessLog пишет строку лога и HTTP метрики на каждый запрос
func AccessLog(logger Logger, metrics Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			if metrics != nil {
				metrics.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.statusCode(), duration)
			}
			logger.Info("request_id=%s method=%s path=%s status=%d bytes=%d duration_ms=%d",
				GetRequestID(r.Context()), r.Method, r.URL.Path, rec.statusCode(), rec.bytes, duration.Milliseconds())
		})
	}
}

// routeTemplate шаблон маршрута mux, чтобы не плодить метки по ID
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
