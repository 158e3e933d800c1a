package httplog

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.status == 0 {
		r.responseData.status = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// WithLogging logs one line per request through logger. Query strings are
// left out since they carry api keys.
func WithLogging(logger logrus.FieldLogger, h http.Handler) http.Handler {
	loggingFn := func(rw http.ResponseWriter, req *http.Request) {
		start := time.Now()

		responseData := &responseData{}
		lrw := loggingResponseWriter{
			ResponseWriter: rw,
			responseData:   responseData,
		}
		h.ServeHTTP(&lrw, req)

		if responseData.status == 0 {
			responseData.status = http.StatusOK
		}

		entry := logger.WithFields(logrus.Fields{
			"event":    "request_completed",
			"path":     req.URL.Path,
			"method":   req.Method,
			"status":   responseData.status,
			"duration": time.Since(start),
			"size":     responseData.size,
		})
		if responseData.status >= http.StatusInternalServerError {
			entry.Warn("request completed")
			return
		}
		entry.Info("request completed")
	}
	return http.HandlerFunc(loggingFn)
}
