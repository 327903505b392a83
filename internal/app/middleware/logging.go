package middlware

import (
	"net/http"
	"time"

	"github.com/videohub/videohub/internal/app/logger"
	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	status        int
	contentLength int
}

func (rr *responseRecorder) WriteHeader(status int) {
	rr.status = status
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	if rr.status == 0 {
		rr.status = http.StatusOK
	}
	n, err := rr.ResponseWriter.Write(b)
	rr.contentLength += n
	return n, err
}

func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Log.Info("REQUEST:",
			zap.String("Method", r.Method),
			zap.String("Path", r.URL.String()),
		)
		next.ServeHTTP(w, r)
	})
}

func ResponseLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &responseRecorder{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(recorder, r)
		logger.Log.Info("RESPONSE:",
			zap.Int("Status", recorder.status),
			zap.Int("Content-Length", recorder.contentLength),
			zap.Duration("Duration", time.Since(start)),
		)
	})
}
