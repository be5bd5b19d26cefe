package logger

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const slowRequestThreshold = 200 * time.Millisecond

// Setup configures the global logrus logger. Production logs are json.
func Setup(level string, goEnv string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Setup: %w", err)
	}

	log.SetLevel(lvl)
	if goEnv == "production" {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs every request with its status and latency. Server errors log at
// Error, slow requests at Warn.
func RequestLogger(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(begin)
			entry := logger.WithFields(log.Fields{
				"method":  r.Method,
				"path":    r.URL.Path,
				"status":  rec.status,
				"elapsed": elapsed,
			})

			switch {
			case rec.status >= http.StatusInternalServerError:
				entry.Error("request failed")
			case elapsed > slowRequestThreshold:
				entry.Warn("SLOW REQUEST >= 200ms")
			default:
				entry.Info("request")
			}
		})
	}
}
