package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	cerrors "github.com/NVIDIA/recipe-finder/pkg/errors"
)

// HeaderResultStatus is set by application handlers to report an outcome the
// HTTP status does not carry, e.g. a search that found nothing.
const HeaderResultStatus = "X-Result-Status"

type middleware func(http.HandlerFunc) http.HandlerFunc

// withMiddleware wraps the handler registered at route. The first entry is
// the outermost.
func (s *Server) withMiddleware(route string, handler http.HandlerFunc) http.HandlerFunc {
	chain := []middleware{
		s.metricsMiddleware(route),
		s.versionMiddleware,
		s.requestIDMiddleware,
		s.panicRecoveryMiddleware, // inside request ID so panics are logged with it
		s.rateLimitMiddleware,
		s.loggingMiddleware,
	}
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}
	return handler
}

// recorder captures what the handler wrote. Only the first status is sent.
type recorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

// record returns w as a recorder, reusing one installed further out.
func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *recorder) WriteHeader(status int) {
	if rec.wroteHeader {
		return
	}
	rec.status = status
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// result is the outcome reported through HeaderResultStatus, or "".
func (rec *recorder) result() string {
	return rec.Header().Get(HeaderResultStatus)
}

func (s *Server) versionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := negotiateAPIVersion(r)
		SetAPIVersionHeader(w, v)
		next(w, r.WithContext(context.WithValue(r.Context(), contextKeyAPIVersion, v)))
	}
}

// requestIDMiddleware keeps a caller-supplied X-Request-Id when it is a UUID
// and mints one otherwise.
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get("X-Request-Id"))
		if err != nil {
			id = uuid.New()
		}
		requestID := id.String()

		w.Header().Set("X-Request-Id", requestID)
		next(w, r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID)))
	}
}

func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(int(s.config.RateLimit)))

		if !s.rateLimiter.Allow() {
			rateLimitRejects.Inc()
			h.Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, cerrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit": s.config.RateLimit,
					"burst": s.config.RateLimitBurst,
				})
			return
		}

		h.Set("X-RateLimit-Remaining", strconv.Itoa(int(s.rateLimiter.Tokens())))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Second).Unix(), 10))
		next(w, r)
	}
}

func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			panicRecoveries.Inc()
			slog.Error("panic recovered",
				"panic", v,
				"requestID", RequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			WriteError(w, r, http.StatusInternalServerError, cerrors.ErrCodeInternal,
				"Internal server error", true, nil)
		}()
		next(w, r)
	}
}

// loggingMiddleware logs each completed request. Server errors log at warn,
// everything else at debug.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := record(w)

		next(rec, r)

		level := slog.LevelDebug
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "request completed",
			"requestID", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"result", rec.result(),
			"bytes", rec.bytes,
			"duration", time.Since(start).String(),
		)
	}
}
