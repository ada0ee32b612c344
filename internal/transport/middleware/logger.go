package middleware

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// probePaths are polled by orchestrators; they are logged at debug level.
var probePaths = map[string]bool{"/live": true, "/ready": true, "/health": true}

// accessInfo is filled in by middleware running inside Logger, whose context
// changes are otherwise invisible to it.
type accessInfo struct {
	userID uuid.UUID
	role   string
}

type accessInfoKey struct{}

func annotateAccess(ctx context.Context, userID uuid.UUID, role string) {
	if info, ok := ctx.Value(accessInfoKey{}).(*accessInfo); ok {
		info.userID, info.role = userID, role
	}
}

// Logger writes one access log line per request. Server errors log at
// error level, probes at debug, everything else at info.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			info := &accessInfo{}
			if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				info.userID, info.role = id, ctxutil.UserRoleFromCtx(r.Context())
			}
			r = r.WithContext(context.WithValue(r.Context(), accessInfoKey{}, info))

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if info.userID != uuid.Nil {
				attrs = append(attrs,
					slog.String("user_id", info.userID.String()),
					slog.String("role", info.role))
			}
			if sw.hijacked {
				attrs = append(attrs, slog.Bool("upgraded", true))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case probePaths[r.URL.Path]:
				level = slog.LevelDebug
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter records the status code and body size. It passes through
// Hijack and Flush so websocket upgrades and streamed exports keep working.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
	hijacked    bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += int64(n)
	return n, err
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("middleware: response writer does not support hijacking")
	}
	conn, rw, err := h.Hijack()
	if err == nil {
		w.hijacked = true
		w.status = http.StatusSwitchingProtocols
	}
	return conn, rw, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
