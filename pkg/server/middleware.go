package server

import (
	"context"
	"mime"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	cerrors "github.com/NVIDIA/nictagadm/pkg/errors"
)

type contextKey string

const (
	contextKeyRequestID contextKey = "request-id"

	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-Id"

	// HeaderAPIVersion reports the negotiated API version.
	HeaderAPIVersion = "X-API-Version"

	// DefaultAPIVersion is used when the client does not ask for one.
	DefaultAPIVersion = "v1"
)

var (
	supportedAPIVersions = map[string]bool{"v1": true}
	vendorMediaType      = regexp.MustCompile(`^application/vnd\.nvidia\.nictag\.(v[0-9]+)\+json$`)
)

// RequestID returns the request id stored in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// statusRecorder captures the status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withMiddleware wraps an API handler. Only GET and HEAD are accepted.
func (s *Server) withMiddleware(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)
		w.Header().Set(HeaderAPIVersion, negotiateAPIVersion(r))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			httpRequestsTotal.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
			httpRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
		}()

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			rec.Header().Set("Allow", "GET, HEAD")
			WriteError(rec, r, http.StatusMethodNotAllowed, cerrors.ErrCodeMethodNotAllowed,
				"method not allowed", false, map[string]any{"method": r.Method})
			return
		}

		if !s.limiter.Allow() {
			rateLimitRejects.Inc()
			rec.Header().Set("Retry-After", "1")
			WriteError(rec, r, http.StatusTooManyRequests, cerrors.ErrCodeRateLimitExceeded,
				"rate limit exceeded", true, nil)
			return
		}

		if s.config.HandlerTimeout > 0 {
			tctx, cancel := context.WithTimeout(ctx, s.config.HandlerTimeout)
			defer cancel()
			r = r.WithContext(tctx)
		}

		next(rec, r)
	}
}

// negotiateAPIVersion reads the version from the first supported
// application/vnd.nvidia.nictag.<version>+json entry of the Accept header.
func negotiateAPIVersion(r *http.Request) string {
	for _, accept := range r.Header.Values("Accept") {
		for _, entry := range strings.Split(accept, ",") {
			mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(entry))
			if err != nil {
				continue
			}
			m := vendorMediaType.FindStringSubmatch(mediaType)
			if m != nil && isValidAPIVersion(m[1]) {
				return m[1]
			}
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(v string) bool {
	return supportedAPIVersions[v]
}
