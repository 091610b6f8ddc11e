package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// RespondJSON writes data as a JSON body with the given status. The body is
// encoded before any header is written, so an encoding failure becomes a 500
// instead of a truncated response.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	respondJSON(w, nil, statusCode, data)
}

// RespondJSONFor is RespondJSON with the body omitted for HEAD requests.
func RespondJSONFor(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	respondJSON(w, r, statusCode, data)
}

func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		slog.Error("json encoding failed", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(statusCode)

	if r != nil && r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		// client went away; nothing left to report to it
		slog.Warn("response write failed", slog.String("error", err.Error()))
	}
}
