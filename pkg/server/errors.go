package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	cerrors "github.com/NVIDIA/nictagadm/pkg/errors"
	"github.com/NVIDIA/nictagadm/pkg/serializer"
)

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to a status and code. Errors without a code are
// reported as INTERNAL with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *cerrors.StructuredError
	if stderrors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, cerrors.ErrCodeInternal, fallbackMessage,
		retryableFromCode(cerrors.ErrCodeInternal), details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code cerrors.ErrorCode) int {
	switch code {
	case cerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case cerrors.ErrCodeResourceExhausted:
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cerrors.ErrorCode) bool {
	switch code {
	case cerrors.ErrCodeTimeout, cerrors.ErrCodeUnavailable, cerrors.ErrCodeRateLimitExceeded, cerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
