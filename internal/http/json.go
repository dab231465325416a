package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/L-P/mme/internal/errors"
)

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}

// errorStatus maps an error to its HTTP status and machine-readable code.
func errorStatus(err error) (int, string) {
	if errors.Is(err, errInvalidStart) {
		return http.StatusBadRequest, "invalid_start"
	}

	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound, "not_found"
	case apperrors.ErrCodeValidation:
		if apperrors.GetField(err) == "query" {
			return http.StatusBadRequest, "invalid_query"
		}
		return http.StatusBadRequest, "validation_error"
	case apperrors.ErrCodeUnavailable:
		return http.StatusBadGateway, "unavailable"
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, "timeout"
	case apperrors.ErrCodeCanceled:
		// nginx's "client closed request"; nobody reads it.
		return 499, "canceled"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeAppError writes err with the status derived from its code. Internal
// errors are not echoed to the client.
func writeAppError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		err = errors.New("internal server error")
	}
	WriteError(w, ErrorParams{Code: status, ErrCode: code, Err: err})
}
