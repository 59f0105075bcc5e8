package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, errorBody{Detail: detail})
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, detail)
}

// writeError maps service errors to status codes. Anything unrecognised is
// logged with its cause and answered with a generic 500.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		writeDetail(w, http.StatusUnprocessableEntity, "Email already registered")
	case errors.Is(err, common.ErrorValidation):
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		writeUnauthorized(w, "Incorrect email or password")
	case errors.Is(err, common.ErrUnauthenticated):
		writeUnauthorized(w, "Could not validate credentials")
	case errors.Is(err, common.ErrorNotFound):
		writeDetail(w, http.StatusNotFound, "Todo not found")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody reads a JSON object into v. Malformed bodies are answered
// with 422 and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return false
	}
	return true
}
