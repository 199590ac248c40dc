package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
	"github.com/heartmarshall/mealplanner-backend/pkg/ctxutil"
)

// Error codes returned in the "code" field of error responses.
const (
	codeNotFound      = "NOT_FOUND"
	codeAlreadyExists = "ALREADY_EXISTS"
	codeValidation    = "VALIDATION"
	codeConflict      = "CONFLICT"
	codeBadRequest    = "BAD_REQUEST"
	codeInternal      = "INTERNAL"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error  string          `json:"error"`
	Code   string          `json:"code"`
	Fields []FieldResponse `json:"fields,omitempty"`
}

// FieldResponse is one field-level validation failure.
type FieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondError maps domain errors to HTTP statuses. Anything unexpected is
// logged and hidden behind a generic 500.
func respondError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")

	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "already exists")

	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "conflict")

	case errors.Is(err, domain.ErrValidation):
		resp := ErrorResponse{Error: "validation failed", Code: codeValidation}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, FieldResponse{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)

	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses the named path wildcard as a UUID, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parseDate reads a YYYY-MM-DD string as midnight in loc.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return t, nil
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}
