package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shopcore/internal/model"

	"github.com/rs/zerolog"
)

// envelope is the wire shape shared by every endpoint: {"success": true,
// ...payload} on success, {"success": false, "error": "message"} on failure.
type envelope map[string]any

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already on the wire, nothing left to do
		return
	}
}

// writeSuccess writes a success envelope with the payload entries merged in.
func writeSuccess(w http.ResponseWriter, status int, payload envelope) {
	data := envelope{"success": true}
	for k, v := range payload {
		data[k] = v
	}
	writeJSON(w, status, data)
}

// writeFailure writes a failure envelope for err. Domain errors pick their
// status from the error code; anything else is a 500 carrying the error text.
func writeFailure(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status := statusForError(err)
	logger.Error().Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, status, envelope{"success": false, "error": err.Error()})
}

// writeBadRequest writes a 400 failure envelope with a fixed message.
func writeBadRequest(w http.ResponseWriter, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Msg("bad request")
	writeJSON(w, http.StatusBadRequest, envelope{"success": false, "error": message})
}

// writeMethodNotAllowed writes a 405 failure envelope.
func writeMethodNotAllowed(w http.ResponseWriter, logger zerolog.Logger) {
	logger.Warn().Msg("method not allowed")
	writeJSON(w, http.StatusMethodNotAllowed, envelope{"success": false, "error": "Method not allowed."})
}

// statusForError maps a domain error code to an HTTP status. Unknown errors
// are internal failures.
func statusForError(err error) int {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeValidation:
			return http.StatusBadRequest
		case model.ErrCodeNotFound:
			return http.StatusNotFound
		case model.ErrCodeConflict:
			return http.StatusConflict
		case model.ErrCodeUnauthorised:
			return http.StatusUnauthorized
		}
	}
	return http.StatusInternalServerError
}

// parseID parses the numeric ID segment that follows prefix in path. The
// second return is false when the segment is missing or not a number.
func parseID(path, prefix string) (int64, bool) {
	if len(path) <= len(prefix) {
		return 0, false
	}
	segment := strings.TrimSuffix(path[len(prefix):], "/")

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
