package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// Stable error codes returned to adapters.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeInternalError      = "internal_error"
	CodeNotFound           = "not_found"
	CodeDuplicateMessage   = "duplicate_message"
	CodeDuplicateMedia     = "duplicate_media"
	CodeDuplicateSubmitter = "duplicate_submitter"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable message
	// default: Invalid request body
	Error string `json:"error"`

	// Machine readable code
	// default: invalid_request
	Code string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, CodeInternalError, "Internal server error")
}

// externalIDParam reads the {externalID} path segment.
func externalIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "externalID"), 10, 64)
}

var submissionConflicts = []struct {
	err     error
	code    string
	message string
}{
	{models.ErrDuplicateSubmitter, CodeDuplicateSubmitter, "User already has a submission"},
	{models.ErrDuplicateMessage, CodeDuplicateMessage, "Message already submitted"},
	{models.ErrDuplicateMedia, CodeDuplicateMedia, "Media already submitted"},
}

// writeSubmissionConflict answers 409 for known uniqueness violations and reports
// whether it did.
func writeSubmissionConflict(w http.ResponseWriter, err error) bool {
	for _, c := range submissionConflicts {
		if errors.Is(err, c.err) {
			writeError(w, http.StatusConflict, c.code, c.message)
			return true
		}
	}
	return false
}
