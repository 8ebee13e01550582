package handlers

//go:generate mockgen -source=submission.go -destination=mock_submission.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// SubmissionChecker reports whether a user already entered the contest.
type SubmissionChecker interface {
	HasSubmitted(ctx context.Context, externalID int64) (bool, error)
}

// Submitter defines the interface that the voting service must implement.
type Submitter interface {
	SubmissionChecker
	Submit(ctx context.Context, externalID int64, displayName string, messageRef int64, mediaRef string) (*models.Submission, error)
}

// SubmittedResponse tells whether the user owns a submission
// swagger:model SubmittedResponse
type SubmittedResponse struct {
	Submitted bool `json:"submitted"`
}

// SubmitRequest represents the JSON body for entering the contest
// swagger:model SubmitRequest
type SubmitRequest struct {
	// Chat platform user id
	// required: true
	ExternalID int64 `json:"external_id"`

	// Current chat username
	DisplayName string `json:"display_name"`

	// Id of the chat message carrying the animation
	// required: true
	MessageRef int64 `json:"message_ref"`

	// Opaque media file id
	// required: true
	MediaRef string `json:"media_ref"`
}

// NewHasSubmittedHandler returns an HTTP handler reporting whether the user has a submission.
// @Summary Check submission
// @Description Reports whether the user owns a submission. Unknown users have not submitted.
// @Tags submissions
// @Produce json
// @Param externalID path int true "Chat platform user id"
// @Success 200 {object} handlers.SubmittedResponse "Submission state"
// @Failure 400 {object} handlers.ErrorResponse "Invalid external id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{externalID}/submission [get]
// @Security BearerAuth
func NewHasSubmittedHandler(svc SubmissionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID, err := externalIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid external id")
			return
		}

		submitted, err := svc.HasSubmitted(r.Context(), externalID)
		if err != nil {
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, SubmittedResponse{Submitted: submitted})
	}
}

// NewSubmitHandler returns an HTTP handler registering a user's contest entry.
// @Summary Submit an animation
// @Description Registers the user's single contest entry.
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body handlers.SubmitRequest true "Submit request"
// @Success 201 {object} models.Submission "Created submission"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate submitter, message or media"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /submissions [post]
// @Security BearerAuth
func NewSubmitHandler(svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode submit request", "error", err)
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body")
			return
		}
		if req.ExternalID == 0 || req.MessageRef == 0 || req.MediaRef == "" {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Missing required fields")
			return
		}

		submitted, err := svc.HasSubmitted(ctx, req.ExternalID)
		if err != nil {
			writeInternalError(w)
			return
		}
		if submitted {
			writeSubmissionConflict(w, models.ErrDuplicateSubmitter)
			return
		}

		submission, err := svc.Submit(ctx, req.ExternalID, req.DisplayName, req.MessageRef, req.MediaRef)
		if err != nil {
			if !writeSubmissionConflict(w, err) {
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusCreated, submission)
	}
}
