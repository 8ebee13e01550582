package handlers

//go:generate mockgen -source=vote.go -destination=mock_vote.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// CandidateLister lists submissions a user may vote for.
type CandidateLister interface {
	Candidates(ctx context.Context, externalID int64, displayName string) ([]models.Submission, error)
}

// VoteCaster defines the interface that the voting service must implement.
type VoteCaster interface {
	CastVote(ctx context.Context, externalID int64, displayName string, submissionID int64) (*models.Vote, models.RejectionReason, error)
}

// CastVoteRequest represents the JSON body for voting
// swagger:model CastVoteRequest
type CastVoteRequest struct {
	// Chat platform id of the voter
	// required: true
	ExternalID int64 `json:"external_id"`

	// Current chat username of the voter
	DisplayName string `json:"display_name"`

	// Submission to vote for
	// required: true
	SubmissionID int64 `json:"submission_id"`
}

var rejectionStatus = map[models.RejectionReason]int{
	models.RejectionNotFound:      http.StatusNotFound,
	models.RejectionSelfVote:      http.StatusForbidden,
	models.RejectionDuplicateVote: http.StatusConflict,
}

var rejectionMessage = map[models.RejectionReason]string{
	models.RejectionNotFound:      "Submission not found",
	models.RejectionSelfVote:      "Cannot vote for own submission",
	models.RejectionDuplicateVote: "Already voted for this submission",
}

// NewCandidatesHandler returns an HTTP handler listing the submissions the user can still vote for.
// @Summary List vote candidates
// @Description Submissions not owned and not yet voted by the user, oldest first.
// @Tags votes
// @Produce json
// @Param externalID path int true "Chat platform user id"
// @Param display_name query string false "Current chat username"
// @Success 200 {array} models.Submission "Candidates"
// @Failure 400 {object} handlers.ErrorResponse "Invalid external id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{externalID}/candidates [get]
// @Security BearerAuth
func NewCandidatesHandler(svc CandidateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID, err := externalIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid external id")
			return
		}

		candidates, err := svc.Candidates(r.Context(), externalID, r.URL.Query().Get("display_name"))
		if err != nil {
			writeInternalError(w)
			return
		}
		if candidates == nil {
			candidates = []models.Submission{}
		}

		writeJSON(w, http.StatusOK, candidates)
	}
}

// NewCastVoteHandler returns an HTTP handler recording a vote.
// @Summary Cast a vote
// @Description Records one vote of the user for a submission of someone else.
// @Tags votes
// @Accept json
// @Produce json
// @Param request body handlers.CastVoteRequest true "Vote request"
// @Success 201 {object} models.Vote "Recorded vote"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Self vote"
// @Failure 404 {object} handlers.ErrorResponse "Submission not found"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate vote"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /votes [post]
// @Security BearerAuth
func NewCastVoteHandler(svc VoteCaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CastVoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode vote request", "error", err)
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body")
			return
		}
		if req.ExternalID == 0 || req.SubmissionID <= 0 {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Missing required fields")
			return
		}

		vote, reason, err := svc.CastVote(r.Context(), req.ExternalID, req.DisplayName, req.SubmissionID)
		if err != nil {
			writeInternalError(w)
			return
		}
		if reason != models.RejectionNone {
			status, ok := rejectionStatus[reason]
			if !ok {
				logger.Log.Errorw("unknown rejection reason", "reason", reason, "submission_id", req.SubmissionID)
				writeInternalError(w)
				return
			}
			writeError(w, status, string(reason), rejectionMessage[reason])
			return
		}

		writeJSON(w, http.StatusCreated, vote)
	}
}
