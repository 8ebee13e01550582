package handlers

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// UserResolver defines the interface that the identity service must implement.
type UserResolver interface {
	ResolveOrCreate(ctx context.Context, externalID int64, displayName string) (*models.User, error)
}

// UserInfoGetter summarizes a user's participation.
type UserInfoGetter interface {
	UserInfo(ctx context.Context, externalID int64) (*models.UserInfo, error)
}

// UserDeleter removes a user and everything they own.
type UserDeleter interface {
	DeleteUser(ctx context.Context, externalID int64) (bool, error)
}

// ResolveUserRequest represents the JSON body for registering a chat user
// swagger:model ResolveUserRequest
type ResolveUserRequest struct {
	// Current chat username, may be empty
	// default: alice
	DisplayName string `json:"display_name"`
}

// NewResolveUserHandler returns an HTTP handler that registers a chat user on first contact
// and keeps their display name current.
// @Summary Resolve or create user
// @Description Looks the user up by chat platform id, creating them or updating their display name.
// @Tags users
// @Accept json
// @Produce json
// @Param externalID path int true "Chat platform user id"
// @Param request body handlers.ResolveUserRequest true "Resolve user request"
// @Success 200 {object} models.User "User"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{externalID} [put]
// @Security BearerAuth
func NewResolveUserHandler(svc UserResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID, err := externalIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid external id")
			return
		}

		var req ResolveUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode resolve user request", "error", err)
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body")
			return
		}

		user, err := svc.ResolveOrCreate(r.Context(), externalID, req.DisplayName)
		if err != nil {
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewGetUserInfoHandler returns an HTTP handler describing a user's participation.
// @Summary Get user info
// @Description Returns whether the user exists, their submission and vote counts.
// @Tags users
// @Produce json
// @Param externalID path int true "Chat platform user id"
// @Success 200 {object} models.UserInfo "User info"
// @Failure 400 {object} handlers.ErrorResponse "Invalid external id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{externalID} [get]
// @Security BearerAuth
func NewGetUserInfoHandler(svc UserInfoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID, err := externalIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid external id")
			return
		}

		info, err := svc.UserInfo(r.Context(), externalID)
		if err != nil {
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, info)
	}
}

// NewDeleteUserHandler returns an HTTP handler removing a user with their submission and votes.
// @Summary Delete user
// @Description Deletes the user, their submission, votes on it and votes they cast.
// @Tags users
// @Produce json
// @Param externalID path int true "Chat platform user id"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid external id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{externalID} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID, err := externalIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid external id")
			return
		}

		deleted, err := svc.DeleteUser(r.Context(), externalID)
		if err != nil {
			writeInternalError(w)
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, CodeNotFound, "User not found")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
