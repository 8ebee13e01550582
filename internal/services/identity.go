package services

//go:generate mockgen -source=identity.go -destination=mock_identity.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByExternalID(ctx context.Context, externalID int64) (*models.User, error) // Returns nil when the user does not exist
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, externalID int64, displayName string) (*models.User, error)
	UpdateDisplayName(ctx context.Context, id int64, displayName string) error
	DeleteByExternalID(ctx context.Context, externalID int64) (bool, error)
}

// IdentityService maps chat platform user ids to contest users.
type IdentityService struct {
	reader UserReader
	writer UserWriter
}

// NewIdentityService creates a new IdentityService instance.
func NewIdentityService(reader UserReader, writer UserWriter) *IdentityService {
	return &IdentityService{
		reader: reader,
		writer: writer,
	}
}

// ResolveOrCreate returns the user for externalID, creating it on first contact and
// overwriting the stored display name when it changed. When another request creates the same
// user concurrently, the losing insert is discarded and the winner's row is returned.
func (svc *IdentityService) ResolveOrCreate(ctx context.Context, externalID int64, displayName string) (*models.User, error) {
	user, err := svc.reader.GetByExternalID(ctx, externalID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "external_id", externalID, "error", err)
		return nil, err
	}

	if user == nil {
		user, err = svc.writer.Create(ctx, externalID, displayName)
		if err == nil {
			logger.Log.Infow("user created", "external_id", externalID, "user_id", user.ID)
			return user, nil
		}
		if !errors.Is(err, models.ErrDuplicateExternalID) {
			logger.Log.Errorw("failed to create user", "external_id", externalID, "error", err)
			return nil, err
		}

		logger.Log.Debugw("user created concurrently, re-reading", "external_id", externalID)
		user, err = svc.reader.GetByExternalID(ctx, externalID)
		if err != nil {
			logger.Log.Errorw("failed to re-read user", "external_id", externalID, "error", err)
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("user %d missing after duplicate insert", externalID)
		}
	}

	if user.DisplayName != displayName {
		if err := svc.writer.UpdateDisplayName(ctx, user.ID, displayName); err != nil {
			logger.Log.Errorw("failed to update display name", "external_id", externalID, "error", err)
			return nil, err
		}
		user.DisplayName = displayName
	}

	return user, nil
}
