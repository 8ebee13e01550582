package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByExternalID returns the user with the given chat platform id, or nil if there is none.
func (r *UserReadRepository) GetByExternalID(ctx context.Context, externalID int64) (*models.User, error) {
	const query = `
		SELECT id, external_id, display_name
		FROM users
		WHERE external_id = ?
	`

	ex := executor(ctx, r.db, r.txGetter)

	var user models.User
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), externalID)
	logQuery(query, []any{externalID}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by external id %d: %w", externalID, err)
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user. A concurrent insert of the same external id fails with
// models.ErrDuplicateExternalID.
func (r *UserWriteRepository) Create(ctx context.Context, externalID int64, displayName string) (*models.User, error) {
	const query = `
		INSERT INTO users (external_id, display_name)
		VALUES (?, ?)
		RETURNING id
	`
	args := []any{externalID, displayName}

	ex := executor(ctx, r.db, r.txGetter)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, ex.Rebind(query), args...)
	logQuery(query, args, id, err)

	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, fmt.Errorf("%w: %w", dup, err)
		}
		return nil, fmt.Errorf("create user %d: %w", externalID, err)
	}

	return &models.User{ID: id, ExternalID: externalID, DisplayName: displayName}, nil
}

// UpdateDisplayName overwrites the display name of an existing user in place.
func (r *UserWriteRepository) UpdateDisplayName(ctx context.Context, id int64, displayName string) error {
	const query = `
		UPDATE users
		SET display_name = ?
		WHERE id = ?
	`
	args := []any{displayName, id}

	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("update display name of user %d: %w", id, err)
	}
	return nil
}

// DeleteByExternalID removes a user. The schema cascades the delete to the user's
// submission, the votes on it and the votes the user cast.
func (r *UserWriteRepository) DeleteByExternalID(ctx context.Context, externalID int64) (bool, error) {
	const query = `
		DELETE FROM users
		WHERE external_id = ?
	`

	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), externalID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{externalID}, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", externalID, err)
	}
	return rowsAffected > 0, nil
}
