package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// SubmissionReadRepository handles submission read operations
type SubmissionReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSubmissionReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SubmissionReadRepository {
	return &SubmissionReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the submission with the given id, or nil if there is none.
func (r *SubmissionReadRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	const query = `
		SELECT id, message_ref, media_ref, owner_id
		FROM submissions
		WHERE id = ?
	`
	return r.getOne(ctx, query, id)
}

// GetByOwnerID returns the submission owned by the given internal user id, or nil.
func (r *SubmissionReadRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*models.Submission, error) {
	const query = `
		SELECT id, message_ref, media_ref, owner_id
		FROM submissions
		WHERE owner_id = ?
	`
	return r.getOne(ctx, query, ownerID)
}

func (r *SubmissionReadRepository) getOne(ctx context.Context, query string, arg int64) (*models.Submission, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var submission models.Submission
	err := sqlx.GetContext(ctx, ex, &submission, ex.Rebind(query), arg)
	logQuery(query, []any{arg}, submission, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &submission, nil
}

// CountByExternalID counts the submissions owned by the user with the given chat platform id.
// A missing user counts zero.
func (r *SubmissionReadRepository) CountByExternalID(ctx context.Context, externalID int64) (int64, error) {
	const query = `
		SELECT COUNT(s.id)
		FROM submissions s
		JOIN users u ON u.id = s.owner_id
		WHERE u.external_id = ?
	`

	ex := executor(ctx, r.db, r.txGetter)

	var count int64
	err := sqlx.GetContext(ctx, ex, &count, ex.Rebind(query), externalID)
	logQuery(query, []any{externalID}, count, err)

	if err != nil {
		return 0, fmt.Errorf("count submissions of user %d: %w", externalID, err)
	}
	return count, nil
}

// ListVotable returns every submission not owned by voterID and not yet voted by voterID,
// in insertion order.
func (r *SubmissionReadRepository) ListVotable(ctx context.Context, voterID int64) ([]models.Submission, error) {
	const query = `
		SELECT s.id, s.message_ref, s.media_ref, s.owner_id
		FROM submissions s
		WHERE s.owner_id <> ?
		  AND NOT EXISTS (
			SELECT 1 FROM votes v
			WHERE v.submission_id = s.id AND v.voter_id = ?
		  )
		ORDER BY s.id
	`
	args := []any{voterID, voterID}

	ex := executor(ctx, r.db, r.txGetter)

	submissions := []models.Submission{}
	err := sqlx.SelectContext(ctx, ex, &submissions, ex.Rebind(query), args...)
	logQuery(query, args, len(submissions), err)

	if err != nil {
		return nil, fmt.Errorf("list votable submissions for user %d: %w", voterID, err)
	}
	return submissions, nil
}

// SubmissionWriteRepository handles submission write operations
type SubmissionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSubmissionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SubmissionWriteRepository {
	return &SubmissionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a submission. Unique violations are reported as models.ErrDuplicateMessage,
// models.ErrDuplicateMedia or models.ErrDuplicateSubmitter.
func (r *SubmissionWriteRepository) Save(ctx context.Context, messageRef int64, mediaRef string, ownerID int64) (*models.Submission, error) {
	const query = `
		INSERT INTO submissions (message_ref, media_ref, owner_id)
		VALUES (?, ?, ?)
		RETURNING id
	`
	args := []any{messageRef, mediaRef, ownerID}

	ex := executor(ctx, r.db, r.txGetter)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, ex.Rebind(query), args...)
	logQuery(query, args, id, err)

	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, fmt.Errorf("%w: %w", dup, err)
		}
		return nil, fmt.Errorf("save submission of user %d: %w", ownerID, err)
	}

	return &models.Submission{
		ID:         id,
		MessageRef: messageRef,
		MediaRef:   mediaRef,
		OwnerID:    ownerID,
	}, nil
}
