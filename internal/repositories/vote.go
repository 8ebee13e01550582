package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// VoteReadRepository handles vote read operations
type VoteReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVoteReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VoteReadRepository {
	return &VoteReadRepository{db: db, txGetter: txGetter}
}

// Exists reports whether voterID already voted for submissionID.
func (r *VoteReadRepository) Exists(ctx context.Context, submissionID, voterID int64) (bool, error) {
	const query = `
		SELECT COUNT(*)
		FROM votes
		WHERE submission_id = ? AND voter_id = ?
	`
	args := []any{submissionID, voterID}

	ex := executor(ctx, r.db, r.txGetter)

	var count int64
	err := sqlx.GetContext(ctx, ex, &count, ex.Rebind(query), args...)
	logQuery(query, args, count, err)

	if err != nil {
		return false, fmt.Errorf("check vote of user %d on submission %d: %w", voterID, submissionID, err)
	}
	return count > 0, nil
}

// CountByVoter returns how many votes the user cast.
func (r *VoteReadRepository) CountByVoter(ctx context.Context, voterID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM votes WHERE voter_id = ?`
	return r.count(ctx, query, voterID)
}

// CountBySubmission returns how many votes the submission received.
func (r *VoteReadRepository) CountBySubmission(ctx context.Context, submissionID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM votes WHERE submission_id = ?`
	return r.count(ctx, query, submissionID)
}

func (r *VoteReadRepository) count(ctx context.Context, query string, arg int64) (int64, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var count int64
	err := sqlx.GetContext(ctx, ex, &count, ex.Rebind(query), arg)
	logQuery(query, []any{arg}, count, err)

	if err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return count, nil
}

// VoteWriteRepository handles vote write operations
type VoteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVoteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VoteWriteRepository {
	return &VoteWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a vote. A second vote for the same (submission, voter) pair fails with
// models.ErrDuplicateVote.
func (r *VoteWriteRepository) Save(ctx context.Context, submissionID, voterID int64) (*models.Vote, error) {
	const query = `
		INSERT INTO votes (submission_id, voter_id)
		VALUES (?, ?)
		RETURNING id
	`
	args := []any{submissionID, voterID}

	ex := executor(ctx, r.db, r.txGetter)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, ex.Rebind(query), args...)
	logQuery(query, args, id, err)

	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, fmt.Errorf("%w: %w", dup, err)
		}
		return nil, fmt.Errorf("save vote of user %d on submission %d: %w", voterID, submissionID, err)
	}

	return &models.Vote{ID: id, SubmissionID: submissionID, VoterID: voterID}, nil
}
