package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteWriteRepository_Save(t *testing.T) {
	db := setupSQLiteDB(t)
	writeRepo := NewVoteWriteRepository(db, GetTxFromContext)
	readRepo := NewVoteReadRepository(db, GetTxFromContext)
	ctx := context.Background()

	alice := seedUser(t, db, 1, "alice")
	bob := seedUser(t, db, 2, "bob")
	submission := seedSubmission(t, db, alice, 10, "gif-a")

	exists, err := readRepo.Exists(ctx, submission.ID, bob.ID)
	assert.NoError(t, err)
	assert.False(t, exists)

	vote, err := writeRepo.Save(ctx, submission.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.ID, vote.SubmissionID)
	assert.Equal(t, bob.ID, vote.VoterID)

	exists, err = readRepo.Exists(ctx, submission.ID, bob.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	t.Run("SecondInsertHitsConstraint", func(t *testing.T) {
		dup, err := writeRepo.Save(ctx, submission.ID, bob.ID)
		assert.ErrorIs(t, err, models.ErrDuplicateVote)
		assert.Nil(t, dup)

		count, err := readRepo.CountBySubmission(ctx, submission.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("UnknownSubmission", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, submission.ID+100, bob.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrDuplicateVote)
	})
}

func TestVoteReadRepository_Counts(t *testing.T) {
	db := setupSQLiteDB(t)
	writeRepo := NewVoteWriteRepository(db, GetTxFromContext)
	readRepo := NewVoteReadRepository(db, GetTxFromContext)
	ctx := context.Background()

	alice := seedUser(t, db, 1, "alice")
	bob := seedUser(t, db, 2, "bob")
	carol := seedUser(t, db, 3, "carol")
	sa := seedSubmission(t, db, alice, 10, "gif-a")
	sb := seedSubmission(t, db, bob, 11, "gif-b")

	for _, v := range []struct{ submission, voter int64 }{
		{sa.ID, bob.ID},
		{sa.ID, carol.ID},
		{sb.ID, carol.ID},
	} {
		_, err := writeRepo.Save(ctx, v.submission, v.voter)
		require.NoError(t, err)
	}

	given, err := readRepo.CountByVoter(ctx, carol.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), given)

	received, err := readRepo.CountBySubmission(ctx, sa.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), received)

	received, err = readRepo.CountBySubmission(ctx, sb.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), received)
}

func TestDeleteUser_Cascades(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	votes := NewVoteWriteRepository(db, GetTxFromContext)

	alice := seedUser(t, db, 1, "alice")
	bob := seedUser(t, db, 2, "bob")
	carol := seedUser(t, db, 3, "carol")
	sa := seedSubmission(t, db, alice, 10, "gif-a")
	sb := seedSubmission(t, db, bob, 11, "gif-b")

	_, err := votes.Save(ctx, sa.ID, bob.ID)
	require.NoError(t, err)
	_, err = votes.Save(ctx, sb.ID, alice.ID)
	require.NoError(t, err)
	_, err = votes.Save(ctx, sb.ID, carol.ID)
	require.NoError(t, err)

	deleted, err := NewUserWriteRepository(db, GetTxFromContext).DeleteByExternalID(ctx, alice.ExternalID)
	require.NoError(t, err)
	require.True(t, deleted)

	var submissions, remainingVotes int
	assert.NoError(t, db.Get(&submissions, `SELECT COUNT(*) FROM submissions`))
	assert.NoError(t, db.Get(&remainingVotes, `SELECT COUNT(*) FROM votes`))
	assert.Equal(t, 1, submissions, "alice's submission is removed")
	assert.Equal(t, 1, remainingVotes, "only carol's vote on bob survives")
}
