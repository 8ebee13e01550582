package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, db *sqlx.DB, externalID int64, name string) *models.User {
	t.Helper()
	user, err := NewUserWriteRepository(db, nil).Create(context.Background(), externalID, name)
	require.NoError(t, err)
	return user
}

func seedSubmission(t *testing.T, db *sqlx.DB, owner *models.User, messageRef int64, mediaRef string) *models.Submission {
	t.Helper()
	submission, err := NewSubmissionWriteRepository(db, nil).Save(context.Background(), messageRef, mediaRef, owner.ID)
	require.NoError(t, err)
	return submission
}

func TestSubmissionWriteRepository_Save(t *testing.T) {
	db := setupSQLiteDB(t)
	writeRepo := NewSubmissionWriteRepository(db, GetTxFromContext)
	readRepo := NewSubmissionReadRepository(db, GetTxFromContext)
	ctx := context.Background()

	alice := seedUser(t, db, 1, "alice")
	bob := seedUser(t, db, 2, "bob")

	submission, err := writeRepo.Save(ctx, 100, "gif-a", alice.ID)
	require.NoError(t, err)

	got, err := readRepo.GetByID(ctx, submission.ID)
	assert.NoError(t, err)
	assert.Equal(t, submission, got)

	tests := []struct {
		name       string
		messageRef int64
		mediaRef   string
		ownerID    int64
		wantErr    error
	}{
		{name: "duplicate message", messageRef: 100, mediaRef: "gif-b", ownerID: bob.ID, wantErr: models.ErrDuplicateMessage},
		{name: "duplicate media", messageRef: 101, mediaRef: "gif-a", ownerID: bob.ID, wantErr: models.ErrDuplicateMedia},
		{name: "second submission of same owner", messageRef: 102, mediaRef: "gif-c", ownerID: alice.ID, wantErr: models.ErrDuplicateSubmitter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := writeRepo.Save(ctx, tt.messageRef, tt.mediaRef, tt.ownerID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}

	count, err := readRepo.CountByExternalID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmissionReadRepository_Lookups(t *testing.T) {
	db := setupSQLiteDB(t)
	readRepo := NewSubmissionReadRepository(db, GetTxFromContext)
	ctx := context.Background()

	alice := seedUser(t, db, 1, "alice")
	seedUser(t, db, 2, "bob")
	submission := seedSubmission(t, db, alice, 10, "gif-a")

	t.Run("ByOwner", func(t *testing.T) {
		got, err := readRepo.GetByOwnerID(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Equal(t, submission, got)
	})

	t.Run("MissingID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, submission.ID+100)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("CountWithoutSubmission", func(t *testing.T) {
		count, err := readRepo.CountByExternalID(ctx, 2)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("CountUnknownUser", func(t *testing.T) {
		count, err := readRepo.CountByExternalID(ctx, 999)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestSubmissionReadRepository_ListVotable(t *testing.T) {
	db := setupSQLiteDB(t)
	readRepo := NewSubmissionReadRepository(db, GetTxFromContext)
	voteRepo := NewVoteWriteRepository(db, GetTxFromContext)
	ctx := context.Background()

	alice := seedUser(t, db, 1, "alice")
	bob := seedUser(t, db, 2, "bob")
	carol := seedUser(t, db, 3, "carol")
	dave := seedUser(t, db, 4, "dave")

	sa := seedSubmission(t, db, alice, 10, "gif-a")
	sb := seedSubmission(t, db, bob, 11, "gif-b")
	sc := seedSubmission(t, db, carol, 12, "gif-c")

	_, err := voteRepo.Save(ctx, sb.ID, alice.ID)
	require.NoError(t, err)

	got, err := readRepo.ListVotable(ctx, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, []models.Submission{*sc}, got, "own and already voted submissions are excluded")

	got, err = readRepo.ListVotable(ctx, dave.ID)
	assert.NoError(t, err)
	assert.Equal(t, []models.Submission{*sa, *sb, *sc}, got, "insertion order")

	_, err = voteRepo.Save(ctx, sa.ID, bob.ID)
	require.NoError(t, err)
	_, err = voteRepo.Save(ctx, sc.ID, bob.ID)
	require.NoError(t, err)

	got, err = readRepo.ListVotable(ctx, bob.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
