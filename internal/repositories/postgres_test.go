package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := PostgresConfig{
		Host:         host,
		Port:         port.Int(),
		User:         "postgres",
		Password:     "password",
		DB:           "testdb",
		MaxOpenConns: 16,
		MaxIdleConns: 4,
	}

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = OpenPostgres(ctx, cfg)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestPostgres_Constraints(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db, GetTxFromContext)
	submissions := NewSubmissionWriteRepository(db, GetTxFromContext)
	votes := NewVoteWriteRepository(db, GetTxFromContext)

	alice, err := users.Create(ctx, 1, "alice")
	require.NoError(t, err)
	bob, err := users.Create(ctx, 2, "bob")
	require.NoError(t, err)

	_, err = users.Create(ctx, 1, "again")
	assert.ErrorIs(t, err, models.ErrDuplicateExternalID)

	sa, err := submissions.Save(ctx, 10, "gif-a", alice.ID)
	require.NoError(t, err)

	_, err = submissions.Save(ctx, 10, "gif-b", bob.ID)
	assert.ErrorIs(t, err, models.ErrDuplicateMessage)
	_, err = submissions.Save(ctx, 11, "gif-a", bob.ID)
	assert.ErrorIs(t, err, models.ErrDuplicateMedia)
	_, err = submissions.Save(ctx, 12, "gif-c", alice.ID)
	assert.ErrorIs(t, err, models.ErrDuplicateSubmitter)

	_, err = votes.Save(ctx, sa.ID, bob.ID)
	require.NoError(t, err)
	_, err = votes.Save(ctx, sa.ID, bob.ID)
	assert.ErrorIs(t, err, models.ErrDuplicateVote)
}

func TestPostgres_ConcurrentVotesKeepOneRow(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	alice, err := NewUserWriteRepository(db, nil).Create(ctx, 1, "alice")
	require.NoError(t, err)
	bob, err := NewUserWriteRepository(db, nil).Create(ctx, 2, "bob")
	require.NoError(t, err)
	submission, err := NewSubmissionWriteRepository(db, nil).Save(ctx, 10, "gif-a", alice.ID)
	require.NoError(t, err)

	votes := NewVoteWriteRepository(db, nil)

	const n = 20
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		saved      int
		duplicates int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := votes.Save(ctx, submission.ID, bob.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				saved++
			case assert.ErrorIs(t, err, models.ErrDuplicateVote):
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, saved)
	assert.Equal(t, n-1, duplicates)

	count, err := NewVoteReadRepository(db, nil).CountBySubmission(ctx, submission.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostgres_LeaderboardOrdering(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	alice, err := NewUserWriteRepository(db, nil).Create(ctx, 1, "alice")
	require.NoError(t, err)
	bob, err := NewUserWriteRepository(db, nil).Create(ctx, 2, "bob")
	require.NoError(t, err)
	carol, err := NewUserWriteRepository(db, nil).Create(ctx, 3, "")
	require.NoError(t, err)

	sa, err := NewSubmissionWriteRepository(db, nil).Save(ctx, 10, "gif-a", alice.ID)
	require.NoError(t, err)
	sb, err := NewSubmissionWriteRepository(db, nil).Save(ctx, 11, "gif-b", bob.ID)
	require.NoError(t, err)
	sc, err := NewSubmissionWriteRepository(db, nil).Save(ctx, 12, "gif-c", carol.ID)
	require.NoError(t, err)

	_, err = NewVoteWriteRepository(db, nil).Save(ctx, sa.ID, carol.ID)
	require.NoError(t, err)
	_, err = NewVoteWriteRepository(db, nil).Save(ctx, sb.ID, carol.ID)
	require.NoError(t, err)

	got, err := NewLeaderboardReadRepository(db).Top(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, []models.LeaderboardEntry{
		{SubmissionID: sb.ID, DisplayName: "bob", VoteCount: 1, MediaRef: "gif-b"},
		{SubmissionID: sa.ID, DisplayName: "alice", VoteCount: 1, MediaRef: "gif-a"},
		{SubmissionID: sc.ID, DisplayName: "", VoteCount: 0, MediaRef: "gif-c"},
	}, got)
}
