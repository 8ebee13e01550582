package services

//go:generate mockgen -source=voting.go -destination=mock_voting.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/segmentio/kafka-go"
)

// DefaultLeaderboardLimit is used when Leaderboard is called with a non-positive limit.
const DefaultLeaderboardLimit = 10

// IdentityResolver resolves chat platform users to contest users.
type IdentityResolver interface {
	ResolveOrCreate(ctx context.Context, externalID int64, displayName string) (*models.User, error)
}

// SubmissionReader defines read operations for submissions.
type SubmissionReader interface {
	// GetByID and GetByOwnerID return nil when there is no such submission.
	GetByID(ctx context.Context, id int64) (*models.Submission, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*models.Submission, error)
	CountByExternalID(ctx context.Context, externalID int64) (int64, error)
	// ListVotable returns submissions neither owned nor voted by voterID.
	ListVotable(ctx context.Context, voterID int64) ([]models.Submission, error)
}

// SubmissionWriter defines write operations for submissions.
type SubmissionWriter interface {
	Save(ctx context.Context, messageRef int64, mediaRef string, ownerID int64) (*models.Submission, error)
}

// VoteReader defines read operations for votes.
type VoteReader interface {
	Exists(ctx context.Context, submissionID, voterID int64) (bool, error)
	CountByVoter(ctx context.Context, voterID int64) (int64, error)
	CountBySubmission(ctx context.Context, submissionID int64) (int64, error)
}

// VoteWriter defines write operations for votes.
type VoteWriter interface {
	Save(ctx context.Context, submissionID, voterID int64) (*models.Vote, error)
}

// LeaderboardReader aggregates the ranking.
type LeaderboardReader interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// LeaderboardCache caches aggregated rankings per generation.
// Invalidate starts a new generation; Get only serves entries stored under the current one.
type LeaderboardCache interface {
	// Get returns the current generation even on a miss.
	Get(ctx context.Context, limit int) ([]models.LeaderboardEntry, int64, bool, error)
	// Set stores entries read while generation was current.
	Set(ctx context.Context, generation int64, limit int, entries []models.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Transactor runs fn inside a single storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores groups the storage collaborators of VotingService.
type Stores struct {
	Users            UserReader
	UserWriter       UserWriter
	Submissions      SubmissionReader
	SubmissionWriter SubmissionWriter
	Votes            VoteReader
	VoteWriter       VoteWriter
	Leaderboard      LeaderboardReader
	Tx               Transactor
}

// VotingOption configures optional VotingService collaborators.
type VotingOption func(*VotingService)

// WithLeaderboardCache reads and invalidates rankings through cache.
func WithLeaderboardCache(cache LeaderboardCache) VotingOption {
	return func(s *VotingService) { s.cache = cache }
}

// WithKafkaWriter publishes contest events through w.
func WithKafkaWriter(w KafkaWriter) VotingOption {
	return func(s *VotingService) { s.kafkaWriter = w }
}

// WithDefaultLimit overrides DefaultLeaderboardLimit.
func WithDefaultLimit(limit int) VotingOption {
	return func(s *VotingService) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// VotingService enforces the contest rules: one submission per user, no self votes,
// no double votes, and a deterministic ranking.
//
// Uniqueness checks done here only avoid pointless writes. The storage constraints decide
// races, and the service turns their violations into the same outcome as the fast path.
type VotingService struct {
	identity     IdentityResolver
	stores       Stores
	cache        LeaderboardCache
	kafkaWriter  KafkaWriter
	defaultLimit int
}

// NewVotingService creates a new VotingService.
func NewVotingService(identity IdentityResolver, stores Stores, opts ...VotingOption) *VotingService {
	s := &VotingService{
		identity:     identity,
		stores:       stores,
		defaultLimit: DefaultLeaderboardLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasSubmitted reports whether the chat user owns a submission. Unknown users have not.
func (s *VotingService) HasSubmitted(ctx context.Context, externalID int64) (bool, error) {
	count, err := s.stores.Submissions.CountByExternalID(ctx, externalID)
	if err != nil {
		logger.Log.Errorw("failed to count submissions", "external_id", externalID, "error", err)
		return false, err
	}
	return count == 1, nil
}

// Submit registers the user's contest entry. Callers check HasSubmitted first; Submit does not.
// It fails with models.ErrDuplicateMessage, models.ErrDuplicateMedia or
// models.ErrDuplicateSubmitter when storage rejects the insert.
func (s *VotingService) Submit(ctx context.Context, externalID int64, displayName string, messageRef int64, mediaRef string) (*models.Submission, error) {
	user, err := s.identity.ResolveOrCreate(ctx, externalID, displayName)
	if err != nil {
		return nil, err
	}

	submission, err := s.stores.SubmissionWriter.Save(ctx, messageRef, mediaRef, user.ID)
	if err != nil {
		if dup := submissionConflict(err); dup != nil {
			logger.Log.Infow("submission rejected", "external_id", externalID, "message_ref", messageRef, "reason", dup)
			return nil, dup
		}
		logger.Log.Errorw("failed to save submission", "external_id", externalID, "message_ref", messageRef, "error", err)
		return nil, err
	}

	logger.Log.Infow("submission saved", "external_id", externalID, "submission_id", submission.ID)

	s.invalidateLeaderboard(ctx)
	s.publishEvent(ctx, models.Event{
		Type:         models.EventSubmissionCreated,
		ExternalID:   externalID,
		SubmissionID: submission.ID,
		MediaRef:     submission.MediaRef,
	})

	return submission, nil
}

func submissionConflict(err error) error {
	for _, sentinel := range []error{
		models.ErrDuplicateMessage,
		models.ErrDuplicateMedia,
		models.ErrDuplicateSubmitter,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}

// Candidates returns the submissions the user may still vote for, in insertion order.
// The slice is a snapshot and goes stale as votes are cast.
func (s *VotingService) Candidates(ctx context.Context, externalID int64, displayName string) ([]models.Submission, error) {
	user, err := s.identity.ResolveOrCreate(ctx, externalID, displayName)
	if err != nil {
		return nil, err
	}

	submissions, err := s.stores.Submissions.ListVotable(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list votable submissions", "external_id", externalID, "error", err)
		return nil, err
	}
	return submissions, nil
}

// CastVote records the user's vote for a submission. A rejected vote returns a nil vote, the
// reason and a nil error; the error is reserved for storage failures.
func (s *VotingService) CastVote(ctx context.Context, externalID int64, displayName string, submissionID int64) (*models.Vote, models.RejectionReason, error) {
	voter, err := s.identity.ResolveOrCreate(ctx, externalID, displayName)
	if err != nil {
		return nil, models.RejectionNone, err
	}

	submission, err := s.stores.Submissions.GetByID(ctx, submissionID)
	if err != nil {
		logger.Log.Errorw("failed to get submission", "submission_id", submissionID, "error", err)
		return nil, models.RejectionNone, err
	}
	if submission == nil {
		return s.reject(externalID, submissionID, models.RejectionNotFound)
	}

	if submission.OwnerID == voter.ID {
		return s.reject(externalID, submissionID, models.RejectionSelfVote)
	}

	voted, err := s.stores.Votes.Exists(ctx, submission.ID, voter.ID)
	if err != nil {
		logger.Log.Errorw("failed to check existing vote", "submission_id", submissionID, "external_id", externalID, "error", err)
		return nil, models.RejectionNone, err
	}
	if voted {
		return s.reject(externalID, submissionID, models.RejectionDuplicateVote)
	}

	vote, err := s.stores.VoteWriter.Save(ctx, submission.ID, voter.ID)
	if errors.Is(err, models.ErrDuplicateVote) {
		return s.reject(externalID, submissionID, models.RejectionDuplicateVote)
	}
	if err != nil {
		logger.Log.Errorw("failed to save vote", "submission_id", submissionID, "external_id", externalID, "error", err)
		return nil, models.RejectionNone, err
	}

	logger.Log.Infow("vote saved", "external_id", externalID, "submission_id", submissionID)

	s.invalidateLeaderboard(ctx)
	s.publishEvent(ctx, models.Event{
		Type:         models.EventVoteCast,
		ExternalID:   externalID,
		SubmissionID: submission.ID,
	})

	return vote, models.RejectionNone, nil
}

func (s *VotingService) reject(externalID, submissionID int64, reason models.RejectionReason) (*models.Vote, models.RejectionReason, error) {
	logger.Log.Infow("vote rejected", "external_id", externalID, "submission_id", submissionID, "reason", reason)
	return nil, reason, nil
}

// Leaderboard returns up to limit entries ranked by votes, newest submission first on ties.
// Failures are logged and produce an empty ranking.
func (s *VotingService) Leaderboard(ctx context.Context, limit int) []models.LeaderboardEntry {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	var (
		generation int64
		cacheable  bool
	)
	if s.cache != nil {
		entries, gen, ok, err := s.cache.Get(ctx, limit)
		switch {
		case err != nil:
			logger.Log.Warnw("failed to read cached leaderboard", "limit", limit, "error", err)
		case ok && entries != nil:
			return entries
		default:
			generation, cacheable = gen, true
		}
	}

	entries, err := s.stores.Leaderboard.Top(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to aggregate leaderboard", "limit", limit, "error", err)
		return []models.LeaderboardEntry{}
	}

	for i := range entries {
		if entries[i].DisplayName == "" {
			entries[i].DisplayName = models.AnonymousDisplayName
		}
	}

	// A write that invalidated after Top read makes generation stale, and Get never serves it.
	if cacheable {
		if err := s.cache.Set(ctx, generation, limit, entries); err != nil {
			logger.Log.Warnw("failed to cache leaderboard", "limit", limit, "error", err)
		}
	}

	return entries
}

// UserInfo summarizes the user's participation from a single consistent read.
func (s *VotingService) UserInfo(ctx context.Context, externalID int64) (*models.UserInfo, error) {
	info := &models.UserInfo{ExternalID: externalID}

	err := s.stores.Tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.stores.Users.GetByExternalID(ctx, externalID)
		if err != nil || user == nil {
			return err
		}
		info.Exists = true
		info.UserID = user.ID
		info.DisplayName = user.DisplayName

		if info.VotesGiven, err = s.stores.Votes.CountByVoter(ctx, user.ID); err != nil {
			return err
		}

		submission, err := s.stores.Submissions.GetByOwnerID(ctx, user.ID)
		if err != nil || submission == nil {
			return err
		}
		info.HasSubmission = true
		info.SubmissionID = submission.ID
		info.MediaRef = submission.MediaRef

		info.VotesReceived, err = s.stores.Votes.CountBySubmission(ctx, submission.ID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to get user info", "external_id", externalID, "error", err)
		return nil, err
	}

	return info, nil
}

// DeleteUser removes the user together with their submission and every related vote.
// It reports false when the user does not exist.
func (s *VotingService) DeleteUser(ctx context.Context, externalID int64) (bool, error) {
	deleted, err := s.stores.UserWriter.DeleteByExternalID(ctx, externalID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "external_id", externalID, "error", err)
		return false, err
	}
	if !deleted {
		return false, nil
	}

	logger.Log.Infow("user deleted", "external_id", externalID)

	s.invalidateLeaderboard(ctx)
	s.publishEvent(ctx, models.Event{
		Type:       models.EventUserDeleted,
		ExternalID: externalID,
	})

	return true, nil
}

func (s *VotingService) invalidateLeaderboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate leaderboard cache", "error", err)
	}
}
