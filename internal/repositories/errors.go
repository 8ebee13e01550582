package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gif-contest/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

// Postgres reports the constraint name.
var duplicateByConstraint = map[string]error{
	"users_external_id_key":       models.ErrDuplicateExternalID,
	"submissions_message_ref_key": models.ErrDuplicateMessage,
	"submissions_media_ref_key":   models.ErrDuplicateMedia,
	"submissions_owner_id_key":    models.ErrDuplicateSubmitter,
	"votes_submission_voter_key":  models.ErrDuplicateVote,
}

// SQLite reports the offending columns instead.
var duplicateByColumns = map[string]error{
	"users.external_id":                   models.ErrDuplicateExternalID,
	"submissions.message_ref":             models.ErrDuplicateMessage,
	"submissions.media_ref":               models.ErrDuplicateMedia,
	"submissions.owner_id":                models.ErrDuplicateSubmitter,
	"votes.submission_id, votes.voter_id": models.ErrDuplicateVote,
}

const sqliteUniquePrefix = "UNIQUE constraint failed: "

// duplicateError maps a driver unique-violation error to the matching models.ErrDuplicate*
// sentinel. It returns nil for any other error.
func duplicateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return nil
		}
		return duplicateByConstraint[pgErr.ConstraintName]
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if liteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
			return nil
		}
		return duplicateByColumns[sqliteUniqueColumns(liteErr.Error())]
	}

	return nil
}

// sqliteUniqueColumns extracts "table.col[, table.col]" from a SQLite unique failure message.
func sqliteUniqueColumns(msg string) string {
	i := strings.Index(msg, sqliteUniquePrefix)
	if i < 0 {
		return ""
	}
	cols := msg[i+len(sqliteUniquePrefix):]
	if j := strings.Index(cols, " ("); j >= 0 {
		cols = cols[:j]
	}
	return strings.TrimSpace(cols)
}
