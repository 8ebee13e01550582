package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Driver names understood by Migrate.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know yet.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// PostgresConfig holds connection and pool settings for PostgreSQL.
type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// OpenPostgres connects to PostgreSQL, configures the pool and applies the schema.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverPostgres, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres: connecting: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file and applies the schema.
// SQLite allows a single writer, so the pool is limited to one connection and
// concurrent callers queue on it.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := "file:" + path + "?" + strings.Join([]string{
		"_pragma=foreign_keys(1)",
		"_pragma=journal_mode(WAL)",
		"_pragma=busy_timeout(5000)",
	}, "&")

	db, err := sqlx.ConnectContext(ctx, DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the contest tables for the database's driver.
// Safe to call multiple times.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var schema string
	switch db.DriverName() {
	case DriverPostgres:
		schema = postgresSchema
	case DriverSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("migrate: unsupported driver %q", db.DriverName())
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: creating schema: %w", err)
	}
	return nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	id           BIGSERIAL PRIMARY KEY,
	external_id  BIGINT NOT NULL,
	display_name TEXT NOT NULL DEFAULT '',
	CONSTRAINT users_external_id_key UNIQUE (external_id)
);

CREATE TABLE IF NOT EXISTS submissions (
	id          BIGSERIAL PRIMARY KEY,
	message_ref BIGINT NOT NULL,
	media_ref   TEXT NOT NULL,
	owner_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	CONSTRAINT submissions_message_ref_key UNIQUE (message_ref),
	CONSTRAINT submissions_media_ref_key UNIQUE (media_ref),
	CONSTRAINT submissions_owner_id_key UNIQUE (owner_id)
);

CREATE TABLE IF NOT EXISTS votes (
	id            BIGSERIAL PRIMARY KEY,
	submission_id BIGINT NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
	voter_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	CONSTRAINT votes_submission_voter_key UNIQUE (submission_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_voter_id ON votes(voter_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	external_id  INTEGER NOT NULL,
	display_name TEXT NOT NULL DEFAULT '',
	CONSTRAINT users_external_id_key UNIQUE (external_id)
);

CREATE TABLE IF NOT EXISTS submissions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	message_ref INTEGER NOT NULL,
	media_ref   TEXT NOT NULL,
	owner_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	CONSTRAINT submissions_message_ref_key UNIQUE (message_ref),
	CONSTRAINT submissions_media_ref_key UNIQUE (media_ref),
	CONSTRAINT submissions_owner_id_key UNIQUE (owner_id)
);

CREATE TABLE IF NOT EXISTS votes (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	submission_id INTEGER NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
	voter_id      INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	CONSTRAINT votes_submission_voter_key UNIQUE (submission_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_voter_id ON votes(voter_id);
`
