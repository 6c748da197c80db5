package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sketchwell/collabsync/internal/config"
	"github.com/sketchwell/collabsync/internal/logger"
)

// DB bundles the sql connection with the statement builder configured for
// the driver's placeholder format and the driver-specific error
// classifier.
type DB struct {
	*sql.DB
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	logger     *logger.Logger
}

// NewConnectPostgres opens a Postgres connection via the pgx stdlib driver
// and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening database connection")
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
	}, nil
}

// NewConnectSQLite opens (creating if needed) a SQLite database file and
// verifies it with a ping. Used for single-binary deployments of the
// storage server.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database connection")
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	// SQLite serializes writes; more than one writer just queues.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: noopClassifier{},
		logger:     log,
	}, nil
}

// NewDBFromSQL wraps an existing *sql.DB. Used by tests (sqlmock) and by
// callers that manage the connection themselves.
func NewDBFromSQL(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
	}
}
