// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/migrations"
)

// Dialect selects the SQL flavour a [DB] speaks.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

// maxTxAttempts bounds the retries of a transaction aborted with a
// retryable error (serialization failure, deadlock, busy database).
const maxTxAttempts = 3

// DB wraps a database/sql pool with its dialect, error classification and
// transaction settings.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	txTimeout          time.Duration
	logger             *logger.Logger
}

// querier is the subset of *sql.DB and *sql.Tx used by repositories, so the
// same repository code runs inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "", "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driverName())
}

func (db *DB) driverName() string {
	if db.dialect == DialectSQLite {
		return "sqlite3"
	}
	return "pgx"
}

// builder returns a squirrel statement builder with the dialect's placeholders.
func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// txOptions returns the isolation used for check-then-act transactions.
// SQLite transactions are always serializable and the driver rejects
// explicit levels, so it keeps the default.
func (d Dialect) txOptions() *sql.TxOptions {
	if d == DialectSQLite {
		return nil
	}
	return &sql.TxOptions{Isolation: sql.LevelSerializable}
}

// WithinTx runs fn in a serializable transaction and commits it when fn
// returns nil.
//
// The transaction is detached from ctx cancellation and bounded by the
// configured transaction timeout instead, so a client disconnect can never
// leave a half-applied change: the transaction either commits or rolls back
// as a whole. Retryable failures restart fn from scratch up to
// maxTxAttempts times; the last one comes back wrapped in
// ErrTxRetriesExhausted.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	txCtx := context.WithoutCancel(ctx)
	if db.txTimeout > 0 {
		var cancel context.CancelFunc
		txCtx, cancel = context.WithTimeout(txCtx, db.txTimeout)
		defer cancel()
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(txCtx, fn)
		if err == nil || !db.retryable(err) {
			return err
		}

		log.Warn().Err(err).
			Str("func", "DB.WithinTx").
			Int("attempt", attempt).
			Msg("retryable transaction failure")
	}

	return fmt.Errorf("%w: %w", ErrTxRetriesExhausted, err)
}

func (db *DB) runTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, db.dialect.txOptions())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
