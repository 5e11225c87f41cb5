// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestDB_WithinTx(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		fnErrs    []error
		wantErr   error
		wantCalls int
	}{
		{
			name: "commits when fn succeeds",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fnErrs:    []error{nil},
			wantCalls: 1,
		},
		{
			name: "rolls back and returns fn error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fnErrs:    []error{errBoom},
			wantErr:   errBoom,
			wantCalls: 1,
		},
		{
			name: "retries serialization failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fnErrs:    []error{pgError(pgerrcode.SerializationFailure), nil},
			wantCalls: 2,
		},
		{
			name: "gives up after max attempts",
			setup: func(mock sqlmock.Sqlmock) {
				for range maxTxAttempts {
					mock.ExpectBegin()
					mock.ExpectRollback()
				}
			},
			fnErrs: []error{
				pgError(pgerrcode.DeadlockDetected),
				pgError(pgerrcode.DeadlockDetected),
				pgError(pgerrcode.DeadlockDetected),
			},
			wantErr:   ErrTxRetriesExhausted,
			wantCalls: maxTxAttempts,
		},
		{
			name: "does not retry unique violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fnErrs:    []error{pgError(pgerrcode.UniqueViolation)},
			wantErr:   &pgconn.PgError{},
			wantCalls: 1,
		},
		{
			name: "begin failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			wantErr:   ErrBeginningTransaction,
			wantCalls: 0,
		},
		{
			name: "commit failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("broken pipe"))
			},
			fnErrs:    []error{nil},
			wantErr:   ErrCommitingTransaction,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock := newTestDB(t)
			db := newDBFromSQL(sqlDB)
			tt.setup(mock)

			calls := 0
			err := db.WithinTx(testContext(), func(ctx context.Context, tx *sql.Tx) error {
				e := tt.fnErrs[calls]
				calls++
				return e
			})

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
			case *pgconn.PgError:
				var pgErr *pgconn.PgError
				require.ErrorAs(t, err, &pgErr)
			default:
				require.ErrorIs(t, err, want)
			}
			assert.Equal(t, tt.wantCalls, calls)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDB_WithinTx_ExhaustedRetriesKeepCause(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)
	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	err := db.WithinTx(testContext(), func(context.Context, *sql.Tx) error {
		return pgError(pgerrcode.SerializationFailure)
	})

	require.ErrorIs(t, err, ErrTxRetriesExhausted)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.SerializationFailure, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_WithinTx_DetachedFromCallerCancellation(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)
	db.txTimeout = time.Second

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE notes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx, cancel := context.WithCancel(testContext())
	err := db.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		cancel()
		_, err := tx.ExecContext(ctx, "UPDATE notes SET title = $1", "x")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_WithinTx_DeadlineIsNotRetried(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)
	db.errorClassificator = retryEverything{}

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := db.WithinTx(testContext(), func(ctx context.Context, tx *sql.Tx) error {
		calls++
		return context.DeadlineExceeded
	})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}

type retryEverything struct{}

func (retryEverything) Classify(error) ErrorClassification { return Retryable }

func TestDialect(t *testing.T) {
	q, _, err := DialectPostgres.builder().Select("id").From("notes").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM notes WHERE id = $1", q)

	q, _, err = DialectSQLite.builder().Select("id").From("notes").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM notes WHERE id = ?", q)

	assert.Nil(t, DialectSQLite.txOptions())
	assert.Equal(t, sql.LevelSerializable, DialectPostgres.txOptions().Isolation)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file:notes.db?_foreign_keys=1&_busy_timeout=5000", sqliteDSN("notes.db"))
	assert.Equal(t, "file:notes.db?cache=shared&_foreign_keys=1&_busy_timeout=5000", sqliteDSN("file:notes.db?cache=shared"))
}
