// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

func newTestLabelRepo(t *testing.T) (LabelRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock := newTestDB(t)
	return NewLabelRepository(newDBFromSQL(sqlDB), logger.Nop()), mock
}

func TestLabelRepository_CreateLabel(t *testing.T) {
	now := time.Now().UTC()
	label := models.Label{OwnerID: 2, Name: "work", CreatedAt: now, ModifiedAt: now}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestLabelRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO labels (user_id,name,color,created_at,modified_at) VALUES ($1,$2,$3,$4,$5) RETURNING id`)).
			WithArgs(int64(2), "work", "", now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))

		created, err := repo.CreateLabel(testContext(), label)
		require.NoError(t, err)
		assert.Equal(t, int64(8), created.ID)
	})

	t.Run("name taken", func(t *testing.T) {
		repo, mock := newTestLabelRepo(t)
		mock.ExpectQuery("INSERT INTO labels").WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateLabel(testContext(), label)
		require.ErrorIs(t, err, ErrLabelNameExists)
	})
}

func TestLabelRepository_OwnerScoping(t *testing.T) {
	now := time.Now().UTC()

	t.Run("get of other owner's label is not found", func(t *testing.T) {
		repo, mock := newTestLabelRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM labels WHERE id = $1 AND user_id = $2`)).
			WithArgs(int64(8), int64(3)).
			WillReturnRows(sqlmock.NewRows(labelColumns))

		_, err := repo.GetLabel(testContext(), 3, 8)
		require.ErrorIs(t, err, ErrLabelNotFound)
	})

	t.Run("update of other owner's label is not found", func(t *testing.T) {
		repo, mock := newTestLabelRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE labels SET name = $1, color = $2, modified_at = $3 WHERE id = $4 AND user_id = $5`)).
			WithArgs("home", "", now, int64(8), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateLabel(testContext(), models.Label{ID: 8, OwnerID: 3, Name: "home", ModifiedAt: now})
		require.ErrorIs(t, err, ErrLabelNotFound)
	})

	t.Run("delete own label", func(t *testing.T) {
		repo, mock := newTestLabelRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM labels WHERE id = $1 AND user_id = $2`)).
			WithArgs(int64(8), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteLabel(testContext(), 2, 8))
	})
}

func TestLabelRepository_FindLabelsByIDs(t *testing.T) {
	now := time.Now().UTC()
	repo, mock := newTestLabelRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM labels WHERE id IN ($1,$2,$3) ORDER BY id`)).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(sqlmock.NewRows(labelColumns).
			AddRow(int64(1), int64(5), "a", "", now, now).
			AddRow(int64(3), int64(6), "b", "", now, now))

	labels, err := repo.FindLabelsByIDs(testContext(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, int64(6), labels[1].OwnerID)

	empty, err := repo.FindLabelsByIDs(testContext(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
