package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-api/pkg/config"
)

func TestAPIUserRepositoryFindByUsername(t *testing.T) {
	q, mock, _ := newMockQuerier(t, config.DriverMySQL)
	repo := NewAPIUserRepository(q)

	cols := []string{"id", "username", "password", "name", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password, name, created_at, updated_at FROM api_users WHERE username = ? LIMIT 1")).
		WithArgs("siakad").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(3), "siakad", "$2a$10$hash", "SIAKAD", nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM api_users WHERE id = ? LIMIT 1")).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.FindByUsername(context.Background(), "siakad")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "SIAKAD", *user.Name)

	_, err = repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
