package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
)

func newToken(now time.Time) *models.PersonalAccessToken {
	expires := now.Add(24 * time.Hour)
	return &models.PersonalAccessToken{TokenableID: 3, Name: "api-token", Token: "digest", ExpiresAt: &expires, CreatedAt: now}
}

func TestTokenRepositoryCreateMySQL(t *testing.T) {
	q, mock, _ := newMockQuerier(t, config.DriverMySQL)
	repo := NewTokenRepository(q)
	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO personal_access_tokens (tokenable_id,name,token,expires_at,created_at) VALUES (?,?,?,?,?)")).
		WithArgs(int64(3), "api-token", "digest", now.Add(24*time.Hour), now).
		WillReturnResult(sqlmock.NewResult(42, 1))

	token := newToken(now)
	require.NoError(t, repo.Create(context.Background(), token))
	assert.Equal(t, int64(42), token.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryCreatePostgres(t *testing.T) {
	q, mock, _ := newMockQuerier(t, config.DriverPostgres)
	repo := NewTokenRepository(q)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO personal_access_tokens (tokenable_id,name,token,expires_at,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	token := newToken(now)
	require.NoError(t, repo.Create(context.Background(), token))
	assert.Equal(t, int64(7), token.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryFind(t *testing.T) {
	q, mock, _ := newMockQuerier(t, config.DriverMySQL)
	repo := NewTokenRepository(q)
	now := time.Now()

	cols := []string{"id", "tokenable_id", "name", "token", "last_used_at", "expires_at", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM personal_access_tokens WHERE id = ? LIMIT 1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(42), int64(3), "api-token", "digest", nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM personal_access_tokens WHERE token = ? LIMIT 1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	token, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "digest", token.Token)
	assert.Nil(t, token.LastUsedAt)
	require.NotNil(t, token.ExpiresAt)

	_, err = repo.FindByHash(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryMutations(t *testing.T) {
	q, mock, obs := newMockQuerier(t, config.DriverMySQL)
	repo := NewTokenRepository(q)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE personal_access_tokens SET last_used_at = ? WHERE id = ?")).
		WithArgs(now, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM personal_access_tokens WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM personal_access_tokens WHERE tokenable_id = ? AND expires_at < ?")).
		WithArgs(int64(3), now).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.TouchLastUsed(context.Background(), 42, now))
	require.NoError(t, repo.Delete(context.Background(), 42))
	require.NoError(t, repo.DeleteExpired(context.Background(), 3, now))
	assert.Equal(t, []string{"token_touch", "token_delete", "token_prune"}, obs.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}
