package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
)

var tokenColumns = []string{"id", "tokenable_id", "name", "token", "last_used_at", "expires_at", "created_at"}

// TokenRepository persists personal_access_tokens.
type TokenRepository struct {
	q *Querier
}

// NewTokenRepository constructs a TokenRepository.
func NewTokenRepository(q *Querier) *TokenRepository {
	return &TokenRepository{q: q}
}

// Create inserts token and sets its generated ID.
func (r *TokenRepository) Create(ctx context.Context, token *models.PersonalAccessToken) error {
	ins := r.q.builder.
		Insert("personal_access_tokens").
		Columns("tokenable_id", "name", "token", "expires_at", "created_at").
		Values(token.TokenableID, token.Name, token.Token, token.ExpiresAt, token.CreatedAt)
	defer r.q.observe("token_create", time.Now())

	if r.q.driver == config.DriverMySQL {
		stmt, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("build create token: %w", err)
		}
		res, err := r.q.db.ExecContext(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("create token: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("create token id: %w", err)
		}
		token.ID = id
		return nil
	}

	stmt, args, err := ins.Suffix("RETURNING id").ToSql()
	if err != nil {
		return fmt.Errorf("build create token: %w", err)
	}
	if err := r.q.db.QueryRowxContext(ctx, stmt, args...).Scan(&token.ID); err != nil {
		return fmt.Errorf("create token: %w", err)
	}
	return nil
}

// FindByID returns the token with the given ID.
func (r *TokenRepository) FindByID(ctx context.Context, id int64) (*models.PersonalAccessToken, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

// FindByHash returns the token whose stored digest equals hash.
func (r *TokenRepository) FindByHash(ctx context.Context, hash string) (*models.PersonalAccessToken, error) {
	return r.findOne(ctx, sq.Eq{"token": hash})
}

func (r *TokenRepository) findOne(ctx context.Context, cond sq.Sqlizer) (*models.PersonalAccessToken, error) {
	stmt, args, err := r.q.builder.Select(tokenColumns...).From("personal_access_tokens").Where(cond).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find token: %w", err)
	}
	defer r.q.observe("token_find", time.Now())

	var token models.PersonalAccessToken
	if err := r.q.db.GetContext(ctx, &token, stmt, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find token: %w", err)
	}
	return &token, nil
}

// TouchLastUsed records when the token was last presented.
func (r *TokenRepository) TouchLastUsed(ctx context.Context, id int64, at time.Time) error {
	return r.exec(ctx, "token_touch", r.q.builder.Update("personal_access_tokens").Set("last_used_at", at).Where(sq.Eq{"id": id}))
}

// Delete removes a token.
func (r *TokenRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, "token_delete", r.q.builder.Delete("personal_access_tokens").Where(sq.Eq{"id": id}))
}

// DeleteExpired removes tokens of tokenableID that expired before now.
func (r *TokenRepository) DeleteExpired(ctx context.Context, tokenableID int64, now time.Time) error {
	return r.exec(ctx, "token_prune", r.q.builder.Delete("personal_access_tokens").
		Where(sq.Eq{"tokenable_id": tokenableID}).
		Where(sq.Lt{"expires_at": now}))
}

func (r *TokenRepository) exec(ctx context.Context, label string, b sq.Sqlizer) error {
	stmt, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build %s: %w", label, err)
	}
	defer r.q.observe(label, time.Now())

	if _, err := r.q.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}
