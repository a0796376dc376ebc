package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/noah-isme/simak-api/internal/models"
)

var apiUserColumns = []string{"id", "username", "password", "name", "created_at", "updated_at"}

// APIUserRepository reads api_users.
type APIUserRepository struct {
	q *Querier
}

// NewAPIUserRepository constructs an APIUserRepository.
func NewAPIUserRepository(q *Querier) *APIUserRepository {
	return &APIUserRepository{q: q}
}

// FindByUsername returns the API user with the given username.
func (r *APIUserRepository) FindByUsername(ctx context.Context, username string) (*models.APIUser, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

// FindByID returns the API user with the given ID.
func (r *APIUserRepository) FindByID(ctx context.Context, id int64) (*models.APIUser, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *APIUserRepository) findOne(ctx context.Context, cond sq.Sqlizer) (*models.APIUser, error) {
	stmt, args, err := r.q.builder.Select(apiUserColumns...).From("api_users").Where(cond).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find api user: %w", err)
	}
	defer r.q.observe("api_user_find", time.Now())

	var user models.APIUser
	if err := r.q.db.GetContext(ctx, &user, stmt, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find api user: %w", err)
	}
	return &user, nil
}
