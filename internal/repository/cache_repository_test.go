package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/simak-api/pkg/errors"
)

func TestCacheRepositoryWithoutClientIsAlwaysMiss(t *testing.T) {
	repo := NewCacheRepository(nil, "simak:")
	var dest []string

	assert.ErrorIs(t, repo.Get(context.Background(), "master:departments", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(context.Background(), "master:departments", []string{"x"}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(context.Background(), "master:*"))
}
