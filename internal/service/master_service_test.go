package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
)

type memoryCacheRepo struct {
	items   map[string][]byte
	getErr  error
	deleted []string
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{items: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
			m.deleted = append(m.deleted, k)
		}
	}
	return nil
}

type mockMasterRepo struct {
	calls       int
	lastSearch  string
	departments []models.Department
	err         error
}

func (m *mockMasterRepo) Departments(ctx context.Context, search string) ([]models.Department, error) {
	m.calls++
	m.lastSearch = search
	return m.departments, m.err
}

func (m *mockMasterRepo) ClassPrograms(ctx context.Context, search string) ([]models.ClassProgram, error) {
	m.calls++
	return nil, m.err
}

func (m *mockMasterRepo) Religions(ctx context.Context, search string) ([]models.Religion, error) {
	m.calls++
	return []models.Religion{{ReligionID: 1, ReligionName: "Islam"}}, m.err
}

func (m *mockMasterRepo) MaritalStatuses(ctx context.Context, search string) ([]models.MaritalStatus, error) {
	m.calls++
	return nil, m.err
}

func TestMasterDepartmentsCached(t *testing.T) {
	repo := &mockMasterRepo{departments: []models.Department{{DepartmentID: 3, DepartmentName: "Informatika"}}}
	store := newMemoryCacheRepo()
	metrics := NewMetricsService()
	svc := NewMasterService(repo, NewCacheService(store, metrics, time.Minute, nil, true), nil)

	first, err := svc.Departments(context.Background(), "Info")
	require.NoError(t, err)
	second, err := svc.Departments(context.Background(), "INFO")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
	assert.Contains(t, store.items, "master:departments:info")

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
}

func TestMasterWithoutCacheAlwaysLoads(t *testing.T) {
	repo := &mockMasterRepo{}
	svc := NewMasterService(repo, nil, nil)

	rows, err := svc.ClassPrograms(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	_, err = svc.ClassPrograms(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestMasterCacheFailureFallsBackToRepository(t *testing.T) {
	repo := &mockMasterRepo{}
	store := newMemoryCacheRepo()
	store.getErr = errors.New("redis unavailable")
	svc := NewMasterService(repo, NewCacheService(store, nil, 0, nil, true), nil)

	rows, err := svc.Religions(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestMasterRepositoryFailure(t *testing.T) {
	svc := NewMasterService(&mockMasterRepo{err: errors.New("no table")}, nil, nil)

	_, err := svc.MaritalStatuses(context.Background(), "")
	assertAppError(t, err, appErrors.ErrInternal)
}

func TestMasterInvalidate(t *testing.T) {
	store := newMemoryCacheRepo()
	svc := NewMasterService(&mockMasterRepo{}, NewCacheService(store, nil, 0, nil, true), nil)

	_, err := svc.Religions(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(context.Background()))
	assert.Equal(t, []string{"master:religions:"}, store.deleted)
	assert.Empty(t, store.items)
}
