package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/simak-api/internal/models"
)

type masterRepository interface {
	Departments(ctx context.Context, search string) ([]models.Department, error)
	ClassPrograms(ctx context.Context, search string) ([]models.ClassProgram, error)
	Religions(ctx context.Context, search string) ([]models.Religion, error)
	MaritalStatuses(ctx context.Context, search string) ([]models.MaritalStatus, error)
}

// MasterCachePattern matches every cached reference-data listing.
const MasterCachePattern = "master:*"

// MasterService serves reference data, cached per resource and search term.
type MasterService struct {
	repo   masterRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewMasterService constructs the master data service. A nil cache disables caching.
func NewMasterService(repo masterRepository, cache *CacheService, logger *zap.Logger) *MasterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MasterService{repo: repo, cache: cache, logger: logger}
}

// Departments lists mstr_department rows whose name contains search.
func (s *MasterService) Departments(ctx context.Context, search string) ([]models.Department, error) {
	return masterList(ctx, s, "departments", search, s.repo.Departments)
}

// ClassPrograms lists class programs whose name contains search.
func (s *MasterService) ClassPrograms(ctx context.Context, search string) ([]models.ClassProgram, error) {
	return masterList(ctx, s, "program-classes", search, s.repo.ClassPrograms)
}

// Religions lists religions whose name contains search.
func (s *MasterService) Religions(ctx context.Context, search string) ([]models.Religion, error) {
	return masterList(ctx, s, "religions", search, s.repo.Religions)
}

// MaritalStatuses lists marital status types containing search.
func (s *MasterService) MaritalStatuses(ctx context.Context, search string) ([]models.MaritalStatus, error) {
	return masterList(ctx, s, "marital-statuses", search, s.repo.MaritalStatuses)
}

// Invalidate drops every cached listing.
func (s *MasterService) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx, MasterCachePattern)
}

func masterCacheKey(resource, search string) string {
	return "master:" + resource + ":" + strings.ToLower(search)
}

func masterList[T any](ctx context.Context, s *MasterService, resource, search string, load func(context.Context, string) ([]T, error)) ([]T, error) {
	rows, err := remember(ctx, s.cache, masterCacheKey(resource, search), func() ([]T, error) {
		return load(ctx, search)
	})
	if err != nil {
		return nil, internalError(err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}
