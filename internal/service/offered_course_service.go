package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/pagination"
)

type offeredCourseRepository interface {
	List(ctx context.Context, filter models.OfferedCourseFilter, p pagination.Params) ([]models.OfferedCourse, pagination.Window, error)
}

// OfferedCourseService lists the courses opened per term.
type OfferedCourseService struct {
	repo   offeredCourseRepository
	logger *zap.Logger
}

// NewOfferedCourseService constructs the offered-course service.
func NewOfferedCourseService(repo offeredCourseRepository, logger *zap.Logger) *OfferedCourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfferedCourseService{repo: repo, logger: logger}
}

// List returns the matching offered courses, newest first. An empty result is not an error.
func (s *OfferedCourseService) List(ctx context.Context, filter models.OfferedCourseFilter, p pagination.Params) ([]models.OfferedCourse, pagination.Window, error) {
	rows, window, err := s.repo.List(ctx, filter, p)
	if err != nil {
		return nil, window, internalErrorWithMessage(err, somethingWentWrong)
	}
	return rows, window, nil
}
