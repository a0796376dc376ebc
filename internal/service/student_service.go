package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/pagination"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter, p pagination.Params) ([]models.Student, pagination.Window, error)
	ListDetail(ctx context.Context, filter models.StudentFilter, p pagination.Params) ([]models.StudentDetail, pagination.Window, error)
}

// StudentService handles student listing.
type StudentService struct {
	repo   studentRepository
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, logger: logger}
}

// List returns compact student rows, or detailed rows when filter.Detail is set. The data
// is a []models.Student or []models.StudentDetail accordingly.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter, p pagination.Params) (interface{}, pagination.Window, error) {
	var (
		data   interface{}
		window pagination.Window
		err    error
	)
	if filter.Detail {
		var rows []models.StudentDetail
		rows, window, err = s.repo.ListDetail(ctx, filter, p)
		data = rows
	} else {
		var rows []models.Student
		rows, window, err = s.repo.List(ctx, filter, p)
		data = rows
	}
	if err != nil {
		return nil, window, internalError(err)
	}

	if window.Total == 0 && filter.HasIdentity() {
		return nil, window, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
	}
	return data, window, nil
}
