package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/grouping"
	"github.com/noah-isme/simak-api/pkg/pagination"
)

type studentSummaryRepository interface {
	ListSummaries(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) ([]models.StudentSummary, pagination.Window, error)
}

type enrollmentRepository interface {
	StreamKrs(ctx context.Context, studentIDs []int64, termYearID string, fn func(models.KrsEntry) error) error
	StreamKhs(ctx context.Context, studentIDs []int64, termYearID string, fn func(models.KhsEntry) error) error
}

// EnrollmentService builds the per-student KRS and KHS listings.
type EnrollmentService struct {
	students    studentSummaryRepository
	enrollments enrollmentRepository
	logger      *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(students studentSummaryRepository, enrollments enrollmentRepository, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{students: students, enrollments: enrollments, logger: logger}
}

// ListKrs returns the selected students, each with its enrollments.
func (s *EnrollmentService) ListKrs(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) (*dto.ListResult[models.StudentKrs], error) {
	students, window, err := s.parents(ctx, filter, p)
	if err != nil {
		return nil, err
	}

	krs := grouping.NewCollector[int64, models.KrsEntry]()
	if err := s.enrollments.StreamKrs(ctx, studentIDs(students), filter.TermYearID, func(e models.KrsEntry) error {
		krs.Add(e.StudentID, e)
		return nil
	}); err != nil {
		return nil, internalError(err)
	}

	items := make([]models.StudentKrs, 0, len(students))
	for _, st := range students {
		entries := krs.Rows(st.StudentID)
		items = append(items, models.StudentKrs{
			StudentID:    st.StudentID,
			FullName:     st.FullName,
			Nim:          st.Nim,
			DepartmentID: st.DepartmentID,
			TotalKrs:     len(entries),
			Krs:          entries,
		})
	}
	return &dto.ListResult[models.StudentKrs]{Items: items, Window: window}, nil
}

// ListKhs returns the selected students, each with its graded enrollments.
func (s *EnrollmentService) ListKhs(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) (*dto.ListResult[models.StudentKhs], error) {
	students, window, err := s.parents(ctx, filter, p)
	if err != nil {
		return nil, err
	}

	khs := grouping.NewCollector[int64, models.KhsEntry]()
	if err := s.enrollments.StreamKhs(ctx, studentIDs(students), filter.TermYearID, func(e models.KhsEntry) error {
		khs.Add(e.StudentID, e)
		return nil
	}); err != nil {
		return nil, internalError(err)
	}

	items := make([]models.StudentKhs, 0, len(students))
	for _, st := range students {
		entries := khs.Rows(st.StudentID)
		items = append(items, models.StudentKhs{
			StudentID:    st.StudentID,
			FullName:     st.FullName,
			Nim:          st.Nim,
			DepartmentID: st.DepartmentID,
			TotalKhs:     len(entries),
			Khs:          entries,
		})
	}
	return &dto.ListResult[models.StudentKhs]{Items: items, Window: window}, nil
}

// parents loads the page of students; an empty authoritative total is a 404.
func (s *EnrollmentService) parents(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) ([]models.StudentSummary, pagination.Window, error) {
	students, window, err := s.students.ListSummaries(ctx, filter, p)
	if err != nil {
		return nil, window, internalError(err)
	}
	if window.Total == 0 {
		return nil, window, appErrors.Clone(appErrors.ErrNotFound, "No students found")
	}
	return students, window, nil
}

func studentIDs(students []models.StudentSummary) []int64 {
	ids := make([]int64, len(students))
	for i, st := range students {
		ids[i] = st.StudentID
	}
	return ids
}
